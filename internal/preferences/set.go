package preferences

import (
	"encoding/json"
	"slices"
)

// Set is a set of strings that remembers insertion order. The order is what
// gets persisted; membership checks are constant time.
type Set struct {
	items []string
	index map[string]struct{}
}

// NewSet builds a set from items, dropping duplicates
func NewSet(items ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Has reports membership
func (s *Set) Has(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Add inserts item at the end. Adding a member is a no-op.
func (s *Set) Add(item string) {
	if s.Has(item) {
		return
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

// Remove deletes item, keeping the order of the rest
func (s *Set) Remove(item string) {
	if !s.Has(item) {
		return
	}
	delete(s.index, item)
	s.items = slices.DeleteFunc(s.items, func(v string) bool { return v == item })
}

// Toggle flips membership of item and reports whether it is now present
func (s *Set) Toggle(item string) bool {
	if s.Has(item) {
		s.Remove(item)
		return false
	}
	s.Add(item)
	return true
}

// Len returns the number of members
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order, never nil
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Equal compares membership only
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, item := range s.items {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the members as a list
func (s *Set) MarshalJSON() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}
