package preferences

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
)

// SetAtom is a preference holding a set of opaque ids. Anything stored that
// is not a list reads as the empty set.
type SetAtom struct {
	store *Store
	key   string
}

// NewSetAtom creates a set preference stored under key
func NewSetAtom(store *Store, key string) *SetAtom {
	return &SetAtom{store: store, key: key}
}

// Key returns the storage key
func (a *SetAtom) Key() string {
	return a.key
}

// Get returns the client's current set. A storage failure reads as the
// empty set.
func (a *SetAtom) Get(ctx context.Context, clientID string) *Set {
	set, err := a.read(ctx, clientID)
	if err != nil {
		slog.WarnContext(ctx, "failed to read preference, using empty set",
			"client_id", clientID,
			"key", a.key,
			"error", err)
		return NewSet()
	}
	return set
}

func (a *SetAtom) read(ctx context.Context, clientID string) (*Set, error) {
	raw, ok, err := a.store.Load(ctx, clientID, a.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewSet(), nil
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		slog.DebugContext(ctx, "preference is not a list, using empty set",
			"client_id", clientID,
			"key", a.key)
		return NewSet(), nil
	}

	set := NewSet()
	for _, v := range values {
		if s, ok := v.(string); ok {
			set.Add(s)
		}
	}
	return set, nil
}

// Set replaces the client's set
func (a *SetAtom) Set(ctx context.Context, clientID string, set *Set) {
	a.store.Save(ctx, clientID, a.key, set)
}

// Toggle flips membership of item and returns the updated set and whether
// item is now a member. Nothing is written when the current set cannot be
// read.
func (a *SetAtom) Toggle(ctx context.Context, clientID, item string) (*Set, bool, error) {
	var (
		set     *Set
		present bool
		err     error
	)
	a.store.Locked(clientID, func() {
		set, err = a.read(ctx, clientID)
		if err != nil {
			return
		}
		present = set.Toggle(item)
		a.Set(ctx, clientID, set)
	})
	if err != nil {
		return nil, false, err
	}
	return set, present, nil
}

// Reset empties the set unconditionally
func (a *SetAtom) Reset(ctx context.Context, clientID string) {
	a.store.Locked(clientID, func() {
		a.Set(ctx, clientID, NewSet())
	})
}

// FlagMapAtom is a preference mapping ids to booleans where a missing id or
// true means on. Only an explicit false turns an id off.
type FlagMapAtom struct {
	store *Store
	key   string
}

// NewFlagMapAtom creates a flag map preference stored under key
func NewFlagMapAtom(store *Store, key string) *FlagMapAtom {
	return &FlagMapAtom{store: store, key: key}
}

// Key returns the storage key
func (a *FlagMapAtom) Key() string {
	return a.key
}

// Get returns the stored flags. Entries that are not booleans are ignored and
// a storage failure reads as no flags.
func (a *FlagMapAtom) Get(ctx context.Context, clientID string) map[string]bool {
	flags, err := a.read(ctx, clientID)
	if err != nil {
		slog.WarnContext(ctx, "failed to read preference, using empty map",
			"client_id", clientID,
			"key", a.key,
			"error", err)
		return make(map[string]bool)
	}
	return flags
}

func (a *FlagMapAtom) read(ctx context.Context, clientID string) (map[string]bool, error) {
	flags := make(map[string]bool)

	raw, ok, err := a.store.Load(ctx, clientID, a.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return flags, nil
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		slog.DebugContext(ctx, "preference is not an object, using empty map",
			"client_id", clientID,
			"key", a.key)
		return flags, nil
	}

	for id, v := range values {
		if b, ok := v.(bool); ok {
			flags[id] = b
		}
	}
	return flags, nil
}

// Enabled reports the effective flag for id
func (a *FlagMapAtom) Enabled(ctx context.Context, clientID, id string) bool {
	return enabled(a.Get(ctx, clientID), id)
}

// Toggle flips the effective flag for id, writing the result explicitly, and
// returns the updated flags and the new value. Nothing is written when the
// current flags cannot be read.
func (a *FlagMapAtom) Toggle(ctx context.Context, clientID, id string) (map[string]bool, bool, error) {
	var (
		flags map[string]bool
		value bool
		err   error
	)
	a.store.Locked(clientID, func() {
		flags, err = a.read(ctx, clientID)
		if err != nil {
			return
		}
		value = !enabled(flags, id)
		flags[id] = value
		a.store.Save(ctx, clientID, a.key, flags)
	})
	if err != nil {
		return nil, false, err
	}
	return maps.Clone(flags), value, nil
}

func enabled(flags map[string]bool, id string) bool {
	v, ok := flags[id]
	return !ok || v
}

// Scalar is the set of plain value types a ValueAtom can hold
type Scalar interface {
	~bool | ~int | ~string
}

// ValueAtom is a preference holding one scalar value. A missing, null or
// wrong-typed stored value reads as the default.
type ValueAtom[T Scalar] struct {
	store       *Store
	key         string
	def         T
	normalizeFn func(T) T
}

// BoolAtom, IntAtom and StringAtom are the scalar preferences in use
type (
	BoolAtom   = ValueAtom[bool]
	IntAtom    = ValueAtom[int]
	StringAtom = ValueAtom[string]
)

// NewValueAtom creates a scalar preference stored under key. normalize, when
// set, is applied to every value read or written (clamping, trimming).
func NewValueAtom[T Scalar](store *Store, key string, def T, normalize func(T) T) *ValueAtom[T] {
	return &ValueAtom[T]{store: store, key: key, def: def, normalizeFn: normalize}
}

// Key returns the storage key
func (a *ValueAtom[T]) Key() string {
	return a.key
}

// Default returns the value used when nothing valid is stored
func (a *ValueAtom[T]) Default() T {
	return a.def
}

// Get returns the client's value
func (a *ValueAtom[T]) Get(ctx context.Context, clientID string) T {
	raw, ok, err := a.store.Load(ctx, clientID, a.key)
	if err != nil {
		slog.WarnContext(ctx, "failed to read preference, using default",
			"client_id", clientID,
			"key", a.key,
			"error", err)
		return a.def
	}
	if !ok {
		return a.def
	}

	var value *T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.DebugContext(ctx, "preference has the wrong type, using default",
			"client_id", clientID,
			"key", a.key)
		return a.def
	}
	if value == nil {
		slog.DebugContext(ctx, "preference is null, using default",
			"client_id", clientID,
			"key", a.key)
		return a.def
	}
	return a.normalize(*value)
}

// Set stores value after normalizing it and returns what was stored
func (a *ValueAtom[T]) Set(ctx context.Context, clientID string, value T) T {
	value = a.normalize(value)
	a.store.Locked(clientID, func() {
		a.store.Save(ctx, clientID, a.key, value)
	})
	return value
}

// Clear removes the stored value so reads return the default
func (a *ValueAtom[T]) Clear(ctx context.Context, clientID string) {
	a.store.Locked(clientID, func() {
		a.store.Delete(ctx, clientID, a.key)
	})
}

func (a *ValueAtom[T]) normalize(v T) T {
	if a.normalizeFn == nil {
		return v
	}
	return a.normalizeFn(v)
}
