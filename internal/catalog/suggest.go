package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind names a record collection for suggestions
type Kind string

// Suggestion kinds
const (
	KindCharacter Kind = "character"
	KindItem      Kind = "item"
	KindDraft     Kind = "draft"
	KindCategory  Kind = "category"
)

// Suggest returns up to limit identifiers close to query, nearest first.
// Used to enrich not-found responses; it never affects lookup results.
func (idx *Index) Suggest(kind Kind, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		value string
		dist  int
	}

	seen := make(map[string]struct{})
	var results []scored
	consider := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}

		dist := levenshtein.ComputeDistance(query, strings.ToLower(candidate))
		if dist > distanceLimit(len(candidate)) {
			return
		}
		results = append(results, scored{value: candidate, dist: dist})
	}

	switch kind {
	case KindCharacter:
		for _, c := range idx.characters {
			consider(c.ID)
			consider(c.InternalName)
		}
	case KindItem:
		for _, item := range idx.items {
			consider(item.ID)
		}
	case KindDraft:
		for _, d := range idx.drafts {
			consider(d.ID)
		}
	case KindCategory:
		for _, c := range idx.categories {
			consider(c.Slug)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].value < results[j].value
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.value
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
