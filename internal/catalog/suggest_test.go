package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/atlas-api/internal/catalog"
	"github.com/KirkDiggler/atlas-api/internal/testutils"
)

func TestSuggest(t *testing.T) {
	idx := testutils.LoadTestCatalog(t)

	testCases := []struct {
		name     string
		kind     catalog.Kind
		query    string
		limit    int
		expected []string
	}{
		{
			name:     "item typo",
			kind:     catalog.KindItem,
			query:    "iron_swrd",
			limit:    3,
			expected: []string{"iron_sword"},
		},
		{
			name:     "character by internal name typo",
			kind:     catalog.KindCharacter,
			query:    "lumo",
			limit:    3,
			expected: []string{"Lumi", "lumen"},
		},
		{
			name:     "category slug",
			kind:     catalog.KindCategory,
			query:    "weapon",
			limit:    3,
			expected: []string{"weapons"},
		},
		{
			name:     "nearest first",
			kind:     catalog.KindItem,
			query:    "iron_or",
			limit:    5,
			expected: []string{"iron_ore", "iron_sword"},
		},
		{
			name:  "nothing close",
			kind:  catalog.KindDraft,
			query: "completely_different",
			limit: 3,
		},
		{
			name:  "blank query",
			kind:  catalog.KindItem,
			query: "  ",
			limit: 3,
		},
		{
			name:  "zero limit",
			kind:  catalog.KindItem,
			query: "iron_swrd",
			limit: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := idx.Suggest(tc.kind, tc.query, tc.limit)
			if len(tc.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}
