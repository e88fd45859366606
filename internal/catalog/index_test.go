package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/atlas-api/internal/catalog"
	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/testutils"
)

type IndexTestSuite struct {
	suite.Suite
	index *catalog.Index
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexTestSuite))
}

func (s *IndexTestSuite) SetupTest() {
	s.index = testutils.LoadTestCatalog(s.T())
}

func (s *IndexTestSuite) TestLanguages() {
	langs := s.index.Languages()
	s.Equal([]string{"EN", "FR", "JP"}, langs.Available)
	s.Equal("EN", langs.Default)
	s.Equal([]string{"EN"}, langs.Fallback)
}

func (s *IndexTestSuite) TestLanguagesDefaults() {
	idx := catalog.NewIndex(&catalog.Documents{
		Descriptor: gamedata.Descriptor{AvailableLanguages: []string{"jp", "en"}},
	})

	langs := idx.Languages()
	s.Equal([]string{"JP", "EN"}, langs.Available)
	s.Equal("JP", langs.Default)
	s.Equal([]string{"JP"}, langs.Fallback)
}

func (s *IndexTestSuite) TestCharacter() {
	testCases := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{name: "exact id", query: "abc", expected: testutils.CharacterScoutID, found: true},
		{name: "id is case-insensitive", query: "ABC", expected: testutils.CharacterScoutID, found: true},
		{name: "numeric char id", query: "102", expected: testutils.CharacterLumenID, found: true},
		{name: "internal name", query: "lumi", expected: testutils.CharacterLumenID, found: true},
		{name: "shared internal name resolves to first", query: testutils.SharedInternal, expected: testutils.CharacterLumenID, found: true},
		{name: "alternate by its own id", query: "LUMEN_ALT", expected: testutils.CharacterAltID, found: true},
		{name: "unknown", query: "nobody", found: false},
		{name: "empty", query: "", found: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			character, found := s.index.Character(tc.query)
			s.Equal(tc.found, found)
			if tc.found {
				s.Require().NotNil(character)
				s.Equal(tc.expected, character.ID)
			} else {
				s.Nil(character)
			}
		})
	}
}

func (s *IndexTestSuite) TestItem() {
	testCases := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{name: "exact id", query: "iron_sword", expected: testutils.ItemSwordID, found: true},
		{name: "upper case id", query: "IRON_ORE", expected: testutils.ItemOreID, found: true},
		{name: "numeric mod id", query: "1002", expected: testutils.ItemNamelessID, found: true},
		{name: "unknown numeric", query: "9999", found: false},
		{name: "unknown", query: "steel_sword", found: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, found := s.index.Item(tc.query)
			s.Equal(tc.found, found)
			if tc.found {
				s.Require().NotNil(item)
				s.Equal(tc.expected, item.ID)
			}
		})
	}
}

func (s *IndexTestSuite) TestDraft() {
	byID, found := s.index.Draft(testutils.DraftSwordID)
	s.Require().True(found)
	s.Equal(5001, byID.DraftID)

	byNumeric, found := s.index.Draft("5001")
	s.Require().True(found)
	s.Same(byID, byNumeric)

	_, found = s.index.Draft("draft_missing")
	s.False(found)
}

func (s *IndexTestSuite) TestCategoryBySlug() {
	s.Run("with items", func() {
		result, found := s.index.CategoryBySlug(testutils.CategoryWeapons)
		s.Require().True(found)
		s.Equal("cat_weapon", result.Category.ID)
		s.Require().Len(result.Items, 2)
		s.Equal(testutils.ItemSwordID, result.Items[0].ID)
		s.Equal(testutils.ItemNamelessID, result.Items[1].ID)
	})

	s.Run("empty category", func() {
		result, found := s.index.CategoryBySlug(testutils.CategoryEmpty)
		s.Require().True(found)
		s.Equal("cat_empty", result.Category.ID)
		s.Empty(result.Items)
	})

	s.Run("unknown slug", func() {
		result, found := s.index.CategoryBySlug("armor")
		s.False(found)
		s.Nil(result)
	})

	s.Run("slug is exact", func() {
		_, found := s.index.CategoryBySlug("Weapons")
		s.False(found)
	})
}

func (s *IndexTestSuite) TestCategoryByID() {
	category, found := s.index.CategoryByID("cat_material")
	s.Require().True(found)
	s.Equal(testutils.CategoryMaterials, category.Slug)

	_, found = s.index.CategoryByID(testutils.CategoryMaterials)
	s.False(found)
}

func (s *IndexTestSuite) TestDraftRelations() {
	producing := s.index.DraftsProducing("IRON_SWORD")
	s.Require().Len(producing, 1)
	s.Equal(testutils.DraftSwordID, producing[0].ID)

	using := s.index.DraftsUsing(testutils.ItemOreID)
	s.Require().Len(using, 1)
	s.Equal(testutils.DraftSwordID, using[0].ID)

	s.Empty(s.index.DraftsProducing(testutils.ItemOreID))
	s.Empty(s.index.DraftsUsing(testutils.ItemSwordID))
}

func (s *IndexTestSuite) TestListings() {
	categories := s.index.Categories()
	s.Require().Len(categories, 3)
	s.Equal(testutils.CategoryWeapons, categories[0].Slug)
	s.Equal(testutils.CategoryEmpty, categories[2].Slug)

	characters := s.index.Characters()
	s.Require().Len(characters, 3)
	s.Equal(testutils.CharacterScoutID, characters[0].ID)

	s.Len(s.index.Maps(), 2)
	s.Len(s.index.Codes(), 2)
}

func (s *IndexTestSuite) TestMaps() {
	m, found := s.index.Map(testutils.MapAbyss)
	s.Require().True(found)
	s.Equal(testutils.MapAbyss, m.ID)

	_, found = s.index.Map("moon")
	s.False(found)

	def, found := s.index.DefaultMap()
	s.Require().True(found)
	s.Equal(testutils.MapOverworld, def.ID)
}

func (s *IndexTestSuite) TestDefaultMapFallsBackToFirst() {
	idx := catalog.NewIndex(&catalog.Documents{
		Descriptor: gamedata.Descriptor{Maps: []gamedata.GameMap{{ID: "a"}, {ID: "b"}}},
	})
	def, found := idx.DefaultMap()
	s.Require().True(found)
	s.Equal("a", def.ID)

	_, found = catalog.NewIndex(nil).DefaultMap()
	s.False(found)
}

func (s *IndexTestSuite) TestMissingNumericIDIsNotIndexed() {
	idx := catalog.NewIndex(&catalog.Documents{
		Descriptor: gamedata.Descriptor{
			Characters: []gamedata.Character{{ID: "nameless"}, {ID: "seven", CharID: 7}},
		},
		Items:  []gamedata.Item{{ID: "loose", CategoryID: "misc"}},
		Drafts: []gamedata.DraftRecipe{{ID: "sketch"}},
	})

	_, found := idx.Character("0")
	s.False(found)
	_, found = idx.Item("0")
	s.False(found)
	_, found = idx.Draft("0")
	s.False(found)

	character, found := idx.Character("7")
	s.Require().True(found)
	s.Equal("seven", character.ID)

	item, found := idx.Item("loose")
	s.Require().True(found)
	s.Equal(0, item.ModID)
}

func (s *IndexTestSuite) TestCodesReturnsCopy() {
	codes := s.index.Codes()
	codes[0].Code = "CHANGED"
	s.Equal("WELCOME2026", s.index.Codes()[0].Code)
}

func (s *IndexTestSuite) TestCounts() {
	s.Equal(map[string]int{
		"categories": 3,
		"characters": 3,
		"items":      3,
		"drafts":     1,
		"maps":       2,
		"codes":      2,
	}, s.index.Counts())
}
