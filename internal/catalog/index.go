package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/localization"
)

// Languages are the catalog wide language settings
type Languages struct {
	Available []string
	Default   string
	Fallback  []string
}

// CategoryItems is a category together with every item assigned to it
type CategoryItems struct {
	Category *gamedata.ItemCategory
	Items    []*gamedata.Item
}

// Index answers lookups over a loaded catalog. It is built once and never
// modified, so concurrent readers need no locking. Returned records belong to
// the index and must not be modified.
type Index struct {
	languages Languages

	characters    []gamedata.Character
	charByID      map[string]int
	charByNumeric map[string]int
	charByName    map[string]int

	items         []gamedata.Item
	itemByID      map[string]int
	itemByNumeric map[string]int

	drafts         []gamedata.DraftRecipe
	draftByID      map[string]int
	draftByNumeric map[string]int
	draftsProduct  map[string][]int
	draftsMaterial map[string][]int

	categories      []gamedata.ItemCategory
	categoryBySlug  map[string]int
	categoryByID    map[string]int
	itemsByCategory map[string][]int

	maps  []gamedata.GameMap
	codes []gamedata.RedemptionCode
}

// NewIndex builds the lookup maps. When two records share a key the first one
// in document order wins.
func NewIndex(docs *Documents) *Index {
	if docs == nil {
		docs = &Documents{}
	}

	idx := &Index{
		languages:       buildLanguages(docs.Descriptor),
		characters:      docs.Descriptor.Characters,
		charByID:        make(map[string]int),
		charByNumeric:   make(map[string]int),
		charByName:      make(map[string]int),
		items:           docs.Items,
		itemByID:        make(map[string]int),
		itemByNumeric:   make(map[string]int),
		drafts:          docs.Drafts,
		draftByID:       make(map[string]int),
		draftByNumeric:  make(map[string]int),
		draftsProduct:   make(map[string][]int),
		draftsMaterial:  make(map[string][]int),
		categories:      docs.Descriptor.Categories,
		categoryBySlug:  make(map[string]int),
		categoryByID:    make(map[string]int),
		itemsByCategory: make(map[string][]int),
		maps:            docs.Descriptor.Maps,
		codes:           docs.Codes,
	}

	for i, c := range idx.characters {
		putFirst(idx.charByID, foldKey(c.ID), i)
		if c.CharID != 0 {
			putFirst(idx.charByNumeric, strconv.Itoa(c.CharID), i)
		}
		if c.InternalName != "" {
			putFirst(idx.charByName, foldKey(c.InternalName), i)
		}
	}

	for i, item := range idx.items {
		putFirst(idx.itemByID, foldKey(item.ID), i)
		if item.ModID != 0 {
			putFirst(idx.itemByNumeric, strconv.Itoa(item.ModID), i)
		}
		idx.itemsByCategory[item.CategoryID] = append(idx.itemsByCategory[item.CategoryID], i)
	}

	for i, d := range idx.drafts {
		putFirst(idx.draftByID, foldKey(d.ID), i)
		if d.DraftID != 0 {
			putFirst(idx.draftByNumeric, strconv.Itoa(d.DraftID), i)
		}
		if d.Product.ID != "" {
			key := foldKey(d.Product.ID)
			idx.draftsProduct[key] = append(idx.draftsProduct[key], i)
		}
		for _, m := range d.Materials {
			key := foldKey(m.ID)
			if list := idx.draftsMaterial[key]; len(list) > 0 && list[len(list)-1] == i {
				continue
			}
			idx.draftsMaterial[key] = append(idx.draftsMaterial[key], i)
		}
	}

	for i, c := range idx.categories {
		putFirst(idx.categoryBySlug, c.Slug, i)
		putFirst(idx.categoryByID, c.ID, i)
	}

	return idx
}

func buildLanguages(d gamedata.Descriptor) Languages {
	langs := Languages{
		Available: make([]string, 0, len(d.AvailableLanguages)),
	}
	for _, code := range d.AvailableLanguages {
		langs.Available = append(langs.Available, localization.NormalizeCode(code))
	}

	langs.Default = localization.NormalizeCode(d.DefaultLanguage)
	if langs.Default == "" && len(langs.Available) > 0 {
		langs.Default = langs.Available[0]
	}

	for _, code := range d.FallbackLanguages {
		langs.Fallback = append(langs.Fallback, localization.NormalizeCode(code))
	}
	if len(langs.Fallback) == 0 && langs.Default != "" {
		langs.Fallback = []string{langs.Default}
	}
	return langs
}

func foldKey(s string) string {
	return strings.ToLower(s)
}

func putFirst(m map[string]int, key string, i int) {
	if _, exists := m[key]; !exists {
		m[key] = i
	}
}

func lookup(id string, maps ...map[string]int) (int, bool) {
	for _, m := range maps {
		if i, ok := m[id]; ok {
			return i, true
		}
	}
	return 0, false
}

// Languages returns the catalog language settings
func (idx *Index) Languages() Languages {
	return idx.languages
}

// Character finds a character by id (case-insensitive), then numeric charId,
// then internal name (case-insensitive).
func (idx *Index) Character(id string) (*gamedata.Character, bool) {
	if i, ok := lookup(foldKey(id), idx.charByID); ok {
		return &idx.characters[i], true
	}
	if i, ok := lookup(id, idx.charByNumeric); ok {
		return &idx.characters[i], true
	}
	if i, ok := lookup(foldKey(id), idx.charByName); ok {
		return &idx.characters[i], true
	}
	return nil, false
}

// Item finds an item by id (case-insensitive), then numeric modId
func (idx *Index) Item(id string) (*gamedata.Item, bool) {
	if i, ok := lookup(foldKey(id), idx.itemByID); ok {
		return &idx.items[i], true
	}
	if i, ok := lookup(id, idx.itemByNumeric); ok {
		return &idx.items[i], true
	}
	return nil, false
}

// Draft finds a recipe by id (case-insensitive), then numeric draftId
func (idx *Index) Draft(id string) (*gamedata.DraftRecipe, bool) {
	if i, ok := lookup(foldKey(id), idx.draftByID); ok {
		return &idx.drafts[i], true
	}
	if i, ok := lookup(id, idx.draftByNumeric); ok {
		return &idx.drafts[i], true
	}
	return nil, false
}

// CategoryBySlug returns the category and its items, or false for an unknown slug
func (idx *Index) CategoryBySlug(slug string) (*CategoryItems, bool) {
	i, ok := idx.categoryBySlug[slug]
	if !ok {
		return nil, false
	}

	category := &idx.categories[i]
	positions := idx.itemsByCategory[category.ID]
	items := make([]*gamedata.Item, len(positions))
	for j, pos := range positions {
		items[j] = &idx.items[pos]
	}

	return &CategoryItems{Category: category, Items: items}, true
}

// CategoryByID returns the category with the exact internal id
func (idx *Index) CategoryByID(id string) (*gamedata.ItemCategory, bool) {
	i, ok := idx.categoryByID[id]
	if !ok {
		return nil, false
	}
	return &idx.categories[i], true
}

// DraftsProducing returns the recipes whose product is itemID
func (idx *Index) DraftsProducing(itemID string) []*gamedata.DraftRecipe {
	return idx.draftsAt(idx.draftsProduct[foldKey(itemID)])
}

// DraftsUsing returns the recipes that consume itemID as a material
func (idx *Index) DraftsUsing(itemID string) []*gamedata.DraftRecipe {
	return idx.draftsAt(idx.draftsMaterial[foldKey(itemID)])
}

func (idx *Index) draftsAt(positions []int) []*gamedata.DraftRecipe {
	out := make([]*gamedata.DraftRecipe, len(positions))
	for i, pos := range positions {
		out[i] = &idx.drafts[pos]
	}
	return out
}

// Categories returns every category in document order
func (idx *Index) Categories() []*gamedata.ItemCategory {
	out := make([]*gamedata.ItemCategory, len(idx.categories))
	for i := range idx.categories {
		out[i] = &idx.categories[i]
	}
	return out
}

// Characters returns every character in document order
func (idx *Index) Characters() []*gamedata.Character {
	out := make([]*gamedata.Character, len(idx.characters))
	for i := range idx.characters {
		out[i] = &idx.characters[i]
	}
	return out
}

// Maps returns every interactive map in document order
func (idx *Index) Maps() []*gamedata.GameMap {
	out := make([]*gamedata.GameMap, len(idx.maps))
	for i := range idx.maps {
		out[i] = &idx.maps[i]
	}
	return out
}

// Map finds a map by exact id
func (idx *Index) Map(id string) (*gamedata.GameMap, bool) {
	for i := range idx.maps {
		if idx.maps[i].ID == id {
			return &idx.maps[i], true
		}
	}
	return nil, false
}

// DefaultMap returns the map flagged default, else the first one
func (idx *Index) DefaultMap() (*gamedata.GameMap, bool) {
	for i := range idx.maps {
		if idx.maps[i].Default {
			return &idx.maps[i], true
		}
	}
	if len(idx.maps) > 0 {
		return &idx.maps[0], true
	}
	return nil, false
}

// Codes returns every redemption code in document order
func (idx *Index) Codes() []gamedata.RedemptionCode {
	return slices.Clone(idx.codes)
}

// Counts summarizes the index size
func (idx *Index) Counts() map[string]int {
	return map[string]int{
		"categories": len(idx.categories),
		"characters": len(idx.characters),
		"items":      len(idx.items),
		"drafts":     len(idx.drafts),
		"maps":       len(idx.maps),
		"codes":      len(idx.codes),
	}
}
