package testutils

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/atlas-api/internal/catalog"
)

// Fixture identifiers used across tests
const (
	CharacterScoutID  = "abc"
	CharacterLumenID  = "lumen"
	CharacterAltID    = "lumen_alt"
	SharedInternal    = "Lumi"
	ItemSwordID       = "iron_sword"
	ItemNamelessID    = "nameless_blade"
	ItemOreID         = "iron_ore"
	DraftSwordID      = "draft_iron_sword"
	CategoryWeapons   = "weapons"
	CategoryMaterials = "materials"
	CategoryEmpty     = "empty"
	MapOverworld      = "overworld"
	MapAbyss          = "abyss"
)

const descriptorJSON = `{
  "availableLanguages": ["EN", "FR", "JP"],
  "defaultLanguage": "EN",
  "fallbackLanguages": ["EN"],
  "categories": [
    {
      "id": "cat_weapon",
      "slug": "weapons",
      "order": 1,
      "icon": {"path": "/icons/weapons.png", "sourceAsset": "Assets/UI/weapons.tga"},
      "translations": {
        "EN": {"name": "Weapons", "description": null},
        "FR": {"name": "Armes", "description": null}
      },
      "availableLanguages": ["EN", "FR"],
      "defaultDetailLanguage": "FR"
    },
    {
      "id": "cat_material",
      "slug": "materials",
      "order": 2,
      "translations": {"EN": {"name": "Materials", "description": "Crafting materials"}}
    },
    {
      "id": "cat_empty",
      "slug": "empty",
      "order": 3,
      "translations": {"EN": {"name": "Empty", "description": null}}
    }
  ],
  "characters": [
    {
      "id": "abc",
      "charId": 101,
      "internalName": "ABC",
      "rarity": 5,
      "icon": {"path": "/icons/abc.png", "sourceAsset": "Assets/abc.tga"},
      "translations": {
        "EN": {"name": "Aberdeen", "title": "Scout", "description": null},
        "JP": {"name": "アバディーン", "title": null, "description": null}
      },
      "fields": {
        "role": "scout",
        "descriptionValues": [1, 2],
        "skills": [{"name": "Dash", "descriptionValues": [3]}]
      }
    },
    {
      "id": "lumen",
      "charId": 102,
      "internalName": "Lumi",
      "translations": {"FR": {"name": "Lumière", "title": null, "description": null}}
    },
    {
      "id": "lumen_alt",
      "charId": 103,
      "internalName": "Lumi",
      "translations": {"EN": {"name": "Lumen (Alt)", "title": null, "description": null}}
    }
  ],
  "maps": [
    {"id": "overworld", "default": true, "translations": {"EN": {"name": "Overworld"}}},
    {"id": "abyss", "translations": {"EN": {"name": "Abyss"}, "FR": {"name": "Abysse"}}}
  ]
}`

const weaponsJSON = `[
  {
    "id": "iron_sword",
    "modId": 1001,
    "rarity": 2,
    "icon": {"path": "/icons/iron_sword.png", "sourceAsset": "Assets/iron_sword.tga"},
    "translations": {
      "EN": {"name": "Iron Sword", "description": "A plain blade."},
      "FR": {"name": "Épée en fer", "description": "   "}
    },
    "fields": {"damage": 12, "descriptionValues": {"damage": 12}},
    "variants": [
      {
        "id": "iron_sword_plus",
        "icon": {"path": "/icons/iron_sword_plus.png", "sourceAsset": "Assets/iron_sword_plus.tga"},
        "fields": {"damage": 15, "descriptionValues": [15]}
      }
    ]
  },
  {
    "id": "nameless_blade",
    "modId": 1002,
    "translations": {"EN": {"name": null, "description": null}}
  }
]`

const materialsJSON = `[
  {
    "id": "iron_ore",
    "modId": 2001,
    "translations": {
      "EN": {"name": "Iron Ore", "description": "Raw iron."},
      "JP": {"name": "鉄鉱石", "description": null}
    }
  }
]`

const draftsJSON = `[
  {
    "id": "draft_iron_sword",
    "draftId": 5001,
    "craftTime": 30,
    "product": {"id": "iron_sword", "count": 1, "names": {"EN": "Iron Sword", "FR": "Épée en fer"}},
    "materials": [
      {
        "id": "iron_ore",
        "count": 3,
        "icon": {"path": "/icons/iron_ore.png", "sourceAsset": "Assets/iron_ore.tga"},
        "names": {"EN": "Iron Ore", "JP": "鉄鉱石"}
      }
    ],
    "translations": {"EN": {"name": "Forge Iron Sword"}}
  }
]`

const codesJSON = `[
  {"code": "WELCOME2026", "rewards": {"EN": "100 Gems"}, "addedAt": "2026-01-01T00:00:00Z"},
  {"code": "OLDCODE", "rewards": {"EN": "Starter Pack"}, "addedAt": "2025-01-01T00:00:00Z", "expiresAt": "2025-06-01T00:00:00Z"}
]`

// CatalogFS returns an in-memory catalog directory with every document type
func CatalogFS() fstest.MapFS {
	return fstest.MapFS{
		catalog.DescriptorFile:    {Data: []byte(descriptorJSON)},
		"items/cat_weapon.json":   {Data: []byte(weaponsJSON)},
		"items/cat_material.json": {Data: []byte(materialsJSON)},
		catalog.DraftsFile:        {Data: []byte(draftsJSON)},
		catalog.CodesFile:         {Data: []byte(codesJSON)},
	}
}

// LoadTestCatalog loads CatalogFS into an index
func LoadTestCatalog(t *testing.T) *catalog.Index {
	t.Helper()

	docs, err := catalog.Load(context.Background(), CatalogFS())
	require.NoError(t, err, "failed to load test catalog")

	return catalog.NewIndex(docs)
}
