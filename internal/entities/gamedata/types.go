// Package gamedata holds the catalog records produced by the data pipeline.
// Records are read-only once loaded; anything that needs a modified copy
// (sanitizing, localizing) builds a new value.
package gamedata

import (
	"time"

	"github.com/KirkDiggler/atlas-api/internal/localization"
)

// Icon points at an image served by the website
type Icon struct {
	Path   string `json:"path" jsonschema:"description=Public path of the image,required"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	// SourceAsset is the game asset the pipeline extracted the image from.
	// Internal only.
	SourceAsset string `json:"sourceAsset,omitempty" jsonschema:"description=Pipeline only; stripped before presentation"`
}

// FieldMap is free-form data attached to a record by the pipeline
type FieldMap map[string]any

// CharacterText is a character's localized content
type CharacterText struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Character is a playable or story character
type Character struct {
	ID           string                                   `json:"id" jsonschema:"required,pattern=^[a-z0-9_-]+$"`
	CharID       int                                      `json:"charId" jsonschema:"required"`
	InternalName string                                   `json:"internalName"`
	Rarity       int                                      `json:"rarity,omitempty"`
	Element      string                                   `json:"element,omitempty"`
	Icon         *Icon                                    `json:"icon,omitempty"`
	Translations localization.Translations[CharacterText] `json:"translations"`
	Fields       FieldMap                                 `json:"fields,omitempty"`
}

// CategoryText is an item category's localized content
type CategoryText struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ItemCategory groups items on a category page
type ItemCategory struct {
	ID                    string                                  `json:"id" jsonschema:"required"`
	Slug                  string                                  `json:"slug" jsonschema:"required,pattern=^[a-z0-9-]+$"`
	Order                 int                                     `json:"order,omitempty"`
	Icon                  *Icon                                   `json:"icon,omitempty"`
	Translations          localization.Translations[CategoryText] `json:"translations"`
	AvailableLanguages    []string                                `json:"availableLanguages,omitempty"`
	DefaultDetailLanguage string                                  `json:"defaultDetailLanguage,omitempty"`
}

// ItemText is an item's localized content
type ItemText struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ItemVariant is an alternate form of an item (upgrade tier, skin)
type ItemVariant struct {
	ID     string   `json:"id"`
	Icon   *Icon    `json:"icon,omitempty"`
	Fields FieldMap `json:"fields,omitempty"`
}

// Item is a single catalog item. Category membership is fixed by the pipeline.
type Item struct {
	ID           string                              `json:"id" jsonschema:"required"`
	ModID        int                                 `json:"modId" jsonschema:"required"`
	CategoryID   string                              `json:"categoryId" jsonschema:"required"`
	Rarity       int                                 `json:"rarity,omitempty"`
	Icon         *Icon                               `json:"icon,omitempty"`
	Translations localization.Translations[ItemText] `json:"translations"`
	Fields       FieldMap                            `json:"fields,omitempty"`
	Variants     []ItemVariant                       `json:"variants,omitempty"`
}

// DraftItemReference is an item embedded in a recipe. It carries its own
// names instead of pointing into the item catalog.
type DraftItemReference struct {
	ID           string                     `json:"id"`
	Count        int                        `json:"count,omitempty"`
	Icon         *Icon                      `json:"icon,omitempty"`
	Names        localization.LocalizedText `json:"names"`
	Descriptions localization.LocalizedText `json:"descriptions,omitempty"`
}

// DraftText is a recipe's localized content
type DraftText struct {
	Name *string `json:"name"`
}

// DraftRecipe is a crafting recipe
type DraftRecipe struct {
	ID           string                               `json:"id" jsonschema:"required"`
	DraftID      int                                  `json:"draftId" jsonschema:"required"`
	CraftTime    int                                  `json:"craftTime,omitempty" jsonschema:"description=Seconds"`
	Product      DraftItemReference                   `json:"product"`
	Materials    []DraftItemReference                 `json:"materials,omitempty"`
	Translations localization.Translations[DraftText] `json:"translations,omitempty"`
}

// RedemptionCode is a promotional code players can redeem in game
type RedemptionCode struct {
	Code      string                     `json:"code" jsonschema:"required"`
	Rewards   localization.LocalizedText `json:"rewards,omitempty"`
	AddedAt   time.Time                  `json:"addedAt"`
	ExpiresAt *time.Time                 `json:"expiresAt,omitempty"`
}

// Expired reports whether the code stopped working before now
func (c RedemptionCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// MapText is a map's localized content
type MapText struct {
	Name *string `json:"name"`
}

// GameMap is one of the interactive maps
type GameMap struct {
	ID           string                             `json:"id" jsonschema:"required"`
	Default      bool                               `json:"default,omitempty"`
	Translations localization.Translations[MapText] `json:"translations"`
}

// Descriptor is the catalog.json document
type Descriptor struct {
	AvailableLanguages []string       `json:"availableLanguages" jsonschema:"required,minItems=1"`
	DefaultLanguage    string         `json:"defaultLanguage,omitempty"`
	FallbackLanguages  []string       `json:"fallbackLanguages,omitempty"`
	Categories         []ItemCategory `json:"categories"`
	Characters         []Character    `json:"characters"`
	Maps               []GameMap      `json:"maps,omitempty"`
}
