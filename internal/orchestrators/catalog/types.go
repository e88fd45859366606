package catalog

import (
	"time"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
)

// LanguageRequest carries a caller's language preferences. Language is an
// explicit choice (query parameter, UI switch); AcceptLanguage is the raw
// header sent by the client.
type LanguageRequest struct {
	Language       string
	AcceptLanguage string
}

// Display is a record's text resolved for one request
type Display struct {
	// Language is the code the text was resolved for
	Language string
	// Languages is the full ordered selection; the first entry is Language
	Languages   []string
	Name        string
	Title       string
	Description string
}

// ReferenceDisplay is a recipe's product or material with resolved text
type ReferenceDisplay struct {
	ID          string
	Count       int
	Icon        *gamedata.Icon
	Name        string
	Description string
}

// DraftSummary names a recipe related to an item
type DraftSummary struct {
	ID      string
	DraftID int
	Name    string
}

// ItemSummary is an item row on a category page
type ItemSummary struct {
	ID     string
	ModID  int
	Rarity int
	Icon   *gamedata.Icon
	Name   string
}

// CategorySummary is a category row in the category list
type CategorySummary struct {
	Category  *gamedata.ItemCategory
	Name      string
	ItemCount int
}

// CharacterSummary is a character row in the character list
type CharacterSummary struct {
	ID      string
	CharID  int
	Rarity  int
	Element string
	Icon    *gamedata.Icon
	Name    string
	Title   string
}

// CodeView is a redemption code with resolved reward text
type CodeView struct {
	Code      string
	Rewards   string
	AddedAt   time.Time
	ExpiresAt *time.Time
	Expired   bool
}

// LanguageInfo describes one catalog language
type LanguageInfo struct {
	Code        string
	DisplayName string
	Default     bool
}

// GetCharacterInput defines the request for a character page
type GetCharacterInput struct {
	ID string
	LanguageRequest
}

// GetCharacterOutput defines the response for a character page
type GetCharacterOutput struct {
	Character *gamedata.Character
	Display   *Display
}

// GetItemInput defines the request for an item page
type GetItemInput struct {
	ID string
	LanguageRequest
}

// GetItemOutput defines the response for an item page
type GetItemOutput struct {
	Item      *gamedata.Item
	Category  *gamedata.ItemCategory
	Display   *Display
	CraftedBy []*DraftSummary
	UsedIn    []*DraftSummary
}

// GetDraftInput defines the request for a recipe page
type GetDraftInput struct {
	ID string
	LanguageRequest
}

// GetDraftOutput defines the response for a recipe page
type GetDraftOutput struct {
	Draft     *gamedata.DraftRecipe
	Display   *Display
	Product   *ReferenceDisplay
	Materials []*ReferenceDisplay
}

// GetCategoryInput defines the request for a category page
type GetCategoryInput struct {
	Slug string
	LanguageRequest
}

// GetCategoryOutput defines the response for a category page
type GetCategoryOutput struct {
	Category *gamedata.ItemCategory
	Display  *Display
	Items    []*ItemSummary
}

// ListCategoriesInput defines the request for the category list
type ListCategoriesInput struct {
	LanguageRequest
}

// ListCategoriesOutput defines the response for the category list
type ListCategoriesOutput struct {
	Language   string
	Categories []*CategorySummary
}

// ListCharactersInput defines the request for the character list
type ListCharactersInput struct {
	LanguageRequest
}

// ListCharactersOutput defines the response for the character list
type ListCharactersOutput struct {
	Language   string
	Characters []*CharacterSummary
}

// ListCodesInput defines the request for the redemption code list
type ListCodesInput struct {
	LanguageRequest
	// ActiveOnly drops expired codes
	ActiveOnly bool
}

// ListCodesOutput defines the response for the redemption code list
type ListCodesOutput struct {
	Language string
	Codes    []*CodeView
}

// ListLanguagesInput defines the request for the language list
type ListLanguagesInput struct{}

// ListLanguagesOutput defines the response for the language list
type ListLanguagesOutput struct {
	Languages []*LanguageInfo
	Default   string
	Fallback  []string
}
