// Package catalog implements the catalog orchestrator: it looks records up in
// the index, strips internal fields and resolves their text for the caller's
// languages.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strings"

	catalogindex "github.com/KirkDiggler/atlas-api/internal/catalog"
	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/localization"
	"github.com/KirkDiggler/atlas-api/internal/pkg/clock"
	"github.com/KirkDiggler/atlas-api/internal/sanitize"
)

const (
	// MetaSuggestions is the error metadata key listing close matches for a miss
	MetaSuggestions = "suggestions"

	suggestionLimit = 3
)

// Service defines the interface for catalog operations
type Service interface {
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetCategory(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error)

	ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	ListCodes(ctx context.Context, input *ListCodesInput) (*ListCodesOutput, error)
	ListLanguages(ctx context.Context, input *ListLanguagesInput) (*ListLanguagesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Index     *catalogindex.Index
	Sanitizer *sanitize.Sanitizer
	Clock     clock.Clock
	// FallbackLanguages overrides the catalog's fallback chain when set
	FallbackLanguages []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.Sanitizer == nil {
		vb.RequiredField("Sanitizer")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	index     *catalogindex.Index
	sanitizer *sanitize.Sanitizer
	clock     clock.Clock
	matcher   *localization.Matcher
	languages catalogindex.Languages
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	languages := cfg.Index.Languages()
	if len(cfg.FallbackLanguages) > 0 {
		languages.Fallback = make([]string, len(cfg.FallbackLanguages))
		for i, code := range cfg.FallbackLanguages {
			languages.Fallback[i] = localization.NormalizeCode(code)
		}
	}

	return &orchestrator{
		index:     cfg.Index,
		sanitizer: cfg.Sanitizer,
		clock:     cfg.Clock,
		matcher:   localization.NewMatcher(languages.Available),
		languages: languages,
	}, nil
}

// selection is the outcome of language negotiation for one request
type selection struct {
	codes    []string
	fallback []string
}

func (sel selection) primary() string {
	if len(sel.codes) == 0 {
		return ""
	}
	return sel.codes[0]
}

func (sel selection) resolve(values localization.LocalizedText, placeholder string) string {
	return localization.ResolveTextOr(values, sel.primary(), sel.fallback, placeholder)
}

func (sel selection) display() *Display {
	return &Display{
		Language:  sel.primary(),
		Languages: sel.codes,
	}
}

// selectLanguages orders the caller's explicit language, then the
// Accept-Language matches, then the category default and catalog default,
// keeping only languages the record set offers.
func (o *orchestrator) selectLanguages(req LanguageRequest, category *gamedata.ItemCategory) selection {
	var requested []string
	if lang := strings.TrimSpace(req.Language); lang != "" {
		requested = append(requested, lang)
	}
	requested = append(requested, o.matcher.FromAcceptLanguage(req.AcceptLanguage)...)

	available := o.languages.Available
	var fallback []string
	if category != nil {
		if len(category.AvailableLanguages) > 0 {
			available = category.AvailableLanguages
		}
		if category.DefaultDetailLanguage != "" {
			fallback = append(fallback, category.DefaultDetailLanguage)
		}
	}
	if o.languages.Default != "" {
		fallback = append(fallback, o.languages.Default)
	}

	codes := localization.NormalizeLanguageCodes(requested, available, fallback)
	for i, code := range codes {
		codes[i] = localization.NormalizeCode(code)
	}

	chain := make([]string, 0, len(codes)+len(o.languages.Fallback))
	if len(codes) > 1 {
		chain = append(chain, codes[1:]...)
	}
	chain = append(chain, o.languages.Fallback...)

	return selection{codes: codes, fallback: chain}
}

func (o *orchestrator) notFound(ctx context.Context, kind catalogindex.Kind, id string) error {
	err := errors.NotFoundf("%s %s not found", kind, id)
	suggestions := o.index.Suggest(kind, id, suggestionLimit)
	if len(suggestions) > 0 {
		err = err.WithMeta(MetaSuggestions, suggestions)
	}

	slog.DebugContext(ctx, "catalog lookup missed",
		"kind", string(kind),
		"id", id,
		"suggestions", len(suggestions))

	return err
}

func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationBuilder().RequiredField(field).Build()
	}
	return nil
}

// GetCharacter returns a sanitized character with its resolved text
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID("ID", input.ID); err != nil {
		return nil, err
	}

	character, found := o.index.Character(input.ID)
	if !found {
		return nil, o.notFound(ctx, catalogindex.KindCharacter, input.ID)
	}

	sel := o.selectLanguages(input.LanguageRequest, nil)
	display := sel.display()
	display.Name = sel.resolve(
		character.Translations.Field(characterName),
		localization.Placeholder("Character", character.CharID))
	display.Title = sel.resolve(character.Translations.Field(characterTitle), "")
	display.Description = sel.resolve(character.Translations.Field(characterDescription), "")

	return &GetCharacterOutput{
		Character: o.sanitizer.Character(character),
		Display:   display,
	}, nil
}

// GetItem returns a sanitized item, its category and the recipes around it
func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID("ID", input.ID); err != nil {
		return nil, err
	}

	item, found := o.index.Item(input.ID)
	if !found {
		return nil, o.notFound(ctx, catalogindex.KindItem, input.ID)
	}

	category, _ := o.index.CategoryByID(item.CategoryID)
	sel := o.selectLanguages(input.LanguageRequest, category)
	display := sel.display()
	display.Name = sel.resolve(item.Translations.Field(itemName), localization.Placeholder("Item", item.ModID))
	display.Description = sel.resolve(item.Translations.Field(itemDescription), "")

	return &GetItemOutput{
		Item:      o.sanitizer.Item(item),
		Category:  o.sanitizer.Category(category),
		Display:   display,
		CraftedBy: o.draftSummaries(sel, o.index.DraftsProducing(item.ID)),
		UsedIn:    o.draftSummaries(sel, o.index.DraftsUsing(item.ID)),
	}, nil
}

func (o *orchestrator) draftSummaries(sel selection, drafts []*gamedata.DraftRecipe) []*DraftSummary {
	out := make([]*DraftSummary, len(drafts))
	for i, d := range drafts {
		out[i] = &DraftSummary{
			ID:      d.ID,
			DraftID: d.DraftID,
			Name:    sel.resolve(d.Translations.Field(draftName), localization.Placeholder("Draft", d.DraftID)),
		}
	}
	return out
}

// GetDraft returns a sanitized recipe with resolved product and material text
func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID("ID", input.ID); err != nil {
		return nil, err
	}

	draft, found := o.index.Draft(input.ID)
	if !found {
		return nil, o.notFound(ctx, catalogindex.KindDraft, input.ID)
	}

	clean := o.sanitizer.Draft(draft)
	sel := o.selectLanguages(input.LanguageRequest, nil)
	display := sel.display()
	display.Name = sel.resolve(draft.Translations.Field(draftName), localization.Placeholder("Draft", draft.DraftID))

	materials := make([]*ReferenceDisplay, len(clean.Materials))
	for i := range clean.Materials {
		materials[i] = referenceDisplay(sel, &clean.Materials[i])
	}

	return &GetDraftOutput{
		Draft:     clean,
		Display:   display,
		Product:   referenceDisplay(sel, &clean.Product),
		Materials: materials,
	}, nil
}

// referenceDisplay resolves the text a recipe embeds for an item. The item
// catalog is not consulted.
func referenceDisplay(sel selection, ref *gamedata.DraftItemReference) *ReferenceDisplay {
	return &ReferenceDisplay{
		ID:          ref.ID,
		Count:       ref.Count,
		Icon:        ref.Icon,
		Name:        sel.resolve(ref.Names, ref.ID),
		Description: sel.resolve(ref.Descriptions, ""),
	}
}

// GetCategory returns a category page: metadata plus every item in it
func (o *orchestrator) GetCategory(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID("Slug", input.Slug); err != nil {
		return nil, err
	}

	result, found := o.index.CategoryBySlug(input.Slug)
	if !found {
		return nil, o.notFound(ctx, catalogindex.KindCategory, input.Slug)
	}

	category := result.Category
	sel := o.selectLanguages(input.LanguageRequest, category)
	display := sel.display()
	display.Name = sel.resolve(category.Translations.Field(categoryName), localization.Placeholder("Category", category.ID))
	display.Description = sel.resolve(category.Translations.Field(categoryDescription), "")

	items := make([]*ItemSummary, len(result.Items))
	for i, item := range result.Items {
		items[i] = &ItemSummary{
			ID:     item.ID,
			ModID:  item.ModID,
			Rarity: item.Rarity,
			Icon:   o.sanitizer.Icon(item.Icon),
			Name:   sel.resolve(item.Translations.Field(itemName), localization.Placeholder("Item", item.ModID)),
		}
	}

	return &GetCategoryOutput{
		Category: o.sanitizer.Category(category),
		Display:  display,
		Items:    items,
	}, nil
}

// ListCategories returns every category in document order. Names use each
// category's own language settings.
func (o *orchestrator) ListCategories(_ context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	categories := o.index.Categories()
	out := make([]*CategorySummary, len(categories))
	for i, category := range categories {
		sel := o.selectLanguages(input.LanguageRequest, category)
		result, _ := o.index.CategoryBySlug(category.Slug)
		count := 0
		if result != nil {
			count = len(result.Items)
		}
		out[i] = &CategorySummary{
			Category:  o.sanitizer.Category(category),
			Name:      sel.resolve(category.Translations.Field(categoryName), localization.Placeholder("Category", category.ID)),
			ItemCount: count,
		}
	}

	return &ListCategoriesOutput{
		Language:   o.selectLanguages(input.LanguageRequest, nil).primary(),
		Categories: out,
	}, nil
}

// ListCharacters returns every character in document order
func (o *orchestrator) ListCharacters(_ context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sel := o.selectLanguages(input.LanguageRequest, nil)
	characters := o.index.Characters()
	out := make([]*CharacterSummary, len(characters))
	for i, c := range characters {
		out[i] = &CharacterSummary{
			ID:      c.ID,
			CharID:  c.CharID,
			Rarity:  c.Rarity,
			Element: c.Element,
			Icon:    o.sanitizer.Icon(c.Icon),
			Name:    sel.resolve(c.Translations.Field(characterName), localization.Placeholder("Character", c.CharID)),
			Title:   sel.resolve(c.Translations.Field(characterTitle), ""),
		}
	}

	return &ListCharactersOutput{
		Language:   sel.primary(),
		Characters: out,
	}, nil
}

// ListCodes returns the redemption codes, flagging the expired ones
func (o *orchestrator) ListCodes(_ context.Context, input *ListCodesInput) (*ListCodesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sel := o.selectLanguages(input.LanguageRequest, nil)
	now := o.clock.Now()

	var out []*CodeView
	for _, code := range o.index.Codes() {
		expired := code.Expired(now)
		if expired && input.ActiveOnly {
			continue
		}
		out = append(out, &CodeView{
			Code:      code.Code,
			Rewards:   sel.resolve(code.Rewards, ""),
			AddedAt:   code.AddedAt,
			ExpiresAt: code.ExpiresAt,
			Expired:   expired,
		})
	}

	return &ListCodesOutput{
		Language: sel.primary(),
		Codes:    out,
	}, nil
}

// ListLanguages returns the catalog languages with their native names
func (o *orchestrator) ListLanguages(_ context.Context, input *ListLanguagesInput) (*ListLanguagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := make([]*LanguageInfo, len(o.languages.Available))
	for i, code := range o.languages.Available {
		out[i] = &LanguageInfo{
			Code:        code,
			DisplayName: localization.DisplayName(code),
			Default:     code == o.languages.Default,
		}
	}

	return &ListLanguagesOutput{
		Languages: out,
		Default:   o.languages.Default,
		Fallback:  o.languages.Fallback,
	}, nil
}

func characterName(t gamedata.CharacterText) *string        { return t.Name }
func characterTitle(t gamedata.CharacterText) *string       { return t.Title }
func characterDescription(t gamedata.CharacterText) *string { return t.Description }
func itemName(t gamedata.ItemText) *string                  { return t.Name }
func itemDescription(t gamedata.ItemText) *string           { return t.Description }
func draftName(t gamedata.DraftText) *string                { return t.Name }
func categoryName(t gamedata.CategoryText) *string          { return t.Name }
func categoryDescription(t gamedata.CategoryText) *string   { return t.Description }
