package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	CatalogService catalog.Service
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	return nil
}

// CatalogHandler implements CatalogServiceServer
type CatalogHandler struct {
	catalogService catalog.Service
}

// NewCatalogHandler creates a new catalog handler with the given configuration
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		catalogService: cfg.CatalogService,
	}, nil
}

type lookupRequest struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Language string `json:"language"`
}

type listRequest struct {
	Language   string `json:"language"`
	ActiveOnly bool   `json:"activeOnly"`
}

type displayView struct {
	Language    string   `json:"language"`
	Languages   []string `json:"languages"`
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

func toDisplayView(d *catalog.Display) *displayView {
	if d == nil {
		return nil
	}
	return &displayView{
		Language:    d.Language,
		Languages:   d.Languages,
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
	}
}

type draftSummaryView struct {
	ID      string `json:"id"`
	DraftID int    `json:"draftId"`
	Name    string `json:"name"`
}

func toDraftSummaryViews(drafts []*catalog.DraftSummary) []draftSummaryView {
	out := make([]draftSummaryView, len(drafts))
	for i, d := range drafts {
		out[i] = draftSummaryView{ID: d.ID, DraftID: d.DraftID, Name: d.Name}
	}
	return out
}

type referenceView struct {
	ID          string         `json:"id"`
	Count       int            `json:"count,omitempty"`
	Icon        *gamedata.Icon `json:"icon,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
}

func toReferenceView(r *catalog.ReferenceDisplay) referenceView {
	return referenceView{
		ID:          r.ID,
		Count:       r.Count,
		Icon:        r.Icon,
		Name:        r.Name,
		Description: r.Description,
	}
}

// GetCharacter returns a character page
func (h *CatalogHandler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lookupRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.GetCharacter(ctx, &catalog.GetCharacterInput{
		ID:              in.ID,
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"character": output.Character,
		"display":   toDisplayView(output.Display),
	}, nil)
}

// GetItem returns an item page
func (h *CatalogHandler) GetItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lookupRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.GetItem(ctx, &catalog.GetItemInput{
		ID:              in.ID,
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"item":      output.Item,
		"category":  output.Category,
		"display":   toDisplayView(output.Display),
		"craftedBy": toDraftSummaryViews(output.CraftedBy),
		"usedIn":    toDraftSummaryViews(output.UsedIn),
	}, nil)
}

// GetDraft returns a recipe page
func (h *CatalogHandler) GetDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lookupRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.GetDraft(ctx, &catalog.GetDraftInput{
		ID:              in.ID,
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	materials := make([]referenceView, len(output.Materials))
	for i, m := range output.Materials {
		materials[i] = toReferenceView(m)
	}

	return respond(map[string]any{
		"draft":     output.Draft,
		"display":   toDisplayView(output.Display),
		"product":   toReferenceView(output.Product),
		"materials": materials,
	}, nil)
}

// GetCategory returns a category page
func (h *CatalogHandler) GetCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lookupRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.GetCategory(ctx, &catalog.GetCategoryInput{
		Slug:            in.Slug,
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type itemView struct {
		ID     string         `json:"id"`
		ModID  int            `json:"modId"`
		Rarity int            `json:"rarity,omitempty"`
		Icon   *gamedata.Icon `json:"icon,omitempty"`
		Name   string         `json:"name"`
	}
	items := make([]itemView, len(output.Items))
	for i, item := range output.Items {
		items[i] = itemView{ID: item.ID, ModID: item.ModID, Rarity: item.Rarity, Icon: item.Icon, Name: item.Name}
	}

	return respond(map[string]any{
		"category": output.Category,
		"display":  toDisplayView(output.Display),
		"items":    items,
	}, nil)
}

// ListCategories returns every category with its display name
func (h *CatalogHandler) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.ListCategories(ctx, &catalog.ListCategoriesInput{
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type categoryView struct {
		*gamedata.ItemCategory
		Name      string `json:"name"`
		ItemCount int    `json:"itemCount"`
	}
	categories := make([]categoryView, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = categoryView{ItemCategory: c.Category, Name: c.Name, ItemCount: c.ItemCount}
	}

	return respond(map[string]any{
		"language":   output.Language,
		"categories": categories,
	}, nil)
}

// ListCharacters returns every character with its display name
func (h *CatalogHandler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.ListCharacters(ctx, &catalog.ListCharactersInput{
		LanguageRequest: languageRequest(ctx, in.Language),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type characterView struct {
		ID      string         `json:"id"`
		CharID  int            `json:"charId"`
		Rarity  int            `json:"rarity,omitempty"`
		Element string         `json:"element,omitempty"`
		Icon    *gamedata.Icon `json:"icon,omitempty"`
		Name    string         `json:"name"`
		Title   string         `json:"title,omitempty"`
	}
	characters := make([]characterView, len(output.Characters))
	for i, c := range output.Characters {
		characters[i] = characterView{
			ID:      c.ID,
			CharID:  c.CharID,
			Rarity:  c.Rarity,
			Element: c.Element,
			Icon:    c.Icon,
			Name:    c.Name,
			Title:   c.Title,
		}
	}

	return respond(map[string]any{
		"language":   output.Language,
		"characters": characters,
	}, nil)
}

// ListCodes returns the redemption codes
func (h *CatalogHandler) ListCodes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.catalogService.ListCodes(ctx, &catalog.ListCodesInput{
		LanguageRequest: languageRequest(ctx, in.Language),
		ActiveOnly:      in.ActiveOnly,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type codeView struct {
		Code      string     `json:"code"`
		Rewards   string     `json:"rewards,omitempty"`
		AddedAt   time.Time  `json:"addedAt"`
		ExpiresAt *time.Time `json:"expiresAt,omitempty"`
		Expired   bool       `json:"expired"`
	}
	codes := make([]codeView, len(output.Codes))
	for i, c := range output.Codes {
		codes[i] = codeView{
			Code:      c.Code,
			Rewards:   c.Rewards,
			AddedAt:   c.AddedAt,
			ExpiresAt: c.ExpiresAt,
			Expired:   c.Expired,
		}
	}

	return respond(map[string]any{
		"language": output.Language,
		"codes":    codes,
	}, nil)
}

// ListLanguages returns the catalog languages
func (h *CatalogHandler) ListLanguages(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.catalogService.ListLanguages(ctx, &catalog.ListLanguagesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	type languageView struct {
		Code        string `json:"code"`
		DisplayName string `json:"displayName"`
		Default     bool   `json:"default,omitempty"`
	}
	languages := make([]languageView, len(output.Languages))
	for i, l := range output.Languages {
		languages[i] = languageView{Code: l.Code, DisplayName: l.DisplayName, Default: l.Default}
	}

	return respond(map[string]any{
		"languages": languages,
		"default":   output.Default,
		"fallback":  output.Fallback,
	}, nil)
}
