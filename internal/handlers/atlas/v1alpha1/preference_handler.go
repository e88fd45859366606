package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/orchestrators/preferences"
)

// PreferenceHandlerConfig holds dependencies for the preference handler
type PreferenceHandlerConfig struct {
	PreferenceService preferences.Service
}

// Validate ensures all required dependencies are present
func (c *PreferenceHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.PreferenceService == nil {
		return errors.InvalidArgument("preference service is required")
	}
	return nil
}

// PreferenceHandler implements PreferenceServiceServer
type PreferenceHandler struct {
	preferenceService preferences.Service
}

// NewPreferenceHandler creates a new preference handler with the given configuration
func NewPreferenceHandler(cfg *PreferenceHandlerConfig) (*PreferenceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PreferenceHandler{
		preferenceService: cfg.PreferenceService,
	}, nil
}

type preferenceRequest struct {
	ClientID   string `json:"clientId"`
	MarkerID   string `json:"markerId"`
	Code       string `json:"code"`
	CategoryID string `json:"categoryId"`
	MapID      string `json:"mapId"`
	Open       *bool  `json:"open"`
	Width      *int   `json:"width"`
}

type preferencesView struct {
	ClientID           string          `json:"clientId"`
	MarkedMarkers      []string        `json:"markedMarkers"`
	UsedCodes          []string        `json:"usedCodes"`
	MenuOpen           bool            `json:"menuOpen"`
	CategoryVisibility map[string]bool `json:"categoryVisibility"`
	CategoryExpanded   map[string]bool `json:"categoryExpanded"`
	SidebarWidth       int             `json:"sidebarWidth"`
	SelectedMap        string          `json:"selectedMap,omitempty"`
}

func toPreferencesView(p *preferences.Preferences) *preferencesView {
	if p == nil {
		return nil
	}
	return &preferencesView{
		ClientID:           p.ClientID,
		MarkedMarkers:      nonNil(p.MarkedMarkers),
		UsedCodes:          nonNil(p.UsedCodes),
		MenuOpen:           p.MenuOpen,
		CategoryVisibility: nonNilMap(p.CategoryVisibility),
		CategoryExpanded:   nonNilMap(p.CategoryExpanded),
		SidebarWidth:       p.SidebarWidth,
		SelectedMap:        p.SelectedMap,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilMap(values map[string]bool) map[string]bool {
	if values == nil {
		return map[string]bool{}
	}
	return values
}

// RegisterClient issues a new client ID with default preferences
func (h *PreferenceHandler) RegisterClient(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.preferenceService.RegisterClient(ctx, &preferences.RegisterClientInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"clientId":    output.ClientID,
		"preferences": toPreferencesView(output.Preferences),
	}, nil)
}

// GetPreferences returns every preference for a client
func (h *PreferenceHandler) GetPreferences(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.GetPreferences(ctx, &preferences.GetPreferencesInput{
		ClientID: in.ClientID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"preferences": toPreferencesView(output.Preferences),
	}, nil)
}

// ToggleMarker flips a map marker's marked state
func (h *PreferenceHandler) ToggleMarker(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.ToggleMarker(ctx, &preferences.ToggleMarkerInput{
		ClientID: in.ClientID,
		MarkerID: in.MarkerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"markerId":      output.MarkerID,
		"marked":        output.Marked,
		"markedMarkers": nonNil(output.MarkedMarkers),
	}, nil)
}

// ResetMarkers clears every marked marker
func (h *PreferenceHandler) ResetMarkers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.preferenceService.ResetMarkers(ctx, &preferences.ResetMarkersInput{
		ClientID: in.ClientID,
	})
	return respond(map[string]any{}, err)
}

// ToggleCode flips a redemption code's used state
func (h *PreferenceHandler) ToggleCode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.ToggleCode(ctx, &preferences.ToggleCodeInput{
		ClientID: in.ClientID,
		Code:     in.Code,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"code":      output.Code,
		"used":      output.Used,
		"usedCodes": nonNil(output.UsedCodes),
	}, nil)
}

// ResetCodes clears every used code
func (h *PreferenceHandler) ResetCodes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.preferenceService.ResetCodes(ctx, &preferences.ResetCodesInput{
		ClientID: in.ClientID,
	})
	return respond(map[string]any{}, err)
}

// SetMenuOpen opens or closes the side menu
func (h *PreferenceHandler) SetMenuOpen(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Open == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("open is required"))
	}

	output, err := h.preferenceService.SetMenuOpen(ctx, &preferences.SetMenuOpenInput{
		ClientID: in.ClientID,
		Open:     *in.Open,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"open": output.Open,
	}, nil)
}

// ToggleCategoryVisibility shows or hides a marker category
func (h *PreferenceHandler) ToggleCategoryVisibility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.ToggleCategoryVisibility(ctx, &preferences.ToggleCategoryVisibilityInput{
		ClientID:   in.ClientID,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"categoryId": output.CategoryID,
		"visible":    output.Visible,
		"visibility": nonNilMap(output.Visibility),
	}, nil)
}

// ToggleCategoryExpanded expands or collapses a marker category
func (h *PreferenceHandler) ToggleCategoryExpanded(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.ToggleCategoryExpanded(ctx, &preferences.ToggleCategoryExpandedInput{
		ClientID:   in.ClientID,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"categoryId": output.CategoryID,
		"expanded":   output.Expanded,
		"expansion":  nonNilMap(output.Expansion),
	}, nil)
}

// SetSidebarWidth resizes the sidebar; the stored width is returned
func (h *PreferenceHandler) SetSidebarWidth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Width == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("width is required"))
	}

	output, err := h.preferenceService.SetSidebarWidth(ctx, &preferences.SetSidebarWidthInput{
		ClientID: in.ClientID,
		Width:    *in.Width,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"width": output.Width,
	}, nil)
}

// SetSelectedMap switches the displayed map
func (h *PreferenceHandler) SetSelectedMap(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in preferenceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.preferenceService.SetSelectedMap(ctx, &preferences.SetSelectedMapInput{
		ClientID: in.ClientID,
		MapID:    in.MapID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"mapId": output.MapID,
	}, nil)
}
