// Package preferences implements the preferences orchestrator for per-client
// map and layout state
package preferences

//go:generate mockgen -destination=mock/mock_service.go -package=preferencesmock github.com/KirkDiggler/atlas-api/internal/orchestrators/preferences Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/atlas-api/internal/catalog"
	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/pkg/idgen"
	"github.com/KirkDiggler/atlas-api/internal/preferences"
)

const maxIDLength = 128

// Service defines the interface for preference operations
type Service interface {
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterClientOutput, error)
	GetPreferences(ctx context.Context, input *GetPreferencesInput) (*GetPreferencesOutput, error)

	// Set preferences
	ToggleMarker(ctx context.Context, input *ToggleMarkerInput) (*ToggleMarkerOutput, error)
	ResetMarkers(ctx context.Context, input *ResetMarkersInput) (*ResetMarkersOutput, error)
	ToggleCode(ctx context.Context, input *ToggleCodeInput) (*ToggleCodeOutput, error)
	ResetCodes(ctx context.Context, input *ResetCodesInput) (*ResetCodesOutput, error)

	// Layout preferences
	SetMenuOpen(ctx context.Context, input *SetMenuOpenInput) (*SetMenuOpenOutput, error)
	ToggleCategoryVisibility(ctx context.Context, input *ToggleCategoryVisibilityInput) (*ToggleCategoryVisibilityOutput, error)
	ToggleCategoryExpanded(ctx context.Context, input *ToggleCategoryExpandedInput) (*ToggleCategoryExpandedOutput, error)
	SetSidebarWidth(ctx context.Context, input *SetSidebarWidthInput) (*SetSidebarWidthOutput, error)
	SetSelectedMap(ctx context.Context, input *SetSelectedMapInput) (*SetSelectedMapOutput, error)
}

// Config holds the dependencies for the preferences orchestrator
type Config struct {
	Atoms       *preferences.Atoms
	Index       *catalog.Index
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Atoms == nil {
		vb.RequiredField("Atoms")
	}
	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	atoms *preferences.Atoms
	index *catalog.Index
	idGen idgen.Generator
}

// NewOrchestrator creates a new preferences orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		atoms: cfg.Atoms,
		index: cfg.Index,
		idGen: cfg.IDGenerator,
	}, nil
}

func validateIDs(fields ...string) error {
	vb := errors.NewValidationBuilder()
	for i := 0; i+1 < len(fields); i += 2 {
		name, value := fields[i], fields[i+1]
		switch {
		case strings.TrimSpace(value) == "":
			vb.RequiredField(name)
		case len(value) > maxIDLength:
			vb.Fieldf(name, "must be at most %d characters", maxIDLength)
		}
	}
	return vb.Build()
}

// RegisterClient issues a new client id. Nothing is stored until the client
// changes a preference.
func (o *orchestrator) RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterClientOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	clientID := o.idGen.Generate()
	slog.InfoContext(ctx, "client registered", "client_id", clientID)

	return &RegisterClientOutput{
		ClientID:    clientID,
		Preferences: o.snapshot(ctx, clientID),
	}, nil
}

// GetPreferences returns every preference, defaults filled in
func (o *orchestrator) GetPreferences(ctx context.Context, input *GetPreferencesInput) (*GetPreferencesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	return &GetPreferencesOutput{Preferences: o.snapshot(ctx, input.ClientID)}, nil
}

func (o *orchestrator) snapshot(ctx context.Context, clientID string) *Preferences {
	return &Preferences{
		ClientID:           clientID,
		MarkedMarkers:      o.atoms.MarkedMarkers.Get(ctx, clientID).Items(),
		UsedCodes:          o.atoms.UsedCodes.Get(ctx, clientID).Items(),
		MenuOpen:           o.atoms.MenuOpen.Get(ctx, clientID),
		CategoryVisibility: o.atoms.CategoryVisibility.Get(ctx, clientID),
		CategoryExpanded:   o.atoms.CategoryExpanded.Get(ctx, clientID),
		SidebarWidth:       o.atoms.SidebarWidth.Get(ctx, clientID),
		SelectedMap:        o.selectedMap(ctx, clientID),
	}
}

// selectedMap returns the stored map when it still exists in the catalog
func (o *orchestrator) selectedMap(ctx context.Context, clientID string) string {
	selected := o.atoms.SelectedMap.Get(ctx, clientID)
	if _, ok := o.index.Map(selected); ok {
		return selected
	}
	if def, ok := o.index.DefaultMap(); ok {
		return def.ID
	}
	return o.atoms.SelectedMap.Default()
}

// ToggleMarker marks an unmarked marker or unmarks a marked one
func (o *orchestrator) ToggleMarker(ctx context.Context, input *ToggleMarkerInput) (*ToggleMarkerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID, "MarkerID", input.MarkerID); err != nil {
		return nil, err
	}

	set, marked, err := o.atoms.MarkedMarkers.Toggle(ctx, input.ClientID, input.MarkerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle marker")
	}

	return &ToggleMarkerOutput{
		MarkerID:      input.MarkerID,
		Marked:        marked,
		MarkedMarkers: set.Items(),
	}, nil
}

// ResetMarkers unmarks every marker
func (o *orchestrator) ResetMarkers(ctx context.Context, input *ResetMarkersInput) (*ResetMarkersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	o.atoms.MarkedMarkers.Reset(ctx, input.ClientID)
	slog.InfoContext(ctx, "markers reset", "client_id", input.ClientID)

	return &ResetMarkersOutput{}, nil
}

// ToggleCode flags a redemption code as used or clears the flag
func (o *orchestrator) ToggleCode(ctx context.Context, input *ToggleCodeInput) (*ToggleCodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID, "Code", input.Code); err != nil {
		return nil, err
	}

	set, used, err := o.atoms.UsedCodes.Toggle(ctx, input.ClientID, input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle code")
	}

	return &ToggleCodeOutput{
		Code:      input.Code,
		Used:      used,
		UsedCodes: set.Items(),
	}, nil
}

// ResetCodes clears every used code
func (o *orchestrator) ResetCodes(ctx context.Context, input *ResetCodesInput) (*ResetCodesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	o.atoms.UsedCodes.Reset(ctx, input.ClientID)
	slog.InfoContext(ctx, "used codes reset", "client_id", input.ClientID)

	return &ResetCodesOutput{}, nil
}

// SetMenuOpen stores whether the menu is open
func (o *orchestrator) SetMenuOpen(ctx context.Context, input *SetMenuOpenInput) (*SetMenuOpenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	open := o.atoms.MenuOpen.Set(ctx, input.ClientID, input.Open)

	return &SetMenuOpenOutput{Open: open}, nil
}

// ToggleCategoryVisibility shows or hides a marker category
func (o *orchestrator) ToggleCategoryVisibility(ctx context.Context, input *ToggleCategoryVisibilityInput) (*ToggleCategoryVisibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID, "CategoryID", input.CategoryID); err != nil {
		return nil, err
	}

	flags, visible, err := o.atoms.CategoryVisibility.Toggle(ctx, input.ClientID, input.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle category visibility")
	}

	return &ToggleCategoryVisibilityOutput{
		CategoryID: input.CategoryID,
		Visible:    visible,
		Visibility: flags,
	}, nil
}

// ToggleCategoryExpanded expands or collapses a sidebar category
func (o *orchestrator) ToggleCategoryExpanded(ctx context.Context, input *ToggleCategoryExpandedInput) (*ToggleCategoryExpandedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID, "CategoryID", input.CategoryID); err != nil {
		return nil, err
	}

	flags, expanded, err := o.atoms.CategoryExpanded.Toggle(ctx, input.ClientID, input.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle category expansion")
	}

	return &ToggleCategoryExpandedOutput{
		CategoryID: input.CategoryID,
		Expanded:   expanded,
		Expansion:  flags,
	}, nil
}

// SetSidebarWidth stores the sidebar width, clamped to the configured range
func (o *orchestrator) SetSidebarWidth(ctx context.Context, input *SetSidebarWidthInput) (*SetSidebarWidthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	width := o.atoms.SidebarWidth.Set(ctx, input.ClientID, input.Width)

	return &SetSidebarWidthOutput{Width: width}, nil
}

// SetSelectedMap switches the client's map. The map must exist in the catalog.
func (o *orchestrator) SetSelectedMap(ctx context.Context, input *SetSelectedMapInput) (*SetSelectedMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIDs("ClientID", input.ClientID); err != nil {
		return nil, err
	}

	mapID := strings.TrimSpace(input.MapID)
	if mapID == "" {
		o.atoms.SelectedMap.Clear(ctx, input.ClientID)
		return &SetSelectedMapOutput{MapID: o.selectedMap(ctx, input.ClientID)}, nil
	}

	if _, ok := o.index.Map(mapID); !ok {
		return nil, errors.NotFoundf("map %s not found", mapID)
	}

	return &SetSelectedMapOutput{MapID: o.atoms.SelectedMap.Set(ctx, input.ClientID, mapID)}, nil
}
