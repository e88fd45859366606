package preferences

import (
	"strings"

	"github.com/KirkDiggler/atlas-api/internal/errors"
)

// Storage keys
const (
	KeyMarkedMarkers      = "markedMarkers"
	KeyUsedCodes          = "usedCodes"
	KeyMenuOpen           = "menuOpen"
	KeyCategoryVisibility = "categoryVisibility"
	KeyCategoryExpanded   = "categoryExpanded"
	KeySidebarWidth       = "sidebarWidth"
	KeySelectedMap        = "selectedMap"
)

// Sidebar width defaults in pixels
const (
	DefaultSidebarMin   = 200
	DefaultSidebarMax   = 800
	DefaultSidebarWidth = 320
)

// Defaults configures the values returned when nothing is stored
type Defaults struct {
	SidebarMin   int
	SidebarMax   int
	SidebarWidth int
	SelectedMap  string
}

// Validate validates the Defaults
func (d *Defaults) Validate() error {
	vb := errors.NewValidationBuilder()
	if d.SidebarMin <= 0 {
		vb.Field("SidebarMin", "must be positive")
	}
	if d.SidebarMax < d.SidebarMin {
		vb.Field("SidebarMax", "must not be less than SidebarMin")
	}
	if d.SidebarWidth < d.SidebarMin || d.SidebarWidth > d.SidebarMax {
		vb.Fieldf("SidebarWidth", "must be between %d and %d", d.SidebarMin, d.SidebarMax)
	}
	return vb.Build()
}

// Atoms is every client preference
type Atoms struct {
	MarkedMarkers      *SetAtom
	UsedCodes          *SetAtom
	MenuOpen           *BoolAtom
	CategoryVisibility *FlagMapAtom
	CategoryExpanded   *FlagMapAtom
	SidebarWidth       *IntAtom
	SelectedMap        *StringAtom
}

// NewAtoms binds every preference to store. A nil defaults uses the package
// sidebar defaults and no selected map.
func NewAtoms(store *Store, defaults *Defaults) (*Atoms, error) {
	if store == nil {
		return nil, errors.InvalidArgument("store is required")
	}
	if defaults == nil {
		defaults = &Defaults{
			SidebarMin:   DefaultSidebarMin,
			SidebarMax:   DefaultSidebarMax,
			SidebarWidth: DefaultSidebarWidth,
		}
	}
	if err := defaults.Validate(); err != nil {
		return nil, err
	}

	minWidth, maxWidth := defaults.SidebarMin, defaults.SidebarMax
	return &Atoms{
		MarkedMarkers:      NewSetAtom(store, KeyMarkedMarkers),
		UsedCodes:          NewSetAtom(store, KeyUsedCodes),
		MenuOpen:           NewValueAtom(store, KeyMenuOpen, true, nil),
		CategoryVisibility: NewFlagMapAtom(store, KeyCategoryVisibility),
		CategoryExpanded:   NewFlagMapAtom(store, KeyCategoryExpanded),
		SidebarWidth: NewValueAtom(store, KeySidebarWidth, defaults.SidebarWidth, func(w int) int {
			return min(max(w, minWidth), maxWidth)
		}),
		SelectedMap: NewValueAtom(store, KeySelectedMap, defaults.SelectedMap, strings.TrimSpace),
	}, nil
}
