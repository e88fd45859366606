package preferences

// Preferences is a snapshot of every preference for one client
type Preferences struct {
	ClientID           string
	MarkedMarkers      []string
	UsedCodes          []string
	MenuOpen           bool
	CategoryVisibility map[string]bool
	CategoryExpanded   map[string]bool
	SidebarWidth       int
	SelectedMap        string
}

// RegisterClientInput defines the request for registering a new client
type RegisterClientInput struct{}

// RegisterClientOutput defines the response for registering a new client
type RegisterClientOutput struct {
	ClientID    string
	Preferences *Preferences
}

// GetPreferencesInput defines the request for reading every preference
type GetPreferencesInput struct {
	ClientID string
}

// GetPreferencesOutput defines the response for reading every preference
type GetPreferencesOutput struct {
	Preferences *Preferences
}

// ToggleMarkerInput defines the request for marking or unmarking a map marker
type ToggleMarkerInput struct {
	ClientID string
	MarkerID string
}

// ToggleMarkerOutput defines the response for toggling a map marker
type ToggleMarkerOutput struct {
	MarkerID      string
	Marked        bool
	MarkedMarkers []string
}

// ResetMarkersInput defines the request for clearing every marked marker
type ResetMarkersInput struct {
	ClientID string
}

// ResetMarkersOutput defines the response for clearing marked markers
type ResetMarkersOutput struct{}

// ToggleCodeInput defines the request for flagging a redemption code as used
type ToggleCodeInput struct {
	ClientID string
	Code     string
}

// ToggleCodeOutput defines the response for toggling a used code
type ToggleCodeOutput struct {
	Code      string
	Used      bool
	UsedCodes []string
}

// ResetCodesInput defines the request for clearing every used code
type ResetCodesInput struct {
	ClientID string
}

// ResetCodesOutput defines the response for clearing used codes
type ResetCodesOutput struct{}

// SetMenuOpenInput defines the request for opening or closing the menu
type SetMenuOpenInput struct {
	ClientID string
	Open     bool
}

// SetMenuOpenOutput defines the response for setting the menu state
type SetMenuOpenOutput struct {
	Open bool
}

// ToggleCategoryVisibilityInput defines the request for showing or hiding a
// marker category on the map
type ToggleCategoryVisibilityInput struct {
	ClientID   string
	CategoryID string
}

// ToggleCategoryVisibilityOutput defines the response for toggling visibility
type ToggleCategoryVisibilityOutput struct {
	CategoryID string
	Visible    bool
	Visibility map[string]bool
}

// ToggleCategoryExpandedInput defines the request for expanding or collapsing
// a category in the sidebar
type ToggleCategoryExpandedInput struct {
	ClientID   string
	CategoryID string
}

// ToggleCategoryExpandedOutput defines the response for toggling expansion
type ToggleCategoryExpandedOutput struct {
	CategoryID string
	Expanded   bool
	Expansion  map[string]bool
}

// SetSidebarWidthInput defines the request for resizing the sidebar
type SetSidebarWidthInput struct {
	ClientID string
	Width    int
}

// SetSidebarWidthOutput defines the response for resizing the sidebar.
// Width is the stored value after clamping.
type SetSidebarWidthOutput struct {
	Width int
}

// SetSelectedMapInput defines the request for switching maps. An empty MapID
// returns to the default map.
type SetSelectedMapInput struct {
	ClientID string
	MapID    string
}

// SetSelectedMapOutput defines the response for switching maps
type SetSelectedMapOutput struct {
	MapID string
}
