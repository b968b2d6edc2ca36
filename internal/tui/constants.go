package tui

// UI element constants
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
	CursorMarker      = "> "
	NoCursorMarker    = "  "
	CurrentMarker     = " *"
	CardIndent        = "  "
)

// Card grid layout
const (
	cardWidth = 52
	cardGap   = 2
)

// Text shown on the menu screen
const (
	TitleText        = "Our Menu"
	LoadingText      = "Loading menu..."
	UnavailableText  = "Menu unavailable"
	EmptyText        = "No items match the current filters."
	NoAllergiesText  = "none"
	AllergyModalText = "Select Allergies"
	SortSelectText   = "Sort by"
)
