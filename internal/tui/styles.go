package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#D97706") // Amber
	secondaryColor = lipgloss.Color("#16A34A") // Green
	accentColor    = lipgloss.Color("#DC2626") // Tomato
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray

	// Base styles
	BaseStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Inline muted text (no margins, for use within lines)
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Category bar
	CategoryStyle = lipgloss.NewStyle().
			Foreground(textColor)

	ActiveCategoryStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	FocusedCategoryStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Underline(true)

	// Cards
	CardNameStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	CardRecipeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Allergy badges
	AllergyBadgeStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	// List styles
	SelectedListItemStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	UncheckedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Pager
	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Help styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// RenderHelp renders alternating key/description pairs as a help line.
func RenderHelp(keys ...string) string {
	var result string
	for i := 0; i < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		key := keys[i]
		desc := ""
		if i+1 < len(keys) {
			desc = keys[i+1]
		}
		result += HelpKeyStyle.Render(key) + " " + desc
	}
	return HelpStyle.Render(result)
}
