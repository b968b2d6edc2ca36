package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntoineGS/tidymenu/internal/metric"
)

// updateAllergies handles the allergy modal. Toggles take effect at once;
// enter ("Apply Filters") and esc both close the modal.
func (m Model) updateAllergies(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rules := m.view.Rules()

	switch {
	case key.Matches(msg, ListSelectKeys.Up):
		if m.allergyCursor > 0 {
			m.allergyCursor--
		}

	case key.Matches(msg, ListSelectKeys.Down):
		if m.allergyCursor < len(rules)-1 {
			m.allergyCursor++
		}

	case key.Matches(msg, ListSelectKeys.Toggle):
		if m.allergyCursor < len(rules) {
			m.view.ToggleAllergy(rules[m.allergyCursor].Name)
			m.metrics.Event(metric.EventAllergy)
		}

	case key.Matches(msg, ListSelectKeys.Select), key.Matches(msg, ListSelectKeys.Cancel):
		m.Screen = ScreenMenu
	}

	return m, nil
}

func (m Model) viewAllergies() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AllergyModalText))
	b.WriteString("\n\n")

	for i, rule := range m.view.Rules() {
		cursor := NoCursorMarker
		name := rule.Name
		if i == m.allergyCursor {
			cursor = CursorMarker
			name = SelectedListItemStyle.Render(name)
		}

		box := UncheckedStyle.Render(CheckboxUnchecked)
		if m.view.HasAllergy(rule.Name) {
			box = CheckedStyle.Render(CheckboxChecked)
		}

		b.WriteString(cursor + box + " " + name + "\n")
	}

	b.WriteString(RenderHelp(
		"j/k", "move",
		"space", "toggle",
		"enter", "apply filters",
		"esc", "close",
	))

	return BaseStyle.Render(b.String())
}
