package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntoineGS/tidymenu/internal/menu"
	"github.com/AntoineGS/tidymenu/internal/metric"
)

func (m Model) updateSort(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListSelectKeys.Up):
		if m.sortCursor > 0 {
			m.sortCursor--
		}

	case key.Matches(msg, ListSelectKeys.Down):
		if m.sortCursor < len(menu.SortOptions)-1 {
			m.sortCursor++
		}

	case key.Matches(msg, ListSelectKeys.Select):
		m.view.ApplySort(menu.SortOptions[m.sortCursor])
		m.metrics.Event(metric.EventSort)
		m.Screen = ScreenMenu

	case key.Matches(msg, ListSelectKeys.Cancel):
		m.Screen = ScreenMenu
	}

	return m, nil
}

func (m Model) viewSort() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(SortSelectText))
	b.WriteString("\n\n")

	for i, opt := range menu.SortOptions {
		line := NoCursorMarker + opt.Label()
		if i == m.sortCursor {
			line = CursorMarker + SelectedListItemStyle.Render(opt.Label())
		}
		if opt == m.view.Sort() {
			line += CurrentMarker
		}

		b.WriteString(line + "\n")
	}

	b.WriteString(RenderHelp(
		"j/k", "move",
		"enter", "select",
		"esc", "cancel",
	))

	return BaseStyle.Render(b.String())
}
