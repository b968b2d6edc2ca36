package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntoineGS/tidymenu/internal/metric"
)

// updatePager moves the page cursor; enter jumps straight to that page.
func (m Model) updatePager(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.view.PageCount()

	switch {
	case key.Matches(msg, PagerKeys.Prev):
		if m.pageCursor > 1 {
			m.pageCursor--
		}

	case key.Matches(msg, PagerKeys.Next):
		if m.pageCursor < total {
			m.pageCursor++
		}

	case key.Matches(msg, PagerKeys.First):
		m.pageCursor = 1

	case key.Matches(msg, PagerKeys.Last):
		m.pageCursor = total

	case key.Matches(msg, PagerKeys.Select):
		m.view.SetPage(m.pageCursor)
		m.metrics.Event(metric.EventPage)
		m.Screen = ScreenMenu

	case key.Matches(msg, PagerKeys.Cancel):
		m.Screen = ScreenMenu
	}

	return m, nil
}

// openPager focuses the page selector on the current page. Nothing happens
// while there are no pages.
func (m *Model) openPager() {
	if m.view.PageCount() == 0 {
		return
	}

	m.pageCursor = m.view.Page()
	m.Screen = ScreenPager
}
