package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntoineGS/tidymenu/internal/menu"
)

// errNoFetcher is reported when the model was built without a data source.
var errNoFetcher = errors.New("no menu source configured")

// menuLoadedMsg carries the fetched list.
type menuLoadedMsg struct {
	items   []menu.Item
	elapsed time.Duration
}

// menuFailedMsg carries the fetch failure.
type menuFailedMsg struct {
	err     error
	elapsed time.Duration
}

// fetchMenu runs the fetch off the event loop and records the attempt in
// the journal before reporting back. A fetch cut short by the program
// exiting is not recorded.
func (m Model) fetchMenu() tea.Cmd {
	ctx := m.ctx
	fetch := m.fetch
	rec := m.journal
	url := m.url

	return func() tea.Msg {
		if fetch == nil {
			return menuFailedMsg{err: errNoFetcher}
		}

		start := time.Now()
		items, err := fetch(ctx)
		elapsed := time.Since(start)

		rec.Observe(ctx, url, len(items), elapsed, err)

		if err != nil {
			return menuFailedMsg{err: err, elapsed: elapsed}
		}

		return menuLoadedMsg{items: items, elapsed: elapsed}
	}
}
