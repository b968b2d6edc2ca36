package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AntoineGS/tidymenu/internal/card"
	"github.com/AntoineGS/tidymenu/internal/journal"
	"github.com/AntoineGS/tidymenu/internal/menu"
	"github.com/AntoineGS/tidymenu/internal/metric"
)

// Screen represents the current screen being displayed in the TUI.
type Screen int

// TUI screen types.
const (
	// ScreenMenu is the menu list with category bar, cards and pager
	ScreenMenu Screen = iota
	// ScreenAllergies is the allergy modal
	ScreenAllergies
	// ScreenSort is the sort select
	ScreenSort
	// ScreenPager is the menu list with the page selector focused
	ScreenPager
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "Menu"
	case ScreenAllergies:
		return "Allergies"
	case ScreenSort:
		return "Sort"
	case ScreenPager:
		return "Pager"
	}

	return "Unknown"
}

// Fetcher loads the full menu list. It is called exactly once per model.
type Fetcher func(ctx context.Context) ([]menu.Item, error)

// Options configures a Model. Context bounds the fetch; it defaults to
// context.Background.
type Options struct {
	Context context.Context //nolint:containedctx // the fetch runs as a tea.Cmd
	Fetch   Fetcher
	Cards   *card.Renderer
	Metrics *metric.Recorder
	Journal *journal.Recorder
	Logger  *slog.Logger
	URL     string
	Rules   []menu.AllergyRule
}

// Model holds the state for the TUI: the menu view, the active screen and
// the cursors of the category bar, allergy modal, sort select and pager.
type Model struct {
	ctx            context.Context //nolint:containedctx // see Options.Context
	view           *menu.View
	fetch          Fetcher
	cards          *card.Renderer
	metrics        *metric.Recorder
	journal        *journal.Recorder
	logger         *slog.Logger
	url            string
	spinner        spinner.Model
	width          int
	height         int
	categoryCursor int
	allergyCursor  int
	sortCursor     int
	pageCursor     int
	Screen         Screen
}

// NewModel creates a model in the loading state. Nil rules select the
// built-in allergy table.
func NewModel(opts Options) Model {
	rules := opts.Rules
	if len(rules) == 0 {
		rules = menu.DefaultAllergyRules()
	}

	cards := opts.Cards
	if cards == nil {
		cards = card.MustDefault()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return Model{
		ctx:     ctx,
		view:    menu.NewView(rules),
		fetch:   opts.Fetch,
		cards:   cards,
		metrics: opts.Metrics,
		journal: opts.Journal,
		logger:  logger,
		url:     opts.URL,
		spinner: spinner.New(spinner.WithSpinner(spinner.Line), spinner.WithStyle(SpinnerStyle)),
		width:   80,
		height:  24,
		Screen:  ScreenMenu,
	}
}

// Menu returns the menu view state.
func (m Model) Menu() *menu.View {
	return m.view
}

// Init starts the spinner and issues the single menu fetch.
// This is part of the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchMenu())
}

// Update processes messages and updates the model state accordingly.
// This is part of the Bubble Tea model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case spinner.TickMsg:
		if m.view.State() != menu.LoadPending {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case menuLoadedMsg:
		m.view.Load(msg.items)
		m.metrics.Fetch(true)
		m.logger.Info("menu loaded",
			slog.Int("items", len(msg.items)),
			slog.Duration("elapsed", msg.elapsed))

		return m, nil

	case menuFailedMsg:
		m.view.Fail(msg.err)
		m.metrics.Fetch(false)
		m.logger.Error("fetching menu",
			slog.String("url", m.url),
			slog.String("error", msg.err.Error()))

		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, SharedKeys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.Screen {
	case ScreenMenu:
		return m.updateMenu(msg)
	case ScreenAllergies:
		return m.updateAllergies(msg)
	case ScreenSort:
		return m.updateSort(msg)
	case ScreenPager:
		return m.updatePager(msg)
	}

	return m, nil
}

// View renders the current screen and returns the string to display.
// This is part of the Bubble Tea model interface.
func (m Model) View() string {
	switch m.Screen {
	case ScreenMenu, ScreenPager:
		return m.viewMenu()
	case ScreenAllergies:
		return m.viewAllergies()
	case ScreenSort:
		return m.viewSort()
	}

	return ""
}
