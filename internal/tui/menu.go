package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AntoineGS/tidymenu/internal/menu"
	"github.com/AntoineGS/tidymenu/internal/metric"
)

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SharedKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, MenuKeys.PrevCategory):
		if m.categoryCursor > 0 {
			m.categoryCursor--
		} else {
			m.categoryCursor = len(menu.Categories) - 1
		}

	case key.Matches(msg, MenuKeys.NextCategory):
		if m.categoryCursor < len(menu.Categories)-1 {
			m.categoryCursor++
		} else {
			m.categoryCursor = 0
		}

	case key.Matches(msg, MenuKeys.Apply):
		m.applyCategory(m.categoryCursor)

	case key.Matches(msg, MenuKeys.Allergies):
		m.Screen = ScreenAllergies
		m.allergyCursor = 0
		m.metrics.Event(metric.EventModalOpen)

	case key.Matches(msg, MenuKeys.Sort):
		m.Screen = ScreenSort
		m.sortCursor = sortIndex(m.view.Sort())

	case key.Matches(msg, MenuKeys.PrevPage):
		m.view.PrevPage()
		m.metrics.Event(metric.EventPage)

	case key.Matches(msg, MenuKeys.NextPage):
		m.view.NextPage()
		m.metrics.Event(metric.EventPage)

	case key.Matches(msg, MenuKeys.FirstPage):
		m.view.SetPage(1)
		m.metrics.Event(metric.EventPage)

	case key.Matches(msg, MenuKeys.LastPage):
		m.view.SetPage(m.view.PageCount())
		m.metrics.Event(metric.EventPage)

	case key.Matches(msg, MenuKeys.PickPage):
		m.openPager()

	default:
		// 1-6 jump straight to a category
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(menu.Categories) {
			m.categoryCursor = n - 1
			m.applyCategory(m.categoryCursor)
		}
	}

	return m, nil
}

func (m *Model) applyCategory(idx int) {
	m.view.ApplyCategory(menu.Categories[idx])
	m.metrics.Event(metric.EventCategory)
}

func sortIndex(opt menu.SortOption) int {
	for i, o := range menu.SortOptions {
		if o == opt {
			return i
		}
	}

	return 0
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TitleText))
	b.WriteString("\n\n")

	b.WriteString(m.renderCategoryBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")

	switch m.view.State() {
	case menu.LoadPending:
		b.WriteString(m.spinner.View() + " " + LoadingText)
	case menu.LoadFailed:
		b.WriteString(ErrorStyle.Render(UnavailableText))
		if err := m.view.Err(); err != nil {
			b.WriteString(MutedTextStyle.Render(": " + err.Error()))
		}
	case menu.LoadReady:
		b.WriteString(m.renderPage())
	}

	b.WriteString("\n")
	if m.Screen == ScreenPager {
		b.WriteString(RenderHelp(
			"h/l", "move",
			"g/G", "first/last",
			"enter", "go to page",
			"esc", "cancel",
		))
	} else {
		b.WriteString(RenderHelp(
			"h/l", "category",
			"enter", "apply",
			"1-6", "jump",
			"a", "allergies",
			"s", "sort",
			"[/]", "page",
			"p", "pick page",
			"q", "quit",
		))
	}

	return BaseStyle.Render(b.String())
}

func (m Model) renderCategoryBar() string {
	active := m.view.Category()
	parts := make([]string, 0, len(menu.Categories))

	for i, c := range menu.Categories {
		label := c.Label()

		switch {
		case c == active:
			parts = append(parts, ActiveCategoryStyle.Render("["+label+"]"))
		case i == m.categoryCursor:
			parts = append(parts, FocusedCategoryStyle.Render("("+label+")"))
		default:
			parts = append(parts, CategoryStyle.Render(" "+label+" "))
		}
	}

	return strings.Join(parts, " ")
}

func (m Model) renderStatusLine() string {
	allergies := NoAllergiesText
	if active := m.view.Allergies(); len(active) > 0 {
		allergies = AllergyBadgeStyle.Render(strings.Join(active, ", "))
	}

	return fmt.Sprintf("Sort: %s  Allergies: %s", m.view.Sort().Label(), allergies)
}

func (m Model) renderPage() string {
	items := m.view.PageItems()
	if len(items) == 0 {
		return MutedTextStyle.Render(EmptyText)
	}

	cards := make([]string, len(items))
	for i, it := range items {
		cards[i] = m.renderCard(it)
	}

	if cols := cardColumns(m.width); cols > 1 {
		cell := lipgloss.NewStyle().Width(cardWidth).MarginRight(cardGap)
		rows := make([]string, 0, (len(cards)+cols-1)/cols)

		for start := 0; start < len(cards); start += cols {
			end := min(start+cols, len(cards))
			row := make([]string, 0, cols)
			for _, c := range cards[start:end] {
				row = append(row, cell.Render(c))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}

		cards = rows
	}

	return strings.Join(cards, "\n\n") + "\n\n" + m.renderPager()
}

// cardColumns picks a 4, 2 or 1 column grid for the terminal width.
func cardColumns(width int) int {
	fit := (width - 4 + cardGap) / (cardWidth + cardGap)

	switch {
	case fit >= 4:
		return 4
	case fit >= 2:
		return 2
	}

	return 1
}

func (m Model) renderCard(it menu.Item) string {
	text, err := m.cards.Render(it)
	if err != nil {
		m.logger.Warn("card render failed", "id", it.ID, "error", err)
		text = it.Name
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = CardNameStyle.Render(line)
			continue
		}
		lines[i] = CardIndent + CardRecipeStyle.Render(line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPager() string {
	total := m.view.PageCount()
	buttons := make([]string, 0, total)

	for p := 1; p <= total; p++ {
		if m.Screen == ScreenPager && p == m.pageCursor {
			buttons = append(buttons, FocusedCategoryStyle.Render(fmt.Sprintf("(%d)", p)))
			continue
		}
		if p == m.view.Page() {
			buttons = append(buttons, CurrentPageStyle.Render(fmt.Sprintf("[%d]", p)))
		} else {
			buttons = append(buttons, strconv.Itoa(p))
		}
	}

	summary := fmt.Sprintf("page %d of %d, %d items", m.view.Page(), total, len(m.view.Visible()))

	return strings.Join(buttons, " ") + "  " + MutedTextStyle.Render(summary)
}
