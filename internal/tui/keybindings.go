package tui

import "github.com/charmbracelet/bubbles/key"

// SharedKeyMap defines keybindings available on all screens.
type SharedKeyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
}

// SharedKeys are available on all screens.
var SharedKeys = SharedKeyMap{
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// MenuKeyMap defines keybindings for the menu list screen.
type MenuKeyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	Apply        key.Binding
	Allergies    key.Binding
	Sort         key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	FirstPage    key.Binding
	LastPage     key.Binding
	PickPage     key.Binding
}

// MenuKeys are the keybindings for the menu list screen.
var MenuKeys = MenuKeyMap{
	PrevCategory: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/l", "category"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("h/l", "category"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Allergies: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "allergies"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("[", "pgup"),
		key.WithHelp("[/]", "page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]", "pgdown"),
		key.WithHelp("[/]", "page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	PickPage: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick page"),
	),
}

// PagerKeyMap defines keybindings while a page is being picked.
type PagerKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// PagerKeys are the keybindings for picking a page.
var PagerKeys = PagerKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/l", "move"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("h/l", "move"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to page"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "p", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// ListSelectKeyMap defines keybindings shared by the allergy modal and the
// sort select.
type ListSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Select key.Binding
	Cancel key.Binding
}

// ListSelectKeys are the keybindings for the allergy modal and sort select.
var ListSelectKeys = ListSelectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
}
