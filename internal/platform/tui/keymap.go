package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
)

// KeyMap defines every key binding used by the guide.
// Help labels come from the session's dictionary.
type KeyMap struct {
	Quit        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Back        key.Binding
	Search      key.Binding
	NextRange   key.Binding
	PrevRange   key.Binding
	ShowMore    key.Binding
	Prev        key.Binding
	Next        key.Binding
}

// NewKeyMap returns the default bindings with help text from d.
func NewKeyMap(d *i18n.Dictionary) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", d.T("quit")),
		),
		NextSection: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", d.T("sections")),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", d.T("sections")),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", d.T("move")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓", d.T("move")),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", d.T("open")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", d.T("back")),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", d.T("search")),
		),
		NextRange: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", d.T("tabs")),
		),
		PrevRange: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", d.T("tabs")),
		),
		ShowMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", d.T("show_more")),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p/n", d.T("prev_next")),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("p/n", d.T("prev_next")),
		),
	}
}

// ShortHelp returns the session-wide bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Quit}
}

// FullHelp returns all bindings grouped by use.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.Up, k.Open, k.Back},
		{k.Search, k.NextRange, k.ShowMore, k.Prev},
		{k.Quit},
	}
}

// helpKeys adapts a section's binding subset to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
