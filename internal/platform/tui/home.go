package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

func init() {
	registry.Register("home", 0, newHomeSection)
}

// homeSection is the landing page with the jump-to-level search.
type homeSection struct {
	env    registry.Env
	keys   KeyMap
	jump   key.Binding
	help   help.Model
	input  textinput.Model
	errMsg string
	width  int
	height int
}

func newHomeSection(env registry.Env) registry.Section {
	in := textinput.New()
	in.Prompt = "# "
	in.Placeholder = env.Dict.Hero.Search.Placeholder
	in.CharLimit = 8
	in.Width = 32

	return homeSection{
		env:    env,
		keys:   NewKeyMap(env.Dict),
		jump:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", env.Dict.T("jump"))),
		help:   help.New(),
		input:  in,
		width:  env.Width,
		height: env.Height,
	}
}

func (m homeSection) ID() string { return "home" }

func (m homeSection) Init() tea.Cmd { return nil }

func (m homeSection) Capturing() bool { return m.input.Focused() }

func (m homeSection) Update(msg tea.Msg) (registry.Section, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.Type {
			case tea.KeyEnter:
				return m.submit()
			case tea.KeyEsc:
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.jump):
			m.errMsg = ""
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Open):
			return m, switchSection("levels")
		}
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit validates the entered level number and opens its page.
func (m homeSection) submit() (registry.Section, tea.Cmd) {
	errs := m.env.Dict.Hero.Search.Error

	id, err := catalog.ParseID(m.input.Value())
	if err == nil {
		_, err = m.env.Catalog.Get(id)
	}
	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		m.errMsg = errs.Invalid
		return m, nil
	case errors.Is(err, catalog.ErrNotFound):
		m.errMsg = errs.NotFound
		return m, nil
	}

	m.errMsg = ""
	m.input.Reset()
	m.input.Blur()
	return m, openLevel(id)
}

func (m homeSection) View() string {
	th := currentTheme
	hero := m.env.Dict.Hero

	var b strings.Builder
	b.WriteString(th.Badge.Render(hero.Badge))
	b.WriteString("\n\n")
	b.WriteString(th.Title.Render(hero.Title))
	b.WriteString("\n")
	desc := hero.Description
	if m.width > 0 {
		desc = lipgloss.NewStyle().Width(m.width).Render(desc)
	}
	b.WriteString(th.Subtitle.Render(desc))
	b.WriteString("\n\n")

	b.WriteString(th.Muted.Render(strings.Join([]string{
		hero.Stats.Guides,
		hero.Stats.VideoTutorials,
		hero.Stats.QuickSearch,
	}, "  ·  ")))
	b.WriteString("\n\n")

	b.WriteString(th.Input.Render(m.input.View()))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(th.Error.Render(m.errMsg))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(helpKeys{
		withHelp(m.jump, hero.Search.Button),
		withHelp(m.keys.Open, hero.Buttons.BrowseAll),
	}))
	return b.String()
}

// Err returns the validation message of the last jump, if any.
func (m homeSection) Err() string { return m.errMsg }
