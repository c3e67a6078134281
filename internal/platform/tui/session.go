// Package tui provides the terminal guide: the section views, the level
// detail overlay and SSH serving via Wish.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

// Layout constants
const (
	headerHeight = 2 // Brand/nav line plus a blank line
	footerHeight = 2 // Help line plus footer text
)

// OpenLevelMsg asks the session to show a level's detail page.
type OpenLevelMsg struct {
	ID int
}

// SwitchSectionMsg asks the session to activate a section.
type SwitchSectionMsg struct {
	ID string
}

// closeDetailMsg dismisses the detail overlay.
type closeDetailMsg struct{}

func openLevel(id int) tea.Cmd {
	return func() tea.Msg { return OpenLevelMsg{ID: id} }
}

func switchSection(id string) tea.Cmd {
	return func() tea.Msg { return SwitchSectionMsg{ID: id} }
}

// SessionModel is the top-level model of one guide session: header
// navigation over the registered sections plus the level detail overlay.
// Every session owns its own section state; only the catalog is shared.
type SessionModel struct {
	env      registry.Env
	keys     KeyMap
	help     help.Model
	sections []registry.Section
	active   int
	detail   *DetailModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session starting on the given section.
// An empty start selects the first registered section.
func NewSessionModel(env registry.Env, start string) (SessionModel, error) {
	if env.Dict == nil || env.Catalog == nil {
		return SessionModel{}, errors.New("tui: session needs a dictionary and a catalog")
	}

	m := SessionModel{
		env:    env,
		keys:   NewKeyMap(env.Dict),
		help:   help.New(),
		width:  env.Width,
		height: env.Height,
	}
	m.help.Width = env.Width

	body := m.bodyEnv()
	for _, info := range registry.List() {
		s, err := registry.Create(info.ID, body)
		if err != nil {
			return SessionModel{}, err
		}
		m.sections = append(m.sections, s)
	}
	if len(m.sections) == 0 {
		return SessionModel{}, errors.New("tui: no sections registered")
	}

	if start != "" {
		i := m.indexOf(start)
		if i < 0 {
			return SessionModel{}, fmt.Errorf("tui: unknown section %q", start)
		}
		m.active = i
	}
	return m, nil
}

// bodyEnv returns env sized to the area between header and footer.
func (m SessionModel) bodyEnv() registry.Env {
	env := m.env
	env.Width = m.width
	env.Height = m.bodyHeight()
	return env
}

func (m SessionModel) bodyHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m SessionModel) indexOf(id string) int {
	for i, s := range m.sections {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Init initializes every section.
func (m SessionModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.sections))
	for _, s := range m.sections {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case OpenLevelMsg:
		d := NewDetailModel(m.bodyEnv(), msg.ID)
		m.detail = &d
		return m, nil

	case closeDetailMsg:
		m.detail = nil
		return m, nil

	case SwitchSectionMsg:
		if i := m.indexOf(msg.ID); i >= 0 {
			m.active = i
			m.detail = nil
		}
		return m, nil
	}

	// Anything else (cursor blink and the like) belongs to the active section.
	s, cmd := m.sections[m.active].Update(msg)
	m.sections[m.active] = s
	return m, cmd
}

// handleResize forwards the body size to every section.
func (m SessionModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	body := tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()}
	cmds := make([]tea.Cmd, 0, len(m.sections))
	for i, s := range m.sections {
		var cmd tea.Cmd
		m.sections[i], cmd = s.Update(body)
		cmds = append(cmds, cmd)
	}
	if m.detail != nil {
		d, _ := m.detail.Update(body)
		m.detail = &d
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies global bindings unless a section is taking text input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		d, cmd := m.detail.Update(msg)
		m.detail = &d
		return m, cmd
	}

	active := m.sections[m.active]
	if !active.Capturing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSection):
			m.active = (m.active + 1) % len(m.sections)
			return m, nil
		case key.Matches(msg, m.keys.PrevSection):
			m.active = (m.active - 1 + len(m.sections)) % len(m.sections)
			return m, nil
		}
	}

	s, cmd := active.Update(msg)
	m.sections[m.active] = s
	return m, cmd
}

// Active returns the ID of the active section.
func (m SessionModel) Active() string {
	return m.sections[m.active].ID()
}

// Section returns the live instance of a section, or nil.
func (m SessionModel) Section(id string) registry.Section {
	if i := m.indexOf(id); i >= 0 {
		return m.sections[i]
	}
	return nil
}

// Detail returns the open detail overlay, or nil.
func (m SessionModel) Detail() *DetailModel {
	return m.detail
}

// IsQuitting returns true if user requested to quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// View renders header, body and footer.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.detail != nil {
		body = m.detail.View()
	} else {
		body = m.sections[m.active].View()
	}
	if h := m.bodyHeight(); h > 0 {
		body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		m.help.View(m.keys),
		currentTheme.Muted.Render(m.env.Dict.Footer.Copyright),
	)
}

// renderHeader draws the brand and the section tabs.
func (m SessionModel) renderHeader() string {
	th := currentTheme
	parts := []string{th.Brand.Render(m.env.Dict.Header.Brand)}
	for i, s := range m.sections {
		name := m.env.Dict.SectionName(s.ID())
		if name == "" {
			name = s.ID()
		}
		if i == m.active {
			parts = append(parts, th.NavActive.Render(name))
		} else {
			parts = append(parts, th.NavItem.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts an interactive session in the local terminal.
func Run(env registry.Env, start string) error {
	model, err := NewSessionModel(env, start)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
