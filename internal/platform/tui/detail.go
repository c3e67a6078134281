package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

// DetailModel shows one level: breadcrumb, title, video and thumbnail
// links and its neighbours in dataset order.
type DetailModel struct {
	env    registry.Env
	keys   KeyMap
	help   help.Model
	id     int
	level  *catalog.Level
	prev   *catalog.Level
	next   *catalog.Level
	width  int
	height int
}

// NewDetailModel creates a detail view for id. Unknown IDs render the
// not-found page.
func NewDetailModel(env registry.Env, id int) DetailModel {
	m := DetailModel{
		env:    env,
		keys:   NewKeyMap(env.Dict),
		help:   help.New(),
		width:  env.Width,
		height: env.Height,
	}
	m.load(id)
	return m
}

func (m *DetailModel) load(id int) {
	m.id = id
	m.level, m.prev, m.next = nil, nil, nil

	lvl, ok := m.env.Catalog.Lookup(id)
	if !ok {
		return
	}
	m.level = &lvl
	m.prev, m.next = m.env.Catalog.Neighbors(id)
}

// ID returns the requested level number.
func (m DetailModel) ID() int { return m.id }

// Found reports whether the level exists.
func (m DetailModel) Found() bool { return m.level != nil }

// Update handles navigation between levels and closing the overlay.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return closeDetailMsg{} }
		case key.Matches(msg, m.keys.Prev):
			if m.prev != nil {
				m.load(m.prev.ID)
			}
		case key.Matches(msg, m.keys.Next):
			if m.next != nil {
				m.load(m.next.ID)
			}
		}
	}
	return m, nil
}

// View renders the detail page.
func (m DetailModel) View() string {
	th := currentTheme
	d := m.env.Dict.LevelDetail
	num := strconv.Itoa(m.id)

	var b strings.Builder
	b.WriteString(th.Breadcrumb.Render(strings.Join([]string{
		m.env.Dict.SectionName("home"),
		d.Breadcrumb.LevelList,
		d.LevelNumber + " " + num,
	}, " › ")))
	b.WriteString("\n\n")

	if m.level == nil {
		b.WriteString(th.Title.Render(d.NotFound.Title))
		b.WriteString("\n")
		b.WriteString(th.Subtitle.Render(d.NotFound.Description))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(helpKeys{withHelp(m.keys.Back, d.NotFound.BackToList)}))
		return b.String()
	}

	vars := map[string]string{"level": num}
	b.WriteString(th.Title.Render(i18n.Expand(d.Title, vars)))
	b.WriteString("\n")
	b.WriteString(th.Subtitle.Render(m.level.Title))
	b.WriteString("\n\n")
	b.WriteString(m.wrap(i18n.Expand(d.Description, vars)))
	b.WriteString("\n\n")

	links := []string{
		th.Muted.Render(d.Video+": ") + th.Link.Render(m.level.VideoURL),
		th.Muted.Render(d.Thumbnail+": ") + th.Link.Render(m.level.Thumbnail()),
	}
	b.WriteString(th.Box.Render(strings.Join(links, "\n")))
	b.WriteString("\n\n")

	var nav []string
	if m.prev != nil {
		nav = append(nav, "← "+d.Previous+": "+d.LevelNumber+" "+strconv.Itoa(m.prev.ID))
	}
	if m.next != nil {
		nav = append(nav, d.Next+": "+d.LevelNumber+" "+strconv.Itoa(m.next.ID)+" →")
	}
	if len(nav) > 0 {
		b.WriteString(th.Muted.Render(strings.Join(nav, "   ")))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(helpKeys{m.keys.Prev, m.keys.Back}))
	return b.String()
}

func (m DetailModel) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(m.width).Render(s)
}

// withHelp returns a copy of b with a different help description.
func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
