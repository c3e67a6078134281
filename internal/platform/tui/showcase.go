package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

// showcaseChrome is the number of body lines used by everything but the
// card list: title, search box, tabs, status, help and spacing.
const showcaseChrome = 12

func init() {
	registry.Register("levels", 1, newShowcaseSection)
}

// showcaseSection is the level listing: range tabs, search box and the
// card list driven by catalog.Showcase.
type showcaseSection struct {
	env      registry.Env
	keys     KeyMap
	help     help.Model
	showcase catalog.Showcase
	input    textinput.Model
	cursor   int
	width    int
	height   int
}

func newShowcaseSection(env registry.Env) registry.Section {
	opts := []catalog.ShowcaseOption{
		catalog.WithFeaturedCount(env.Config.Catalog.FeaturedCount),
	}
	if len(env.Config.Catalog.Ranges) > 0 {
		opts = append(opts, catalog.WithRanges(env.Config.Catalog.Ranges))
	}

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = env.Dict.Showcase.SearchPlaceholder
	in.CharLimit = 64
	in.Width = 40

	return showcaseSection{
		env:      env,
		keys:     NewKeyMap(env.Dict),
		help:     help.New(),
		showcase: catalog.NewShowcase(env.Catalog, env.Dict.Showcase.Text(), opts...),
		input:    in,
		width:    env.Width,
		height:   env.Height,
	}
}

func (m showcaseSection) ID() string { return "levels" }

func (m showcaseSection) Init() tea.Cmd { return nil }

func (m showcaseSection) Capturing() bool { return m.input.Focused() }

// Showcase returns the current filter state.
func (m showcaseSection) Showcase() catalog.Showcase { return m.showcase }

// Cursor returns the index of the highlighted card in Shown.
func (m showcaseSection) Cursor() int { return m.cursor }

func (m showcaseSection) Update(msg tea.Msg) (registry.Section, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateSearch feeds the focused search box and refilters on every key.
func (m showcaseSection) updateSearch(msg tea.KeyMsg) (registry.Section, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.showcase.SetQuery(m.input.Value())
	m.clampCursor()
	return m, cmd
}

func (m showcaseSection) handleKey(msg tea.KeyMsg) (registry.Section, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.NextRange):
		m.selectTab(1)

	case key.Matches(msg, m.keys.PrevRange):
		m.selectTab(-1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.showcase.Shown())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.ShowMore):
		if m.showcase.ShowMore() {
			m.showcase.ExpandFeatured()
		}

	case key.Matches(msg, m.keys.Open):
		shown := m.showcase.Shown()
		if m.cursor < len(shown) {
			return m, openLevel(shown[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Back):
		if m.showcase.Query() != "" {
			m.input.Reset()
			m.showcase.SetQuery("")
			m.clampCursor()
		}
	}
	return m, nil
}

// selectTab moves the active tab by delta, wrapping around.
func (m *showcaseSection) selectTab(delta int) {
	labels := m.showcase.Labels()
	i := slices.Index(labels, m.showcase.Selected())
	i = (i + delta + len(labels)) % len(labels)
	m.showcase.SelectRange(labels[i])
	m.cursor = 0
}

func (m *showcaseSection) clampCursor() {
	n := len(m.showcase.Shown())
	m.cursor = max(0, min(m.cursor, n-1))
}

func (m showcaseSection) View() string {
	th := currentTheme
	d := m.env.Dict

	var b strings.Builder
	b.WriteString(th.Title.Render(d.Showcase.Title))
	b.WriteString("\n")
	b.WriteString(th.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	shown := m.showcase.Shown()
	if msg := m.showcase.EmptyMessage(); msg != "" {
		b.WriteString(th.Muted.Render(msg))
		b.WriteString("\n")
	}

	rows := 0
	if m.height > 0 {
		rows = max(m.height-showcaseChrome, 3)
	}
	start, end := window(m.cursor, len(shown), rows)
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(shown[i], i == m.cursor))
		b.WriteString("\n")
	}

	if m.showcase.ShowMore() {
		b.WriteString("\n")
		b.WriteString(th.Badge.Render(d.Showcase.ShowMoreButton))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Muted.Render(i18n.Expand(d.T("shown"), map[string]string{
		"shown": strconv.Itoa(len(shown)),
		"total": strconv.Itoa(m.env.Catalog.Len()),
	})))
	b.WriteString("\n")

	bindings := helpKeys{m.keys.Search, m.keys.NextRange, m.keys.Up, m.keys.Open}
	if m.showcase.ShowMore() {
		bindings = append(bindings, m.keys.ShowMore)
	}
	b.WriteString(m.help.View(bindings))
	return b.String()
}

// renderCard draws one level row: badge, card title and video title.
func (m showcaseSection) renderCard(lvl catalog.Level, active bool) string {
	th := currentTheme
	d := m.env.Dict
	num := strconv.Itoa(lvl.ID)

	style := th.Card
	cursor := "  "
	if active {
		style = th.CardActive
		cursor = "> "
	}

	line := cursor +
		th.Badge.Render(d.Level.LevelNumber+" "+num) + " " +
		style.Render(d.Showcase.Card.TitlePrefix+num) + "  " +
		th.Muted.Render(lvl.Title)
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

// renderTabs draws the tab row, scrolled so the active tab is visible.
func (m showcaseSection) renderTabs() string {
	th := currentTheme
	labels := m.showcase.Labels()
	tabs := make([]string, len(labels))
	sel := 0
	for i, label := range labels {
		if label == m.showcase.Selected() {
			tabs[i] = th.TabActive.Render(label)
			sel = i
		} else {
			tabs[i] = th.Tab.Render(label)
		}
	}

	if m.width <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	}

	start := 0
	for start < sel && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, tabs[start:sel+1]...)) > m.width {
		start++
	}
	end := sel + 1
	for end < len(tabs) && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, tabs[start:end+1]...)) <= m.width {
		end++
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs[start:end]...)
}
