package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

// defaultDocWidth is used until the first window size arrives.
const defaultDocWidth = 80

func init() {
	registry.Register("download", 2, docFactory("download", DownloadMarkdown))
	registry.Register("faq", 4, docFactory("faq", FAQMarkdown))
	registry.Register("about", 5, docFactory("about", AboutMarkdown))
}

// docSection is a static page rendered from markdown into a scrollable
// viewport.
type docSection struct {
	id       string
	env      registry.Env
	build    func(d *i18n.Dictionary) string
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
}

func docFactory(id string, build func(d *i18n.Dictionary) string) registry.Factory {
	return func(env registry.Env) registry.Section {
		m := docSection{
			id:    id,
			env:   env,
			build: build,
			keys:  NewKeyMap(env.Dict),
			help:  help.New(),
		}
		m.resize(env.Width, env.Height)
		return m
	}
}

// resize re-renders the markdown for the new width.
func (m *docSection) resize(width, height int) {
	if width <= 0 {
		width = defaultDocWidth
	}
	content := renderMarkdown(m.build(m.env.Dict), width)

	// Without a known height the whole page is shown.
	if height <= 0 {
		height = strings.Count(content, "\n") + 1
	} else {
		height = max(height-1, 1)
	}

	m.viewport = viewport.New(width, height)
	m.viewport.SetContent(content)
	m.help.Width = width
}

func (m docSection) ID() string { return m.id }

func (m docSection) Init() tea.Cmd { return nil }

func (m docSection) Capturing() bool { return false }

func (m docSection) Update(msg tea.Msg) (registry.Section, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(wsm.Width, wsm.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m docSection) View() string {
	scroll := withHelp(m.keys.Up, m.env.Dict.T("scroll"))
	return m.viewport.View() + "\n" + m.help.View(helpKeys{scroll})
}

// FAQMarkdown renders the questions page.
func FAQMarkdown(d *i18n.Dictionary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", d.FAQ.Title, d.FAQ.Subtitle)
	for _, q := range d.FAQ.Questions {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", q.Question, q.Answer)
	}
	return b.String()
}

// DownloadMarkdown renders the store links and feature list.
func DownloadMarkdown(d *i18n.Dictionary) string {
	a := d.AppDownload

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", a.Title, a.Subtitle)
	fmt.Fprintf(&b, "**★ %s** · %s\n\n", a.Stats.Rating, a.Stats.Downloads)
	for _, opt := range a.Options {
		fmt.Fprintf(&b, "## %s\n\n%s: %s\n\n", opt.Platform, opt.Description, opt.Link)
	}
	for _, f := range a.Features {
		fmt.Fprintf(&b, "- **%s**: %s\n", f.Title, f.Description)
	}
	return b.String()
}

// AboutMarkdown renders the about page with the footer contact block.
func AboutMarkdown(d *i18n.Dictionary) string {
	c := d.CompanyInfo

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", c.Title, c.Subtitle)
	for _, s := range c.Stats {
		fmt.Fprintf(&b, "- **%s** %s\n", s.Value, s.Label)
	}
	b.WriteString("\n")
	for _, s := range c.Sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Title, s.Description)
	}
	fmt.Fprintf(&b, "---\n\n%s\n\n%s\n", d.Footer.Email, d.Footer.Disclaimer)
	return b.String()
}
