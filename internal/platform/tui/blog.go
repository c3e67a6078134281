package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dreamyroom-guide/internal/content"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

func init() {
	registry.Register("blog", 3, newBlogSection)
}

// blogSection lists guide articles page by page and shows one article
// at a time.
type blogSection struct {
	env      registry.Env
	keys     KeyMap
	help     help.Model
	pager    paginator.Model
	cursor   int
	reading  *content.Post
	viewport viewport.Model
	width    int
	height   int
}

func newBlogSection(env registry.Env) registry.Section {
	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = content.DefaultPageSize
	pager.SetTotalPages(blogLen(env.Blog))

	return blogSection{
		env:    env,
		keys:   NewKeyMap(env.Dict),
		help:   help.New(),
		pager:  pager,
		width:  env.Width,
		height: env.Height,
	}
}

func blogLen(b *content.Blog) int {
	if b == nil {
		return 0
	}
	return b.Len()
}

func (m blogSection) ID() string { return "blog" }

func (m blogSection) Init() tea.Cmd { return nil }

func (m blogSection) Capturing() bool { return false }

// Page returns the current 1-based page number.
func (m blogSection) Page() int { return m.pager.Page + 1 }

// Reading returns the open article, or nil on the index.
func (m blogSection) Reading() *content.Post { return m.reading }

// posts returns the articles on the current page.
func (m blogSection) posts() []content.Post {
	if m.env.Blog == nil {
		return nil
	}
	return m.env.Blog.Page(m.Page(), m.pager.PerPage)
}

func (m blogSection) Update(msg tea.Msg) (registry.Section, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.reading != nil {
			m.openPost(*m.reading)
		}
		return m, nil

	case tea.KeyMsg:
		if m.reading != nil {
			if key.Matches(msg, m.keys.Back) {
				m.reading = nil
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m blogSection) handleKey(msg tea.KeyMsg) (registry.Section, tea.Cmd) {
	posts := m.posts()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(posts)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		if !m.pager.OnLastPage() {
			m.pager.NextPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Prev):
		if m.pager.Page > 0 {
			m.pager.PrevPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(posts) {
			m.openPost(posts[m.cursor])
		}
	}
	return m, nil
}

// openPost renders an article into the viewport.
func (m *blogSection) openPost(p content.Post) {
	width := m.width
	if width <= 0 {
		width = defaultDocWidth
	}

	md := "# " + p.Title + "\n\n*" + p.Date.Format("2006-01-02") + "*\n\n" + p.Body
	rendered := renderMarkdown(md, width)

	height := m.height - 2
	if m.height <= 0 {
		height = strings.Count(rendered, "\n") + 1
	}

	m.viewport = viewport.New(width, max(height, 1))
	m.viewport.SetContent(rendered)
	m.reading = &p
}

func (m blogSection) View() string {
	th := currentTheme
	d := m.env.Dict.Blog

	crumbs := []string{d.Breadcrumbs.Blog, i18n.Fill(d.Breadcrumbs.Page, "{0}", strconv.Itoa(m.Page()))}
	if m.reading != nil {
		crumbs = append(crumbs, m.reading.Title)
	}

	var b strings.Builder
	b.WriteString(th.Breadcrumb.Render(strings.Join(crumbs, " › ")))
	b.WriteString("\n")

	if m.reading != nil {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(m.help.View(helpKeys{withHelp(m.keys.Up, m.env.Dict.T("scroll")), m.keys.Back}))
		return b.String()
	}

	b.WriteString(th.Title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(th.Subtitle.Render(d.Subtitle))
	b.WriteString("\n\n")

	posts := m.posts()
	if len(posts) == 0 {
		b.WriteString(th.Muted.Render(d.Posts.Empty))
		b.WriteString("\n")
	}
	for i, p := range posts {
		cursor, style := "  ", th.Card
		if i == m.cursor {
			cursor, style = "> ", th.CardActive
		}
		b.WriteString(cursor + style.Render(p.Title) + "  " + th.Muted.Render(p.Date.Format("2006-01-02")))
		b.WriteString("\n    ")
		b.WriteString(th.Muted.Render(p.Summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.pager.TotalPages > 1 {
		b.WriteString(m.pager.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(helpKeys{
		m.keys.Up,
		withHelp(m.keys.Open, d.Posts.ReadMore),
		withHelp(m.keys.Next, m.env.Dict.T("page")),
	}))
	return b.String()
}
