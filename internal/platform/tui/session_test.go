package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/config"
	"github.com/vovakirdan/dreamyroom-guide/internal/content"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/levels"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

func testEnv(t *testing.T, lang string) registry.Env {
	t.Helper()
	SetTheme(PlainTheme())

	lv, err := levels.Bundled()
	if err != nil {
		t.Fatalf("levels.Bundled() failed: %v", err)
	}
	dict, err := i18n.Load(lang, len(lv))
	if err != nil {
		t.Fatalf("i18n.Load() failed: %v", err)
	}
	blog, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() failed: %v", err)
	}
	return registry.Env{
		Dict:    dict,
		Catalog: catalog.New(lv),
		Blog:    blog,
		Config:  config.DefaultConfig(),
	}
}

func newSession(t *testing.T, start string) SessionModel {
	t.Helper()
	m, err := NewSessionModel(testEnv(t, "en"), start)
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	return m
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

// plain strips terminal escape sequences from rendered output.
func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msgs in order and returns the model and the last command.
func press(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

// typeText types s one key at a time.
func typeText(t *testing.T, m SessionModel, s string) SessionModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

// follow runs a navigation command and feeds its message back.
func follow(t *testing.T, m SessionModel, cmd tea.Cmd) SessionModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	m, _ = press(t, m, cmd())
	return m
}

func showcaseOf(t *testing.T, m SessionModel) showcaseSection {
	t.Helper()
	s, ok := m.Section("levels").(showcaseSection)
	if !ok {
		t.Fatal("levels section missing")
	}
	return s
}

func TestSessionSectionOrder(t *testing.T) {
	m := newSession(t, "")

	want := []string{"home", "levels", "download", "blog", "faq", "about"}
	for _, id := range want {
		if m.Active() != id {
			t.Fatalf("Expected section %q, got %q", id, m.Active())
		}
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.Active() != "home" {
		t.Errorf("Expected navigation to wrap to home, got %q", m.Active())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Active() != "about" {
		t.Errorf("Expected left from home to wrap to about, got %q", m.Active())
	}
}

func TestSessionUnknownStart(t *testing.T) {
	if _, err := NewSessionModel(testEnv(t, "en"), "nope"); err == nil {
		t.Error("Expected error for unknown start section")
	}
	if _, err := NewSessionModel(registry.Env{}, ""); err == nil {
		t.Error("Expected error without dictionary and catalog")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newSession(t, "")
	m, cmd := press(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestShowcaseInitialFeatured(t *testing.T) {
	m := newSession(t, "levels")
	s := showcaseOf(t, m).Showcase()

	if !s.IsFeatured() || len(s.Visible()) != 89 || len(s.Shown()) != 10 || !s.ShowMore() {
		t.Fatalf("Unexpected initial state: featured=%v visible=%d shown=%d more=%v",
			s.IsFeatured(), len(s.Visible()), len(s.Shown()), s.ShowMore())
	}

	view := plain(m.View())
	if !strings.Contains(view, "Show More") {
		t.Error("Expected show more button in view")
	}
	if !strings.Contains(view, "Showing 10 of 89") {
		t.Error("Expected status line in view")
	}
}

func TestShowcaseShowMoreAndTabs(t *testing.T) {
	m := newSession(t, "levels")

	m, _ = press(t, m, runes("m"))
	s := showcaseOf(t, m).Showcase()
	if !s.Expanded() || len(s.Shown()) != 89 || s.ShowMore() {
		t.Fatal("Expected featured list expanded")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	s = showcaseOf(t, m).Showcase()
	if s.Selected() != "Level 1-10" || s.Expanded() {
		t.Fatalf("Expected Level 1-10 collapsed, got %q expanded=%v", s.Selected(), s.Expanded())
	}
	if len(s.Visible()) != 10 {
		t.Errorf("Expected 10 levels in 1-10, got %d", len(s.Visible()))
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	s = showcaseOf(t, m).Showcase()
	if !s.IsFeatured() || s.Expanded() || len(s.Shown()) != 10 {
		t.Error("Returning to featured should show the capped list again")
	}

	// Shift+tab from featured wraps to the last range.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := showcaseOf(t, m).Showcase().Selected(); got != "Level 81-89" {
		t.Errorf("Expected wrap to Level 81-89, got %q", got)
	}
}

func TestShowcaseSearchOpensDetail(t *testing.T) {
	m := newSession(t, "levels")

	m, _ = press(t, m, runes("/"))
	if !showcaseOf(t, m).Capturing() {
		t.Fatal("Expected search box to take input")
	}

	// Section keys are typed into the box, not applied.
	m = typeText(t, m, "l15")
	if m.Active() != "levels" {
		t.Fatal("Typing must not switch sections")
	}
	if got := showcaseOf(t, m).Showcase().Query(); got != "l15" {
		t.Fatalf("Expected query l15, got %q", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "15")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	s := showcaseOf(t, m).Showcase()
	if got := s.Visible(); len(got) != 1 || got[0].ID != 15 {
		t.Fatalf("Expected only level 15, got %v", got)
	}
	if s.ShowMore() {
		t.Error("Show more must be hidden while searching")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = follow(t, m, cmd)
	if d := m.Detail(); d == nil || d.ID() != 15 || !d.Found() {
		t.Fatalf("Expected detail of level 15, got %+v", m.Detail())
	}
}

func TestShowcaseEmptyState(t *testing.T) {
	m := newSession(t, "levels")
	m, _ = press(t, m, runes("/"))
	m = typeText(t, m, "zzz")

	if !strings.Contains(plain(m.View()), `No levels found matching "zzz".`) {
		t.Error("Expected no-results message in view")
	}

	// Esc leaves the box, a second esc clears the query.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEsc})
	if got := showcaseOf(t, m).Showcase().Query(); got != "" {
		t.Errorf("Expected query cleared, got %q", got)
	}
}

func TestShowcaseLocalizedLabels(t *testing.T) {
	m, err := NewSessionModel(testEnv(t, "zh"), "levels")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	s := showcaseOf(t, m).Showcase()
	if len(s.Visible()) != 10 {
		t.Errorf("Expected localized first range to resolve, got %d levels", len(s.Visible()))
	}
}

func TestHomeJump(t *testing.T) {
	m := newSession(t, "home")
	home := func() homeSection { return m.Section("home").(homeSection) }

	m, _ = press(t, m, runes("/"))
	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if home().Err() != "Please enter a valid level number" {
		t.Errorf("Expected invalid message, got %q", home().Err())
	}

	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeText(t, m, "200")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if home().Err() != "No guide found for this level" {
		t.Errorf("Expected not-found message, got %q", home().Err())
	}

	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeText(t, m, "42")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = follow(t, m, cmd)
	if d := m.Detail(); d == nil || d.ID() != 42 {
		t.Fatal("Expected detail of level 42")
	}
	if home().Err() != "" || home().Capturing() {
		t.Error("Successful jump should clear the error and leave the input")
	}
}

func TestHomeBrowseAll(t *testing.T) {
	m := newSession(t, "home")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = follow(t, m, cmd)
	if m.Active() != "levels" {
		t.Errorf("Expected levels section, got %q", m.Active())
	}
}

func TestDetailNavigation(t *testing.T) {
	m := newSession(t, "")
	m, _ = press(t, m, OpenLevelMsg{ID: 1})

	view := plain(m.View())
	if !strings.Contains(view, "Dreamy Room Level 1 - Game Guide and Walkthrough & Video Tips") {
		t.Error("Expected localized detail title")
	}
	if !strings.Contains(view, "Next level: Level 2") || strings.Contains(view, "Previous level") {
		t.Error("Level 1 should only link forward")
	}

	m, _ = press(t, m, runes("p"))
	if m.Detail().ID() != 1 {
		t.Error("p on the first level should stay put")
	}
	m, _ = press(t, m, runes("n"), runes("n"))
	if m.Detail().ID() != 3 {
		t.Errorf("Expected level 3, got %d", m.Detail().ID())
	}
	m, _ = press(t, m, runes("p"))
	if m.Detail().ID() != 2 {
		t.Errorf("Expected level 2, got %d", m.Detail().ID())
	}

	// Section navigation is disabled under the overlay.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Active() != "home" {
		t.Error("Arrow keys must not switch sections under the overlay")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = follow(t, m, cmd)
	if m.Detail() != nil {
		t.Error("Expected overlay closed")
	}
}

func TestDetailNotFound(t *testing.T) {
	m := newSession(t, "")
	m, _ = press(t, m, OpenLevelMsg{ID: 999})

	if m.Detail().Found() {
		t.Fatal("Level 999 should not exist")
	}
	view := plain(m.View())
	if !strings.Contains(view, "Level Not Found") || !strings.Contains(view, "Back to Level List") {
		t.Error("Expected not-found page")
	}
}

func TestBlogPaging(t *testing.T) {
	m := newSession(t, "blog")
	blog := func() blogSection { return m.Section("blog").(blogSection) }

	if blog().Page() != 1 {
		t.Fatalf("Expected page 1, got %d", blog().Page())
	}
	if !strings.Contains(plain(m.View()), "Page 1") {
		t.Error("Expected page breadcrumb")
	}

	m, _ = press(t, m, runes("n"), runes("n"))
	if blog().Page() != 2 {
		t.Errorf("Expected to stop on last page 2, got %d", blog().Page())
	}
	m, _ = press(t, m, runes("p"), runes("p"))
	if blog().Page() != 1 {
		t.Errorf("Expected to stop on page 1, got %d", blog().Page())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if blog().Reading() == nil {
		t.Fatal("Expected an open article")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if blog().Reading() != nil {
		t.Error("Expected article closed")
	}
}

func TestDocSections(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"faq", "Is the game free?"},
		{"download", "Google Play"},
		{"about", "Our Mission"},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			m := newSession(t, tt.section)
			if !strings.Contains(plain(m.View()), tt.want) {
				t.Errorf("Expected %q in %s view", tt.want, tt.section)
			}
		})
	}
}

func TestViewFitsWindow(t *testing.T) {
	m := newSession(t, "levels")
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := plain(m.View())
	if lines := strings.Count(view, "\n") + 1; lines > 30 {
		t.Errorf("View has %d lines, want at most 30", lines)
	}
	if !strings.Contains(view, "Dreamy Room") {
		t.Error("Expected brand in header")
	}
}

func TestSessionLang(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    string
	}{
		{"empty", nil, "en"},
		{"lang zh", []string{"LANG=zh_CN.UTF-8"}, "zh"},
		{"lc_all wins", []string{"LANG=en_US.UTF-8", "LC_ALL=zh_CN.UTF-8"}, "zh"},
		{"posix", []string{"LANG=C"}, "en"},
		{"unsupported", []string{"LANG=fr_FR.UTF-8"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionLang(tt.environ); got != tt.want {
				t.Errorf("SessionLang(%v) = %q, want %q", tt.environ, got, tt.want)
			}
		})
	}
}
