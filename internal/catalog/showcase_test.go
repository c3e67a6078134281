package catalog

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

var testText = Text{
	Featured:    "Featured",
	RangePrefix: "Level ",
	RangeSuffix: "",
	NoLevels:    "No levels found.",
	NoResults:   `No levels match "{query}".`,
}

// makeLevels builds ids 1..n with titles that never contain digits.
func makeLevels(n int) []Level {
	names := []string{"Cozy Bedroom", "Sunny Kitchen", "Tiny Bathroom", "Garden Shed", "Attic"}
	levels := make([]Level, n)
	for i := range levels {
		id := i + 1
		levels[i] = Level{
			ID:       id,
			Title:    names[i%len(names)],
			VideoURL: fmt.Sprintf("https://www.youtube.com/watch?v=vid%08d", id),
		}
	}
	return levels
}

func ids(levels []Level) []int {
	out := make([]int, len(levels))
	for i, l := range levels {
		out[i] = l.ID
	}
	return out
}

func TestShowcaseInitialState(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)

	if s.Selected() != "Featured" {
		t.Errorf("Selected() = %q, want Featured", s.Selected())
	}
	if s.Expanded() {
		t.Error("showcase should start collapsed")
	}
	if s.Query() != "" {
		t.Errorf("Query() = %q, want empty", s.Query())
	}
}

func TestShowcaseLabels(t *testing.T) {
	s := NewShowcase(New(nil), testText)
	labels := s.Labels()

	if len(labels) != 10 {
		t.Fatalf("expected 10 labels, got %d: %v", len(labels), labels)
	}
	if labels[0] != "Featured" {
		t.Errorf("first label = %q, want Featured", labels[0])
	}
	if labels[2] != "Level 11-20" {
		t.Errorf("labels[2] = %q, want Level 11-20", labels[2])
	}
	if labels[9] != "Level 81-89" {
		t.Errorf("last label = %q, want Level 81-89", labels[9])
	}

	zh := NewShowcase(New(nil), Text{Featured: "精选", RangePrefix: "第 ", RangeSuffix: " 关"})
	if got := zh.Labels()[1]; got != "第 1-10 关" {
		t.Errorf("localized label = %q, want 第 1-10 关", got)
	}
}

func TestFeaturedDefaultView(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)

	visible := s.Visible()
	if len(visible) != 89 {
		t.Fatalf("featured should expose all 89 levels, got %d", len(visible))
	}
	for i := range visible {
		if got, want := s.Hidden(i), i >= 10; got != want {
			t.Errorf("Hidden(%d) = %v, want %v", i, got, want)
		}
	}
	if !s.ShowMore() {
		t.Error("show-more should be offered for 89 featured levels")
	}
	if got := len(s.Shown()); got != 10 {
		t.Errorf("Shown() returned %d levels, want 10", got)
	}

	s.ExpandFeatured()
	if s.ShowMore() {
		t.Error("show-more should disappear after expanding")
	}
	if s.Hidden(50) {
		t.Error("no item should be hidden after expanding")
	}
	if got := len(s.Shown()); got != 89 {
		t.Errorf("Shown() after expand returned %d levels, want 89", got)
	}
}

func TestRangeFilterSoundAndComplete(t *testing.T) {
	levels := makeLevels(89)
	for _, r := range DefaultRanges() {
		got := FilterRange(levels, r)
		for _, lvl := range got {
			if !r.Contains(lvl.ID) {
				t.Errorf("range %v returned out-of-range id %d", r, lvl.ID)
			}
		}
		want := 0
		for _, lvl := range levels {
			if r.Contains(lvl.ID) {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("range %v returned %d levels, want %d", r, len(got), want)
		}
	}
}

func TestRangeSelection(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SelectRange("Level 21-30")

	want := []int{21, 22, 23, 24, 25, 26, 27, 28, 29, 30}
	if got := ids(s.Visible()); !slices.Equal(got, want) {
		t.Errorf("Visible() = %v, want %v", got, want)
	}
	if s.ShowMore() {
		t.Error("show-more is only offered on the featured tab")
	}
	for i := range want {
		if s.Hidden(i) {
			t.Errorf("Hidden(%d) should be false outside featured", i)
		}
	}
}

func TestUnknownRangeLabelYieldsEmpty(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SelectRange("Level 200-300")

	if got := s.Visible(); len(got) != 0 {
		t.Errorf("unknown label should yield no levels, got %v", ids(got))
	}
	if got := s.EmptyMessage(); got != "No levels found." {
		t.Errorf("EmptyMessage() = %q", got)
	}
}

func TestSearchCaseInsensitiveAndTrimmed(t *testing.T) {
	levels := []Level{
		{ID: 1, Title: "Cozy Bedroom"},
		{ID: 2, Title: "Sunny KITCHEN"},
		{ID: 12, Title: "Attic"},
	}

	tests := []struct {
		query string
		want  []int
	}{
		{"kitchen", []int{2}},
		{"KiTcHeN", []int{2}},
		{"  kitchen  ", []int{2}},
		{"1", []int{1, 12}},
		{"2", []int{2, 12}},
		{"o", []int{1}},
		{"", []int{1, 2, 12}},
		{"   ", []int{1, 2, 12}},
		{"nothing", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(FilterQuery(levels, tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchNarrowsWithinRange(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SelectRange("Level 11-20")
	s.SetQuery("5")

	if got := ids(s.Visible()); !slices.Equal(got, []int{15}) {
		t.Errorf("Visible() = %v, want [15]", got)
	}
}

func TestRangeAndSearchCompose(t *testing.T) {
	levels := makeLevels(89)
	queries := []string{"", "1", "8", "room", "ATTIC", " 3 ", "zzz"}

	for _, r := range DefaultRanges() {
		for _, q := range queries {
			a := ids(FilterQuery(FilterRange(levels, r), q))
			b := ids(FilterRange(FilterQuery(levels, q), r))
			if !slices.Equal(a, b) {
				t.Errorf("range %v query %q: range-then-search %v != search-then-range %v", r, q, a, b)
			}

			var want []int
			for _, lvl := range levels {
				if r.Contains(lvl.ID) && len(FilterQuery([]Level{lvl}, q)) == 1 {
					want = append(want, lvl.ID)
				}
			}
			if len(want) == 0 {
				want = []int{}
			}
			if !slices.Equal(a, want) {
				t.Errorf("range %v query %q: got %v, want intersection %v", r, q, a, want)
			}
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	shuffled := []Level{
		{ID: 17, Title: "Attic"},
		{ID: 3, Title: "Attic"},
		{ID: 12, Title: "Attic"},
		{ID: 11, Title: "Garden"},
		{ID: 19, Title: "Attic"},
	}
	s := NewShowcase(New(shuffled), testText)

	if got := ids(s.Visible()); !slices.Equal(got, []int{17, 3, 12, 11, 19}) {
		t.Errorf("featured order = %v", got)
	}

	s.SelectRange("Level 11-20")
	s.SetQuery("attic")
	if got := ids(s.Visible()); !slices.Equal(got, []int{17, 12, 19}) {
		t.Errorf("filtered order = %v, want [17 12 19]", got)
	}
}

func TestShowMoreCombinations(t *testing.T) {
	// One wide custom range lets a non-featured tab exceed the cap too.
	wide := []Range{{Start: 1, End: 100}}

	for mask := 0; mask < 16; mask++ {
		searching := mask&1 != 0
		featured := mask&2 != 0
		expanded := mask&4 != 0
		many := mask&8 != 0

		n := 5
		if many {
			n = 30
		}
		s := NewShowcase(New(makeLevels(n)), testText, WithRanges(wide))
		if !featured {
			s.selected = "Level 1-100"
		}
		s.expanded = expanded
		if searching {
			// Matches every title so the count stays the same.
			s.query = " "
		}

		want := !searching && featured && !expanded && many
		if got := s.ShowMore(); got != want {
			t.Errorf("search=%v featured=%v expanded=%v many=%v: ShowMore() = %v, want %v",
				searching, featured, expanded, many, got, want)
		}
	}
}

func TestShowMoreBoundary(t *testing.T) {
	exactly := NewShowcase(New(makeLevels(10)), testText)
	if exactly.ShowMore() {
		t.Error("10 levels do not exceed the cap of 10")
	}

	eleven := NewShowcase(New(makeLevels(11)), testText)
	if !eleven.ShowMore() {
		t.Error("11 levels exceed the cap of 10")
	}
}

func TestSelectRangeResetsExpanded(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.ExpandFeatured()
	if !s.Expanded() {
		t.Fatal("ExpandFeatured should expand on the featured tab")
	}

	s.SelectRange("Level 1-10")
	if s.Expanded() {
		t.Error("leaving featured must collapse it")
	}

	s.SelectRange("Level 11-20")
	if s.Expanded() {
		t.Error("expanded must stay false between range tabs")
	}

	s.SelectRange("Featured")
	if s.Expanded() {
		t.Error("returning to featured should show the collapsed view")
	}
}

func TestSelectRangeKeepsQuery(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SetQuery("  attic ")
	s.SelectRange("Level 31-40")

	if s.Query() != "  attic " {
		t.Errorf("query changed to %q", s.Query())
	}
}

func TestSelectFeaturedKeepsExpanded(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.ExpandFeatured()
	s.SelectRange("Featured")
	if !s.Expanded() {
		t.Error("re-selecting featured should not collapse it")
	}
}

func TestExpandOutsideFeaturedIsNoop(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SelectRange("Level 1-10")
	s.ExpandFeatured()
	if s.Expanded() {
		t.Error("ExpandFeatured should be a no-op outside featured")
	}
}

func TestSearchDisablesFeaturedCap(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SetQuery("1")

	visible := s.Visible()
	if len(visible) <= 10 {
		t.Fatalf("expected more than 10 matches for \"1\", got %d", len(visible))
	}
	for i := range visible {
		if s.Hidden(i) {
			t.Fatalf("Hidden(%d) should be false while searching", i)
		}
	}
	if s.ShowMore() {
		t.Error("show-more is hidden while searching")
	}
}

func TestEmptyStateMessages(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	if got := s.EmptyMessage(); got != "" {
		t.Errorf("EmptyMessage() with results = %q, want empty", got)
	}

	s.SetQuery("notarealtitleoranumber999")
	if got, want := s.EmptyMessage(), `No levels match "notarealtitleoranumber999".`; got != want {
		t.Errorf("EmptyMessage() = %q, want %q", got, want)
	}

	// The raw text is substituted, untrimmed and unescaped.
	s.SetQuery(" <b>x</b> ")
	if got := s.EmptyMessage(); !strings.Contains(got, `" <b>x</b> "`) {
		t.Errorf("EmptyMessage() = %q, want the raw query", got)
	}

	empty := NewShowcase(New(nil), testText)
	if got := empty.EmptyMessage(); got != "No levels found." {
		t.Errorf("EmptyMessage() on empty dataset = %q", got)
	}
}

func TestEmptyStateReplacesFirstPlaceholderOnly(t *testing.T) {
	text := testText
	text.NoResults = "{query} / {query}"
	s := NewShowcase(New(makeLevels(3)), text)
	s.SetQuery("zzz")

	if got := s.EmptyMessage(); got != "zzz / {query}" {
		t.Errorf("EmptyMessage() = %q", got)
	}
}

func TestLevelBeyondLastRange(t *testing.T) {
	levels := makeLevels(90)
	s := NewShowcase(New(levels), testText)

	for _, label := range s.Labels()[1:] {
		s.SelectRange(label)
		for _, lvl := range s.Visible() {
			if lvl.ID == 90 {
				t.Fatalf("id 90 reachable through tab %q", label)
			}
		}
	}

	s.SelectRange("Featured")
	s.SetQuery("90")
	if got := ids(s.Visible()); !slices.Equal(got, []int{90}) {
		t.Errorf("search for 90 = %v, want [90]", got)
	}

	if got := Uncovered(levels, DefaultRanges()); !slices.Equal(got, []int{90}) {
		t.Errorf("Uncovered() = %v, want [90]", got)
	}
}

func TestWithFeaturedCount(t *testing.T) {
	s := NewShowcase(New(makeLevels(20)), testText, WithFeaturedCount(5))
	if got := len(s.Shown()); got != 5 {
		t.Errorf("Shown() = %d levels, want 5", got)
	}

	ignored := NewShowcase(New(makeLevels(20)), testText, WithFeaturedCount(0))
	if ignored.FeaturedCount() != InitialFeaturedCount {
		t.Errorf("FeaturedCount() = %d, want default", ignored.FeaturedCount())
	}
}

func TestReset(t *testing.T) {
	s := NewShowcase(New(makeLevels(89)), testText)
	s.SetQuery("x")
	s.SelectRange("Level 1-10")
	s.Reset()

	if !s.IsFeatured() || s.Expanded() || s.Query() != "" {
		t.Errorf("Reset() left state selected=%q expanded=%v query=%q",
			s.Selected(), s.Expanded(), s.Query())
	}
}
