package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// InitialFeaturedCount is how many featured levels are shown before
// the show-more action is used.
const InitialFeaturedCount = 10

// Text holds the localized strings the showcase needs to build labels
// and empty-state messages.
type Text struct {
	Featured    string // Label of the featured tab
	RangePrefix string // e.g. "Level "
	RangeSuffix string // e.g. "" or " 关"
	NoLevels    string
	NoResults   string // Contains the {query} placeholder
}

// QueryPlaceholder is substituted with the raw search text in Text.NoResults.
const QueryPlaceholder = "{query}"

// Showcase is the filter state of one level listing view.
// The zero value is not usable; create one with NewShowcase.
type Showcase struct {
	catalog       *Catalog
	ranges        []Range
	text          Text
	featuredCount int

	selected string
	expanded bool
	query    string
}

// ShowcaseOption customises a Showcase.
type ShowcaseOption func(*Showcase)

// WithRanges replaces DefaultRanges.
func WithRanges(ranges []Range) ShowcaseOption {
	return func(s *Showcase) {
		s.ranges = ranges
	}
}

// WithFeaturedCount replaces InitialFeaturedCount. Non-positive values are ignored.
func WithFeaturedCount(n int) ShowcaseOption {
	return func(s *Showcase) {
		if n > 0 {
			s.featuredCount = n
		}
	}
}

// NewShowcase creates a showcase over c with the featured tab selected.
func NewShowcase(c *Catalog, text Text, opts ...ShowcaseOption) Showcase {
	s := Showcase{
		catalog:       c,
		ranges:        DefaultRanges(),
		text:          text,
		featuredCount: InitialFeaturedCount,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.selected = text.Featured
	return s
}

// Labels returns the featured label followed by one label per range.
func (s Showcase) Labels() []string {
	labels := make([]string, 0, len(s.ranges)+1)
	labels = append(labels, s.text.Featured)
	for _, r := range s.ranges {
		labels = append(labels, r.Label(s.text.RangePrefix, s.text.RangeSuffix))
	}
	return labels
}

// Selected returns the active tab label.
func (s Showcase) Selected() string { return s.selected }

// Expanded reports whether the featured tab has been expanded.
func (s Showcase) Expanded() bool { return s.expanded }

// Query returns the search text as entered.
func (s Showcase) Query() string { return s.query }

// FeaturedCount returns the initial featured cap.
func (s Showcase) FeaturedCount() int { return s.featuredCount }

// IsFeatured reports whether the featured tab is active.
func (s Showcase) IsFeatured() bool {
	return s.selected == s.text.Featured
}

// Searching reports whether a query has been typed. Whitespace counts:
// it hides the show-more button even though it filters nothing.
func (s Showcase) Searching() bool {
	return s.query != ""
}

// SelectRange activates a tab. Leaving the featured tab collapses it.
func (s *Showcase) SelectRange(label string) {
	s.selected = label
	if label != s.text.Featured {
		s.expanded = false
	}
}

// SetQuery stores the search text verbatim.
func (s *Showcase) SetQuery(text string) {
	s.query = text
}

// ExpandFeatured lifts the featured cap. No-op outside the featured tab.
func (s *Showcase) ExpandFeatured() {
	if s.IsFeatured() {
		s.expanded = true
	}
}

// Reset returns the showcase to its initial state.
func (s *Showcase) Reset() {
	s.selected = s.text.Featured
	s.expanded = false
	s.query = ""
}

// rangeFor resolves the selected label to its range definition.
func (s Showcase) rangeFor(label string) (Range, bool) {
	for _, r := range s.ranges {
		if r.Label(s.text.RangePrefix, s.text.RangeSuffix) == label {
			return r, true
		}
	}
	return Range{}, false
}

// Visible returns the levels matching the active tab and search, in
// dataset order. It is recomputed on every call.
func (s Showcase) Visible() []Level {
	levels := s.catalog.Levels()

	if !s.IsFeatured() {
		r, ok := s.rangeFor(s.selected)
		if !ok {
			return []Level{}
		}
		levels = FilterRange(levels, r)
	}

	return FilterQuery(levels, s.query)
}

// ShowMore reports whether the show-more action should be offered.
func (s Showcase) ShowMore() bool {
	return !s.Searching() &&
		s.IsFeatured() &&
		!s.expanded &&
		len(s.Visible()) > s.featuredCount
}

// Hidden reports whether the item at index of Visible is held back by
// the featured cap. Hidden items stay in the result so expanding needs
// no recomputation.
func (s Showcase) Hidden(index int) bool {
	return s.IsFeatured() &&
		!s.expanded &&
		!s.Searching() &&
		index >= s.featuredCount
}

// Shown returns the visible levels minus the ones held back by the
// featured cap.
func (s Showcase) Shown() []Level {
	visible := s.Visible()
	for i := range visible {
		if s.Hidden(i) {
			return visible[:i]
		}
	}
	return visible
}

// EmptyMessage returns the empty-state message, or "" when there are
// visible levels.
func (s Showcase) EmptyMessage() string {
	if len(s.Visible()) > 0 {
		return ""
	}
	if s.query != "" {
		return strings.Replace(s.text.NoResults, QueryPlaceholder, s.query, 1)
	}
	return s.text.NoLevels
}

// FilterQuery keeps levels whose decimal ID or lowercased title contains
// the lowercased, trimmed query. A blank query keeps everything.
func FilterQuery(levels []Level, query string) []Level {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(levels)
	}

	out := make([]Level, 0, len(levels))
	for _, lvl := range levels {
		if strings.Contains(strconv.Itoa(lvl.ID), q) ||
			strings.Contains(strings.ToLower(lvl.Title), q) {
			out = append(out, lvl)
		}
	}
	return out
}
