package catalog

import "strconv"

// Range is an inclusive bucket of level IDs used as a navigation tab.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether id falls inside the range.
func (r Range) Contains(id int) bool {
	return id >= r.Start && id <= r.End
}

// Label renders the tab label, e.g. "Level 11-20" or "第 11-20 关".
func (r Range) Label(prefix, suffix string) string {
	return prefix + strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End) + suffix
}

// DefaultRanges are the level tabs shown next to the featured tab.
// The last bucket stops at 89; levels past it are only reachable through
// search or the featured tab (see Uncovered).
func DefaultRanges() []Range {
	return []Range{
		{Start: 1, End: 10},
		{Start: 11, End: 20},
		{Start: 21, End: 30},
		{Start: 31, End: 40},
		{Start: 41, End: 50},
		{Start: 51, End: 60},
		{Start: 61, End: 70},
		{Start: 71, End: 80},
		{Start: 81, End: 89},
	}
}

// FilterRange keeps the levels whose ID lies in r, preserving order.
func FilterRange(levels []Level, r Range) []Level {
	out := make([]Level, 0, len(levels))
	for _, lvl := range levels {
		if r.Contains(lvl.ID) {
			out = append(out, lvl)
		}
	}
	return out
}

// Uncovered returns the IDs, in dataset order, that no range contains.
func Uncovered(levels []Level, ranges []Range) []int {
	var ids []int
	for _, lvl := range levels {
		covered := false
		for _, r := range ranges {
			if r.Contains(lvl.ID) {
				covered = true
				break
			}
		}
		if !covered {
			ids = append(ids, lvl.ID)
		}
	}
	return ids
}
