// Package catalog holds the level dataset and the level showcase filter.
// Nothing in here performs I/O; loading lives in the levels package.
package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidID is returned when a level number is not a positive integer.
	ErrInvalidID = errors.New("catalog: invalid level number")

	// ErrNotFound is returned when no level has the requested ID.
	ErrNotFound = errors.New("catalog: level not found")
)

// Level is a single walkthrough entry.
type Level struct {
	ID       int
	Title    string
	VideoURL string
	ImageURL string // Optional thumbnail override
}

// Thumbnail returns the explicit image if set, otherwise the YouTube
// thumbnail of the walkthrough video.
func (l Level) Thumbnail() string {
	if l.ImageURL != "" {
		return l.ImageURL
	}
	id := VideoID(l.VideoURL)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

// VideoID extracts the YouTube video ID from the common URL forms.
// Returns "" when the URL is not recognised.
func VideoID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtu.be":
		return firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/v/", "/live/"} {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				return firstSegment(rest)
			}
		}
	}
	return ""
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// ParseID parses a user-entered level number.
func ParseID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, text)
	}
	return id, nil
}

// Catalog is the read-only, ordered level dataset shared by every view.
type Catalog struct {
	levels []Level
	index  map[int]int // ID -> position
}

// New builds a catalog from levels in dataset order.
// Duplicate IDs keep their first occurrence for lookups.
func New(levels []Level) *Catalog {
	c := &Catalog{
		levels: slices.Clone(levels),
		index:  make(map[int]int, len(levels)),
	}
	for i, lvl := range c.levels {
		if _, exists := c.index[lvl.ID]; !exists {
			c.index[lvl.ID] = i
		}
	}
	return c
}

// Levels returns the dataset in its original order.
// The returned slice must not be modified.
func (c *Catalog) Levels() []Level {
	return c.levels
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Lookup returns the level with the given ID.
func (c *Catalog) Lookup(id int) (Level, bool) {
	i, ok := c.index[id]
	if !ok {
		return Level{}, false
	}
	return c.levels[i], true
}

// Get is Lookup with an error for callers that report it.
func (c *Catalog) Get(id int) (Level, error) {
	lvl, ok := c.Lookup(id)
	if !ok {
		return Level{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return lvl, nil
}

// Neighbors returns the levels before and after id in dataset order.
func (c *Catalog) Neighbors(id int) (prev, next *Level) {
	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := c.levels[i-1]
		prev = &p
	}
	if i < len(c.levels)-1 {
		n := c.levels[i+1]
		next = &n
	}
	return prev, next
}
