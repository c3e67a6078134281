package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// renderMarkdown renders md for a terminal of the given width using the
// current theme's glamour style. On renderer failure the source is
// returned unchanged so the page still reads.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(currentTheme.MarkdownStyle),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(strings.TrimSpace(md))
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// window returns the [start, end) slice of n rows that keeps cursor
// visible in height rows.
func window(cursor, n, height int) (start, end int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start = cursor - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}
