package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the guide.
type Theme struct {
	// Header
	Brand     lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	// Page text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Link     lipgloss.Style

	// Showcase
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Badge      lipgloss.Style
	Input      lipgloss.Style

	// Detail and blog
	Breadcrumb lipgloss.Style
	Box        lipgloss.Style

	// MarkdownStyle is the glamour standard style name.
	MarkdownStyle string
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Brand:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Padding(0, 1),

		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Underline(true),

		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		TabActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("135")).Padding(0, 1),
		Card:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("135")).Padding(0, 1),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),

		Breadcrumb: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),

		MarkdownStyle: "dark",
	}
}

// PlainTheme returns a colorless theme for terminals that set NO_COLOR.
func PlainTheme() Theme {
	theme := DefaultTheme()
	theme.Brand = lipgloss.NewStyle().Bold(true)
	theme.NavItem = lipgloss.NewStyle().Padding(0, 1)
	theme.NavActive = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.Subtitle = lipgloss.NewStyle()
	theme.Muted = lipgloss.NewStyle()
	theme.Error = lipgloss.NewStyle()
	theme.Link = lipgloss.NewStyle()
	theme.Tab = lipgloss.NewStyle().Padding(0, 1)
	theme.TabActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	theme.Card = lipgloss.NewStyle()
	theme.CardActive = lipgloss.NewStyle().Bold(true)
	theme.Badge = lipgloss.NewStyle()
	theme.Input = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	theme.Breadcrumb = lipgloss.NewStyle()
	theme.Box = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	theme.MarkdownStyle = "notty"
	return theme
}

// Global theme variable (can be changed at startup)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
