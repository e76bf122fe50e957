package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorBlue      = lipgloss.Color("#3B82F6") // Blue
)

// Text styles
var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Danger  = lipgloss.NewStyle().Foreground(ColorDanger)
	Primary = lipgloss.NewStyle().Foreground(ColorPrimary)
)

// TreeLine styles the connectors of the author tree
var TreeLine = lipgloss.NewStyle().Foreground(ColorSecondary)

// ID style - distinctive for board and user IDs
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style
var Title = lipgloss.NewStyle().Bold(true)

// Header style for table column headers
var Header = lipgloss.NewStyle().Foreground(ColorMuted)

// RenderAuthor returns the author's name, or a muted placeholder for a dangling user reference.
func RenderAuthor(name string, found bool) string {
	if !found {
		return Warning.Render("(unknown)")
	}
	return name
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
