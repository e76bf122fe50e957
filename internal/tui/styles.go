package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hmans/boards/internal/ui"
)

var (
	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fff")).
			Background(ui.ColorPrimary).
			Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ui.ColorPrimary)

	helpKeyStyle = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(ui.ColorMuted)

	statusStyle = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle  = lipgloss.NewStyle().Foreground(ui.ColorDanger)
)

// keyHint renders a "key action" pair for footers.
func keyHint(key, action string) string {
	return helpKeyStyle.Render(key) + " " + helpStyle.Render(action)
}
