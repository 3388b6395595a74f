package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/folio/internal/ui"
	"github.com/yourusername/folio/internal/ui/layout"
)

// RenderHeader renders the title box and divider above the card grid
func RenderHeader(account string, width int) string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	line := styles.Header.Render("Projects")
	if account != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", styles.Account.Render("@"+account))
	}
	return line + "\n" + RenderDivider(width)
}

// RenderDivider renders a one-line horizontal divider
func RenderDivider(width int) string {
	styles := ui.GetGlobalThemeManager().GetStyles()
	return lipgloss.NewStyle().Foreground(styles.ColorBorder).Render(strings.Repeat("─", layout.NormalizeWidth(width)))
}
