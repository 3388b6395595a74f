package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/folio/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	// ColorBorder is exposed for one-off rules drawn outside a style.
	ColorBorder lipgloss.Color

	// Header styles
	Header  lipgloss.Style
	Account lipgloss.Style

	// Card styles
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Description  lipgloss.Style
	Stars        lipgloss.Style
	Link         lipgloss.Style
	Cover        lipgloss.Style

	// Placeholder banner shown instead of cards
	Banner      lipgloss.Style
	BannerError lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Metadata     lipgloss.Style

	// Status indicator styles
	StatusOk      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	Separator lipgloss.Style
	Loading   lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// SetMode switches to the palette of mode.
func (tm *ThemeManager) SetMode(mode domain.ThemeMode) {
	tm.SetTheme(ThemeFor(mode))
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors
	bg := tm.currentTheme.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorSelected := lipgloss.Color(c.Selected)
	colorText := lipgloss.Color(c.Text)
	colorStar := lipgloss.Color(c.Star)
	colorLink := lipgloss.Color(c.Link)

	tm.styles.ColorBorder = colorBorder

	// Header styles
	tm.styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	tm.styles.Account = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	// Card styles
	tm.styles.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(lipgloss.Color(bg.Card)).
		Padding(0, 1)

	tm.styles.CardSelected = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(colorSelected).
		Background(lipgloss.Color(bg.CardSelected)).
		Padding(0, 1)

	tm.styles.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	tm.styles.Description = lipgloss.NewStyle().
		Foreground(colorText)

	tm.styles.Stars = lipgloss.NewStyle().
		Foreground(colorStar).
		Bold(true)

	tm.styles.Link = lipgloss.NewStyle().
		Foreground(colorLink).
		Underline(true)

	tm.styles.Cover = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	// Banner styles
	tm.styles.Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Background(lipgloss.Color(bg.Banner)).
		Foreground(colorText).
		Padding(1, 3)

	tm.styles.BannerError = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorError).
		Background(lipgloss.Color(bg.Banner)).
		Foreground(colorText).
		Padding(1, 3)

	// Footer styles
	tm.styles.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		PaddingTop(1)

	tm.styles.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	tm.styles.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.Metadata = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	// Status indicator styles
	tm.styles.StatusOk = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	tm.styles.StatusWarning = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	tm.styles.StatusError = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	tm.styles.StatusInfo = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	tm.styles.Separator = lipgloss.NewStyle().
		Foreground(colorBorder).
		MarginTop(1).
		MarginBottom(1)

	tm.styles.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)
}

// RenderSeparator returns a styled horizontal separator.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}
