package ui

import "github.com/yourusername/folio/internal/domain"

// defaultThemeManager is the global theme manager instance.
// It starts with the light palette and is switched once the theme
// preference has been resolved.
var defaultThemeManager *ThemeManager

func init() {
	defaultThemeManager = NewThemeManager(ThemeLight)
}

// SetGlobalMode updates the global theme manager to the palette of mode.
// All components read styles through GetGlobalThemeManager, so they pick
// up the change on their next render.
func SetGlobalMode(mode domain.ThemeMode) {
	defaultThemeManager.SetMode(mode)
}

// GetGlobalThemeManager returns the global theme manager instance.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}

func renderSeparator(width int) string {
	return defaultThemeManager.RenderSeparator(width)
}
