package ui

import "github.com/yourusername/folio/internal/domain"

// Theme presets, one per mode.
var (
	// ThemeLight is the default palette.
	ThemeLight = domain.Theme{
		Name:        "light",
		Description: "Light palette with warm orange-rust accents (default)",
		Mode:        domain.ThemeLight,
		Colors: domain.ThemeColors{
			Primary:   "#A14A2F",
			Secondary: "#C15F3C",
			Success:   "#4E7A41",
			Warning:   "#A8671F",
			Error:     "#A23B3B",
			Muted:     "#6B665C",
			Border:    "#D6D1C4",
			Selected:  "#C15F3C",
			Text:      "#2B2823",
			Star:      "#B8860B",
			Link:      "#1F5FA8",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Page:         "#FAF9F5",
			Card:         "#FFFFFF",
			CardSelected: "#F3EEE4",
			Banner:       "#F0ECE2",
		},
	}

	// ThemeDark is the dark palette.
	ThemeDark = domain.Theme{
		Name:        "dark",
		Description: "Dark palette with the same accents",
		Mode:        domain.ThemeDark,
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Selected:  "#C15F3C",
			Text:      "#E8E6E3",
			Star:      "#E3B341",
			Link:      "#6CB6FF",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Page:         "#1A1A1A",
			Card:         "#22201D",
			CardSelected: "#2F2A1F",
			Banner:       "#2A2622",
		},
	}
)

// AllThemes returns a slice of all available themes.
func AllThemes() []domain.Theme {
	return []domain.Theme{
		ThemeLight,
		ThemeDark,
	}
}

// ThemeFor returns the palette for a mode, light for anything unknown.
func ThemeFor(mode domain.ThemeMode) domain.Theme {
	for _, theme := range AllThemes() {
		if theme.Mode == mode {
			return theme
		}
	}
	return ThemeLight
}
