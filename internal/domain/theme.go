package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ThemeMode is the persisted light/dark preference.
type ThemeMode string

const (
	// ThemeLight is the default mode.
	ThemeLight ThemeMode = "light"
	// ThemeDark is the dark mode.
	ThemeDark ThemeMode = "dark"
)

// ThemePreferenceKey is the key the preference is stored under.
const ThemePreferenceKey = "theme"

// String returns the string representation of the mode.
func (m ThemeMode) String() string {
	return string(m)
}

// ParseThemeMode parses a stored preference value.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.TrimSpace(s)) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("invalid theme mode: %q", s)
	}
}

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ResolveThemeMode picks the initial mode: a valid persisted value wins,
// then the system dark signal, then light. A stored value other than light
// or dark counts as no preference.
func ResolveThemeMode(persisted string, systemPrefersDark bool) ThemeMode {
	if mode, err := ParseThemeMode(persisted); err == nil {
		return mode
	}
	if systemPrefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle icons. The icon names the mode a press switches to.
const (
	IconMoon = "moon"
	IconSun  = "sun"
)

// Presentation is everything a front end needs to draw the current mode.
type Presentation struct {
	Mode ThemeMode
	// DarkClass is the page-level dark style flag.
	DarkClass bool
	// ToggleIcon is IconSun in dark mode and IconMoon in light mode.
	ToggleIcon string
}

// PresentationFor computes the presentation of a mode.
func PresentationFor(mode ThemeMode) Presentation {
	if mode == ThemeDark {
		return Presentation{Mode: ThemeDark, DarkClass: true, ToggleIcon: IconSun}
	}
	return Presentation{Mode: ThemeLight, DarkClass: false, ToggleIcon: IconMoon}
}

// Theme represents a visual palette for one mode.
type Theme struct {
	Name        string
	Description string
	Mode        ThemeMode
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the foreground palette for a theme.
type ThemeColors struct {
	// Primary accent color (headings, selected borders)
	Primary string

	// Secondary accent color
	Secondary string

	Success string
	Warning string
	Error   string

	// Muted text color (descriptions, footers)
	Muted string

	// Border color for cards
	Border string

	// Selected card border
	Selected string

	// Main text color
	Text string

	// Star count color
	Star string

	// Link color
	Link string
}

// ThemeBackgrounds defines background colors.
type ThemeBackgrounds struct {
	Page         string
	Card         string
	CardSelected string
	Banner       string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	colors := map[string]string{
		"Primary":      t.Colors.Primary,
		"Secondary":    t.Colors.Secondary,
		"Success":      t.Colors.Success,
		"Warning":      t.Colors.Warning,
		"Error":        t.Colors.Error,
		"Muted":        t.Colors.Muted,
		"Border":       t.Colors.Border,
		"Selected":     t.Colors.Selected,
		"Text":         t.Colors.Text,
		"Star":         t.Colors.Star,
		"Link":         t.Colors.Link,
		"Page":         t.Backgrounds.Page,
		"Card":         t.Backgrounds.Card,
		"CardSelected": t.Backgrounds.CardSelected,
		"Banner":       t.Backgrounds.Banner,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", name, color)
		}
	}

	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	if _, err := ParseThemeMode(string(t.Mode)); err != nil {
		return fmt.Errorf("theme %s: %w", t.Name, err)
	}

	return nil
}
