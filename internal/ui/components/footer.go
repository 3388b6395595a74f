package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/ui"
)

// Shortcut represents a keyboard shortcut
type Shortcut struct {
	Key         string
	Description string
}

// Footer represents a footer component
type Footer struct {
	Shortcuts []Shortcut
	Metadata  string // Optional metadata to display on the right
	Width     int
}

// NewFooter creates a new footer
func NewFooter(shortcuts []Shortcut) *Footer {
	return &Footer{
		Shortcuts: shortcuts,
		Width:     0, // Auto width
	}
}

// WithMetadata adds metadata to the footer
func (f *Footer) WithMetadata(metadata string) *Footer {
	f.Metadata = metadata
	return f
}

// WithWidth sets the footer width
func (f *Footer) WithWidth(width int) *Footer {
	f.Width = width
	return f
}

// Render renders the footer
func (f *Footer) Render() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	var parts []string
	for _, shortcut := range f.Shortcuts {
		key := styles.ShortcutKey.Render(shortcut.Key)
		desc := styles.ShortcutDesc.Render(shortcut.Description)
		parts = append(parts, key+" "+desc)
	}

	shortcuts := strings.Join(parts, " • ")

	if f.Metadata != "" {
		meta := styles.Metadata.Render(f.Metadata)
		if f.Width > 0 {
			spacing := f.Width - lipgloss.Width(shortcuts) - lipgloss.Width(meta)
			if spacing > 0 {
				return shortcuts + strings.Repeat(" ", spacing) + meta
			}
		}
		return shortcuts + " " + meta
	}

	return shortcuts
}

// Common footer shortcuts for reuse
var (
	ShortcutQuit = Shortcut{
		Key:         "q",
		Description: "quit",
	}
	ShortcutNavigate = Shortcut{
		Key:         "←↑↓→/hjkl",
		Description: "select",
	}
	ShortcutOpen = Shortcut{
		Key:         "enter",
		Description: "open in browser",
	}
)

// themeIcons are the terminal glyphs for the toggle icon names.
var themeIcons = map[string]string{
	domain.IconSun:  "☀",
	domain.IconMoon: "☾",
}

// ThemeShortcut names the toggle by the mode it switches to.
func ThemeShortcut(p domain.Presentation) Shortcut {
	target := domain.ThemeLight
	if !p.DarkClass {
		target = domain.ThemeDark
	}
	return Shortcut{
		Key:         "t",
		Description: themeIcons[p.ToggleIcon] + " " + target.String() + " theme",
	}
}

// PortfolioFooter creates the footer for the card browser
func PortfolioFooter(p domain.Presentation, metadata string, width int) string {
	footer := NewFooter([]Shortcut{
		ShortcutNavigate,
		ShortcutOpen,
		ThemeShortcut(p),
		ShortcutQuit,
	})
	return footer.WithMetadata(metadata).WithWidth(width).Render()
}
