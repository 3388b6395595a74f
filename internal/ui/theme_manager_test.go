package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yourusername/folio/internal/domain"
)

func TestThemes_Valid(t *testing.T) {
	for _, theme := range AllThemes() {
		t.Run(theme.Name, func(t *testing.T) {
			if err := theme.Validate(); err != nil {
				t.Errorf("theme %q is invalid: %v", theme.Name, err)
			}
		})
	}
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		mode domain.ThemeMode
		want domain.ThemeMode
	}{
		{domain.ThemeLight, domain.ThemeLight},
		{domain.ThemeDark, domain.ThemeDark},
		{domain.ThemeMode("sepia"), domain.ThemeLight},
	}

	for _, tt := range tests {
		if got := ThemeFor(tt.mode).Mode; got != tt.want {
			t.Errorf("ThemeFor(%q).Mode = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestSetGlobalMode(t *testing.T) {
	defer SetGlobalMode(domain.ThemeLight)

	SetGlobalMode(domain.ThemeDark)
	tm := GetGlobalThemeManager()
	if tm.GetCurrentTheme().Mode != domain.ThemeDark {
		t.Fatalf("current mode = %q, want dark", tm.GetCurrentTheme().Mode)
	}
	if string(tm.GetStyles().ColorBorder) != ThemeDark.Colors.Border {
		t.Errorf("styles were not regenerated for the dark palette")
	}

	SetGlobalMode(domain.ThemeLight)
	if string(tm.GetStyles().ColorBorder) != ThemeLight.Colors.Border {
		t.Errorf("styles were not regenerated for the light palette")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Success("saved")
	p.Error("broken")
	p.Info("hello")
	p.Subtle("quiet")

	out := buf.String()
	for _, want := range []string{"[SUCCESS] saved", "[ERROR] broken", "[INFO] hello", "quiet"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
