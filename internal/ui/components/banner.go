package components

import (
	"github.com/yourusername/folio/internal/ui"
)

// BannerSeverity defines how a placeholder banner is styled
type BannerSeverity int

const (
	SeverityInfo BannerSeverity = iota
	SeverityError
)

// Banner is the placeholder shown instead of cards
type Banner struct {
	Message  string
	Severity BannerSeverity
	Width    int
}

// NewInfoBanner creates an informational banner
func NewInfoBanner(message string) *Banner {
	return &Banner{Message: message, Severity: SeverityInfo}
}

// NewErrorBanner creates an error banner
func NewErrorBanner(message string) *Banner {
	return &Banner{Message: message, Severity: SeverityError}
}

// WithWidth sets the width
func (b *Banner) WithWidth(width int) *Banner {
	b.Width = width
	return b
}

// Render renders the banner
func (b *Banner) Render() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	style := styles.Banner
	icon := "ℹ"
	if b.Severity == SeverityError {
		style = styles.BannerError
		icon = "✗"
	}
	if b.Width > 0 {
		style = style.Width(b.Width)
	}

	return style.Render(icon + " " + b.Message)
}
