package ui

import (
	"fmt"
	"io"
)

// Printer writes themed one-line messages for the non-interactive commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints a success message
func (p *Printer) Success(message string) {
	styles := defaultThemeManager.GetStyles()
	fmt.Fprintf(p.out, "%s %s\n", styles.StatusOk.Render("[SUCCESS]"), message)
}

// Error prints an error message
func (p *Printer) Error(message string) {
	styles := defaultThemeManager.GetStyles()
	fmt.Fprintf(p.out, "%s %s\n", styles.StatusError.Render("[ERROR]"), message)
}

// Info prints an info message
func (p *Printer) Info(message string) {
	styles := defaultThemeManager.GetStyles()
	fmt.Fprintf(p.out, "%s %s\n", styles.StatusInfo.Render("[INFO]"), message)
}

// Subtle prints a muted message
func (p *Printer) Subtle(message string) {
	fmt.Fprintln(p.out, defaultThemeManager.GetStyles().Metadata.Render(message))
}

// Separator prints a horizontal rule
func (p *Printer) Separator(width int) {
	fmt.Fprintln(p.out, renderSeparator(width))
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return defaultThemeManager.GetStyles().StatusInfo.Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	return defaultThemeManager.GetStyles().ShortcutDesc.Render(label)
}
