package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// WrapText wraps text to a specified width while preserving words
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	// Use lipgloss for wrapping with word boundaries
	return lipgloss.NewStyle().Width(width).Render(text)
}

// TruncateText truncates text to a maximum number of runes with ellipsis
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return ""
	}

	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// Pluralize returns singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// FormatCount formats a count with singular/plural noun
func FormatCount(count int, singular, plural string) string {
	countStr := lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(count))
	return countStr + " " + Pluralize(count, singular, plural)
}
