package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/ui/layout"
)

// GridOptions controls how a portfolio is laid out.
type GridOptions struct {
	Width      int
	Selected   int // -1 for none
	Hyperlinks bool
}

// RenderPortfolio draws the whole portfolio from scratch: a placeholder
// banner for loading, empty or failed states, otherwise the cards in order.
// The output depends only on its arguments, so rendering twice is the same
// as rendering once.
func RenderPortfolio(p domain.Portfolio, opts GridOptions) string {
	if !p.HasCards() {
		var banner *Banner
		if p.State == domain.PortfolioFailed {
			banner = NewErrorBanner(p.Message())
		} else {
			banner = NewInfoBanner(p.Message())
		}
		return banner.Render()
	}

	return lipgloss.JoinVertical(lipgloss.Left, RenderRows(p, opts)...)
}

// RenderRows renders the card rows of a loaded portfolio, one string per
// grid row. It returns nil when the portfolio has no cards.
func RenderRows(p domain.Portfolio, opts GridOptions) []string {
	if !p.HasCards() {
		return nil
	}

	width := layout.NormalizeWidth(opts.Width)
	cols := layout.CalculateColumns(width)
	cardWidth := layout.CalculateCardWidth(width)

	rows := make([]string, 0, (len(p.Repositories)+cols-1)/cols)
	for start := 0; start < len(p.Repositories); start += cols {
		end := min(start+cols, len(p.Repositories))

		var cells []string
		for i := start; i < end; i++ {
			card := NewRepoCard(p.Repositories[i]).
				SetWidth(cardWidth).
				SetSelected(i == opts.Selected).
				SetHyperlinks(opts.Hyperlinks)
			if i > start {
				cells = append(cells, strings.Repeat(" ", layout.CardGap))
			}
			cells = append(cells, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rows
}

// CardRowOf returns the grid row holding card index for a window width.
// It lays out the same columns as RenderRows.
func CardRowOf(index, width int) int {
	return index / layout.CalculateColumns(layout.NormalizeWidth(width))
}
