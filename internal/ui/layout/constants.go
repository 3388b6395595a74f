package layout

// Standard UI element heights
const (
	HeaderHeight = 4
	FooterHeight = 4
)

// Card dimensions
const (
	CardWidth    = 38
	CardMinWidth = 24
	CardGap      = 1
	MaxColumns   = 3
)

// Default window size until the first resize message arrives, and whenever
// the terminal reports a zero size
const (
	DefaultWindowWidth  = 120
	DefaultWindowHeight = 40
)

// CalculateContentHeight calculates available height for content after headers/footers
func CalculateContentHeight(windowHeight int) int {
	h := windowHeight - HeaderHeight - FooterHeight
	if h < 1 {
		return 1
	}
	return h
}

// CalculateColumns returns how many cards fit side by side.
func CalculateColumns(windowWidth int) int {
	cols := (windowWidth + CardGap) / (CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	if cols > MaxColumns {
		return MaxColumns
	}
	return cols
}

// CalculateCardWidth returns the card width for a window, shrinking the
// card on narrow terminals.
func CalculateCardWidth(windowWidth int) int {
	if windowWidth >= CardWidth {
		return CardWidth
	}
	if windowWidth < CardMinWidth {
		return CardMinWidth
	}
	return windowWidth
}

// NormalizeWidth returns windowWidth, or DefaultWindowWidth when the
// terminal reports no width.
func NormalizeWidth(windowWidth int) int {
	if windowWidth <= 0 {
		return DefaultWindowWidth
	}
	return windowWidth
}

// NormalizeHeight returns windowHeight, or DefaultWindowHeight when the
// terminal reports no height.
func NormalizeHeight(windowHeight int) int {
	if windowHeight <= 0 {
		return DefaultWindowHeight
	}
	return windowHeight
}
