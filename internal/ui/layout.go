package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// deck and slide titles.
	LayoutCompactWidth = 80

	// LayoutMinSlideWidth is the narrowest slide column worth rendering.
	LayoutMinSlideWidth = 10
)

// Screen chrome, in rows and columns.
const (
	headerRows   = 1
	progressRows = 1
	footerRows   = 1

	// dotColumnWidth is the width of the progress dot column on the right.
	dotColumnWidth = 3

	// slidePaddingX is the horizontal padding inside a slide.
	slidePaddingX = 4
)

// bodyTop is the first screen row of the slide viewport.
const bodyTop = headerRows + progressRows

// bodyRows returns the slide viewport height for a terminal height.
func bodyRows(height int) int {
	return max(0, height-headerRows-progressRows-footerRows)
}

// slideWidth returns the slide column width for a terminal width.
func slideWidth(width int) int {
	return max(0, width-dotColumnWidth)
}
