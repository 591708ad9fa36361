package ui

const (
	logoGlyph = "✦"
	logoName  = "wrapped"
)

// logoText returns the header logo; compact layouts keep only the glyph.
func logoText(compact bool) string {
	if compact {
		return logoGlyph
	}
	return logoGlyph + " " + logoName
}
