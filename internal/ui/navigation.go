package ui

import "strings"

const (
	dotCurrent = "●"
	dotPlayed  = "•"
	dotIdle    = "·"
)

// dotLayout places the progress dots in a column of rows. When every slide
// fits, dots are centred one per row; otherwise each row stands for a run
// of slides.
type dotLayout struct {
	count int
	rows  int
	top   int
}

func newDotLayout(count, rows int) dotLayout {
	l := dotLayout{count: count, rows: rows}
	if count <= rows {
		l.top = (rows - count) / 2
	}
	return l
}

// span returns the slides drawn on row, or ok=false for an empty row.
func (l dotLayout) span(row int) (first, last int, ok bool) {
	if row < 0 || row >= l.rows || l.count == 0 {
		return 0, 0, false
	}
	if l.count <= l.rows {
		i := row - l.top
		if i < 0 || i >= l.count {
			return 0, 0, false
		}
		return i, i, true
	}
	first = row * l.count / l.rows
	last = (row+1)*l.count/l.rows - 1
	return first, max(first, last), true
}

// renderDots renders the dot column for a viewport of h rows.
func (m Model) renderDots(h int) []string {
	styles := m.theme.Styles()
	st := m.deck.State()
	layout := newDotLayout(st.Count, h)
	blank := strings.Repeat(" ", dotColumnWidth)

	out := make([]string, h)
	for row := range out {
		first, last, ok := layout.span(row)
		if !ok {
			out[row] = blank
			continue
		}
		var dot string
		switch {
		case st.Current >= first && st.Current <= last:
			dot = styles.DotActive.Render(dotCurrent)
		case m.deck.Visits(first) > 0:
			dot = styles.DotPlayed.Render(dotPlayed)
		default:
			dot = styles.DotIdle.Render(dotIdle)
		}
		out[row] = " " + dot + " "
	}
	return out
}

// dotAt maps a screen cell onto the slide whose dot is drawn there.
func (m Model) dotAt(x, y int) (int, bool) {
	if x < slideWidth(m.width) || x >= m.width {
		return 0, false
	}
	first, _, ok := newDotLayout(m.deck.State().Count, m.surface.Height()).span(y - bodyTop)
	return first, ok
}
