package ui

import (
	"math"
	"strings"

	"github.com/five82/wrapped/internal/render"
)

type slideKey struct {
	index  int
	width  int
	height int
	active bool
}

// slideCache keeps rendered slides until the theme changes.
type slideCache struct {
	theme     string
	lines     map[slideKey][]string
	renderers map[bool]*render.Renderer
}

func newSlideCache() *slideCache {
	return &slideCache{
		lines:     make(map[slideKey][]string),
		renderers: make(map[bool]*render.Renderer),
	}
}

func (c *slideCache) reset(theme string) {
	c.theme = theme
	clear(c.lines)
	clear(c.renderers)
}

// renderBody renders the slide viewport: the two slides straddling the
// scroll offset, with the dot column on the right.
func (m Model) renderBody() []string {
	h := m.surface.Height()
	if h <= 0 {
		return nil
	}
	w := slideWidth(m.width)
	st := m.deck.State()

	top := int(math.Round(m.surface.ScrollTop()))
	top = max(0, min(top, (st.Count-1)*h))
	first, skip := top/h, top%h

	lines := make([]string, 0, h)
	lines = append(lines, m.slideView(first, first == st.Current, w, h)[skip:]...)
	if skip > 0 && first+1 < st.Count {
		lines = append(lines, m.slideView(first+1, first+1 == st.Current, w, h)[:skip]...)
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}

	dots := m.renderDots(h)
	for i := range lines {
		lines[i] += dots[i]
	}
	return lines
}

// slideView returns slide index as exactly h lines of width w. Inactive
// slides are drawn in their faint, not yet played state.
func (m Model) slideView(index int, active bool, w, h int) []string {
	c := m.slides
	if c.theme != m.theme.Name {
		c.reset(m.theme.Name)
	}
	key := slideKey{index: index, width: w, height: h, active: active}
	if lines, ok := c.lines[key]; ok {
		return lines
	}

	r, ok := c.renderers[active]
	if !ok {
		r = render.New(m.theme.Markdown(active))
		c.renderers[active] = r
	}

	slide := m.deck.Registry().Slide(index)
	inner := max(LayoutMinSlideWidth, w-2*slidePaddingX)

	titleStyle := m.theme.Styles().SlideTitle
	if !active {
		titleStyle = m.theme.Styles().FaintText
	}
	content := []string{titleStyle.Render(truncate(slide.Title, inner)), ""}
	if slide.Body != "" {
		content = append(content, strings.Split(r.Render(slide.Body, inner), "\n")...)
	}
	if len(content) > h {
		content = content[:h]
	}

	pad := strings.Repeat(" ", slidePaddingX)
	lines := make([]string, h)
	offset := (h - len(content)) / 2
	for i := range lines {
		line := ""
		if j := i - offset; j >= 0 && j < len(content) {
			line = pad + content[j]
		}
		lines[i] = fitWidth(line, w)
	}

	c.lines[key] = lines
	return lines
}
