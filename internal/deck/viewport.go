package deck

// Viewport is the scrollable surface the slides are stacked on. Slide i
// starts at offset i*Height().
type Viewport interface {
	// Height is the size of one slide; zero or less means the surface is
	// not mounted yet.
	Height() int
	ScrollTop() float64
	SetScrollTop(offset float64)
}

// Surface is the Viewport the terminal shell renders from.
type Surface struct {
	height int
	top    float64
}

// Resize sets the height of one slide.
func (s *Surface) Resize(height int) {
	if height < 0 {
		height = 0
	}
	s.height = height
}

func (s *Surface) Height() int { return s.height }

func (s *Surface) ScrollTop() float64 { return s.top }

func (s *Surface) SetScrollTop(offset float64) { s.top = offset }

func available(vp Viewport) bool {
	return vp != nil && vp.Height() > 0
}

func offsetOf(vp Viewport, index int) float64 {
	return float64(index * vp.Height())
}
