package deck

import "math"

// DefaultSwipeThreshold is the minimum vertical travel, in pixels, for a
// touch gesture to count as a page swipe.
const DefaultSwipeThreshold = 50.0

// Gesture is a completed touch or drag, in pixels.
type Gesture struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Direction classifies the gesture: +1 for next, -1 for previous, 0 when it
// is not a vertical swipe. Moving the finger up pages forward.
func (g Gesture) Direction(threshold float64) int {
	dy := g.StartY - g.EndY
	dx := math.Abs(g.StartX - g.EndX)
	if math.Abs(dy) <= threshold || math.Abs(dy) <= dx {
		return 0
	}
	if dy > 0 {
		return 1
	}
	return -1
}

// WheelDirection maps a wheel delta onto +1 (next) or -1 (previous). A zero
// delta carries no direction.
func WheelDirection(deltaY float64) int {
	switch {
	case deltaY > 0:
		return 1
	case deltaY < 0:
		return -1
	default:
		return 0
	}
}

// DigitTarget maps a number hotkey onto a slide: 1-8 jump to slides 0-7 and
// 9 jumps to the last slide.
func DigitTarget(digit, count int) (int, bool) {
	switch {
	case digit >= 1 && digit <= 8:
		return digit - 1, true
	case digit == 9:
		return count - 1, true
	default:
		return 0, false
	}
}
