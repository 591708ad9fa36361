package deck

import (
	"math"
	"testing"
)

func TestGestureDirection(t *testing.T) {
	tests := []struct {
		name string
		g    Gesture
		want int
	}{
		{"up swipe pages forward", Gesture{StartY: 200, EndY: 100}, 1},
		{"down swipe pages back", Gesture{StartY: 100, EndY: 200}, -1},
		{"exactly threshold", Gesture{StartY: 100, EndY: 50}, 0},
		{"just past threshold", Gesture{StartY: 100, EndY: 49}, 1},
		{"mostly horizontal", Gesture{StartX: 0, StartY: 160, EndX: 80, EndY: 100}, 0},
		{"mostly vertical", Gesture{StartX: 0, StartY: 160, EndX: 20, EndY: 100}, 1},
		{"tap", Gesture{StartX: 10, StartY: 10, EndX: 10, EndY: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Direction(DefaultSwipeThreshold); got != tt.want {
				t.Fatalf("Direction() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWheelDirection(t *testing.T) {
	for delta, want := range map[float64]int{1: 1, 0.01: 1, 240: 1, -1: -1, -0.5: -1, 0: 0} {
		if got := WheelDirection(delta); got != want {
			t.Fatalf("WheelDirection(%v) = %d, want %d", delta, got, want)
		}
	}
}

func TestDigitTarget(t *testing.T) {
	for digit := 1; digit <= 8; digit++ {
		got, ok := DigitTarget(digit, 34)
		if !ok || got != digit-1 {
			t.Fatalf("DigitTarget(%d) = %d,%v", digit, got, ok)
		}
	}
	if got, ok := DigitTarget(9, 34); !ok || got != 33 {
		t.Fatalf("DigitTarget(9) = %d,%v, want 33", got, ok)
	}
	if _, ok := DigitTarget(0, 34); ok {
		t.Fatal("DigitTarget(0) accepted")
	}
}

func TestEaseOutCubic(t *testing.T) {
	cases := map[float64]float64{0: 0, 0.5: 0.875, 1: 1}
	for p, want := range cases {
		if got := EaseOutCubic(p); math.Abs(got-want) > 1e-12 {
			t.Fatalf("EaseOutCubic(%v) = %v, want %v", p, got, want)
		}
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutCubic not monotonic at %d", i)
		}
		prev = v
	}
}
