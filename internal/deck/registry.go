package deck

import (
	"errors"
	"fmt"
	"time"
)

// Slide is one fixed-height section of the deck.
type Slide struct {
	Index    int
	Title    string
	Body     string // Markdown, opaque to the engine
	Duration time.Duration
}

// Registry is the immutable, ordered list of slides.
type Registry struct {
	title  string
	slides []Slide
}

// NewRegistry validates slides and returns a registry over a private copy.
func NewRegistry(title string, slides []Slide) (*Registry, error) {
	if len(slides) == 0 {
		return nil, errors.New("deck has no slides")
	}
	dup := make([]Slide, len(slides))
	copy(dup, slides)
	for i, s := range dup {
		if s.Index != i {
			return nil, fmt.Errorf("slide %d: index %d out of order", i, s.Index)
		}
		if s.Duration <= 0 {
			return nil, fmt.Errorf("slide %d: duration must be positive, got %v", i, s.Duration)
		}
	}
	return &Registry{title: title, slides: dup}, nil
}

// Title returns the deck title.
func (r *Registry) Title() string { return r.title }

// Count returns the number of slides.
func (r *Registry) Count() int { return len(r.slides) }

// Last returns the index of the terminal slide.
func (r *Registry) Last() int { return len(r.slides) - 1 }

// DurationOf returns the auto-play duration of slide index. It panics when
// index is out of range.
func (r *Registry) DurationOf(index int) time.Duration {
	return r.Slide(index).Duration
}

// Slide returns slide index. It panics when index is out of range.
func (r *Registry) Slide(index int) Slide {
	if index < 0 || index >= len(r.slides) {
		panic(fmt.Sprintf("deck: slide index %d out of range [0, %d)", index, len(r.slides)))
	}
	return r.slides[index]
}

// TotalDuration sums every slide's auto-play duration.
func (r *Registry) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range r.slides {
		total += s.Duration
	}
	return total
}
