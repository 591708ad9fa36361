package deck

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FallbackDuration is used for slides that declare no duration when neither
// the deck nor the caller provides a default.
const FallbackDuration = 4000 * time.Millisecond

//go:embed default.toml
var builtinDeck []byte

type deckFile struct {
	Title             string      `toml:"title"`
	DefaultDurationMs int64       `toml:"default_duration_ms"`
	Slides            []slideFile `toml:"slides"`
}

type slideFile struct {
	Title      string `toml:"title"`
	DurationMs int64  `toml:"duration_ms"`
	Body       string `toml:"body"`
}

// Load reads a deck file. An empty path loads the built-in deck. Slides
// without a duration get the deck's default_duration_ms, then fallback, then
// FallbackDuration.
func Load(path string, fallback time.Duration) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(builtinDeck, fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data, fallback)
}

// Parse decodes a deck from TOML.
func Parse(data []byte, fallback time.Duration) (*Registry, error) {
	var raw deckFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	def := fallback
	if def <= 0 {
		def = FallbackDuration
	}
	if raw.DefaultDurationMs < 0 {
		return nil, fmt.Errorf("parse deck: default_duration_ms must not be negative")
	}
	if raw.DefaultDurationMs > 0 {
		def = time.Duration(raw.DefaultDurationMs) * time.Millisecond
	}

	slides := make([]Slide, 0, len(raw.Slides))
	for i, s := range raw.Slides {
		if s.DurationMs < 0 {
			return nil, fmt.Errorf("parse deck: slide %d (%s): duration_ms must not be negative", i, s.Title)
		}
		d := def
		if s.DurationMs > 0 {
			d = time.Duration(s.DurationMs) * time.Millisecond
		}
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = fmt.Sprintf("Slide %d", i+1)
		}
		slides = append(slides, Slide{
			Index:    i,
			Title:    title,
			Body:     strings.TrimSpace(s.Body),
			Duration: d,
		})
	}

	reg, err := NewRegistry(strings.TrimSpace(raw.Title), slides)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return reg, nil
}
