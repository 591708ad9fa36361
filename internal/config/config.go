package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the presentation settings.
type Config struct {
	Deck             string
	Theme            string
	Autoplay         bool
	FrameRate        int
	ProgressInterval time.Duration
	FastTransition   time.Duration
	NormalTransition time.Duration
	DefaultSlide     time.Duration
	SwipeThreshold   float64
	CellWidth        float64
	CellHeight       float64
	StateDir         string
	LogFile          string
}

const (
	defaultConfigPath       = "~/.config/wrapped/config.toml"
	defaultStateDir         = "~/.local/state/wrapped"
	defaultFrameRate        = 60
	defaultProgressInterval = 50 * time.Millisecond
	defaultFastTransition   = 400 * time.Millisecond
	defaultNormalTransition = 800 * time.Millisecond
	defaultSlide            = 4000 * time.Millisecond
	defaultSwipeThreshold   = 50.0
	defaultCellWidth        = 8.0
	defaultCellHeight       = 16.0
)

type rawConfig struct {
	Deck               string  `toml:"deck"`
	Theme              string  `toml:"theme"`
	Autoplay           bool    `toml:"autoplay"`
	FrameRate          int     `toml:"frame_rate"`
	ProgressIntervalMs int64   `toml:"progress_interval_ms"`
	FastTransitionMs   int64   `toml:"fast_transition_ms"`
	NormalTransitionMs int64   `toml:"normal_transition_ms"`
	DefaultSlideMs     int64   `toml:"default_slide_ms"`
	SwipeThresholdPx   float64 `toml:"swipe_threshold_px"`
	CellWidthPx        float64 `toml:"cell_width_px"`
	CellHeightPx       float64 `toml:"cell_height_px"`
	StateDir           string  `toml:"state_dir"`
	LogFile            string  `toml:"log_file"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FrameRate:        defaultFrameRate,
		ProgressInterval: defaultProgressInterval,
		FastTransition:   defaultFastTransition,
		NormalTransition: defaultNormalTransition,
		DefaultSlide:     defaultSlide,
		SwipeThreshold:   defaultSwipeThreshold,
		CellWidth:        defaultCellWidth,
		CellHeight:       defaultCellHeight,
		StateDir:         mustExpand(defaultStateDir),
	}
}

// Load reads the config file, falling back to defaults when it is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := raw.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	cfg.Theme = strings.TrimSpace(raw.Theme)
	cfg.Autoplay = raw.Autoplay

	if deck := strings.TrimSpace(raw.Deck); deck != "" {
		cfg.Deck = expandRef(deck)
	}
	if raw.FrameRate > 0 {
		cfg.FrameRate = raw.FrameRate
	}
	setMillis(&cfg.ProgressInterval, raw.ProgressIntervalMs)
	setMillis(&cfg.FastTransition, raw.FastTransitionMs)
	setMillis(&cfg.NormalTransition, raw.NormalTransitionMs)
	setMillis(&cfg.DefaultSlide, raw.DefaultSlideMs)
	if raw.SwipeThresholdPx > 0 {
		cfg.SwipeThreshold = raw.SwipeThresholdPx
	}
	if raw.CellWidthPx > 0 {
		cfg.CellWidth = raw.CellWidthPx
	}
	if raw.CellHeightPx > 0 {
		cfg.CellHeight = raw.CellHeightPx
	}
	if dir := strings.TrimSpace(raw.StateDir); dir != "" {
		cfg.StateDir = mustExpand(dir)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func (r rawConfig) validate() error {
	ints := []struct {
		key   string
		value int64
	}{
		{"frame_rate", int64(r.FrameRate)},
		{"progress_interval_ms", r.ProgressIntervalMs},
		{"fast_transition_ms", r.FastTransitionMs},
		{"normal_transition_ms", r.NormalTransitionMs},
		{"default_slide_ms", r.DefaultSlideMs},
	}
	for _, f := range ints {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.key, f.value)
		}
	}
	floats := []struct {
		key   string
		value float64
	}{
		{"swipe_threshold_px", r.SwipeThresholdPx},
		{"cell_width_px", r.CellWidthPx},
		{"cell_height_px", r.CellHeightPx},
	}
	for _, f := range floats {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %g", f.key, f.value)
		}
	}
	return nil
}

func setMillis(dst *time.Duration, ms int64) {
	if ms > 0 {
		*dst = time.Duration(ms) * time.Millisecond
	}
}

// expandRef expands a deck reference, keeping any #fragment suffix intact.
func expandRef(ref string) string {
	path, fragment := ref, ""
	if i := strings.LastIndex(ref, "#"); i >= 0 {
		path, fragment = ref[:i], ref[i:]
	}
	if strings.TrimSpace(path) == "" {
		return ref
	}
	return mustExpand(path) + fragment
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
