package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wrapped/internal/clock"
	"github.com/five82/wrapped/internal/config"
	"github.com/five82/wrapped/internal/deck"
	"github.com/five82/wrapped/internal/location"
	"github.com/five82/wrapped/internal/prefs"
	"github.com/five82/wrapped/internal/ui"
)

// Options configure the application. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wrapped/prefs.toml
	Deck       string // deck path with an optional #N suffix
	At         string // starting fragment, overrides every other source
	Play       bool
	Theme      string
}

// Run boots the presentation until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	ref := opts.Deck
	if strings.TrimSpace(ref) == "" {
		ref = cfg.Deck
	}
	path, fragment := location.Split(ref)

	reg, err := deck.Load(path, cfg.DefaultSlide)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	store := location.NewStore(cfg.StateDir, path)
	start := startFragment(opts.At, fragment, store)
	log.Printf("deck %q: %d slides, starting at %q", reg.Title(), reg.Count(), start)

	loop := clock.NewLoop(clock.FrameInterval(cfg.FrameRate))
	defer loop.Close()

	surface := &deck.Surface{}
	d := deck.New(reg, surface, loop, deck.Options{
		FastTransition:   cfg.FastTransition,
		NormalTransition: cfg.NormalTransition,
		SampleInterval:   cfg.ProgressInterval,
		SwipeThreshold:   cfg.SwipeThreshold,
	})
	defer d.Close()

	writer := StartPositionWriter(ctx, store)
	defer writer.Close()
	d.Subscribe(func(c deck.Change) {
		writer.Publish(location.Format(c.To))
	})
	d.Start(start)

	return ui.Run(ctx, ui.Options{
		Deck:       d,
		Surface:    surface,
		Loop:       loop,
		Source:     path,
		ThemeName:  firstNonEmpty(opts.Theme, cfg.Theme, userPrefs.Theme),
		PrefsPath:  opts.PrefsPath,
		Muted:      userPrefs.Muted,
		Autoplay:   opts.Play || cfg.Autoplay,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
	})
}

// startFragment picks the first fragment source that is set: the explicit
// override, the deck reference suffix, then the saved position.
func startFragment(at, suffix string, store *location.Store) string {
	if strings.TrimSpace(at) != "" {
		if !strings.HasPrefix(at, "#") {
			at = "#" + at
		}
		return at
	}
	if suffix != "" {
		return suffix
	}
	return store.Read()
}

// setupLogging sends the standard logger to path. The TUI owns the
// terminal, so without a log file everything is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "wrapped")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
