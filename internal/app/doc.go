// Package app provides the orchestration layer for the presentation.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// preferences, loads the deck, wires the engine to the terminal UI and the
// position store, and blocks until the user quits or the context is
// cancelled.
//
// # Startup
//
//  1. Load ~/.config/wrapped/config.toml (or the --config override)
//  2. Route the standard logger to log_file, or discard it
//  3. Load the deck named by --deck, the config, or the built-in deck
//  4. Resolve the starting slide: --at, then a "#N" suffix on the deck
//     reference, then the position saved for that deck
//  5. Build the clock.Loop, the deck.Surface and the deck.Deck
//  6. Start the PositionWriter and subscribe it to slide changes
//  7. Run the UI
//
// # Components
//
//   - app.go: Run and startup helpers
//   - positions.go: background writer persisting the current fragment
//   - slides.go: the slide listing behind "wrapped slides"
package app
