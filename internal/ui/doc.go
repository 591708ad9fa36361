// Package ui provides the terminal presentation shell.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns no navigation state of its
// own: it forwards keyboard and mouse input to a deck.Deck, sizes the
// deck.Surface the engine scrolls, and renders from deck.State on every
// View.
//
// Engine timers are delivered as clock.FireMsg values through the program's
// message queue and dispatched back into the engine from Update, so the
// engine only ever runs on the update goroutine.
//
// # Screen Layout
//
//   - Header: logo, deck title, position, slide title, playback and mute
//   - Progress row: bubbles/progress bar while auto-play runs
//   - Body: the slides straddling the scroll offset, plus the dot column
//   - Footer: short key help
//
// # Key Bindings
//
//   - Space: Play/pause (restarts from the top on the last slide)
//   - j/k, arrows, PgUp/PgDn: Next/previous slide
//   - 1-8: Jump to slides 1-8; 9: last slide
//   - m: Mute
//   - T: Cycle theme
//   - h/?: Toggle help
//   - q or Ctrl+C: Exit
package ui
