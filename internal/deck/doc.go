// Package deck implements the slide engine: an ordered registry of slides,
// a navigator that owns the current and target slide, an animator that
// eases the viewport between slide offsets, and a player that advances on a
// per-slide timer.
//
// Everything runs on a single event loop supplied through clock.Scheduler.
// In the terminal that loop is the Bubble Tea update loop; tests drive a
// clock.Manual instead. None of the types are safe for concurrent use.
//
// Manual input pauses the player before navigating. Auto-advance passes
// Move.SuppressPause so the player keeps running across its own
// transitions. Starting playback from the terminal slide scrolls back to
// slide 0 and starts the player from the Move.OnArrive callback once that
// scroll completes.
package deck
