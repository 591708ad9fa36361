package deck

import (
	"time"

	"github.com/five82/wrapped/internal/clock"
)

// Options tune the engine. Zero values use the package defaults.
type Options struct {
	FastTransition   time.Duration
	NormalTransition time.Duration
	SampleInterval   time.Duration
	SwipeThreshold   float64
}

// State is a snapshot of navigation and playback for rendering.
type State struct {
	Current            int
	Target             int
	Count              int
	Animating          bool
	Playing            bool
	PendingLoopRestart bool
	Progress           float64
}

// Deck wires the navigator, animator and player together and turns user
// input into navigation. All methods must be called from the event loop the
// scheduler delivers on.
type Deck struct {
	reg    *Registry
	nav    *Navigator
	player *Player
	swipe  float64
}

// New assembles an engine for reg on vp. Call Start once the shell is
// mounted.
func New(reg *Registry, vp Viewport, sched clock.Scheduler, opts Options) *Deck {
	anim := NewAnimator(sched, vp)
	nav := NewNavigator(reg, vp, anim, opts.FastTransition, opts.NormalTransition)
	player := NewPlayer(sched, reg, nav, opts.SampleInterval)

	nav.OnInterrupt(player.Pause)
	nav.Subscribe(player.SlideChanged)

	swipe := opts.SwipeThreshold
	if swipe <= 0 {
		swipe = DefaultSwipeThreshold
	}
	return &Deck{reg: reg, nav: nav, player: player, swipe: swipe}
}

// Subscribe registers fn for slide changes, after the player.
func (d *Deck) Subscribe(fn func(Change)) { d.nav.Subscribe(fn) }

// Start restores the slide encoded in fragment, or slide 0.
func (d *Deck) Start(fragment string) { d.nav.Start(fragment) }

// Close stops every timer and transition the engine owns.
func (d *Deck) Close() {
	d.player.Pause()
	d.nav.Stop()
}

// Resize re-settles the viewport after its height changed.
func (d *Deck) Resize() { d.nav.Snap() }

func (d *Deck) Registry() *Registry { return d.reg }

// Visits returns how many times slide index has become current.
func (d *Deck) Visits(index int) int { return d.nav.Visits(index) }

// State returns the current engine state.
func (d *Deck) State() State {
	return State{
		Current:            d.nav.Current(),
		Target:             d.nav.Target(),
		Count:              d.reg.Count(),
		Animating:          d.nav.Animating(),
		Playing:            d.player.Playing(),
		PendingLoopRestart: d.player.PendingLoopRestart(),
		Progress:           d.player.Progress(),
	}
}

// Next steps forward from the keyboard.
func (d *Deck) Next() bool { return d.step(1) }

// Previous steps back from the keyboard.
func (d *Deck) Previous() bool { return d.step(-1) }

// Wheel steps in the direction of a wheel delta. Any magnitude counts.
func (d *Deck) Wheel(deltaY float64) bool {
	dir := WheelDirection(deltaY)
	if dir == 0 {
		return false
	}
	return d.step(dir)
}

// Swipe steps if g qualifies as a vertical swipe.
func (d *Deck) Swipe(g Gesture) bool {
	dir := g.Direction(d.swipe)
	if dir == 0 {
		return false
	}
	return d.step(dir)
}

// Jump handles the number hotkeys with the fast transition.
func (d *Deck) Jump(digit int) bool {
	index, ok := DigitTarget(digit, d.reg.Count())
	if !ok {
		return false
	}
	return d.nav.GoTo(index, Move{Fast: true})
}

// ClickDot jumps to the slide behind a progress dot.
func (d *Deck) ClickDot(index int) bool {
	return d.nav.GoTo(index, Move{Fast: d.nav.Animating()})
}

// GoTo jumps to index with the normal transition.
func (d *Deck) GoTo(index int) bool {
	return d.nav.GoTo(index, Move{})
}

// TogglePlay flips auto-play, looping back to the start from the last slide.
func (d *Deck) TogglePlay() { d.player.Toggle() }

// Play starts auto-play.
func (d *Deck) Play() { d.player.Play() }

// Pause stops auto-play.
func (d *Deck) Pause() { d.player.Pause() }

func (d *Deck) step(delta int) bool {
	return d.nav.Step(delta, Move{Fast: d.nav.Animating()})
}
