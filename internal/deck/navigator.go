package deck

import (
	"time"

	"github.com/five82/wrapped/internal/location"
)

// Move describes how a navigation request is carried out.
type Move struct {
	// Fast selects the fast transition preset.
	Fast bool
	// SuppressPause skips the interrupt hook. Auto-advance sets it so the
	// player keeps running across its own transitions.
	SuppressPause bool
	// OnArrive runs once the scroll to the destination completes. It is
	// dropped if the transition is cancelled.
	OnArrive func()
}

// Change is emitted whenever the current slide changes. From is -1 for the
// initial slide.
type Change struct {
	From  int
	To    int
	Visit int
}

// Navigator owns the current/target slide and drives the animator.
type Navigator struct {
	reg       *Registry
	vp        Viewport
	anim      *Animator
	fast      time.Duration
	normal    time.Duration
	target    int
	current   int
	visits    map[int]int
	interrupt func()
	subs      []func(Change)
}

// NewNavigator returns a navigator resting on slide 0.
func NewNavigator(reg *Registry, vp Viewport, anim *Animator, fast, normal time.Duration) *Navigator {
	if fast <= 0 {
		fast = FastTransition
	}
	if normal <= 0 {
		normal = NormalTransition
	}
	return &Navigator{
		reg:       reg,
		vp:        vp,
		anim:      anim,
		fast:      fast,
		normal:    normal,
		visits:    make(map[int]int),
		interrupt: func() {},
	}
}

// OnInterrupt sets the hook run by every move that does not suppress it.
func (n *Navigator) OnInterrupt(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	n.interrupt = fn
}

// Subscribe registers fn for slide changes. Subscribers run in order.
func (n *Navigator) Subscribe(fn func(Change)) {
	n.subs = append(n.subs, fn)
}

func (n *Navigator) Current() int    { return n.current }
func (n *Navigator) Target() int     { return n.target }
func (n *Navigator) Animating() bool { return n.anim.Running() }

// Visits returns how many times slide index has become current.
func (n *Navigator) Visits(index int) int { return n.visits[index] }

// Start seeds the initial slide from fragment, positions the viewport there
// without animating, and announces it.
func (n *Navigator) Start(fragment string) {
	if index, ok := location.Parse(fragment, n.reg.Count()); ok {
		n.target, n.current = index, index
	}
	n.Snap()
	n.changed(-1, n.current)
}

// Snap settles the viewport on the target slide, completing any in-flight
// transition.
func (n *Navigator) Snap() {
	if !available(n.vp) {
		return
	}
	if n.anim.Running() {
		n.anim.Finish()
		return
	}
	n.vp.SetScrollTop(offsetOf(n.vp, n.target))
}

// Step moves delta slides from the target. It does nothing at the
// boundaries.
func (n *Navigator) Step(delta int, mv Move) bool {
	if !mv.SuppressPause {
		n.interrupt()
	}
	dest := n.clamp(n.target + delta)
	if dest == n.target {
		return false
	}
	return n.move(dest, mv)
}

// GoTo moves to index, clamped to the deck. Requesting the slide already
// being animated to is ignored; requesting the resting slide replays the
// transition.
func (n *Navigator) GoTo(index int, mv Move) bool {
	if !mv.SuppressPause {
		n.interrupt()
	}
	return n.move(n.clamp(index), mv)
}

// Stop cancels any transition in flight.
func (n *Navigator) Stop() {
	n.anim.Cancel()
}

func (n *Navigator) move(dest int, mv Move) bool {
	if !available(n.vp) {
		return false
	}
	if dest == n.target && n.anim.Running() {
		return false
	}
	n.anim.Cancel()

	from := n.current
	n.target, n.current = dest, dest

	d := n.normal
	if mv.Fast {
		d = n.fast
	}
	n.anim.Start(n.vp.ScrollTop(), dest, d, mv.OnArrive)

	if from != dest {
		n.changed(from, dest)
	}
	return true
}

func (n *Navigator) changed(from, to int) {
	n.visits[to]++
	c := Change{From: from, To: to, Visit: n.visits[to]}
	for _, fn := range n.subs {
		fn(c)
	}
}

func (n *Navigator) clamp(index int) int {
	return max(0, min(index, n.reg.Last()))
}
