package deck

import (
	"time"

	"github.com/five82/wrapped/internal/clock"
)

// Transition presets.
const (
	FastTransition   = 400 * time.Millisecond
	NormalTransition = 800 * time.Millisecond
)

// EaseOutCubic maps linear progress p in [0,1] onto a decelerating curve.
func EaseOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Animator scrolls the viewport to a slide over a fixed wall-clock duration,
// one write per frame. At most one run is in flight.
type Animator struct {
	sched clock.Scheduler
	vp    Viewport
	run   *scrollRun
}

type scrollRun struct {
	target   int
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	frame    clock.Timer
	done     func()
}

// NewAnimator returns an idle animator.
func NewAnimator(sched clock.Scheduler, vp Viewport) *Animator {
	return &Animator{sched: sched, vp: vp}
}

// Running reports whether a run is in flight.
func (a *Animator) Running() bool { return a.run != nil }

// Target returns the slide the in-flight run is heading to, or -1.
func (a *Animator) Target() int {
	if a.run == nil {
		return -1
	}
	return a.run.target
}

// Start scrolls from offset from to slide target over d and calls done once
// the run completes. A request for the slide already being animated to is
// ignored. Callers cancel any other in-flight run first.
func (a *Animator) Start(from float64, target int, d time.Duration, done func()) {
	if !available(a.vp) {
		return
	}
	if a.run != nil {
		if a.run.target == target {
			return
		}
		a.Cancel()
	}
	run := &scrollRun{
		target:   target,
		from:     from,
		to:       offsetOf(a.vp, target),
		start:    a.sched.Now(),
		duration: d,
		done:     done,
	}
	a.run = run
	run.frame = a.sched.Frame(func(now time.Time) { a.step(run, now) })
}

// Cancel stops the in-flight run where it is. The viewport keeps the last
// offset written and the completion callback is dropped.
func (a *Animator) Cancel() {
	if a.run == nil {
		return
	}
	a.run.frame.Stop()
	a.run = nil
}

// Finish jumps the in-flight run to its destination and completes it.
func (a *Animator) Finish() {
	run := a.run
	if run == nil {
		return
	}
	run.frame.Stop()
	a.run = nil
	a.vp.SetScrollTop(offsetOf(a.vp, run.target))
	if run.done != nil {
		run.done()
	}
}

func (a *Animator) step(run *scrollRun, now time.Time) {
	if a.run != run {
		return
	}
	progress := 1.0
	if run.duration > 0 {
		progress = min(float64(now.Sub(run.start))/float64(run.duration), 1)
	}
	a.vp.SetScrollTop(run.from + (run.to-run.from)*EaseOutCubic(progress))
	if progress < 1 {
		run.frame = a.sched.Frame(func(now time.Time) { a.step(run, now) })
		return
	}
	a.run = nil
	if run.done != nil {
		run.done()
	}
}
