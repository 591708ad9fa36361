package deck

import (
	"time"

	"github.com/five82/wrapped/internal/clock"
)

// DefaultSampleInterval is how often the progress fraction is recomputed.
const DefaultSampleInterval = 50 * time.Millisecond

// Player advances the deck on a per-slide timer. While running it owns a
// progress sampler and a one-shot advance timer, always started and stopped
// together.
type Player struct {
	sched       clock.Scheduler
	reg         *Registry
	nav         *Navigator
	every       time.Duration
	playing     bool
	pendingLoop bool
	started     time.Time
	duration    time.Duration
	progress    float64
	sampler     clock.Timer
	advance     clock.Timer
}

// NewPlayer returns an idle player. It does not subscribe itself; the deck
// wires SlideChanged to the navigator.
func NewPlayer(sched clock.Scheduler, reg *Registry, nav *Navigator, every time.Duration) *Player {
	if every <= 0 {
		every = DefaultSampleInterval
	}
	return &Player{sched: sched, reg: reg, nav: nav, every: every}
}

func (p *Player) Playing() bool            { return p.playing }
func (p *Player) Progress() float64        { return p.progress }
func (p *Player) PendingLoopRestart() bool { return p.pendingLoop }

// Play starts the timer for the current slide from zero. On the terminal
// slide the player stays idle.
func (p *Player) Play() {
	p.playing = true
	p.enter()
}

// Pause stops both timers and drops progress and any pending loop restart.
func (p *Player) Pause() {
	p.pendingLoop = false
	p.playing = false
	p.stop()
}

// Toggle flips between playing and paused. Toggling play while idle on the
// terminal slide scrolls back to the first slide and starts playing once
// that scroll completes.
func (p *Player) Toggle() {
	switch {
	case p.playing:
		p.Pause()
	case p.pendingLoop:
		p.pendingLoop = false
		p.Play()
	case p.nav.Target() >= p.reg.Last():
		p.restartFromTop()
	default:
		p.Play()
	}
}

// SlideChanged restarts the timer for the new slide while playing.
func (p *Player) SlideChanged(Change) {
	if p.playing {
		p.enter()
	}
}

func (p *Player) restartFromTop() {
	p.pendingLoop = true
	ok := p.nav.GoTo(0, Move{SuppressPause: true, OnArrive: p.arrivedAtTop})
	if !ok {
		p.pendingLoop = false
	}
}

func (p *Player) arrivedAtTop() {
	if !p.pendingLoop {
		return
	}
	p.pendingLoop = false
	p.Play()
}

func (p *Player) enter() {
	p.stop()
	current := p.nav.Target()
	if current >= p.reg.Last() {
		p.playing = false
		return
	}
	p.duration = p.reg.DurationOf(current)
	p.started = p.sched.Now()
	p.sampler = p.sched.Every(p.every, p.sample)
	p.advance = p.sched.AfterFunc(p.duration, p.fire)
}

func (p *Player) sample() {
	elapsed := p.sched.Now().Sub(p.started)
	p.progress = min(float64(elapsed)/float64(p.duration), 1)
}

func (p *Player) fire() {
	p.advance = nil
	if p.sampler != nil {
		p.sampler.Stop()
		p.sampler = nil
	}
	p.progress = 1
	if !p.nav.Step(1, Move{SuppressPause: true}) {
		p.Pause()
	}
}

func (p *Player) stop() {
	if p.sampler != nil {
		p.sampler.Stop()
		p.sampler = nil
	}
	if p.advance != nil {
		p.advance.Stop()
		p.advance = nil
	}
	p.progress = 0
}
