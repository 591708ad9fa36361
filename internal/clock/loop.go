package clock

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered to the Bubble Tea program when a Loop timer fires.
// The model must hand it back to Loop.Dispatch.
type FireMsg struct {
	id uint64
	at time.Time
}

// Loop is a Scheduler backed by real timers whose firings are funnelled
// through a Bubble Tea program, so callbacks run on the update goroutine.
type Loop struct {
	mu    sync.Mutex
	send  func(tea.Msg)
	frame time.Duration
	next  uint64
	live  map[uint64]*loopTimer
}

type loopTimer struct {
	loop     *Loop
	id       uint64
	fn       func(now time.Time)
	repeat   bool
	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop returns an unbound Loop. Timers created before Bind fire into the
// void.
func NewLoop(frame time.Duration) *Loop {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	return &Loop{frame: frame, live: make(map[uint64]*loopTimer)}
}

// Bind sets the delivery function, typically (*tea.Program).Send.
func (l *Loop) Bind(send func(tea.Msg)) {
	l.mu.Lock()
	l.send = send
	l.mu.Unlock()
}

func (l *Loop) Now() time.Time { return time.Now() }

func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := l.register(func(time.Time) { f() }, false)
	t.timer = time.AfterFunc(d, func() { l.deliver(t.id) })
	return t
}

func (l *Loop) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = l.frame
	}
	t := l.register(func(time.Time) { f() }, true)
	t.done = make(chan struct{})
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				l.deliver(t.id)
			}
		}
	}()
	return t
}

func (l *Loop) Frame(f func(now time.Time)) Timer {
	t := l.register(f, false)
	t.timer = time.AfterFunc(l.frame, func() { l.deliver(t.id) })
	return t
}

// Dispatch runs the callback behind msg unless its timer was stopped in the
// meantime. Call it from the program's Update.
func (l *Loop) Dispatch(msg FireMsg) {
	l.mu.Lock()
	t, ok := l.live[msg.id]
	if ok && !t.repeat {
		delete(l.live, msg.id)
	}
	l.mu.Unlock()
	if ok {
		t.fn(msg.at)
	}
}

// Close stops every outstanding timer.
func (l *Loop) Close() {
	l.mu.Lock()
	timers := make([]*loopTimer, 0, len(l.live))
	for _, t := range l.live {
		timers = append(timers, t)
	}
	l.mu.Unlock()
	for _, t := range timers {
		t.Stop()
	}
}

func (l *Loop) register(fn func(time.Time), repeat bool) *loopTimer {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	t := &loopTimer{loop: l, id: l.next, fn: fn, repeat: repeat}
	l.live[t.id] = t
	return t
}

func (l *Loop) deliver(id uint64) {
	l.mu.Lock()
	send := l.send
	_, ok := l.live[id]
	l.mu.Unlock()
	if send == nil || !ok {
		return
	}
	send(FireMsg{id: id, at: time.Now()})
}

func (t *loopTimer) Stop() {
	t.loop.mu.Lock()
	delete(t.loop.live, t.id)
	t.loop.mu.Unlock()
	t.stopOnce.Do(func() {
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.done != nil {
			close(t.done)
		}
	})
}
