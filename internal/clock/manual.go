package clock

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Nothing fires until Advance is called, and
// callbacks fire in deadline order with the clock set to their deadline.
type Manual struct {
	now    time.Time
	frame  time.Duration
	seq    uint64
	events []*manualEvent
}

type manualEvent struct {
	m     *Manual
	seq   uint64
	at    time.Time
	every time.Duration
	fn    func()
}

func (e *manualEvent) Stop() {
	e.m.remove(e)
}

// NewManual returns a virtual clock starting at start. A zero frame uses
// DefaultFrameInterval.
func NewManual(start time.Time, frame time.Duration) *Manual {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	return &Manual{now: start, frame: frame}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	return m.add(d, 0, f)
}

func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = m.frame
	}
	return m.add(d, d, f)
}

func (m *Manual) Frame(f func(now time.Time)) Timer {
	return m.add(m.frame, 0, func() { f(m.now) })
}

// Pending reports how many callbacks are still scheduled.
func (m *Manual) Pending() int { return len(m.events) }

// Advance moves the clock forward by d, firing everything that falls due.
// Callbacks scheduled while advancing fire too if they are due before the
// new time.
func (m *Manual) Advance(d time.Duration) {
	deadline := m.now.Add(d)
	for {
		next := m.earliest()
		if next == nil || next.at.After(deadline) {
			break
		}
		m.now = next.at
		if next.every > 0 {
			next.at = next.at.Add(next.every)
		} else {
			m.remove(next)
		}
		next.fn()
	}
	m.now = deadline
}

func (m *Manual) add(d, every time.Duration, f func()) *manualEvent {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &manualEvent{m: m, seq: m.seq, at: m.now.Add(d), every: every, fn: f}
	m.events = append(m.events, e)
	return e
}

func (m *Manual) earliest() *manualEvent {
	if len(m.events) == 0 {
		return nil
	}
	sort.SliceStable(m.events, func(i, j int) bool {
		a, b := m.events[i], m.events[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	return m.events[0]
}

func (m *Manual) remove(e *manualEvent) {
	for i, cur := range m.events {
		if cur == e {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return
		}
	}
}
