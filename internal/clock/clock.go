// Package clock provides the cooperative scheduling primitives the deck engine
// runs on: one-shot timers, repeating timers and animation frames.
//
// Every callback runs on the caller's event loop, never concurrently with
// other engine code. Loop delivers firings through the Bubble Tea message
// queue; Manual advances a virtual clock for tests.
package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. Calling Stop more than once is harmless.
	Stop()
}

// Scheduler registers callbacks with an event loop.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
	// Frame runs f once on the next display frame with the frame timestamp.
	Frame(f func(now time.Time)) Timer
}

// DefaultFrameInterval paces frames at roughly 60 fps.
const DefaultFrameInterval = time.Second / 60

// FrameInterval converts a frame rate into a frame period.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return DefaultFrameInterval
	}
	return time.Second / time.Duration(fps)
}
