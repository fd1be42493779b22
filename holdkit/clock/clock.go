// Package clock provides the frame-clock abstraction hold triggers poll
// against: a recurring tick plus a monotonic time source. The clock is
// always injected, never looked up from global state, so tests can drive
// triggers with a deterministic tick source.
package clock

import (
	"time"

	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// DefaultTickRate is the tick frequency used when none is configured.
const DefaultTickRate = 60

// FrameClock delivers a recurring heartbeat to subscribers. The tick
// interval is a latency bound, not a correctness dependency: consumers
// measure elapsed time with Now rather than counting ticks.
type FrameClock interface {
	// OnTick registers fn to run on every tick until cancelled.
	OnTick(fn func()) *signal.Subscription

	// Now returns the clock's current time. Implementations must be
	// monotonic with respect to their own tick delivery.
	Now() time.Time
}

// Interval returns the tick period for a rate given in ticks per second.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Duration(float64(time.Second) / float64(rate))
}
