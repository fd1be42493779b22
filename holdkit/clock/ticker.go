package clock

import (
	"time"

	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// Ticker is a real-time FrameClock backed by a time.Ticker. It does not
// dispatch on its own: the owning loop calls Pump once per frame, which
// blocks until the next tick fires and then runs subscribers on the
// caller's goroutine. That keeps all dispatch single-threaded.
type Ticker struct {
	ticker *time.Ticker
	ch     <-chan time.Time
	ticks  signal.Emitter[struct{}]
}

// NewTicker creates a Ticker firing at the given interval. A
// non-positive interval falls back to the default tick rate.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = Interval(DefaultTickRate)
	}
	ticker := time.NewTicker(interval)
	return &Ticker{
		ticker: ticker,
		ch:     ticker.C,
	}
}

// OnTick registers fn to run on each Pump.
func (t *Ticker) OnTick(fn func()) *signal.Subscription {
	return t.ticks.Subscribe(func(struct{}) { fn() })
}

// Now returns the wall clock; time.Time carries a monotonic reading.
func (t *Ticker) Now() time.Time {
	return time.Now()
}

// Pump blocks until the next tick, then dispatches it synchronously.
func (t *Ticker) Pump() {
	<-t.ch
	t.ticks.Emit(struct{}{})
}

// Reset restarts the tick schedule, useful after pauses.
func (t *Ticker) Reset(interval time.Duration) {
	if interval <= 0 {
		interval = Interval(DefaultTickRate)
	}
	t.ticker.Reset(interval)
}

// Stop halts the ticker and drops all subscribers. No ticks are
// delivered after Stop returns.
func (t *Ticker) Stop() {
	t.ticker.Stop()
	t.ticks.Close()
}
