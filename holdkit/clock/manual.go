package clock

import (
	"time"

	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// Manual is a deterministic FrameClock for tests. Time only moves when
// Advance is called and ticks only fire when Tick is called, so a test
// controls exactly how much time each tick observes.
type Manual struct {
	now   time.Time
	ticks signal.Emitter[struct{}]
}

// NewManual creates a manual clock at a fixed epoch.
func NewManual() *Manual {
	return &Manual{
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// OnTick registers fn to run on each Tick.
func (m *Manual) OnTick(fn func()) *signal.Subscription {
	return m.ticks.Subscribe(func(struct{}) { fn() })
}

// Now returns the simulated current time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the simulated time forward without ticking.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Tick dispatches a single tick to all subscribers.
func (m *Manual) Tick() {
	m.ticks.Emit(struct{}{})
}

// AdvanceAndTick advances the clock, then delivers one tick, mimicking
// a frame of duration d.
func (m *Manual) AdvanceAndTick(d time.Duration) {
	m.Advance(d)
	m.Tick()
}

// Subscribers returns the number of live tick subscriptions. Tests use
// it to assert timer handles are released.
func (m *Manual) Subscribers() int {
	return m.ticks.Len()
}
