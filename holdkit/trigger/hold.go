package trigger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mvaleri/go-holdkit/holdkit/clock"
	"github.com/mvaleri/go-holdkit/holdkit/input"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// DefaultHoldDuration is used when Config leaves HoldDuration unset.
const DefaultHoldDuration = time.Second

// Config holds the construction parameters for a Hold trigger.
type Config struct {
	// Selector names the single input the trigger watches.
	Selector input.Selector

	// HoldDuration is how long the input must stay active before the
	// trigger activates. Non-positive values fall back to
	// DefaultHoldDuration.
	HoldDuration time.Duration
}

type holdState int

const (
	stateIdle holdState = iota
	stateTiming
	stateActive
)

func (s holdState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateTiming:
		return "Timing"
	case stateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Hold gates an input's activation behind a minimum continuous-hold
// duration. It activates only once the input has stayed active for the
// configured duration, and deactivates when the input releases after
// activating. A release before the duration elapses cancels silently.
//
// Elapsed time is polled against the injected frame clock, so
// activation lands on the first tick at or past the deadline; a hold
// shorter than one tick period can never activate.
type Hold struct {
	source   *input.Source
	clk      clock.FrameClock
	duration time.Duration

	state holdState
	start time.Time
	args  event.Args
	timer *signal.Subscription

	activatedSub   *signal.Subscription
	deactivatedSub *signal.Subscription

	activated   signal.Emitter[event.Args]
	deactivated signal.Emitter[event.Args]

	destroyed bool
}

// NewHold creates a hold trigger watching the input named by
// cfg.Selector, polling clk while the input is held. It returns
// ErrInvalidConfiguration if the selector does not resolve to a single
// input. The trigger starts idle and stays usable across repeated
// press/release cycles until destroyed.
func NewHold(mgr *input.Manager, clk clock.FrameClock, cfg Config) (*Hold, error) {
	source, err := input.NewSource(mgr, cfg.Selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	duration := cfg.HoldDuration
	if duration <= 0 {
		duration = DefaultHoldDuration
	}

	h := &Hold{
		source:   source,
		clk:      clk,
		duration: duration,
		state:    stateIdle,
	}
	h.activatedSub = source.OnActivated(h.handleActivated)
	h.deactivatedSub = source.OnDeactivated(h.handleDeactivated)
	return h, nil
}

// Duration returns the effective hold duration.
func (h *Hold) Duration() time.Duration {
	return h.duration
}

// OnActivated registers fn to run once per completed hold.
func (h *Hold) OnActivated(fn func(event.Args)) *signal.Subscription {
	return h.activated.Subscribe(fn)
}

// OnDeactivated registers fn to run when the input releases after a
// completed hold. It never fires for a release before the hold
// completed.
func (h *Hold) OnDeactivated(fn func(event.Args)) *signal.Subscription {
	return h.deactivated.Subscribe(fn)
}

// Destroy cancels any in-progress hold without emitting downstream
// events, releases the input subscriptions, and destroys the owned
// source. Idempotent.
func (h *Hold) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true

	h.stopTimer()
	h.activatedSub.Cancel()
	h.deactivatedSub.Cancel()
	h.activatedSub = nil
	h.deactivatedSub = nil
	h.source.Destroy()
	h.activated.Close()
	h.deactivated.Close()
	h.state = stateIdle
	h.args = event.Args{}
}

func (h *Hold) handleActivated(args event.Args) {
	if h.state != stateIdle {
		// Duplicate upstream activation; restarting the timer here
		// would reset an in-progress hold and leak a second timer.
		slog.Debug("Duplicate activation ignored", "state", h.state.String())
		return
	}

	h.args = args
	h.start = h.clk.Now()
	h.timer = h.clk.OnTick(h.handleTick)
	h.state = stateTiming
	slog.Debug("Hold timing started", "action", args.Action.String(), "duration", h.duration)
}

func (h *Hold) handleTick() {
	if h.state != stateTiming {
		return
	}

	elapsed := h.clk.Now().Sub(h.start)
	if elapsed < h.duration {
		return
	}

	// Deadline reached with the input still active: release the timer
	// before notifying so listener callbacks observe a settled trigger.
	h.stopTimer()
	h.state = stateActive
	args := h.args
	h.args = event.Args{}
	slog.Debug("Hold completed", "action", args.Action.String(), "elapsed", elapsed)
	h.activated.Emit(args)
}

func (h *Hold) handleDeactivated(args event.Args) {
	switch h.state {
	case stateTiming:
		// Released before the deadline: cancel silently.
		h.stopTimer()
		h.state = stateIdle
		h.args = event.Args{}
		slog.Debug("Hold cancelled before deadline", "action", args.Action.String())
	case stateActive:
		h.state = stateIdle
		slog.Debug("Hold released", "action", args.Action.String())
		h.deactivated.Emit(args)
	}
}

func (h *Hold) stopTimer() {
	h.timer.Cancel()
	h.timer = nil
}
