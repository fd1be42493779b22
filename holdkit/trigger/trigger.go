// Package trigger provides duration-gated input triggers: primitives
// that turn a raw press/release pair into higher-level activation
// signals, such as hold-to-confirm.
package trigger

import (
	"errors"

	"github.com/mvaleri/go-holdkit/holdkit/input/event"
	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// ErrInvalidConfiguration is returned when a trigger is constructed
// with configuration it cannot act on, such as a selector that names
// more than one input. Construction failures are not recoverable;
// callers must reconstruct with valid configuration.
var ErrInvalidConfiguration = errors.New("invalid trigger configuration")

// Trigger is the capability shared by all trigger kinds: a pair of
// downstream notification streams and an idempotent teardown. Concrete
// triggers decide when those streams fire.
type Trigger interface {
	// OnActivated registers fn to run when the trigger's activation
	// condition is met.
	OnActivated(fn func(event.Args)) *signal.Subscription

	// OnDeactivated registers fn to run when a previously activated
	// trigger releases.
	OnDeactivated(fn func(event.Args)) *signal.Subscription

	// Destroy tears the trigger down, releasing every subscription it
	// owns. Safe to call repeatedly and in any state.
	Destroy()
}
