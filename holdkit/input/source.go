package input

import (
	"log/slog"

	"github.com/mvaleri/go-holdkit/holdkit/input/action"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// Source emits activated/deactivated notifications for one logical
// input. It filters the Manager stream down to its selected action and
// guarantees notifications alternate: a repeated Press while the input
// is already held is swallowed, as is a Release without a prior Press.
type Source struct {
	act action.Action

	activated   signal.Emitter[event.Args]
	deactivated signal.Emitter[event.Args]

	pressSub   *signal.Subscription
	releaseSub *signal.Subscription

	held      bool
	destroyed bool
}

// NewSource creates a source for the input named by sel. Returns
// ErrInvalidSelector if sel does not resolve to a single input.
func NewSource(mgr *Manager, sel Selector) (*Source, error) {
	act, err := sel.Single()
	if err != nil {
		return nil, err
	}

	s := &Source{act: act}
	s.pressSub = mgr.On(act, event.Press, s.handlePress)
	s.releaseSub = mgr.On(act, event.Release, s.handleRelease)
	return s, nil
}

// Action returns the logical input this source watches.
func (s *Source) Action() action.Action {
	return s.act
}

// OnActivated registers fn to run when the input becomes active.
func (s *Source) OnActivated(fn func(event.Args)) *signal.Subscription {
	return s.activated.Subscribe(fn)
}

// OnDeactivated registers fn to run when the input becomes inactive.
func (s *Source) OnDeactivated(fn func(event.Args)) *signal.Subscription {
	return s.deactivated.Subscribe(fn)
}

// Destroy releases the manager subscriptions and closes both
// notification streams. Idempotent.
func (s *Source) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true

	s.pressSub.Cancel()
	s.releaseSub.Cancel()
	s.pressSub = nil
	s.releaseSub = nil
	s.activated.Close()
	s.deactivated.Close()
	s.held = false
}

func (s *Source) handlePress(args event.Args) {
	if s.held {
		// Key repeat or duplicate report; the input is already active.
		return
	}
	s.held = true
	s.activated.Emit(args)
}

func (s *Source) handleRelease(args event.Args) {
	if !s.held {
		slog.Debug("Release without prior press ignored", "action", s.act.String())
		return
	}
	s.held = false
	s.deactivated.Emit(args)
}
