// Package input maps raw device activity onto logical actions and
// exposes per-input notification sources for triggers to consume.
package input

import (
	"log/slog"

	"github.com/mvaleri/go-holdkit/holdkit/input/action"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
	"github.com/mvaleri/go-holdkit/holdkit/signal"
)

// Manager is the raw input hub. Backends push state changes in via
// Trigger; consumers register callbacks per action and event type.
// Dispatch is synchronous and single-threaded.
type Manager struct {
	handlers map[action.Action]map[event.Type]*signal.Emitter[event.Args]
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type]*signal.Emitter[event.Args]),
	}
}

// On registers a callback for a specific action and event type.
func (m *Manager) On(act action.Action, evt event.Type, fn func(event.Args)) *signal.Subscription {
	byType, ok := m.handlers[act]
	if !ok {
		byType = make(map[event.Type]*signal.Emitter[event.Args])
		m.handlers[act] = byType
	}
	emitter, ok := byType[evt]
	if !ok {
		emitter = &signal.Emitter[event.Args]{}
		byType[evt] = emitter
	}
	return emitter.Subscribe(fn)
}

// Trigger dispatches the given action and event type to all registered
// callbacks. Backends call this once per observed state change.
func (m *Manager) Trigger(act action.Action, evt event.Type, value float64) {
	slog.Debug("Input trigger", "action", act.String(), "type", evt.String(), "value", value)

	emitter, ok := m.handlers[act][evt]
	if !ok {
		return
	}
	emitter.Emit(event.Args{Action: act, Value: value})
}
