package input

import (
	"errors"
	"fmt"

	"github.com/mvaleri/go-holdkit/holdkit/input/action"
)

// ErrInvalidSelector is returned when a selector does not resolve to
// exactly one input method.
var ErrInvalidSelector = errors.New("selector must name exactly one input")

// Selector identifies the physical input a Source listens to. It must
// resolve to a single action; chords (multiple simultaneous inputs)
// are a separate concern layered on top of single-input sources.
type Selector struct {
	Actions []action.Action
}

// Select is shorthand for a single-action selector.
func Select(act action.Action) Selector {
	return Selector{Actions: []action.Action{act}}
}

// Single returns the selected action, or ErrInvalidSelector if the
// selector is empty or names more than one input.
func (s Selector) Single() (action.Action, error) {
	switch len(s.Actions) {
	case 1:
		return s.Actions[0], nil
	case 0:
		return 0, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSelector, len(s.Actions))
	}
}
