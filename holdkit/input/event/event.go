package event

import "github.com/mvaleri/go-holdkit/holdkit/input/action"

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Input became active
	Release             // Input became inactive
)

func (t Type) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// Args is the payload carried by input notifications: the originating
// action plus an optional analog value (0 or 1 for digital inputs,
// axis position for analog ones).
type Args struct {
	Action action.Action
	Value  float64
}
