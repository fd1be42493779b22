package input

import "github.com/mvaleri/go-holdkit/holdkit/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	"z":     action.ButtonA,
	"x":     action.ButtonB,
	"Enter": action.ButtonStart,
	"Shift": action.ButtonSelect,
	"Space": action.ButtonA, // Alternative confirm key

	"Up":    action.DPadUp,
	"Down":  action.DPadDown,
	"Left":  action.DPadLeft,
	"Right": action.DPadRight,

	// Alternative arrow keys (WASD)
	"w": action.DPadUp,
	"s": action.DPadDown,
	"a": action.DPadLeft,
	"d": action.DPadRight,

	"Escape": action.ShellQuit,
	"q":      action.ShellQuit,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
