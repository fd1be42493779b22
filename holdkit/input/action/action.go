package action

// Action represents a logical input control, decoupled from the
// physical key or button a backend maps onto it.
type Action int

const (
	// Face buttons
	ButtonA Action = iota
	ButtonB
	ButtonStart
	ButtonSelect

	// Directional pad
	DPadUp
	DPadDown
	DPadLeft
	DPadRight

	// Shell controls for interactive frontends
	ShellQuit
)

var names = map[Action]string{
	ButtonA:      "ButtonA",
	ButtonB:      "ButtonB",
	ButtonStart:  "ButtonStart",
	ButtonSelect: "ButtonSelect",
	DPadUp:       "DPadUp",
	DPadDown:     "DPadDown",
	DPadLeft:     "DPadLeft",
	DPadRight:    "DPadRight",
	ShellQuit:    "ShellQuit",
}

func (a Action) String() string {
	if name, ok := names[a]; ok {
		return name
	}
	return "Unknown"
}

// Parse returns the action with the given name, matching String output.
func Parse(name string) (Action, bool) {
	for act, n := range names {
		if n == name {
			return act, true
		}
	}
	return 0, false
}
