package core

// Action is a semantic game action, abstracted from physical key
// presses so the game logic never sees raw keyboard events.
type Action int

const (
	ActionNone    Action = iota
	ActionTiltCCW        // A, Left arrow - rotate the labyrinth counter-clockwise
	ActionTiltCW         // D, Right arrow - rotate the labyrinth clockwise
	ActionConfirm        // Enter - confirm
	ActionBack           // B, Escape - back
	ActionRestart        // R - restart the session
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionOverlay        // O - toggle the debug overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltCCW:
		return "TiltCCW"
	case ActionTiltCW:
		return "TiltCW"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionOverlay:
		return "Overlay"
	}
	return "Unknown"
}

// InputFrame is the polled input snapshot for one simulation frame.
// The platform builds it from keyboard events once per frame and passes
// it into the game as a plain value; the game holds no hidden
// subscription state.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Tilt collapses the two rotation actions into one direction:
// -1 counter-clockwise, +1 clockwise, 0 neither or both.
func (f InputFrame) Tilt() int {
	t := 0
	if f.Has(ActionTiltCW) {
		t++
	}
	if f.Has(ActionTiltCCW) {
		t--
	}
	return t
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
