package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move forward along facing
	ActionDown           // S, Down arrow - move backward
	ActionLeft           // A, Left arrow - strafe left
	ActionRight          // D, Right arrow - strafe right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart run after defeat
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause run
	ActionZoomIn         // I - zoom camera in
	ActionZoomOut        // O - zoom camera out
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// Movement actions are level-triggered (held); the rest are edge-triggered.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool

	// Pointer is the pointer offset from the screen center in screen units.
	// The player faces along this vector.
	Pointer Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. The pointer is kept since it
// only changes when the pointer moves.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
