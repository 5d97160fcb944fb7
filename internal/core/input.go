package core

// Action represents a logical game action, abstracted from physical keys.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // W, Space, Up
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionBack         // B, Escape - leave a screen
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held actions for one simulation tick.
// An action present in the frame is "currently held", not just pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Held returns true if the given action is held in this frame.
func (f InputFrame) Held(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
