package core

// Action represents a semantic game action, abstracted from physical key
// presses. This is the complete input vocabulary the engine understands;
// anything else is ignored.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, h - shift piece left
	ActionMoveRight        // Right arrow, l - shift piece right
	ActionSoftDrop         // Down arrow, j - fast fall while held
	ActionRotateCW         // Up arrow, x - rotate clockwise
	ActionRotateCCW        // Z - rotate anticlockwise
	ActionPause            // P, Esc - pause/unpause
	ActionRestart          // R - full reset to a fresh game
	ActionQuit             // Q, Ctrl+C - exit (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes key presses from key releases.
type EventKind int

const (
	Press EventKind = iota
	Release
)

// InputEvent is a single press or release of an action. The engine consumes
// an ordered slice of these per advance; order matters because a press and a
// release of the same action can arrive within one tick.
type InputEvent struct {
	Kind   EventKind
	Action Action
}

// Pressed is a convenience constructor for a press event.
func Pressed(a Action) InputEvent {
	return InputEvent{Kind: Press, Action: a}
}

// Released is a convenience constructor for a release event.
func Released(a Action) InputEvent {
	return InputEvent{Kind: Release, Action: a}
}
