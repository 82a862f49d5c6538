package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/blockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "h", "a":
		return core.ActionMoveLeft, false
	case "right", "l", "d":
		return core.ActionMoveRight, false
	case "down", "j", "s":
		return core.ActionSoftDrop, false
	case "up", "x", "w", "k":
		return core.ActionRotateCW, false
	case "z":
		return core.ActionRotateCCW, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToEvents translates a key message into engine input events.
// Terminals report key presses only, so each mapped key becomes a press
// immediately followed by a release; held keys repeat through the terminal's
// own auto-repeat.
func (km *KeyMapper) MapKeyToEvents(msg tea.KeyMsg) (events []core.InputEvent, isQuit bool) {
	action, isQuit := km.MapKey(msg)
	if isQuit || action == core.ActionNone {
		return nil, isQuit
	}
	return []core.InputEvent{core.Pressed(action), core.Released(action)}, false
}
