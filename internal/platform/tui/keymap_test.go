package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey('h'), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{runeKey('l'), core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{runeKey('j'), core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{runeKey('x'), core.ActionRotateCW},
		{runeKey('z'), core.ActionRotateCCW},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('?'), core.ActionNone},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", tt.msg.String())
		}
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), action, tt.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		runeKey('q'),
	} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("MapKey(%q) should report quit", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, want ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyToEvents(t *testing.T) {
	km := NewKeyMapper()

	events, isQuit := km.MapKeyToEvents(runeKey('h'))
	if isQuit {
		t.Fatal("h should not be a quit key")
	}
	if len(events) != 2 {
		t.Fatalf("expected press+release pair, got %d events", len(events))
	}
	if events[0] != core.Pressed(core.ActionMoveLeft) || events[1] != core.Released(core.ActionMoveLeft) {
		t.Errorf("unexpected events: %v", events)
	}

	events, isQuit = km.MapKeyToEvents(runeKey('?'))
	if isQuit || events != nil {
		t.Errorf("unmapped key should produce no events, got %v", events)
	}
}
