// Package tui provides the Bubble Tea integration for blockfall. It handles
// the terminal UI loop, key mapping, rendering, and score persistence around
// the pure game engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. The wrapped time is
// when the tick fired, used to measure real elapsed time between advances.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
