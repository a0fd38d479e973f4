// Package tui provides the Bubble Tea integration for the arena.
// It drives the simulation from the frame loop, maps keys and the mouse to
// input frames, and persists run outcomes.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall time
// used to compute the tick's delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
