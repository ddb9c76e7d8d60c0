// Package tui provides the Bubble Tea integration for the frogger platform.
// It handles the terminal UI loop, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// simTick schedules the next simulation frame. The game core steps exactly
// once per frame, so the tick rate is the game speed.
func simTick(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
