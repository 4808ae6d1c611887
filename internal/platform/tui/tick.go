// Package tui runs a registered game in the terminal with Bubble Tea: it
// drives the frame loop, maps keys and mouse presses to input frames and
// turns the game's screen buffer into styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game frame.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one frame interval.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
