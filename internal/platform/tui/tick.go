// Package tui provides the Bubble Tea integration: it adapts key presses to
// engine commands, schedules ticks at the engine's current interval, draws
// snapshots, and serves the same session over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick. Gen identifies the tick chain
// that scheduled it; ticks from a superseded chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
