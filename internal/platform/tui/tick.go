// Package tui provides the Bubble Tea integration for slidemaze.
// It handles the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one game frame. Gen identifies the
// scheduling that produced it so stale frames can be dropped.
type FrameMsg struct {
	Gen uint64
	At  time.Time
}

// frameCmd returns a Bubble Tea command that delivers one frame after interval.
func frameCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}
