// Package tui hosts registered game variants in a Bubble Tea program:
// the frame loop, key mapping, lipgloss rendering, menus, the scoreboard
// and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to step one host frame. Gen identifies the
// frame loop that scheduled it; frames from an older loop are dropped.
type FrameMsg struct {
	Gen  uint64
	Time time.Time
}

// frameCmd schedules the next frame of loop gen at the given rate.
func frameCmd(gen uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
