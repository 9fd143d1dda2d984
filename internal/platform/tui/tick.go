// Package tui hosts the game in a Bubble Tea program. It schedules frames and
// score polls, maps keys and clicks to game actions, and renders the screen
// buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one physics tick.
// Messages from an older generation belong to a discarded session and are dropped.
type FrameMsg struct {
	Generation uint64
	Time       time.Time
}

// ScorePollMsg asks the model to refresh the displayed score.
type ScorePollMsg struct {
	Generation uint64
}

// frameCmd schedules the next frame after interval.
func frameCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: gen, Time: t}
	})
}

// pollCmd schedules the next score poll after interval.
func pollCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ScorePollMsg{Generation: gen}
	})
}
