// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loopIDs numbers game models so a model ignores messages scheduled by an
// earlier one in the same program.
var loopIDs atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

// TimerMsg delivers a wall-clock timer expiry for the given generation.
type TimerMsg struct {
	Generation int
	Loop       uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// timerCmd schedules one timer delivery after interval.
func timerCmd(interval time.Duration, generation int, loop uint64) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TimerMsg{Generation: generation, Loop: loop}
	})
}
