// Package tui provides the Bubble Tea integration for the game hub.
// It handles the terminal UI loop, input mapping, timer scheduling and
// game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// generations is shared by every game model so that ticks left over from a
// previous game can never match the generation of a later one.
var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// timerMsg reports that one game timer is due.
// Messages from an older generation are stale and dropped.
type timerMsg struct {
	index int
	gen   uint64
}

// timerCmd returns a Bubble Tea command that delivers a timerMsg after d.
func timerCmd(gen uint64, index int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{index: index, gen: gen}
	})
}
