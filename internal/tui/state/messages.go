// Package state provides the bubbletea model of the shizuku TUI.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the engine by one second. It carries the engine epoch
// at scheduling time; a stale epoch drops the tick without rescheduling.
type tickMsg struct {
	epoch uint64
}

// saveDueMsg is sent by the debouncer when typing has been quiet long enough.
type saveDueMsg struct{}

// savedClearMsg hides the "saved" note unless a newer save replaced it.
type savedClearMsg struct {
	seq int
}

// rippleDoneMsg ends the jar ripple started by a haptic pulse.
type rippleDoneMsg struct {
	seq int
}

// statusExpiredMsg repaints once a status line message has outlived its TTL.
type statusExpiredMsg struct{}

func tickAfter(d time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
