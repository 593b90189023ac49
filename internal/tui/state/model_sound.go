package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shizuku/internal/cue"
	"github.com/cristianoliveira/shizuku/internal/errors"
)

func (m *Model) handleSoundKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, soundKeys.Quit):
		return m.quit()
	case key.Matches(msg, soundKeys.Back):
		m.setView(ViewHome)
		return m, nil
	case key.Matches(msg, soundKeys.Test):
		return m, m.testSound()
	}
	return m, nil
}

// testSound counts as the unlocking user action.
func (m *Model) testSound() tea.Cmd {
	result := m.cues.Test()
	if result != cue.ResultFailed {
		m.unlocked = true
	}
	msgType := errors.MessageTypeSuccess
	switch result {
	case cue.ResultMuted:
		msgType = errors.MessageTypeWarning
	case cue.ResultFailed:
		msgType = errors.MessageTypeError
	}
	return m.notify(result.Hint(), msgType, result.HintTTL())
}
