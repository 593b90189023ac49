package state

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, homeKeys.Quit):
		return m.quit()
	case key.Matches(msg, homeKeys.Toggle):
		return m, m.toggle()
	case key.Matches(msg, homeKeys.Stop):
		m.engine.Stop()
		return m, m.rippleCmd()
	case key.Matches(msg, homeKeys.Mute):
		return m, m.toggleMute()
	case key.Matches(msg, homeKeys.Settings):
		m.setView(ViewSettings)
		return m, textinput.Blink
	case key.Matches(msg, homeKeys.Sound):
		m.setView(ViewSound)
		return m, nil
	case key.Matches(msg, homeKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// toggle starts or pauses the countdown. Presses unlock audio output until
// one succeeds, since some outputs only open a device on a user action.
func (m *Model) toggle() tea.Cmd {
	var cmds []tea.Cmd
	if !m.unlocked {
		if err := m.cues.Unlock(); err != nil {
			cmds = append(cmds, m.notify("Audio unavailable: "+err.Error(), errors.MessageTypeWarning, errors.DefaultTTL))
		} else {
			m.unlocked = true
		}
	}
	m.engine.Toggle()
	if m.engine.Running() {
		cmds = append(cmds, tickAfter(m.interval, m.engine.Epoch()))
	}
	cmds = append(cmds, m.rippleCmd())
	return tea.Batch(cmds...)
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.epoch != m.engine.Epoch() || !m.engine.Running() {
		return nil
	}
	m.engine.Tick()
	return tea.Batch(tickAfter(m.interval, msg.epoch), m.rippleCmd())
}

func (m *Model) toggleMute() tea.Cmd {
	if m.mute == nil {
		return nil
	}
	if m.mute.Toggle() {
		return m.notify("Muted", errors.MessageTypeInfo, errors.DefaultTTL)
	}
	return m.notify("Sound on", errors.MessageTypeInfo, errors.DefaultTTL)
}

// onEvent runs synchronously inside engine calls made by Update.
func (m *Model) onEvent(ev timer.Event) {
	m.cues.Handle(ev)

	switch ev.Kind {
	case timer.KindVisualTick:
		m.fill = timer.VisualTick{Elapsed: ev.Elapsed, Total: ev.Total}.Fraction()
	case timer.KindFocusComplete:
		m.fill = 1
		if m.drops != nil {
			m.todayDrops = m.drops.Add(m.now())
		} else {
			m.todayDrops++
		}
	case timer.KindBreakComplete, timer.KindStopped, timer.KindReset:
		m.fill = 0
	}

	if ev.Pulse > 0 {
		m.ripple = true
		m.rippleSeq++
		m.rippleDue = true
	}
}

// rippleCmd schedules the end of a ripple started by the last engine call.
func (m *Model) rippleCmd() tea.Cmd {
	if !m.rippleDue {
		return nil
	}
	m.rippleDue = false
	return after(rippleDuration, rippleDoneMsg{seq: m.rippleSeq})
}

// Fill returns the jar level in [0, 1].
func (m *Model) Fill() float64 {
	return m.fill
}

// TodayDrops returns the number of focus phases completed today.
func (m *Model) TodayDrops() int {
	return m.todayDrops
}

// Rippling reports whether the jar ripple is showing.
func (m *Model) Rippling() bool {
	return m.ripple
}
