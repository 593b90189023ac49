package state

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shizuku/internal/settings"
)

const (
	inputFocus = iota
	inputBreak
)

var inputLabels = []string{"Focus", "Break"}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(inputLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 8
		ti.Width = 8
		ti.Placeholder = "minutes"
		inputs[i] = ti
	}
	return inputs
}

// fillInputs shows the saved durations in minutes.
func (m *Model) fillInputs() {
	cur := m.settings.Current()
	m.inputs[inputFocus].SetValue(settings.FormatMinutes(settings.SecondsToMinutes(cur.FocusSec)))
	m.inputs[inputBreak].SetValue(settings.FormatMinutes(settings.SecondsToMinutes(cur.BreakSec)))
}

func (m *Model) focusInput(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			m.inputs[j].CursorEnd()
			continue
		}
		m.inputs[j].Blur()
	}
	m.focused = i
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, settingsKeys.Quit):
		return m.quit()
	case key.Matches(msg, settingsKeys.Back):
		m.commitInput(m.focused)
		m.saver.Cancel()
		cmd := m.saveNow()
		m.setView(ViewHome)
		return m, cmd
	case key.Matches(msg, settingsKeys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, settingsKeys.Prev):
		return m, m.moveFocus(-1)
	}
	return m, m.updateFocusedInput(msg)
}

// moveFocus blurs the current field, resolving its text, and focuses the
// next one.
func (m *Model) moveFocus(delta int) tea.Cmd {
	m.commitInput(m.focused)
	next := (m.focused + delta + len(m.inputs)) % len(m.inputs)
	m.focusInput(next)
	m.scheduleSave()
	return textinput.Blink
}

// commitInput replaces the text of field i with its resolved value. Empty or
// invalid text reverts to the saved duration.
func (m *Model) commitInput(i int) {
	cur := m.settings.Current()
	last := cur.FocusSec
	if i == inputBreak {
		last = cur.BreakSec
	}
	_, display := settings.CommitMinutes(m.inputs[i].Value(), last)
	m.inputs[i].SetValue(display)
	m.inputs[i].CursorEnd()
}

// updateFocusedInput forwards msg to the focused field and normalizes what
// was typed. Any change restarts the save delay.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := &m.inputs[m.focused]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	if normalized := settings.NormalizeDecimalInput(in.Value()); normalized != in.Value() {
		in.SetValue(normalized)
		in.CursorEnd()
	}
	if in.Value() != before {
		m.scheduleSave()
	}
	return cmd
}

// scheduleSave restarts the debounce. The callback runs on a timer
// goroutine, so it only posts a message; the save itself happens in Update.
func (m *Model) scheduleSave() {
	m.save = savePending
	m.saver.Schedule(func() {
		if m.send != nil {
			m.send(saveDueMsg{})
		}
	})
}

// saveNow persists every field that parses to a new value. Fields being
// edited into an invalid state are skipped and keep their saved value.
// Nothing is written when no field changed, so a paused countdown keeps
// its progress across a visit to the settings view.
func (m *Model) saveNow() tea.Cmd {
	cur := m.settings.Current()
	var p settings.Partial
	if sec, ok := fieldSeconds(m.inputs[inputFocus].Value()); ok && sec != cur.FocusSec {
		p.FocusSec = &sec
	}
	if sec, ok := fieldSeconds(m.inputs[inputBreak].Value()); ok && sec != cur.BreakSec {
		p.BreakSec = &sec
	}
	if p.FocusSec == nil && p.BreakSec == nil {
		m.save = saveIdle
		return nil
	}
	m.settings.Save(p)
	m.save = saveDone
	m.saveSeq++
	return after(savedNoteDuration, savedClearMsg{seq: m.saveSeq})
}

func fieldSeconds(raw string) (int, bool) {
	v, ok := settings.ParseMinutes(settings.NormalizeDecimalInput(raw))
	if !ok {
		return 0, false
	}
	return settings.MinutesToSeconds(settings.ClampMinutes(v)), true
}

// InputValue returns the text of a settings field, 0 for focus, 1 for break.
func (m *Model) InputValue(i int) string {
	return m.inputs[i].Value()
}

// SaveNote is the auto-save status shown under the settings fields.
func (m *Model) SaveNote() string {
	switch m.save {
	case savePending:
		return "saving…"
	case saveDone:
		return "saved"
	default:
		return ""
	}
}
