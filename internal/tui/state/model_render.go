package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/shizuku/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	switch m.view {
	case ViewSettings:
		s.WriteString(m.settingsView())
		s.WriteString("\n\n")
		s.WriteString(m.help.View(settingsKeys))
	case ViewSound:
		s.WriteString(m.soundView())
		s.WriteString("\n\n")
		s.WriteString(m.help.View(soundKeys))
	default:
		s.WriteString(m.homeView())
		s.WriteString("\n\n")
		s.WriteString(m.help.View(homeKeys))
	}

	if msg, ok := m.status.Current(); ok {
		s.WriteString("\n")
		s.WriteString(render.StatusLine(msg))
	}
	return s.String()
}

func (m *Model) homeView() string {
	snap := m.engine.Snapshot()
	muted := false
	if m.mute != nil {
		muted = m.mute.Muted()
	}
	return render.Home(render.HomeState{
		Phase:    snap.Phase,
		TimeLeft: snap.TimeLeft,
		Running:  snap.Running,
		Fill:     m.fill,
		Drops:    m.todayDrops,
		Muted:    muted,
		Ripple:   m.ripple,
		Width:    m.width,
	})
}

func (m *Model) settingsView() string {
	lines := []string{render.Title("Settings"), ""}
	for i, label := range inputLabels {
		lines = append(lines, render.Field(label, m.inputs[i].View(), i == m.focused))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.SaveNote()))
	return strings.Join(lines, "\n")
}

func (m *Model) soundView() string {
	muted := false
	if m.mute != nil {
		muted = m.mute.Muted()
	}
	return strings.Join([]string{
		render.Title("Sound test"),
		"",
		"Plays one water drop at the cue volume.",
		render.MuteIndicator(muted),
	}, "\n")
}
