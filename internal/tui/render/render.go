// Package render draws the shizuku views. Functions here are pure: they take
// the state they need and return strings.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

const (
	jarWidth    = 14
	jarHeight   = 8
	waterRune   = "≈"
	rippleRune  = "∿"
	dropSymbol  = "💧"
	mutedSymbol = "🔇"
	soundSymbol = "🔈"
)

// HomeState defines the inputs needed to render the home view.
type HomeState struct {
	Phase    timer.Phase
	TimeLeft int
	Running  bool
	Fill     float64
	Drops    int
	Muted    bool
	Ripple   bool
	Width    int
}

// Clock formats seconds as MM:SS. Minutes are not wrapped at 60.
func Clock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// PhaseLabel names the phase, marking a paused countdown.
func PhaseLabel(phase timer.Phase, running bool) string {
	label := "Focus"
	if phase == timer.Break {
		label = "Break"
	}
	if !running {
		label += " · paused"
	}
	return label
}

// Jar draws the water jar filled to fill (0..1). Rows fill from the bottom.
// The top water row is drawn as a ripple while ripple is set.
func Jar(fill float64, ripple bool) string {
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}
	rows := int(fill*jarHeight + 0.5)
	if fill > 0 && rows == 0 {
		rows = 1
	}

	water := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
	glass := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(glass.Render("╭" + strings.Repeat("─", jarWidth) + "╮"))
	for i := 0; i < jarHeight; i++ {
		b.WriteString("\n")
		level := jarHeight - i
		var inner string
		switch {
		case level > rows:
			inner = strings.Repeat(" ", jarWidth)
		case level == rows && ripple:
			inner = water.Render(strings.Repeat(rippleRune, jarWidth))
		default:
			inner = water.Render(strings.Repeat(waterRune, jarWidth))
		}
		b.WriteString(glass.Render("│") + inner + glass.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(glass.Render("╰" + strings.Repeat("─", jarWidth) + "╯"))
	return b.String()
}

// Drops renders today's completed focus phases.
func Drops(n int) string {
	return fmt.Sprintf("%s %d today", dropSymbol, n)
}

// MuteIndicator shows whether cues are audible.
func MuteIndicator(muted bool) string {
	if muted {
		return mutedSymbol + " muted"
	}
	return soundSymbol + " sound on"
}

// Home renders the timer view.
func Home(state HomeState) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	if state.Phase == timer.Break {
		title = title.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	}
	clock := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	body := lipgloss.JoinVertical(lipgloss.Center,
		title.Render(PhaseLabel(state.Phase, state.Running)),
		clock.Render(Clock(state.TimeLeft)),
		"",
		Jar(state.Fill, state.Ripple),
		"",
		dim.Render(Drops(state.Drops)+"  "+MuteIndicator(state.Muted)),
	)
	if state.Width > 0 {
		return lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, body)
	}
	return body
}

// Field renders one labelled input line of the settings view.
func Field(label, input string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Width(14)
	if focused {
		labelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	}
	return labelStyle.Render(label) + input + " min"
}

// Title renders a view heading.
func Title(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Render(text)
}

// StatusLine renders a status or error message, styled by its type.
func StatusLine(msg errors.Message) string {
	if msg.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle()
	switch msg.Type {
	case errors.MessageTypeError:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	case errors.MessageTypeWarning:
		style = style.Foreground(lipgloss.Color("3"))
	case errors.MessageTypeSuccess:
		style = style.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	default:
		style = style.Foreground(lipgloss.Color("241"))
	}
	return style.Render(msg.Text)
}

// ansiColorNumber extracts the color number from an ANSI escape such as
// "\033[0;34m".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
