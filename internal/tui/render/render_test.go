package render

import (
	"strings"
	"testing"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	tests := []struct {
		sec      int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{6000, "100:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clock(tt.sec))
		})
	}
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "Focus", PhaseLabel(timer.Focus, true))
	assert.Equal(t, "Break", PhaseLabel(timer.Break, true))
	assert.Equal(t, "Focus · paused", PhaseLabel(timer.Focus, false))
}

func countWater(jar string) int {
	n := 0
	for _, line := range strings.Split(jar, "\n") {
		if strings.Contains(line, waterRune) || strings.Contains(line, rippleRune) {
			n++
		}
	}
	return n
}

func TestJarFillsFromBottom(t *testing.T) {
	empty := Jar(0, false)
	assert.Equal(t, 0, countWater(empty))
	assert.Len(t, strings.Split(empty, "\n"), jarHeight+2)

	half := Jar(0.5, false)
	assert.Equal(t, jarHeight/2, countWater(half))
	lines := strings.Split(half, "\n")
	assert.NotContains(t, lines[1], waterRune, "top row stays empty")
	assert.Contains(t, lines[jarHeight], waterRune, "bottom row is water")

	assert.Equal(t, jarHeight, countWater(Jar(1, false)))
	assert.Equal(t, jarHeight, countWater(Jar(3, false)), "fill is clamped")
	assert.Equal(t, 0, countWater(Jar(-1, false)))
}

func TestJarShowsAtLeastOneRowOnceFilling(t *testing.T) {
	assert.Equal(t, 1, countWater(Jar(0.01, false)))
}

func TestJarRipple(t *testing.T) {
	jar := Jar(0.5, true)
	assert.Equal(t, 1, strings.Count(jar, strings.Repeat(rippleRune, jarWidth)))
	assert.NotContains(t, Jar(0.5, false), rippleRune)
}

func TestHomeIncludesState(t *testing.T) {
	out := Home(HomeState{Phase: timer.Break, TimeLeft: 299, Running: false, Fill: 1, Drops: 3, Muted: true})
	assert.Contains(t, out, "Break · paused")
	assert.Contains(t, out, "04:59")
	assert.Contains(t, out, "3 today")
	assert.Contains(t, out, "muted")
}

func TestMuteIndicator(t *testing.T) {
	assert.Contains(t, MuteIndicator(true), "muted")
	assert.Contains(t, MuteIndicator(false), "sound on")
}

func TestStatusLine(t *testing.T) {
	assert.Empty(t, StatusLine(errors.Message{}))
	out := StatusLine(errors.Message{Text: "saved", Type: errors.MessageTypeSuccess})
	assert.Contains(t, out, "saved")
}

func TestField(t *testing.T) {
	out := Field("Focus", "25", true)
	require.Contains(t, out, "Focus")
	assert.True(t, strings.HasSuffix(out, "25 min"))
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "36", ansiColorNumber(colors.Cyan))
	assert.Equal(t, "", ansiColorNumber("x"))
	assert.Equal(t, "", ansiColorNumber("\033[0m"))
}
