package tmux

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

var levels = []rune("▁▂▃▄▅▆▇█")

// StatusRenderer mirrors the timer into a tmux option, e.g. for
// status-right '#{@shizuku}'. Failures are logged and otherwise ignored.
type StatusRenderer struct {
	mu     sync.Mutex
	client Client
	option string
	last   string
}

// NewStatusRenderer writes to option through client.
func NewStatusRenderer(client Client, option string) *StatusRenderer {
	if option == "" {
		option = DefaultStatusOption
	}
	return &StatusRenderer{client: client, option: option}
}

// Handle is a timer.Listener. Nudges and the midpoint do not change the
// rendering and are skipped.
func (r *StatusRenderer) Handle(ev timer.Event) {
	switch ev.Kind {
	case timer.KindNudge, timer.KindMidpoint:
		return
	}
	r.set(Render(ev))
}

// HandleSecond refreshes the status from the engine state after each tick,
// so the minutes keep counting down between events.
func (r *StatusRenderer) HandleSecond(st timer.State) {
	r.set(RenderState(st))
}

// Render formats ev as "<jar> <phase> <minutes>m", with a pause marker
// when idle and the day's drops at the end. The jar fills during focus and
// stays full for the break.
func Render(ev timer.Event) string {
	elapsed := ev.Elapsed
	if ev.Phase != ev.Next {
		elapsed = 0
	}
	return format(jar(ev.Next, elapsed, ev.Total), ev.Next, ev.TimeLeft, ev.Running, ev.Drops)
}

// RenderState formats a snapshot the same way as Render.
func RenderState(st timer.State) string {
	return format(jar(st.Phase, st.Elapsed, st.Total), st.Phase, st.TimeLeft, st.Running, st.Drops)
}

func jar(phase timer.Phase, elapsed, total int) rune {
	if phase == timer.Break {
		return levels[len(levels)-1]
	}
	return levels[level(elapsed, total)]
}

func format(fill rune, phase timer.Phase, timeLeft int, running bool, drops int) string {
	minutes := (timeLeft + 59) / 60
	state := ""
	if !running {
		state = "⏸ "
	}
	return fmt.Sprintf("%s%c %s %dm 💧%d", state, fill, phase, minutes, drops)
}

func level(elapsed, total int) int {
	if total <= 0 || elapsed <= 0 {
		return 0
	}
	i := elapsed * (len(levels) - 1) / total
	if i >= len(levels) {
		i = len(levels) - 1
	}
	return i
}

func (r *StatusRenderer) set(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value == r.last {
		return
	}
	if err := r.client.SetOption(r.option, value); err != nil {
		logging.Debug("tmux status update failed", "option", r.option, "error", err)
		return
	}
	r.last = value
	if err := r.client.Refresh(); err != nil {
		logging.Debug("tmux status refresh failed", "error", err)
	}
}

// Clear removes the option, typically on exit.
func (r *StatusRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.client.UnsetOption(r.option); err != nil {
		logging.Debug("tmux status clear failed", "option", r.option, "error", err)
	}
	r.last = ""
}
