package timer

import (
	"fmt"
	"time"
)

// Phase is the part of the cycle the engine is counting down.
type Phase int

const (
	Focus Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "focus"
}

// Kind classifies an Event.
type Kind int

const (
	// KindVisualTick is the periodic visual cue.
	KindVisualTick Kind = iota
	// KindNudge is the low early-window cue.
	KindNudge
	// KindMidpoint fires once per focus phase at half time.
	KindMidpoint
	// KindFocusComplete ends a focus phase; it carries the completion cue.
	KindFocusComplete
	// KindBreakComplete ends a break phase silently.
	KindBreakComplete
	// KindStarted, KindPaused and KindStopped follow the control operations.
	KindStarted
	KindPaused
	KindStopped
	// KindReset follows an idle settings change.
	KindReset
)

var kindNames = map[Kind]string{
	KindVisualTick:    "visual_tick",
	KindNudge:         "nudge",
	KindMidpoint:      "midpoint",
	KindFocusComplete: "focus_complete",
	KindBreakComplete: "break_complete",
	KindStarted:       "started",
	KindPaused:        "paused",
	KindStopped:       "stopped",
	KindReset:         "reset",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is emitted by the engine. Cue events carry the sound, volume and
// haptic pulse to play; the other kinds only describe state.
type Event struct {
	Kind Kind
	// Phase is the phase the event happened in. For completions it is the
	// phase that just ended; Next is the phase that follows.
	Phase Phase
	Next  Phase
	// Elapsed and Total are seconds into and length of Phase.
	Elapsed int
	Total   int
	// TimeLeft is the countdown after the event was applied.
	TimeLeft int
	Running  bool

	Sound  Sound
	Volume float64
	Pulse  time.Duration

	Drops    int
	Instance string
}

// Audible reports whether the event asks for a sound.
func (e Event) Audible() bool {
	return e.Sound != "" && e.Volume > 0
}

// VisualTick is the payload of the visual channel.
type VisualTick struct {
	Elapsed  int
	Total    int
	Instance string
}

// Fraction returns Elapsed/Total in [0, 1].
func (v VisualTick) Fraction() float64 {
	if v.Total <= 0 {
		return 0
	}
	f := float64(v.Elapsed) / float64(v.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Listener receives every event in emission order.
type Listener func(Event)
