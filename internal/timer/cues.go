package timer

import "time"

// Sound identifies a sample the audio output knows how to play.
type Sound string

// SoundDrop is the single water-drop sample every cue uses.
const SoundDrop Sound = "drop"

// Default cue schedule and levels.
const (
	VisualTickSec    = 30
	EarlyWindowSec   = 600
	EarlyIntervalSec = 180

	BaseVolume  = 0.35
	MidVolume   = 0.25
	NudgeVolume = 0.15

	NudgePulse    = 8 * time.Millisecond
	MidpointPulse = 12 * time.Millisecond
	CompletePulse = 20 * time.Millisecond
)

// Cues configures when focus cues fire and how loud they are.
type Cues struct {
	// VisualTickSec is the period of the visual tick. Zero disables it.
	VisualTickSec int
	// EarlyWindowSec bounds the nudges to elapsed in [1, EarlyWindowSec].
	EarlyWindowSec int
	// EarlyIntervalSec is the nudge period. Zero disables nudges.
	EarlyIntervalSec int

	BaseVolume  float64
	MidVolume   float64
	NudgeVolume float64

	NudgePulse    time.Duration
	MidpointPulse time.Duration
	CompletePulse time.Duration

	Sound Sound
}

// DefaultCues returns the standard schedule.
func DefaultCues() Cues {
	return Cues{
		VisualTickSec:    VisualTickSec,
		EarlyWindowSec:   EarlyWindowSec,
		EarlyIntervalSec: EarlyIntervalSec,
		BaseVolume:       BaseVolume,
		MidVolume:        MidVolume,
		NudgeVolume:      NudgeVolume,
		NudgePulse:       NudgePulse,
		MidpointPulse:    MidpointPulse,
		CompletePulse:    CompletePulse,
		Sound:            SoundDrop,
	}
}
