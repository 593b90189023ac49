// Package cue plays the audio and haptic side of timer events.
package cue

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cristianoliveira/shizuku/internal/config"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

// ErrUnsupported is returned by outputs that cannot perform an action,
// such as vibrating from a terminal.
var ErrUnsupported = errors.New("cue: not supported by this output")

// Output is an audio/haptic device. Every method is best-effort.
type Output interface {
	// Unlock prepares the device. It is idempotent after the first success.
	Unlock() error
	// Play starts sound at volume in [0, 1] and returns without waiting.
	Play(sound timer.Sound, volume float64) error
	// Vibrate pulses for d, or returns ErrUnsupported.
	Vibrate(d time.Duration) error
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Unlock() error                   { return nil }
func (Nop) Play(timer.Sound, float64) error { return nil }
func (Nop) Vibrate(time.Duration) error     { return ErrUnsupported }

// Backend names accepted by audio_backend.
const (
	BackendSpeaker = "speaker"
	BackendBell    = "bell"
	BackendNone    = "none"
)

// NewForBackend builds the output named by backend. bellOut receives the
// BEL character when the bell backend is chosen.
func NewForBackend(backend, soundFile string, bellOut io.Writer) Output {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendNone:
		return Nop{}
	case BackendBell:
		return NewBell(bellOut)
	default:
		return NewSpeaker(soundFile)
	}
}

// NewFromConfig builds the output selected by audio_backend and sound_file.
func NewFromConfig() Output {
	return NewForBackend(config.Get("audio_backend", BackendSpeaker), config.Get("sound_file", ""), os.Stderr)
}
