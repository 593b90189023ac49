package cue

import (
	"errors"
	"sync"
	"time"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

// Result is the outcome of a sound test.
type Result int

const (
	ResultOK Result = iota
	ResultMuted
	ResultFailed
)

// Hint returns the status line shown after a sound test.
func (r Result) Hint() string {
	switch r {
	case ResultOK:
		return "Played a drop. If you heard nothing, check the system volume."
	case ResultMuted:
		return "Sound is muted. Unmute to hear the cues."
	default:
		return "Playback failed, check the audio device."
	}
}

// HintTTL is how long the hint stays on screen.
func (r Result) HintTTL() time.Duration {
	if r == ResultOK {
		return 1600 * time.Millisecond
	}
	return 2 * time.Second
}

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultMuted:
		return "muted"
	default:
		return "failed"
	}
}

// Dispatcher turns timer events into Output calls. Errors are logged and
// dropped; nothing is retried.
type Dispatcher struct {
	mu          sync.Mutex
	out         Output
	muted       func() bool
	minInterval time.Duration
	now         func() time.Time
	lastPlay    time.Time
	onPulse     func(time.Duration)
	logger      logging.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMute reads the mute state before every play.
func WithMute(muted func() bool) DispatcherOption {
	return func(d *Dispatcher) { d.muted = muted }
}

// WithMinInterval skips plays closer together than interval.
func WithMinInterval(interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.minInterval = interval }
}

// WithPulse forwards haptic pulses, for example to a visual ripple.
func WithPulse(fn func(time.Duration)) DispatcherOption {
	return func(d *Dispatcher) { d.onPulse = fn }
}

// WithNow replaces time.Now for the throttle.
func WithNow(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) { d.now = now }
}

// WithDispatcherLogger overrides the global logger.
func WithDispatcherLogger(l logging.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher wraps out.
func NewDispatcher(out Output, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		out:   out,
		muted: func() bool { return false },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) log() logging.Logger {
	if d.logger != nil {
		return d.logger
	}
	return logging.GetGlobal()
}

// Handle is a timer.Listener.
func (d *Dispatcher) Handle(ev timer.Event) {
	if ev.Audible() {
		d.play(ev.Sound, ev.Volume, ev.Kind)
	}
	if ev.Pulse > 0 {
		if err := d.out.Vibrate(ev.Pulse); err != nil && !errors.Is(err, ErrUnsupported) {
			d.log().Warn("cue vibrate failed", "kind", ev.Kind.String(), "error", err)
		}
		if d.onPulse != nil {
			d.onPulse(ev.Pulse)
		}
	}
}

// play applies mute as volume zero and the minimum interval.
func (d *Dispatcher) play(sound timer.Sound, volume float64, kind timer.Kind) {
	if d.muted() {
		volume = 0
	}
	d.mu.Lock()
	now := d.now()
	if d.minInterval > 0 && !d.lastPlay.IsZero() && now.Sub(d.lastPlay) < d.minInterval {
		d.mu.Unlock()
		d.log().Debug("cue throttled", "kind", kind.String())
		return
	}
	d.lastPlay = now
	d.mu.Unlock()

	if err := d.out.Play(sound, volume); err != nil {
		if errors.Is(err, ErrLocked) {
			d.log().Debug("cue skipped before unlock", "kind", kind.String())
			return
		}
		d.log().Warn("cue play failed", "kind", kind.String(), "error", err)
	}
}

// Unlock forwards to the output, logging failures.
func (d *Dispatcher) Unlock() error {
	err := d.out.Unlock()
	if err != nil {
		d.log().Warn("cue unlock failed", "error", err)
	}
	return err
}

// Test unlocks the output and plays one drop at the base volume.
func (d *Dispatcher) Test() Result {
	if err := d.Unlock(); err != nil {
		return ResultFailed
	}
	if d.muted() {
		return ResultMuted
	}
	if err := d.out.Play(timer.SoundDrop, timer.BaseVolume); err != nil {
		d.log().Warn("cue test playback failed", "error", err)
		return ResultFailed
	}
	return ResultOK
}
