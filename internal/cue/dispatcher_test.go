package cue

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(string, ...any)       {}
func (r *recordingLogger) Info(string, ...any)        {}
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.warnings = append(r.warnings, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.warnings = append(r.warnings, msg) }
func (r *recordingLogger) With(...any) logging.Logger { return r }
func (r *recordingLogger) Shutdown() error            { return nil }

func nudge() timer.Event {
	return timer.Event{
		Kind:   timer.KindNudge,
		Sound:  timer.SoundDrop,
		Volume: timer.NudgeVolume,
		Pulse:  timer.NudgePulse,
	}
}

func TestHandlePlaysAndVibrates(t *testing.T) {
	out := &MockOutput{}
	out.On("Play", timer.SoundDrop, timer.NudgeVolume).Return(nil).Once()
	out.On("Vibrate", timer.NudgePulse).Return(ErrUnsupported).Once()

	var pulses []time.Duration
	d := NewDispatcher(out, WithPulse(func(p time.Duration) { pulses = append(pulses, p) }))
	d.Handle(nudge())

	out.AssertExpectations(t)
	assert.Equal(t, []time.Duration{timer.NudgePulse}, pulses)
}

func TestHandleIgnoresSilentEvents(t *testing.T) {
	out := &MockOutput{}
	d := NewDispatcher(out)

	d.Handle(timer.Event{Kind: timer.KindVisualTick, Elapsed: 30, Total: 1500})
	d.Handle(timer.Event{Kind: timer.KindBreakComplete})

	out.AssertNotCalled(t, "Play", mock.Anything, mock.Anything)
	out.AssertNotCalled(t, "Vibrate", mock.Anything)
}

func TestMutedPlaysAtZeroVolume(t *testing.T) {
	out := &MockOutput{}
	out.On("Play", timer.SoundDrop, 0.0).Return(nil).Once()
	out.On("Vibrate", mock.Anything).Return(nil)

	d := NewDispatcher(out, WithMute(func() bool { return true }))
	d.Handle(nudge())

	out.AssertExpectations(t)
}

func TestErrorsAreSwallowed(t *testing.T) {
	out := &MockOutput{}
	out.On("Play", mock.Anything, mock.Anything).Return(errors.New("device gone"))
	out.On("Vibrate", mock.Anything).Return(errors.New("no motor"))

	rec := &recordingLogger{}
	d := NewDispatcher(out, WithDispatcherLogger(rec))
	assert.NotPanics(t, func() { d.Handle(nudge()) })
	out.AssertNumberOfCalls(t, "Play", 1)
	assert.Equal(t, []string{"cue play failed", "cue vibrate failed"}, rec.warnings)
}

func TestPlayBeforeUnlockIsQuiet(t *testing.T) {
	out := &MockOutput{}
	out.On("Play", mock.Anything, mock.Anything).Return(ErrLocked)
	out.On("Vibrate", mock.Anything).Return(ErrUnsupported)

	rec := &recordingLogger{}
	d := NewDispatcher(out, WithDispatcherLogger(rec))
	d.Handle(nudge())
	d.Handle(nudge())

	out.AssertNumberOfCalls(t, "Play", 2)
	assert.Empty(t, rec.warnings)
}

func TestMinInterval(t *testing.T) {
	now := time.Unix(100, 0)
	out := &MockOutput{}
	out.On("Play", mock.Anything, mock.Anything).Return(nil)
	out.On("Vibrate", mock.Anything).Return(nil)

	d := NewDispatcher(out, WithMinInterval(time.Second), WithNow(func() time.Time { return now }))
	d.Handle(nudge())
	now = now.Add(500 * time.Millisecond)
	d.Handle(nudge())
	now = now.Add(500 * time.Millisecond)
	d.Handle(nudge())

	out.AssertNumberOfCalls(t, "Play", 2)
	out.AssertNumberOfCalls(t, "Vibrate", 3)
}

func TestSoundTest(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		out := &MockOutput{}
		out.On("Unlock").Return(nil)
		out.On("Play", timer.SoundDrop, timer.BaseVolume).Return(nil)
		r := NewDispatcher(out).Test()
		assert.Equal(t, ResultOK, r)
		assert.Equal(t, 1600*time.Millisecond, r.HintTTL())
	})

	t.Run("muted", func(t *testing.T) {
		out := &MockOutput{}
		out.On("Unlock").Return(nil)
		r := NewDispatcher(out, WithMute(func() bool { return true })).Test()
		assert.Equal(t, ResultMuted, r)
		assert.Equal(t, "muted", r.String())
		out.AssertNotCalled(t, "Play", mock.Anything, mock.Anything)
	})

	t.Run("unlock fails", func(t *testing.T) {
		out := &MockOutput{}
		out.On("Unlock").Return(errors.New("no device"))
		r := NewDispatcher(out).Test()
		assert.Equal(t, ResultFailed, r)
		assert.Contains(t, r.Hint(), "Playback failed")
		assert.Equal(t, 2*time.Second, r.HintTTL())
	})

	t.Run("play fails", func(t *testing.T) {
		out := &MockOutput{}
		out.On("Unlock").Return(nil)
		out.On("Play", mock.Anything, mock.Anything).Return(ErrLocked)
		assert.Equal(t, ResultFailed, NewDispatcher(out).Test())
	})
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	assert.NoError(t, b.Unlock())
	assert.NoError(t, b.Play(timer.SoundDrop, 0))
	assert.Empty(t, buf.String())
	assert.NoError(t, b.Play(timer.SoundDrop, 0.2))
	assert.Equal(t, "\a", buf.String())
	assert.ErrorIs(t, b.Vibrate(time.Millisecond), ErrUnsupported)
}

func TestNewForBackend(t *testing.T) {
	assert.IsType(t, Nop{}, NewForBackend("none", "", nil))
	assert.IsType(t, &Bell{}, NewForBackend("BELL", "", &bytes.Buffer{}))
	assert.IsType(t, &Speaker{}, NewForBackend("speaker", "", nil))
	assert.IsType(t, &Speaker{}, NewForBackend("", "", nil))
}
