package cue

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/shizuku/internal/timer"
)

func fakeSpeaker(soundFile string) (*Speaker, *int, *[]beep.Streamer) {
	inits := 0
	var played []beep.Streamer
	s := NewSpeaker(soundFile)
	s.initDevice = func(beep.SampleRate, int) error {
		inits++
		return nil
	}
	s.play = func(st ...beep.Streamer) { played = append(played, st...) }
	return s, &inits, &played
}

func TestSpeakerPlayBeforeUnlock(t *testing.T) {
	s, _, played := fakeSpeaker("")
	assert.ErrorIs(t, s.Play(timer.SoundDrop, 0.5), ErrLocked)
	assert.Empty(t, *played)
}

func TestSpeakerUnlockIsIdempotent(t *testing.T) {
	s, inits, played := fakeSpeaker("")
	require.NoError(t, s.Unlock())
	require.NoError(t, s.Unlock())
	assert.Equal(t, 1, *inits)

	require.NoError(t, s.Play(timer.SoundDrop, timer.MidVolume))
	require.Len(t, *played, 1)
	v, ok := (*played)[0].(*effects.Volume)
	require.True(t, ok)
	assert.InDelta(t, -2.0, v.Volume, 0.01, "0.25 is two halvings")
	assert.False(t, v.Silent)
}

func TestSpeakerUnlockFailureCanRetry(t *testing.T) {
	s, _, _ := fakeSpeaker("")
	calls := 0
	s.initDevice = func(beep.SampleRate, int) error {
		calls++
		if calls == 1 {
			return errors.New("busy")
		}
		return nil
	}
	assert.Error(t, s.Unlock())
	assert.NoError(t, s.Unlock())
}

func TestSpeakerMissingSoundFile(t *testing.T) {
	s, inits, _ := fakeSpeaker(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, s.Unlock())
	assert.Zero(t, *inits)
}

func TestWithVolume(t *testing.T) {
	assert.True(t, withVolume(nil, 0).Silent)
	assert.InDelta(t, 0, withVolume(nil, 1.5).Volume, 1e-9)
	assert.InDelta(t, -1, withVolume(nil, 0.5).Volume, 1e-9)
}

func TestSynthDrop(t *testing.T) {
	b := synthDrop()
	assert.Equal(t, sampleRate.N(dropDuration), b.Len())
	assert.Equal(t, 2, b.Format().NumChannels)
}
