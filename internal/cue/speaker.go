package cue

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/cristianoliveira/shizuku/internal/timer"
)

const (
	sampleRate   = beep.SampleRate(44100)
	dropDuration = 220 * time.Millisecond
	dropStartHz  = 1400.0
	dropEndHz    = 520.0
)

// ErrLocked is returned by Speaker.Play before a successful Unlock.
var ErrLocked = errors.New("cue: speaker not unlocked")

// Speaker plays the water drop through the system audio device.
type Speaker struct {
	mu        sync.Mutex
	soundFile string
	buffer    *beep.Buffer
	unlocked  bool

	initDevice func(sr beep.SampleRate, bufferSize int) error
	play       func(s ...beep.Streamer)
}

// NewSpeaker plays soundFile (a WAV) when set, otherwise a synthesized drop.
func NewSpeaker(soundFile string) *Speaker {
	return &Speaker{
		soundFile:  soundFile,
		initDevice: speaker.Init,
		play:       speaker.Play,
	}
}

// Unlock loads the sample and opens the audio device once.
func (s *Speaker) Unlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unlocked {
		return nil
	}

	buffer, err := s.load()
	if err != nil {
		return err
	}
	sr := buffer.Format().SampleRate
	if err := s.initDevice(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("cue: open audio device: %w", err)
	}
	s.buffer = buffer
	s.unlocked = true
	return nil
}

func (s *Speaker) load() (*beep.Buffer, error) {
	if s.soundFile == "" {
		return synthDrop(), nil
	}
	f, err := os.Open(s.soundFile)
	if err != nil {
		return nil, fmt.Errorf("cue: open sound file: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cue: decode %s: %w", s.soundFile, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Play queues the sample at volume. It does not block.
func (s *Speaker) Play(_ timer.Sound, volume float64) error {
	s.mu.Lock()
	buffer, unlocked := s.buffer, s.unlocked
	s.mu.Unlock()
	if !unlocked {
		return ErrLocked
	}
	s.play(withVolume(buffer.Streamer(0, buffer.Len()), volume))
	return nil
}

func (s *Speaker) Vibrate(time.Duration) error { return ErrUnsupported }

// withVolume maps a linear volume in [0, 1] onto beep's base-2 scale.
func withVolume(st beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: st, Base: 2}
	if volume <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(math.Min(volume, 1))
	return v
}

// synthDrop renders a short falling tone with an exponential decay.
func synthDrop() *beep.Buffer {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	total := sampleRate.N(dropDuration)
	phase := 0.0
	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			if i >= total {
				return j, j > 0
			}
			t := float64(i) / float64(total)
			freq := dropStartHz + (dropEndHz-dropStartHz)*t
			phase += 2 * math.Pi * freq / float64(sampleRate)
			amp := math.Exp(-5*t) * math.Min(1, float64(i)/64)
			v := math.Sin(phase) * amp
			samples[j] = [2]float64{v, v}
			i++
		}
		return len(samples), true
	})
	buffer := beep.NewBuffer(format)
	buffer.Append(tone)
	return buffer
}
