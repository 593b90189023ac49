package cue

import (
	"io"
	"sync"
	"time"

	"github.com/cristianoliveira/shizuku/internal/timer"
)

// Bell rings the terminal bell. It has no volume control beyond silence.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell writes BEL to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Unlock() error { return nil }

func (b *Bell) Play(_ timer.Sound, volume float64) error {
	if volume <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

func (b *Bell) Vibrate(time.Duration) error { return ErrUnsupported }
