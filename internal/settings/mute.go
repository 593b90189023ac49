package settings

import (
	"sync"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/storage"
)

// MuteFlag is the persisted mute toggle, stored as "0" or "1".
// It is read once by NewMuteFlag and written on every change.
type MuteFlag struct {
	mu    sync.RWMutex
	kv    storage.Store
	muted bool
}

// NewMuteFlag loads the flag. Anything other than "1" reads as unmuted.
func NewMuteFlag(kv storage.Store) *MuteFlag {
	f := &MuteFlag{kv: kv}
	f.muted = f.Load()
	return f
}

// Load reads the stored flag without changing the in-memory value.
func (f *MuteFlag) Load() bool {
	raw, ok, err := f.kv.Get(KeyMuted)
	if err != nil {
		logging.Warn("mute flag read failed", "error", err)
		return false
	}
	return ok && raw == "1"
}

// Muted reports the in-memory value.
func (f *MuteFlag) Muted() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.muted
}

// Set updates and persists the flag.
func (f *MuteFlag) Set(muted bool) {
	f.mu.Lock()
	f.muted = muted
	f.mu.Unlock()

	value := "0"
	if muted {
		value = "1"
	}
	if err := f.kv.Set(KeyMuted, value); err != nil {
		logging.Warn("mute flag write failed", "error", err)
	}
}

// Toggle flips the flag and returns the new value.
func (f *MuteFlag) Toggle() bool {
	f.mu.Lock()
	next := !f.muted
	f.mu.Unlock()
	f.Set(next)
	return next
}
