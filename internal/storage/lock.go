package storage

import (
	"fmt"
	"os"
	"time"
)

const (
	lockTimeout = 10 * time.Second
	lockRetry   = 50 * time.Millisecond
	// A lock directory older than this is treated as left behind by a crash.
	lockStale = 30 * time.Second
)

// Lock is a cross-process lock held by creating a directory.
type Lock struct {
	dir     string
	timeout time.Duration
}

// NewLock creates a new lock at the given directory path.
func NewLock(dir string) *Lock {
	return &Lock{dir: dir, timeout: lockTimeout}
}

// Acquire creates the lock directory, retrying until the timeout.
func (l *Lock) Acquire() error {
	start := time.Now()
	for {
		err := os.Mkdir(l.dir, FileModeDir)
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("create lock directory: %w", err)
		}
		if info, statErr := os.Stat(l.dir); statErr == nil && time.Since(info.ModTime()) > lockStale {
			_ = os.Remove(l.dir)
			continue
		}
		if time.Since(start) > l.timeout {
			return fmt.Errorf("lock %s held by another process", l.dir)
		}
		time.Sleep(lockRetry)
	}
}

// Release releases the lock by removing the directory.
func (l *Lock) Release() error {
	return os.Remove(l.dir)
}

// WithLock executes fn while holding the lock.
func WithLock(dir string, fn func() error) error {
	lock := NewLock(dir)
	if err := lock.Acquire(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer lock.Release()
	return fn()
}
