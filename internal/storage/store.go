// Package storage provides the key-value stores shizuku persists state in.
package storage

import (
	"errors"
	"os"
	"strings"

	"github.com/cristianoliveira/shizuku/internal/storage/sqlite"
)

// File permission constants
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644
)

// ErrEmptyKey is returned when a key is blank.
var ErrEmptyKey = errors.New("storage: key cannot be empty")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store is closed")

// Store is a durable string key-value store.
//
// Get reports ok=false for a missing key; err is reserved for a store that
// could not be read at all.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

var _ Store = (*sqlite.Store)(nil)

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
