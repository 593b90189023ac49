package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/config"
	"github.com/cristianoliveira/shizuku/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the SQLite key-value table.
	BackendSQLite = "sqlite"
	// BackendYAML selects a single YAML file.
	BackendYAML = "yaml"
	// BackendMemory keeps state only for the running process.
	BackendMemory = "memory"

	sqliteFileName = "shizuku.db"
	yamlFileName   = "shizuku.yaml"
)

// NewFromConfig opens the store selected by storage_backend in state_dir.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite), GetStateDir())
}

// GetStateDir returns the configured state directory.
func GetStateDir() string {
	return config.Get("state_dir", "")
}

// NewForBackend opens backend under stateDir. A backend that cannot be
// opened falls back to the next one (sqlite, yaml, memory) with a warning,
// so the timer always has somewhere to keep its settings.
func NewForBackend(backend, stateDir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		s, err := sqlite.NewStore(filepath.Join(stateDir, sqliteFileName))
		if err == nil {
			return s, nil
		}
		colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to yaml: %v", err))
		return NewForBackend(BackendYAML, stateDir)
	case BackendYAML:
		if stateDir == "" {
			colors.Warning("no state directory configured, falling back to memory storage")
			return NewMemoryStore(), nil
		}
		s, err := NewYAMLStore(filepath.Join(stateDir, yamlFileName))
		if err == nil {
			return s, nil
		}
		colors.Warning(fmt.Sprintf("failed to initialize yaml backend, falling back to memory: %v", err))
		return NewMemoryStore(), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to sqlite", backend))
		return NewForBackend(BackendSQLite, stateDir)
	}
}
