package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/shizuku/internal/config"
)

// Config holds logging configuration.
type Config struct {
	Enabled bool
	// Level is the minimum level recorded: debug, info, warn or error.
	Level string
	// MaxFiles is the number of log files kept after rotation.
	MaxFiles int
	// Command names the subcommand being executed; it ends up in the file name.
	Command string
	PID     int
	// Dir overrides LogDir when set.
	Dir string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig creates a logging Config from the global configuration.
// debug forces the debug level; quiet raises it to error unless debug is on.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", "info")
	cfg.MaxFiles = config.GetInt("logging_max_files", 10)
	switch {
	case config.GetBool("debug", false):
		cfg.Level = "debug"
	case config.GetBool("quiet", false):
		cfg.Level = "error"
	}
	return cfg
}

// LogDir returns {state_dir}/logs, falling back to a directory under
// os.TempDir when the state directory is not writable.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		logDir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(logDir, 0700); err == nil && writable(logDir) {
			return logDir, nil
		}
	}
	tempBase := filepath.Join(os.TempDir(), "shizuku", "logs")
	if err := os.MkdirAll(tempBase, 0700); err != nil {
		return "", err
	}
	return tempBase, nil
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
