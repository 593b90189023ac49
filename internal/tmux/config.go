package tmux

import (
	"os"
	"time"

	"github.com/cristianoliveira/shizuku/internal/config"
)

const (
	// DefaultTimeout bounds a single tmux invocation.
	DefaultTimeout = 5 * time.Second
	// DefaultStatusOption is the user option the status line reads.
	DefaultStatusOption = "@shizuku"
)

// ExecOption configures an Exec client.
type ExecOption func(*Exec)

// WithSocket selects a server by socket name, as tmux -L does.
func WithSocket(name string) ExecOption {
	return func(c *Exec) { c.socket = name }
}

// WithTimeout bounds each invocation.
func WithTimeout(d time.Duration) ExecOption {
	return func(c *Exec) { c.timeout = d }
}

// WithBinary runs another executable in place of tmux.
func WithBinary(path string) ExecOption {
	return func(c *Exec) { c.binary = path }
}

// StatusEnabled resolves tmux_status_enabled. "auto" means enabled when
// running inside tmux.
func StatusEnabled() bool {
	switch config.Get("tmux_status_enabled", "auto") {
	case "true":
		return true
	case "false":
		return false
	default:
		return os.Getenv("TMUX") != ""
	}
}

// StatusOption returns the configured option name.
func StatusOption() string {
	return config.Get("tmux_status_option", DefaultStatusOption)
}
