// Package tmux mirrors the timer into the status line of the tmux server
// shizuku runs under.
package tmux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/cristianoliveira/shizuku/internal/colors"
)

// ErrCommandFailed wraps every failed tmux invocation.
var ErrCommandFailed = errors.New("tmux command failed")

// Client is what the status renderer needs from tmux.
type Client interface {
	// SetOption sets a global option, usually a @user option read by status-right.
	SetOption(name, value string) error
	// UnsetOption removes a global option.
	UnsetOption(name string) error
	// Refresh redraws the status line of every attached client.
	Refresh() error
}

// Exec implements Client by running the tmux binary once per call.
type Exec struct {
	binary  string
	socket  string
	timeout time.Duration
}

var _ Client = (*Exec)(nil)

// NewExec returns a client for the default tmux server.
func NewExec(opts ...ExecOption) *Exec {
	c := &Exec{binary: "tmux", timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes one tmux command. The stderr text of a failure is folded
// into the returned error.
func (c *Exec) run(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	argv := args
	if c.socket != "" {
		argv = append([]string{"-L", c.socket}, args...)
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	trace := colors.Trace{
		Component: "tmux",
		Action:    "run",
		Fields:    map[string]any{"args": len(args), "ms": time.Since(start).Milliseconds()},
	}
	if len(args) > 0 {
		trace.Key = args[0]
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		err = fmt.Errorf("%w: %s: %v", ErrCommandFailed, strings.Join(args, " "), err)
		trace.Err = err
	}
	trace.Emit()
	return stdout.String(), err
}

// SetOption runs set-option -g.
func (c *Exec) SetOption(name, value string) error {
	_, err := c.run("set-option", "-g", name, value)
	return err
}

// UnsetOption runs set-option -gu.
func (c *Exec) UnsetOption(name string) error {
	_, err := c.run("set-option", "-gu", name)
	return err
}

// Refresh runs refresh-client -S.
func (c *Exec) Refresh() error {
	_, err := c.run("refresh-client", "-S")
	return err
}
