// Package colors provides console output helpers for shizuku.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	quiet        = false
	logger       Logger
	mu           sync.RWMutex

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("SHIZUKU_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses console output. Messages are still mirrored to the logger.
// The TUI turns this on so stray writes do not tear the alt screen.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output and returns a function restoring the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// emit mirrors msg to the logger and prints it. A failed console write falls
// back to a plain stderr line; it never recurses into the helpers.
func emit(lvl level, w func() io.Writer, format string, msg string, logArgs ...any) {
	mu.RLock()
	l := logger
	silent := quiet
	mu.RUnlock()

	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg, logArgs...)
		case levelInfo:
			l.Info(msg, logArgs...)
		case levelWarn:
			l.Warn(msg, logArgs...)
		case levelError:
			l.Error(msg, logArgs...)
		}
	}
	if silent {
		return
	}
	if _, err := fmt.Fprintf(w(), format, msg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

func outWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

func errWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stderr
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	emit(levelError, errWriter, Red+"Error:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	emit(levelInfo, outWriter, Green+checkmark+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "), "type", "success")
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	emit(levelWarn, errWriter, Yellow+"Warning:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	emit(levelInfo, outWriter, Blue+"%s"+Reset+"\n", strings.Join(msgs, " "))
}

// Plain outputs a message to stdout without color, for machine-readable output.
func Plain(msgs ...string) {
	emit(levelDebug, outWriter, "%s\n", strings.Join(msgs, " "))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	emit(levelDebug, errWriter, Cyan+"Debug:"+Reset+" %s"+Reset+"\n", strings.Join(msgs, " "))
}
