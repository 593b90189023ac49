// Package logging provides structured file logging for shizuku.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/shizuku/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
	// Shutdown flushes any buffered logs and releases resources.
	Shutdown() error
}

// fileLogger writes JSON lines through charmbracelet/log.
type fileLogger struct {
	clogger *clog.Logger
	file    *os.File
	path    string
	closed  *bool
	mu      *sync.Mutex
}

// Init creates a Logger for cfg. A disabled config yields a no-op logger.
// Old files are rotated away before the new one is opened.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	logDir := cfg.Dir
	if logDir == "" {
		dir, err := LogDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine log directory: %w", err)
		}
		logDir = dir
	} else if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Leave room for the file about to be created.
	if err := rotate(logDir, cfg.MaxFiles-1); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	fname := fmt.Sprintf("%s%s_PID%d_%s.log",
		filePrefix,
		time.Now().Format("20060102_150405.000"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
	path := filepath.Join(logDir, fname)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	clogger := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	clogger = clogger.With("pid", cfg.PID, "command", cfg.Command)

	closed := false
	return &fileLogger{clogger: clogger, file: f, path: path, closed: &closed, mu: &sync.Mutex{}}, nil
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *fileLogger) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *fileLogger) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

// With shares the underlying file; shutting down any derived logger closes it.
func (l *fileLogger) With(args ...any) Logger {
	return &fileLogger{
		clogger: l.clogger.With(args...),
		file:    l.file,
		path:    l.path,
		closed:  l.closed,
		mu:      l.mu,
	}
}

func (l *fileLogger) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if *l.closed {
		return nil
	}
	*l.closed = true
	return l.file.Close()
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	globalLogger   Logger
	globalLoggerMu sync.RWMutex
)

// InitGlobal installs the process-wide logger built from the loaded config
// and mirrors console output into it.
func InitGlobal() error {
	l, err := Init(FromGlobalConfig())
	if err != nil {
		return err
	}
	globalLoggerMu.Lock()
	if globalLogger != nil {
		_ = globalLogger.Shutdown()
	}
	globalLogger = l
	globalLoggerMu.Unlock()

	if _, ok := l.(*fileLogger); ok {
		colors.SetLogger(l)
	}
	return nil
}

// GetGlobal returns the global logger, or a no-op logger if not initialized.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }

// Info logs an info message using the global logger.
func Info(msg string, args ...any) { GetGlobal().Info(msg, args...) }

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) { GetGlobal().Warn(msg, args...) }

// Error logs an error message using the global logger.
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With returns a new global logger with additional key-value pairs.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal closes the global logger and detaches it from console output.
func ShutdownGlobal() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	colors.SetLogger(nil)
	err := globalLogger.Shutdown()
	globalLogger = nil
	return err
}

// CurrentLogFile returns the path of the active log file, or "".
func CurrentLogFile() string {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if fl, ok := globalLogger.(*fileLogger); ok {
		return fl.path
	}
	return ""
}
