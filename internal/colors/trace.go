package colors

import (
	"encoding/json"
	"fmt"
	"time"
)

// Trace is one machine-readable debug line. It is printed as JSON on stderr
// only when debug output is enabled and the console is not quiet.
type Trace struct {
	Component string
	Action    string
	// Key names the subject of the action, such as a storage key or tmux command.
	Key    string
	Err    error
	Fields map[string]any
}

type traceLine struct {
	Time      string         `json:"time"`
	Level     string         `json:"level"`
	Component string         `json:"component"`
	Action    string         `json:"action"`
	Status    string         `json:"status"`
	Key       string         `json:"key,omitempty"`
	Error     string         `json:"error,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Emit prints the trace. Failed traces are also mirrored to the logger.
func (t Trace) Emit() {
	line := traceLine{
		Time:      time.Now().UTC().Format(time.RFC3339),
		Level:     "debug",
		Component: t.Component,
		Action:    t.Action,
		Status:    "ok",
		Key:       t.Key,
		Fields:    t.Fields,
	}
	if t.Err != nil {
		line.Level = "error"
		line.Status = "failed"
		line.Error = t.Err.Error()
	}

	mu.RLock()
	enabled := debugEnabled && !quiet
	l := logger
	w := stderr
	mu.RUnlock()

	if t.Err != nil && l != nil {
		l.Error(t.Component+" "+t.Action+" failed", "key", t.Key, "error", t.Err)
	}
	if !enabled {
		return
	}
	data, err := json.Marshal(line)
	if err != nil {
		fmt.Fprintf(w, "failed to marshal trace: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", data)
}
