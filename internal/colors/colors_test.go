package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	levels   []string
	messages []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func (r *recordingLogger) record(level, msg string) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, msg)
}

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	t.Cleanup(restore)
	return &out, &errOut
}

func TestConsoleOutputPrefixes(t *testing.T) {
	tests := []struct {
		name      string
		print     func(...string)
		toStderr  bool
		wantParts []string
	}{
		{name: "error", print: Error, toStderr: true, wantParts: []string{"Error:", Red, "something went wrong"}},
		{name: "warning", print: Warning, toStderr: true, wantParts: []string{"Warning:", Yellow, "something went wrong"}},
		{name: "success", print: Success, wantParts: []string{checkmark, Green, "something went wrong"}},
		{name: "info", print: Info, wantParts: []string{Blue, "something went wrong"}},
		{name: "plain", print: Plain, wantParts: []string{"something went wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := capture(t)
			tt.print("something", "went wrong")

			got := out.String()
			other := errOut.String()
			if tt.toStderr {
				got, other = other, got
			}
			for _, part := range tt.wantParts {
				assert.Contains(t, got, part)
			}
			assert.Empty(t, other)
		})
	}
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := capture(t)
	SetDebug(false)
	t.Cleanup(func() { SetDebug(false) })

	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
}

func TestQuietSuppressesConsoleButMirrorsLogger(t *testing.T) {
	out, errOut := capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	SetQuiet(true)
	t.Cleanup(func() {
		SetQuiet(false)
		SetLogger(nil)
	})

	Warning("disk full")
	Success("saved")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	require.Equal(t, []string{"warn", "info"}, rec.levels)
	assert.Equal(t, []string{"disk full", "saved"}, rec.messages)
}

func TestTraceRequiresDebug(t *testing.T) {
	_, errOut := capture(t)
	SetDebug(false)
	t.Cleanup(func() { SetDebug(false) })

	Trace{Component: "timer", Action: "tick"}.Emit()
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Trace{Component: "timer", Action: "tick", Fields: map[string]any{"elapsed": 30}}.Emit()
	line := errOut.String()
	assert.Contains(t, line, `"level":"debug"`)
	assert.Contains(t, line, `"status":"ok"`)
	assert.Contains(t, line, `"elapsed":30`)
}

func TestTraceFailureIsMirroredToLogger(t *testing.T) {
	_, errOut := capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })
	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })

	Trace{Component: "storage", Action: "set", Key: "shizuku.settings", Err: assert.AnError}.Emit()

	line := errOut.String()
	assert.Contains(t, line, `"level":"error"`)
	assert.Contains(t, line, `"status":"failed"`)
	assert.Contains(t, line, `"key":"shizuku.settings"`)
	assert.Contains(t, line, assert.AnError.Error())
	require.Equal(t, []string{"error"}, rec.levels)
	assert.Equal(t, []string{"storage set failed"}, rec.messages)
}
