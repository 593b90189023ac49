package errors

import (
	"bytes"
	stderrors "errors"
	"testing"
	"time"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockColorOutput struct {
	calls []string
}

func (m *mockColorOutput) Error(msgs ...string)   { m.calls = append(m.calls, "error:"+msgs[0]) }
func (m *mockColorOutput) Warning(msgs ...string) { m.calls = append(m.calls, "warning:"+msgs[0]) }
func (m *mockColorOutput) Info(msgs ...string)    { m.calls = append(m.calls, "info:"+msgs[0]) }
func (m *mockColorOutput) Success(msgs ...string) { m.calls = append(m.calls, "success:"+msgs[0]) }

func TestCLIHandlerRoutesByLevel(t *testing.T) {
	out := &mockColorOutput{}
	h := NewCLIHandler(out)

	h.Error("e")
	h.Warning("w")
	h.Info("i")
	h.Success("s")

	assert.Equal(t, []string{"error:e", "warning:w", "info:i", "success:s"}, out.calls)
}

func TestReport(t *testing.T) {
	out := &mockColorOutput{}
	h := NewCLIHandler(out)

	Report(h, "", nil)
	Report(h, "save settings", stderrors.New("disk full"))
	Report(h, "", stderrors.New("boom"))

	assert.Equal(t, []string{"error:save settings: disk full", "error:boom"}, out.calls)
}

func TestDefaultCLIHandlerPrintsThroughColors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	restore := colors.SetOutput(&stdout, &stderr)
	defer restore()

	h := NewDefaultCLIHandler()
	h.Success("saved")
	h.Error("failed")

	assert.Contains(t, stdout.String(), "saved")
	assert.Contains(t, stderr.String(), "failed")
}

func TestTUIHandlerExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var seen []Message
	h := NewTUIHandler(func(m Message) { seen = append(seen, m) })
	h.now = func() time.Time { return now }

	_, ok := h.Current()
	assert.False(t, ok)

	h.Add("Saved", MessageTypeSuccess, 1200*time.Millisecond)
	msg, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "Saved", msg.Text)
	assert.Equal(t, "success", msg.Type.String())
	require.Len(t, seen, 1)

	now = now.Add(1199 * time.Millisecond)
	_, ok = h.Current()
	assert.True(t, ok)

	now = now.Add(time.Millisecond)
	_, ok = h.Current()
	assert.False(t, ok, "message expires exactly at its TTL")

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "Saved", latest.Text, "history keeps expired messages")
}

func TestTUIHandlerHistory(t *testing.T) {
	h := NewTUIHandler(nil)
	for i := 0; i < maxHistory+5; i++ {
		h.Info("tick")
	}
	h.Error("last")

	all := h.GetAll()
	assert.Len(t, all, maxHistory)
	assert.Equal(t, MessageTypeError, all[len(all)-1].Type)

	h.Clear()
	assert.Empty(t, h.GetAll())
	_, ok := h.GetLatest()
	assert.False(t, ok)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	m := Message{Timestamp: time.Unix(0, 0)}
	assert.False(t, m.Expired(time.Now()))
}
