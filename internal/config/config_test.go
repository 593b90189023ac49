package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SHIZUKU_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("SHIZUKU_STATE_DIR", filepath.Join(dir, "state"))
	reset()
	t.Cleanup(reset)
	return dir
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, "sqlite", Get("storage_backend", ""))
	assert.Equal(t, 1, GetInt("min_duration_sec", 0))
	assert.Equal(t, 500, GetInt("save_debounce_ms", 0))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, "auto", Get("tmux_status_enabled", ""))
}

func TestLoadingPrecedence(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "custom.toml")
	content := `
storage_backend = "yaml"
min_duration_sec = 6
audio_backend = "bell"
save_debounce_ms = 250
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("SHIZUKU_CONFIG_PATH", configFile)
	t.Setenv("SHIZUKU_AUDIO_BACKEND", "none")

	Load()

	assert.Equal(t, "yaml", Get("storage_backend", ""), "file value used when env is silent")
	assert.Equal(t, 6, GetInt("min_duration_sec", 0))
	assert.Equal(t, 250, GetInt("save_debounce_ms", 0))
	assert.Equal(t, "none", Get("audio_backend", ""), "environment wins over the file")
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("SHIZUKU_STORAGE_BACKEND", "postgres")
	t.Setenv("SHIZUKU_MIN_DURATION_SEC", "-3")
	t.Setenv("SHIZUKU_DEBUG", "maybe")
	t.Setenv("SHIZUKU_TMUX_STATUS_ENABLED", "AUTO")

	Load()

	assert.Equal(t, "sqlite", Get("storage_backend", ""))
	assert.Equal(t, "1", Get("min_duration_sec", ""))
	assert.Equal(t, "false", Get("debug", ""))
	assert.Equal(t, "auto", Get("tmux_status_enabled", ""))
}

func TestLoadWritesSampleConfig(t *testing.T) {
	dir := isolate(t)
	Load()

	data, err := os.ReadFile(filepath.Join(dir, "config", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# shizuku configuration")
	assert.Contains(t, string(data), "storage_backend")
}

func TestGetMillis(t *testing.T) {
	isolate(t)
	t.Setenv("SHIZUKU_SAVE_DEBOUNCE_MS", "750")
	Load()

	assert.Equal(t, 750*time.Millisecond, GetMillis("save_debounce_ms", time.Second))
	assert.Equal(t, time.Second, GetMillis("storage_backend", time.Second))
}

func TestSampleConfigIsDocumentedAndLoadable(t *testing.T) {
	dir := isolate(t)
	Load()
	path := filepath.Join(dir, "config", "config.toml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Cue output: speaker, bell or none.\naudio_backend = ")

	// The written file must round-trip through the loader unchanged.
	t.Setenv("SHIZUKU_CONFIG_PATH", path)
	Load()
	assert.Equal(t, 500, GetInt("save_debounce_ms", 0))
	assert.Equal(t, "auto", Get("tmux_status_enabled", ""))
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		value     string
		want      string
		wantErr   bool
	}{
		{name: "int in range", validator: IntRange(0, 10), value: " 7 ", want: "7"},
		{name: "int above range", validator: IntRange(0, 10), value: "11", wantErr: true},
		{name: "int below range", validator: IntRange(1, 0), value: "0", wantErr: true},
		{name: "int unbounded", validator: IntRange(1, 0), value: "99999", want: "99999"},
		{name: "int not a number", validator: IntRange(1, 0), value: "abc", wantErr: true},
		{name: "one of case folded", validator: OneOf("bell", "none"), value: "BELL", want: "bell"},
		{name: "one of unknown", validator: OneOf("bell", "none"), value: "speaker", wantErr: true},
		{name: "bool yes", validator: Bool(), value: "yes", want: "true"},
		{name: "bool off", validator: Bool(), value: "off", want: "false"},
		{name: "bool maybe", validator: Bool(), value: "maybe", wantErr: true},
		{name: "auto bool", validator: AutoBool(), value: "Auto", want: "auto"},
		{name: "auto bool passes booleans", validator: AutoBool(), value: "1", want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.validator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
