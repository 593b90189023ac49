package config

import (
	"os"
	"path/filepath"
)

// Key describes one configuration entry. Keys are written to the sample
// config file in declaration order, each preceded by its Doc line.
type Key struct {
	Name     string
	Default  string
	Doc      string
	Validate Validator
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append(append([]string{home}, fallback...), appDirName)...)
}

// knownKeys returns the table of supported keys with defaults resolved
// against the current environment.
func knownKeys() []Key {
	return []Key{
		{Name: "config_dir", Default: xdgDir("XDG_CONFIG_HOME", ".config"), Doc: "Directory holding this file."},
		{Name: "state_dir", Default: xdgDir("XDG_STATE_HOME", ".local", "state"), Doc: "Directory for the settings database and logs."},
		{Name: "storage_backend", Default: "sqlite", Doc: "Where settings are kept: sqlite, yaml or memory.", Validate: OneOf("sqlite", "yaml", "memory")},
		{Name: "min_duration_sec", Default: "1", Doc: "Shortest focus or break phase accepted, in seconds.", Validate: IntRange(1, 36000)},
		{Name: "save_debounce_ms", Default: "500", Doc: "Delay before edited durations are saved.", Validate: IntRange(0, 60000)},
		{Name: "audio_backend", Default: "speaker", Doc: "Cue output: speaker, bell or none.", Validate: OneOf("speaker", "bell", "none")},
		{Name: "sound_file", Default: "", Doc: "WAV file played instead of the synthesized drop."},
		{Name: "min_play_interval_ms", Default: "0", Doc: "Minimum gap between two cues.", Validate: IntRange(0, 60000)},
		{Name: "tmux_status_enabled", Default: "auto", Doc: "Mirror the timer into a tmux option: auto, true or false.", Validate: AutoBool()},
		{Name: "tmux_status_option", Default: "@shizuku", Doc: "Option read by status-right, e.g. '#{@shizuku}'."},
		{Name: "logging_enabled", Default: "false", Doc: "Write JSON logs under state_dir/logs.", Validate: Bool()},
		{Name: "logging_level", Default: "info", Doc: "debug, info, warn or error.", Validate: OneOf("debug", "info", "warn", "error")},
		{Name: "logging_max_files", Default: "10", Doc: "Log files kept before the oldest is removed.", Validate: IntRange(1, 0)},
		{Name: "debug", Default: "false", Doc: "Print debug output on stderr.", Validate: Bool()},
		{Name: "quiet", Default: "false", Doc: "Suppress console output.", Validate: Bool()},
	}
}
