// Package config provides configuration loading.
//
// Values are resolved in this order, later sources winning: built-in
// defaults, SHIZUKU_* environment variables, the TOML config file, and the
// environment again so it always has the last word. Every value is stored
// as a string and normalised by the validator of its key.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// EnvPrefix is the prefix of environment variables read as configuration.
	EnvPrefix = "SHIZUKU_"

	appDirName = "shizuku"
	fileName   = "config.toml"
)

var (
	mu     sync.RWMutex
	keys   []Key
	values map[string]string
)

// Load resolves the configuration. It is cheap and may be called again to
// pick up environment changes.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	keys = knownKeys()
	values = make(map[string]string, len(keys))
	for _, k := range keys {
		values[k.Name] = k.Default
	}

	applyEnv(values)
	applyFile(values, filePath(values["config_dir"]))
	applyEnv(values)
	validate(values)
	writeSample(values["config_dir"])
}

// reset drops all loaded values. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	keys = nil
	values = nil
}

// filePath returns the config file to read, or "" when there is none.
func filePath(configDir string) string {
	if path := os.Getenv(EnvPrefix + "CONFIG_PATH"); path != "" {
		return path
	}
	if configDir == "" {
		return ""
	}
	path := filepath.Join(configDir, fileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyFile(dst map[string]string, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}
	for k, v := range raw {
		s, ok := scalarString(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", k, v))
			continue
		}
		dst[strings.ToLower(k)] = s
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

func applyEnv(dst map[string]string) {
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == "config_path" {
			continue
		}
		dst[key] = value
	}
}

func validate(dst map[string]string) {
	for _, k := range keys {
		if k.Validate == nil {
			continue
		}
		raw := dst[k.Name]
		if strings.TrimSpace(raw) == "" {
			dst[k.Name] = k.Default
			continue
		}
		normalized, err := k.Validate(raw)
		if err != nil {
			colors.Warning(fmt.Sprintf("invalid %s value %q: %v; using default: %s", k.Name, raw, err, k.Default))
			dst[k.Name] = k.Default
			continue
		}
		dst[k.Name] = normalized
	}
}

// writeSample writes the documented defaults to config.toml if it is missing.
func writeSample(configDir string) {
	if configDir == "" {
		return
	}
	path := filepath.Join(configDir, fileName)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	var buf bytes.Buffer
	buf.WriteString("# shizuku configuration\n# Environment variables (SHIZUKU_<KEY>) override these values.\n")
	for _, k := range keys {
		line, err := toml.Marshal(map[string]any{k.Name: typed(k.Default)})
		if err != nil {
			colors.Warning(fmt.Sprintf("unable to marshal %s: %v", k.Name, err))
			return
		}
		fmt.Fprintf(&buf, "\n# %s\n%s", k.Doc, line)
	}
	if err := os.WriteFile(path, buf.Bytes(), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

func typed(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := values[key]; ok {
		return v
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	b, ok := parseBool(Get(key, ""))
	if !ok {
		return defaultValue
	}
	return b
}

// GetMillis reads an integer number of milliseconds.
func GetMillis(key string, defaultValue time.Duration) time.Duration {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return time.Duration(n) * time.Millisecond
}
