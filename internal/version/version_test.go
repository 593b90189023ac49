package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, commit string, info *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origRead := Version, Commit, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, readBuildInfo = origVersion, origCommit, origRead
	})
	Version, Commit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		info     *debug.BuildInfo
		expected string
	}{
		{name: "development without commit", version: "development", commit: "unknown", expected: "development"},
		{name: "release with commit", version: "1.0.0", commit: "abc1234", expected: "1.0.0+abc1234"},
		{
			name:    "commit from vcs stamp",
			version: "0.2.0",
			commit:  "unknown",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			}},
			expected: "0.2.0+0123456",
		},
		{
			name:     "ldflags commit wins over vcs stamp",
			version:  "0.2.0",
			commit:   "feedbee",
			info:     &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}}},
			expected: "0.2.0+feedbee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, tt.info)
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestGet(t *testing.T) {
	withBuild(t, "1.2.3", "abc1234", nil)
	info := Get()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}
