// Package version reports build metadata for shizuku.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "development"

// Commit is the git commit hash, also set through ldflags.
var Commit = "unknown"

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version with the commit appended when it is known.
func String() string {
	commit := resolveCommit()
	if commit != "unknown" {
		return Version + "+" + commit
	}
	return Version
}

// Info is the structured form printed by `shizuku version --json`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    resolveCommit(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// resolveCommit falls back to the VCS revision stamped by `go build`.
func resolveCommit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := readBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return Commit
}
