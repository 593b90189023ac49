package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const filePrefix = "shizuku_"

// rotate keeps at most keep shizuku log files in dir, removing the oldest.
// A negative keep disables rotation.
func rotate(dir string, keep int) error {
	if keep < 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logFile struct {
		path string
		mod  int64
	}
	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, name), mod: info.ModTime().UnixNano()})
	}
	if len(files) <= keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].mod == files[j].mod {
			return files[i].path < files[j].path
		}
		return files[i].mod < files[j].mod
	})
	for _, f := range files[:len(files)-keep] {
		os.Remove(f.path)
	}
	return nil
}
