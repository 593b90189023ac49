package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps all keys in one YAML mapping on disk.
// Every Set rewrites the file atomically under a directory lock so that two
// shizuku processes sharing a state dir do not interleave writes.
type YAMLStore struct {
	mu     sync.Mutex
	path   string
	closed bool
}

var _ Store = (*YAMLStore)(nil)

// NewYAMLStore opens (creating if needed) the YAML file at path.
func NewYAMLStore(path string) (*YAMLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("yaml storage: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("yaml storage: create directory: %w", err)
	}
	s := &YAMLStore{path: path}
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *YAMLStore) lockDir() string {
	return s.path + ".lock"
}

func (s *YAMLStore) read() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yaml storage: read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("yaml storage: parse %s: %w", s.path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

func (s *YAMLStore) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("yaml storage: encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("yaml storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("yaml storage: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("yaml storage: close: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("yaml storage: chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("yaml storage: replace %s: %w", s.path, err)
	}
	return nil
}

func (s *YAMLStore) Get(key string) (string, bool, error) {
	if err := validKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *YAMLStore) Set(key, value string) error {
	if err := validKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return WithLock(s.lockDir(), func() error {
		values, err := s.read()
		if err != nil {
			return err
		}
		values[key] = value
		return s.write(values)
	})
}

func (s *YAMLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
