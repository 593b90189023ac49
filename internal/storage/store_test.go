package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	yamlStore, err := NewYAMLStore(filepath.Join(dir, "state.yaml"))
	require.NoError(t, err)
	sqliteStore, err := sqlite.NewStore(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"yaml":   yamlStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("shizuku.settings")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("shizuku.settings", `{"focusSec":600}`))
			require.NoError(t, s.Set("shizuku.muted", "1"))
			require.NoError(t, s.Set("shizuku.muted", "0"))

			v, ok, err := s.Get("shizuku.settings")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `{"focusSec":600}`, v)

			v, ok, err = s.Get("shizuku.muted")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "0", v)

			assert.Error(t, s.Set("", "x"))
		})
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Set("k", "v"), ErrClosed)
	_, _, err := s.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestYAMLStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	s, err := NewYAMLStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("shizuku.muted", "1"))

	reopened, err := NewYAMLStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("shizuku.muted")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock directory is released after a write")
}

func TestYAMLStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))

	_, err := NewYAMLStore(path)
	assert.Error(t, err)
}

func TestYAMLStoreConcurrentWrites(t *testing.T) {
	s, err := NewYAMLStore(filepath.Join(t.TempDir(), "state.yaml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	keys := []string{"a", "b", "c", "d"}
	for _, k := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			assert.NoError(t, s.Set(k, k+"!"))
		}(k)
	}
	wg.Wait()

	for _, k := range keys {
		v, ok, err := s.Get(k)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, k+"!", v)
	}
}

func TestNewForBackend(t *testing.T) {
	var stderr bytes.Buffer
	restore := colors.SetOutput(&bytes.Buffer{}, &stderr)
	defer restore()

	dir := t.TempDir()

	s, err := NewForBackend(BackendSQLite, dir)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, s)
	s.Close()

	s, err = NewForBackend("YAML", dir)
	require.NoError(t, err)
	assert.IsType(t, &YAMLStore{}, s)

	s, err = NewForBackend(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = NewForBackend(BackendYAML, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.Contains(t, stderr.String(), "falling back to memory")
}

func TestNewForBackendFallsBackFromSQLite(t *testing.T) {
	var stderr bytes.Buffer
	restore := colors.SetOutput(&bytes.Buffer{}, &stderr)
	defer restore()

	dir := t.TempDir()
	// A directory where the database file should be makes sqlite unusable.
	require.NoError(t, os.Mkdir(filepath.Join(dir, sqliteFileName), 0755))

	s, err := NewForBackend(BackendSQLite, dir)
	require.NoError(t, err)
	assert.IsType(t, &YAMLStore{}, s)
	assert.Contains(t, stderr.String(), "falling back to yaml")
}

func TestLockTimesOut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "held.lock")
	first := NewLock(dir)
	require.NoError(t, first.Acquire())
	defer first.Release()

	second := NewLock(dir)
	second.timeout = 0
	assert.Error(t, second.Acquire())
}
