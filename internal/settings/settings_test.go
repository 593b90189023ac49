package settings

import (
	"errors"
	"testing"

	"github.com/cristianoliveira/shizuku/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every operation it is told to.
type failingStore struct {
	storage.Store
	failGet bool
	failSet bool
}

var errBroken = errors.New("broken store")

func (f *failingStore) Get(key string) (string, bool, error) {
	if f.failGet {
		return "", false, errBroken
	}
	return f.Store.Get(key)
}

func (f *failingStore) Set(key, value string) error {
	if f.failSet {
		return errBroken
	}
	return f.Store.Set(key, value)
}

func storeWith(t *testing.T, raw string) *storage.MemoryStore {
	t.Helper()
	kv := storage.NewMemoryStore()
	if raw != "" {
		require.NoError(t, kv.Set(KeySettings, raw))
	}
	return kv
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		floor int
		want  Settings
	}{
		{name: "missing key", want: Defaults()},
		{name: "valid record", raw: `{"focusSec":600,"breakSec":120}`, want: Settings{600, 120}},
		{name: "not json", raw: `{focus`, want: Defaults()},
		{name: "json array", raw: `[1,2]`, want: Defaults()},
		{name: "json null", raw: `null`, want: Defaults()},
		{name: "malformed focus keeps valid break", raw: `{"focusSec":"abc","breakSec":200}`, want: Settings{1500, 200}},
		{name: "malformed focus with default break", raw: `{"focusSec":"abc","breakSec":300}`, want: Settings{1500, 300}},
		{name: "numeric strings accepted", raw: `{"focusSec":"600","breakSec":" 90 "}`, want: Settings{600, 90}},
		{name: "fractions rounded", raw: `{"focusSec":599.6,"breakSec":60.4}`, want: Settings{600, 60}},
		{name: "zero is below floor", raw: `{"focusSec":0,"breakSec":-5}`, want: Defaults()},
		{name: "missing field", raw: `{"focusSec":42}`, want: Settings{42, 300}},
		{name: "custom floor", raw: `{"focusSec":5,"breakSec":6}`, floor: 6, want: Settings{1500, 6}},
		{name: "bool field", raw: `{"focusSec":true,"breakSec":60}`, want: Settings{1500, 60}},
		{name: "huge value", raw: `{"focusSec":1e300,"breakSec":60}`, want: Settings{1500, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.floor > 0 {
				opts = append(opts, WithFloor(tt.floor))
			}
			s := NewStore(storeWith(t, tt.raw), opts...)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestLoadFallsBackWhenStoreUnreadable(t *testing.T) {
	kv := &failingStore{Store: storeWith(t, `{"focusSec":60,"breakSec":60}`), failGet: true}
	s := NewStore(kv)
	assert.Equal(t, Defaults(), s.Current())
}

func TestSaveMergesAndPersists(t *testing.T) {
	kv := storage.NewMemoryStore()
	s := NewStore(kv)

	got := s.Save(Focus(900))
	assert.Equal(t, Settings{900, 300}, got)

	got = s.Save(Break(0))
	assert.Equal(t, Settings{900, 1}, got, "break is raised to the floor")

	raw, ok, err := kv.Get(KeySettings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"focusSec":900,"breakSec":1}`, raw)

	reloaded := NewStore(kv)
	assert.Equal(t, Settings{900, 1}, reloaded.Current())
}

func TestSaveSwallowsWriteFailure(t *testing.T) {
	kv := &failingStore{Store: storage.NewMemoryStore(), failSet: true}
	s := NewStore(kv)

	got := s.Save(Focus(120))
	assert.Equal(t, 120, got.FocusSec)
	assert.Equal(t, 120, s.Current().FocusSec, "in-memory state stays correct")

	kv.failSet = false
	assert.Equal(t, Defaults(), s.Load(), "nothing reached storage")
}

func TestResetAndObservers(t *testing.T) {
	s := NewStore(storeWith(t, `{"focusSec":60,"breakSec":60}`))
	var seen []Settings
	s.OnChange(func(v Settings) { seen = append(seen, v) })

	s.Save(Partial{})
	s.Reset()

	require.Len(t, seen, 2)
	assert.Equal(t, Settings{60, 60}, seen[0])
	assert.Equal(t, Defaults(), seen[1])
	assert.Equal(t, Defaults(), s.Current())
}

func TestOnChangeUnsubscribe(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())
	var first, second int
	stop := s.OnChange(func(Settings) { first++ })
	s.OnChange(func(Settings) { second++ })

	s.Save(Focus(120))
	stop()
	stop()
	s.Save(Focus(180))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestWithFloorIgnoresNonPositive(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), WithFloor(0))
	assert.Equal(t, DefaultFloor, s.Floor())
}

func TestMuteFlag(t *testing.T) {
	kv := storage.NewMemoryStore()
	f := NewMuteFlag(kv)
	assert.False(t, f.Muted())

	assert.True(t, f.Toggle())
	raw, _, _ := kv.Get(KeyMuted)
	assert.Equal(t, "1", raw)

	f.Set(false)
	raw, _, _ = kv.Get(KeyMuted)
	assert.Equal(t, "0", raw)

	require.NoError(t, kv.Set(KeyMuted, "1"))
	assert.False(t, f.Muted(), "read once at construction")
	assert.True(t, NewMuteFlag(kv).Muted())

	require.NoError(t, kv.Set(KeyMuted, "yes"))
	assert.False(t, NewMuteFlag(kv).Muted(), "only \"1\" means muted")
}

func TestMuteFlagSwallowsFailures(t *testing.T) {
	kv := &failingStore{Store: storage.NewMemoryStore(), failGet: true, failSet: true}
	f := NewMuteFlag(kv)
	assert.False(t, f.Muted())
	assert.True(t, f.Toggle())
	assert.True(t, f.Muted())
}
