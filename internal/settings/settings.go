// Package settings persists the focus and break durations and the small
// flags that sit next to them (mute, today's drop count).
package settings

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/storage"
)

// Storage keys. The "shizuku." prefix namespaces them inside a shared store.
const (
	KeySettings = "shizuku.settings"
	KeyMuted    = "shizuku.muted"
	KeyDrops    = "shizuku.drops"
)

// Default durations in seconds.
const (
	DefaultFocusSec = 1500
	DefaultBreakSec = 300
	// DefaultFloor is the smallest duration accepted unless WithFloor says otherwise.
	DefaultFloor = 1
)

// Settings are the phase durations in whole seconds.
type Settings struct {
	FocusSec int `json:"focusSec"`
	BreakSec int `json:"breakSec"`
}

// Defaults returns 25 minutes of focus and 5 of break.
func Defaults() Settings {
	return Settings{FocusSec: DefaultFocusSec, BreakSec: DefaultBreakSec}
}

// Partial is a save request; nil fields keep their current value.
type Partial struct {
	FocusSec *int
	BreakSec *int
}

// Focus and Break build single-field partials.
func Focus(sec int) Partial { return Partial{FocusSec: &sec} }
func Break(sec int) Partial { return Partial{BreakSec: &sec} }

// Store owns the current Settings. It is loaded once and written on every Save.
type Store struct {
	mu        sync.RWMutex
	kv        storage.Store
	floor     int
	current   Settings
	observers []observer
	nextObs   int
	logger    logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFloor sets the minimum accepted duration. Values below 1 are ignored.
func WithFloor(sec int) Option {
	return func(s *Store) {
		if sec >= 1 {
			s.floor = sec
		}
	}
}

// WithLogger overrides the global logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a Store and performs the initial Load.
func NewStore(kv storage.Store, opts ...Option) *Store {
	s := &Store{kv: kv, floor: DefaultFloor}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

func (s *Store) log() logging.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.GetGlobal()
}

// Floor returns the minimum accepted duration.
func (s *Store) Floor() int {
	return s.floor
}

// Load re-reads the settings from storage and makes them current.
//
// A missing key, an unreadable store or an unparsable record yields the
// defaults. Inside a parsable record each field is validated on its own: a
// field that is not a finite number at or above the floor takes its default
// while a valid sibling is kept.
func (s *Store) Load() Settings {
	loaded := s.read()
	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded
}

func (s *Store) read() Settings {
	defaults := Defaults()
	raw, ok, err := s.kv.Get(KeySettings)
	if err != nil {
		s.log().Warn("settings read failed, using defaults", "error", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil || record == nil {
		s.log().Warn("settings record unparsable, using defaults", "error", err)
		return defaults
	}

	out := defaults
	if v, ok := s.field(record["focusSec"]); ok {
		out.FocusSec = v
	} else {
		s.log().Debug("settings field invalid, using default", "field", "focusSec", "value", record["focusSec"])
	}
	if v, ok := s.field(record["breakSec"]); ok {
		out.BreakSec = v
	} else {
		s.log().Debug("settings field invalid, using default", "field", "breakSec", "value", record["breakSec"])
	}
	return out
}

// field accepts JSON numbers and numeric strings, rounded to whole seconds.
func (s *Store) field(v any) (int, bool) {
	var f float64
	switch typed := v.(type) {
	case float64:
		f = typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	n := math.Round(f)
	if n < float64(s.floor) || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// Current returns the in-memory settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save merges p into the current settings, raises each provided field to
// the floor and persists the result. A write failure is logged and
// swallowed; the in-memory value is updated regardless.
func (s *Store) Save(p Partial) Settings {
	s.mu.Lock()
	next := s.current
	if p.FocusSec != nil {
		next.FocusSec = s.clamp(*p.FocusSec)
	}
	if p.BreakSec != nil {
		next.BreakSec = s.clamp(*p.BreakSec)
	}
	s.current = next
	observers := append([]observer{}, s.observers...)
	s.mu.Unlock()

	s.persist(next)
	for _, o := range observers {
		o.fn(next)
	}
	return next
}

// Reset overwrites the stored settings with the defaults.
func (s *Store) Reset() Settings {
	d := Defaults()
	return s.Save(Partial{FocusSec: &d.FocusSec, BreakSec: &d.BreakSec})
}

type observer struct {
	id int
	fn func(Settings)
}

// OnChange registers fn to run after every Save and returns a function
// removing it.
func (s *Store) OnChange(fn func(Settings)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextObs++
	id := s.nextObs
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) clamp(sec int) int {
	if sec < s.floor {
		return s.floor
	}
	return sec
}

func (s *Store) persist(v Settings) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log().Error("settings encode failed", "error", err)
		return
	}
	if err := s.kv.Set(KeySettings, string(data)); err != nil {
		s.log().Warn("settings write failed", "error", err)
		return
	}
	s.log().Debug("settings saved", "focus_sec", v.FocusSec, "break_sec", v.BreakSec)
}
