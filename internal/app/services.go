// Package app holds the use-cases behind the CLI commands and the wiring of
// their long-lived collaborators.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/shizuku/internal/config"
	"github.com/cristianoliveira/shizuku/internal/cue"
	"github.com/cristianoliveira/shizuku/internal/debounce"
	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/settings"
	"github.com/cristianoliveira/shizuku/internal/storage"
	"github.com/cristianoliveira/shizuku/internal/timer"
	"github.com/cristianoliveira/shizuku/internal/tmux"
	"github.com/cristianoliveira/shizuku/internal/tui/state"
)

// Services bundles everything a command needs, built once per process.
type Services struct {
	Store    storage.Store
	Settings *settings.Store
	Mute     *settings.MuteFlag
	Drops    *settings.DropLog
	Engine   *timer.Engine
	Cues     *cue.Dispatcher
	Saver    *debounce.Debouncer
	// Status is nil when the tmux status option is disabled.
	Status *tmux.StatusRenderer

	now func() time.Time
}

// Options replaces collaborators normally built from the config.
type Options struct {
	Output       cue.Output
	Tmux         tmux.Client
	Floor        int
	SaveDelay    time.Duration
	MinInterval  time.Duration
	StatusOption string
	Now          func() time.Time
	Clock        debounce.Clock
	Logger       logging.Logger
}

// Open builds Services from the loaded config.
func Open() (*Services, error) {
	kv, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	opts := Options{
		Output:      cue.NewFromConfig(),
		Floor:       config.GetInt("min_duration_sec", settings.DefaultFloor),
		SaveDelay:   config.GetMillis("save_debounce_ms", debounce.DefaultDelay),
		MinInterval: config.GetMillis("min_play_interval_ms", 0),
	}
	if tmux.StatusEnabled() {
		opts.Tmux = tmux.NewExec()
		opts.StatusOption = tmux.StatusOption()
	}
	return NewServices(kv, opts), nil
}

// NewServices wires the collaborators around kv.
func NewServices(kv storage.Store, opts Options) *Services {
	if opts.Output == nil {
		opts.Output = cue.Nop{}
	}
	if opts.Floor <= 0 {
		opts.Floor = settings.DefaultFloor
	}
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = debounce.DefaultDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetGlobal()
	}

	store := settings.NewStore(kv,
		settings.WithFloor(opts.Floor),
		settings.WithLogger(opts.Logger.With("component", "settings")))
	s := &Services{
		Store:    kv,
		Settings: store,
		Mute:     settings.NewMuteFlag(kv),
		Drops:    settings.NewDropLog(kv),
		Saver:    debounce.New(opts.SaveDelay, opts.Clock),
		now:      opts.Now,
	}
	s.Cues = cue.NewDispatcher(opts.Output,
		cue.WithMute(s.Mute.Muted),
		cue.WithMinInterval(opts.MinInterval),
		cue.WithNow(opts.Now),
		cue.WithDispatcherLogger(opts.Logger.With("component", "cue")),
	)
	s.Engine = timer.New(s.Settings, timer.WithDrops(s.Drops.Today(opts.Now())))
	if opts.Tmux != nil {
		s.Status = tmux.NewStatusRenderer(opts.Tmux, opts.StatusOption)
		s.Engine.Subscribe(s.Status.Handle)
		s.Engine.OnSecond(s.Status.HandleSecond)
	}
	opts.Logger.Debug("services ready",
		"focus_sec", s.Settings.Current().FocusSec,
		"break_sec", s.Settings.Current().BreakSec,
		"muted", s.Mute.Muted(),
		"tmux_status", s.Status != nil)
	return s
}

// TUIDeps returns the dependencies of the TUI model.
func (s *Services) TUIDeps() state.Deps {
	return state.Deps{
		Engine:   s.Engine,
		Settings: s.Settings,
		Mute:     s.Mute,
		Drops:    s.Drops,
		Cues:     s.Cues,
		Saver:    s.Saver,
		Now:      s.now,
	}
}

// Close clears the tmux option and releases the store.
func (s *Services) Close() error {
	var errs []error
	if s.Status != nil {
		s.Status.Clear()
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
