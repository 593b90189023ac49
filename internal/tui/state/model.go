package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shizuku/internal/cue"
	"github.com/cristianoliveira/shizuku/internal/debounce"
	"github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/settings"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

const (
	defaultTickInterval = time.Second
	rippleDuration      = 400 * time.Millisecond
	savedNoteDuration   = 1200 * time.Millisecond
	defaultWidth        = 48
)

// View identifies one of the screens.
type View int

const (
	ViewHome View = iota
	ViewSettings
	ViewSound
)

var viewNames = map[string]View{
	"home":     ViewHome,
	"settings": ViewSettings,
	"sound":    ViewSound,
}

// ParseView maps a --view flag value to a View.
func ParseView(name string) (View, error) {
	v, ok := viewNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ViewHome, fmt.Errorf("unknown view %q (expected home, settings or sound)", name)
	}
	return v, nil
}

// Deps are the collaborators of the model. Engine and Settings are required.
type Deps struct {
	Engine   *timer.Engine
	Settings *settings.Store
	Mute     *settings.MuteFlag
	Drops    *settings.DropLog
	Cues     *cue.Dispatcher
	Saver    *debounce.Debouncer
	// Interval between engine ticks. Zero means one second.
	Interval time.Duration
	Now      func() time.Time
}

type saveState int

const (
	saveIdle saveState = iota
	savePending
	saveDone
)

// Model represents the TUI model for bubbletea.
type Model struct {
	engine   *timer.Engine
	settings *settings.Store
	mute     *settings.MuteFlag
	drops    *settings.DropLog
	cues     *cue.Dispatcher
	saver    *debounce.Debouncer
	interval time.Duration
	now      func() time.Time
	send     func(tea.Msg)

	view     View
	width    int
	help     help.Model
	status   *errors.TUIHandler
	unlocked bool

	fill       float64
	todayDrops int
	ripple     bool
	rippleSeq  int
	rippleDue  bool

	inputs  []textinput.Model
	focused int
	save    saveState
	saveSeq int

	unsubscribe  func()
	stopSettings func()
}

// NewModel creates a new TUI model showing view.
func NewModel(deps Deps, view View) (*Model, error) {
	if deps.Engine == nil {
		return nil, fmt.Errorf("tui: engine dependency cannot be nil")
	}
	if deps.Settings == nil {
		return nil, fmt.Errorf("tui: settings dependency cannot be nil")
	}
	if deps.Cues == nil {
		deps.Cues = cue.NewDispatcher(cue.Nop{})
	}
	if deps.Saver == nil {
		deps.Saver = debounce.New(debounce.DefaultDelay, nil)
	}
	if deps.Interval <= 0 {
		deps.Interval = defaultTickInterval
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	m := &Model{
		engine:   deps.Engine,
		settings: deps.Settings,
		mute:     deps.Mute,
		drops:    deps.Drops,
		cues:     deps.Cues,
		saver:    deps.Saver,
		interval: deps.Interval,
		now:      deps.Now,
		help:     help.New(),
		status:   errors.NewTUIHandler(nil),
		width:    defaultWidth,
	}
	if m.drops != nil {
		m.todayDrops = m.drops.Today(m.now())
	}
	m.inputs = newInputs()
	m.fillInputs()

	m.unsubscribe = m.engine.Subscribe(m.onEvent)
	m.stopSettings = m.settings.OnChange(func(s settings.Settings) {
		m.engine.OnSettingsChanged(s.FocusSec, s.BreakSec)
	})
	m.setView(view)
	return m, nil
}

// SetSend connects the model to the running program so that timers
// firing off the update goroutine can deliver messages.
func (m *Model) SetSend(send func(tea.Msg)) {
	m.send = send
}

// Close detaches the model from the engine and the settings store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.stopSettings != nil {
		m.stopSettings()
		m.stopSettings = nil
	}
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	if m.view == ViewSettings {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case saveDueMsg:
		return m, m.saveNow()
	case savedClearMsg:
		if msg.seq == m.saveSeq && m.save == saveDone {
			m.save = saveIdle
		}
		return m, nil
	case rippleDoneMsg:
		if msg.seq == m.rippleSeq {
			m.ripple = false
		}
		return m, nil
	case statusExpiredMsg:
		return m, nil
	}
	if m.view == ViewSettings {
		return m, m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewSettings:
		return m.handleSettingsKey(msg)
	case ViewSound:
		return m.handleSoundKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

func (m *Model) setView(v View) {
	m.view = v
	if v == ViewSettings {
		m.fillInputs()
		m.focusInput(0)
	} else {
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.saver.Pending() {
		m.saver.Cancel()
		m.saveNow()
	}
	m.Close()
	return m, tea.Quit
}

// notify shows text on the status line and schedules a repaint when it
// expires.
func (m *Model) notify(text string, msgType errors.MessageType, ttl time.Duration) tea.Cmd {
	m.status.Add(text, msgType, ttl)
	return after(ttl, statusExpiredMsg{})
}

// CurrentView returns the visible screen.
func (m *Model) CurrentView() View {
	return m.view
}

// Status returns the visible status line message, if any.
func (m *Model) Status() (errors.Message, bool) {
	return m.status.Current()
}
