// Package timer implements the focus/break countdown and its cue schedule.
package timer

import (
	"sort"

	"github.com/cristianoliveira/shizuku/internal/settings"
	"github.com/google/uuid"
)

// SettingsSource provides the durations. It is read when the engine is
// created, at every phase boundary and on Stop.
type SettingsSource interface {
	Current() settings.Settings
}

// Marks lists the cues already fired in the current phase instance.
type Marks struct {
	Visual   []int
	Nudges   []int
	Midpoint bool
}

// State is a copy of the engine state for rendering and assertions.
type State struct {
	Phase    Phase
	TimeLeft int
	Running  bool
	Elapsed  int
	Total    int
	Drops    int
	Instance string
	Epoch    uint64
	Marks    Marks
}

// Engine is the countdown state machine. It is not safe for concurrent use;
// one driver owns it and calls every method from the same goroutine.
type Engine struct {
	source SettingsSource
	cues   Cues
	newID  func() string

	phase    Phase
	timeLeft int
	total    int
	running  bool
	drops    int
	instance string
	epoch    uint64

	visualMarks map[int]struct{}
	nudgeMarks  map[int]struct{}
	midpoint    bool

	listeners []subscription
	seconds   []secondSubscription
	nextSubID int
}

type subscription struct {
	id int
	fn Listener
}

type secondSubscription struct {
	id int
	fn func(State)
}

// Option configures an Engine.
type Option func(*Engine)

// WithCues replaces DefaultCues.
func WithCues(c Cues) Option {
	return func(e *Engine) { e.cues = c }
}

// WithDrops sets the starting drop counter, for example today's count.
func WithDrops(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.drops = n
		}
	}
}

// WithIDGenerator replaces the uuid phase instance ids.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New returns an idle engine at the start of a focus phase.
func New(source SettingsSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		cues:   DefaultCues(),
		newID:  uuid.NewString,
		phase:  Focus,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.enterPhase(Focus, e.durations().FocusSec)
	return e
}

// durations reads the source and raises non-positive values to 1.
func (e *Engine) durations() settings.Settings {
	s := e.source.Current()
	if s.FocusSec < 1 {
		s.FocusSec = 1
	}
	if s.BreakSec < 1 {
		s.BreakSec = 1
	}
	return s
}

func (e *Engine) enterPhase(p Phase, sec int) {
	e.phase = p
	e.total = sec
	e.timeLeft = sec
	e.instance = e.newID()
	if p == Focus {
		e.clearMarks()
	}
}

func (e *Engine) clearMarks() {
	e.visualMarks = make(map[int]struct{})
	e.nudgeMarks = make(map[int]struct{})
	e.midpoint = false
}

func (e *Engine) elapsed() int {
	return e.total - e.timeLeft
}

// Subscribe registers fn for every event and returns a function removing it.
func (e *Engine) Subscribe(fn Listener) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.listeners = append(e.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, s := range e.listeners {
			if s.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// OnSecond registers fn to receive the state after every tick that
// advanced the countdown, including ticks that emit no event.
func (e *Engine) OnSecond(fn func(State)) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.seconds = append(e.seconds, secondSubscription{id: id, fn: fn})
	return func() {
		for i, s := range e.seconds {
			if s.id == id {
				e.seconds = append(e.seconds[:i:i], e.seconds[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notifySecond() {
	if len(e.seconds) == 0 {
		return
	}
	st := e.Snapshot()
	for _, s := range e.seconds {
		s.fn(st)
	}
}

// OnVisualTick subscribes fn to the visual channel only.
func (e *Engine) OnVisualTick(fn func(VisualTick)) (unsubscribe func()) {
	return e.Subscribe(func(ev Event) {
		if ev.Kind == KindVisualTick {
			fn(VisualTick{Elapsed: ev.Elapsed, Total: ev.Total, Instance: ev.Instance})
		}
	})
}

func (e *Engine) emit(events []Event) []Event {
	for _, ev := range events {
		for _, s := range e.listeners {
			s.fn(ev)
		}
	}
	return events
}

func (e *Engine) event(kind Kind) Event {
	return Event{
		Kind:     kind,
		Phase:    e.phase,
		Next:     e.phase,
		Elapsed:  e.elapsed(),
		Total:    e.total,
		TimeLeft: e.timeLeft,
		Running:  e.running,
		Drops:    e.drops,
		Instance: e.instance,
	}
}

// Start resumes the countdown without touching phase or time left. The cue
// thresholds are evaluated once at the current elapsed second; marks keep
// a cue that already fired from firing again.
func (e *Engine) Start() []Event {
	if e.running {
		return nil
	}
	e.running = true
	e.epoch++
	events := []Event{e.event(KindStarted)}
	events = append(events, e.evaluateCues()...)
	return e.emit(events)
}

// Pause stops the countdown, keeping progress.
func (e *Engine) Pause() []Event {
	if !e.running {
		return nil
	}
	e.running = false
	e.epoch++
	return e.emit([]Event{e.event(KindPaused)})
}

// Toggle starts when idle and pauses when running.
func (e *Engine) Toggle() []Event {
	if e.running {
		return e.Pause()
	}
	return e.Start()
}

// Stop is a hard reset to an idle focus phase with fresh durations.
func (e *Engine) Stop() []Event {
	e.running = false
	e.epoch++
	e.enterPhase(Focus, e.durations().FocusSec)
	return e.emit([]Event{e.event(KindStopped)})
}

// Tick advances the countdown by one second. Cue events come first in the
// order visual, nudge, midpoint; a completion follows when the phase ends.
// A tick that finds the countdown already at zero only completes the phase.
func (e *Engine) Tick() []Event {
	if !e.running {
		return nil
	}
	var events []Event
	if e.timeLeft == 0 {
		events = e.complete()
	} else {
		e.timeLeft--
		events = e.evaluateCues()
		if e.timeLeft == 0 {
			events = append(events, e.complete()...)
		}
	}
	e.emit(events)
	e.notifySecond()
	return events
}

// evaluateCues checks the focus thresholds at the current elapsed second.
func (e *Engine) evaluateCues() []Event {
	if e.phase != Focus {
		return nil
	}
	elapsed := e.elapsed()
	c := e.cues
	var events []Event

	if elapsed > 0 && c.VisualTickSec > 0 && elapsed%c.VisualTickSec == 0 {
		if _, fired := e.visualMarks[elapsed]; !fired {
			e.visualMarks[elapsed] = struct{}{}
			events = append(events, e.event(KindVisualTick))
		}
	}

	if elapsed > 0 && c.EarlyIntervalSec > 0 && elapsed <= c.EarlyWindowSec && elapsed%c.EarlyIntervalSec == 0 {
		if _, fired := e.nudgeMarks[elapsed]; !fired {
			e.nudgeMarks[elapsed] = struct{}{}
			ev := e.event(KindNudge)
			ev.Sound, ev.Volume, ev.Pulse = c.Sound, c.NudgeVolume, c.NudgePulse
			events = append(events, ev)
		}
	}

	if !e.midpoint && elapsed == e.total/2 {
		e.midpoint = true
		ev := e.event(KindMidpoint)
		ev.Sound, ev.Volume, ev.Pulse = c.Sound, c.MidVolume, c.MidpointPulse
		events = append(events, ev)
	}
	return events
}

// complete switches phase, re-reading the durations.
func (e *Engine) complete() []Event {
	d := e.durations()
	if e.phase == Focus {
		e.drops++
		ev := e.event(KindFocusComplete)
		ev.Sound, ev.Volume, ev.Pulse = e.cues.Sound, e.cues.BaseVolume, e.cues.CompletePulse
		e.enterPhase(Break, d.BreakSec)
		ev.Next, ev.TimeLeft, ev.Drops = Break, e.timeLeft, e.drops
		return []Event{ev}
	}
	ev := e.event(KindBreakComplete)
	e.enterPhase(Focus, d.FocusSec)
	ev.Next, ev.TimeLeft = Focus, e.timeLeft
	return append([]Event{ev}, e.evaluateCues()...)
}

// OnSettingsChanged applies new durations. While idle the current phase
// restarts with its new length; while running nothing changes until the
// next boundary re-reads the source.
func (e *Engine) OnSettingsChanged(focusSec, breakSec int) []Event {
	if e.running {
		return nil
	}
	sec := focusSec
	if e.phase == Break {
		sec = breakSec
	}
	if sec < 1 {
		sec = 1
	}
	e.total = sec
	e.timeLeft = sec
	e.clearMarks()
	return e.emit([]Event{e.event(KindReset)})
}

// Epoch changes on every Start, Pause and Stop. Scheduled ticks capture it
// and are discarded when it no longer matches.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// Running reports whether the countdown is active.
func (e *Engine) Running() bool {
	return e.running
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	return State{
		Phase:    e.phase,
		TimeLeft: e.timeLeft,
		Running:  e.running,
		Elapsed:  e.elapsed(),
		Total:    e.total,
		Drops:    e.drops,
		Instance: e.instance,
		Epoch:    e.epoch,
		Marks: Marks{
			Visual:   sortedKeys(e.visualMarks),
			Nudges:   sortedKeys(e.nudgeMarks),
			Midpoint: e.midpoint,
		},
	}
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
