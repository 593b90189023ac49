package timer

import (
	"context"
	"errors"
	"time"

	"github.com/cristianoliveira/shizuku/internal/logging"
)

// ErrDriverStopped is returned by commands sent after Run has returned.
var ErrDriverStopped = errors.New("timer: driver stopped")

// Ticker is the part of time.Ticker the driver needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type command struct {
	fn   func(*Engine)
	done chan struct{}
}

// Driver runs an Engine on its own goroutine from a one-second ticker.
// All access to the engine goes through Do, so Run is its only writer.
type Driver struct {
	engine    *Engine
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	cmds      chan command
	stopped   chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithTicker replaces the wall-clock ticker, mainly for tests.
func WithTicker(fn func(time.Duration) Ticker) DriverOption {
	return func(d *Driver) { d.newTicker = fn }
}

// WithInterval changes the tick period from one second.
func WithInterval(interval time.Duration) DriverOption {
	return func(d *Driver) { d.interval = interval }
}

// NewDriver wraps engine. Call Run to start processing.
func NewDriver(engine *Engine, opts ...DriverOption) *Driver {
	d := &Driver{
		engine:    engine,
		interval:  time.Second,
		newTicker: NewRealTicker,
		cmds:      make(chan command),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes commands and ticks until ctx is done. The ticker exists
// only while the engine is running; pausing or stopping releases it so no
// stale tick can reach the engine.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.stopped)

	var ticker Ticker
	var tickC <-chan time.Time
	syncTicker := func() {
		switch {
		case d.engine.Running() && ticker == nil:
			ticker = d.newTicker(d.interval)
			tickC = ticker.C()
		case !d.engine.Running() && ticker != nil:
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	syncTicker()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-d.cmds:
			cmd.fn(d.engine)
			syncTicker()
			close(cmd.done)
		case <-tickC:
			for _, ev := range d.engine.Tick() {
				logging.Debug("timer event", "kind", ev.Kind.String(), "phase", ev.Phase.String(), "elapsed", ev.Elapsed, "instance", ev.Instance)
			}
		}
	}
}

// Do runs fn on the driver goroutine and waits for it.
func (d *Driver) Do(ctx context.Context, fn func(*Engine)) error {
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case d.cmds <- cmd:
	case <-d.stopped:
		return ErrDriverStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-cmd.done
	return nil
}

// Start, Pause, Toggle and Stop forward to the engine.
func (d *Driver) Start(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Start() })
}

func (d *Driver) Pause(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Pause() })
}

func (d *Driver) Toggle(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Toggle() })
}

func (d *Driver) Stop(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Stop() })
}

// Snapshot reads the engine state on the driver goroutine.
func (d *Driver) Snapshot(ctx context.Context) (State, error) {
	var st State
	err := d.Do(ctx, func(e *Engine) { st = e.Snapshot() })
	return st, err
}
