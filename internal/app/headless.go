package app

import (
	"context"
	"errors"

	apperrors "github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/timer"
)

// HeadlessUseCase drives the engine without a TUI, for example to show the
// jar in the tmux status line only.
type HeadlessUseCase struct {
	services *Services
	opts     []timer.DriverOption
	out      apperrors.ErrorHandler
}

// NewHeadlessUseCase creates a headless use-case. Driver options are passed
// through, which lets tests replace the ticker.
func NewHeadlessUseCase(services *Services, opts ...timer.DriverOption) *HeadlessUseCase {
	if services == nil {
		panic("NewHeadlessUseCase: services dependency cannot be nil")
	}
	return &HeadlessUseCase{services: services, opts: opts, out: apperrors.NewDefaultCLIHandler()}
}

// Run starts the countdown and blocks until ctx is done. Cues are played,
// completed focus phases are recorded in the drop log and the engine is
// stopped on exit so the status line shows the idle state.
func (u *HeadlessUseCase) Run(ctx context.Context) error {
	s := u.services
	if err := s.Cues.Unlock(); err != nil {
		u.out.Warning("audio unavailable: " + err.Error())
	}
	unsubscribe := s.Engine.Subscribe(func(ev timer.Event) {
		s.Cues.Handle(ev)
		if ev.Kind == timer.KindFocusComplete {
			s.Drops.Add(s.now())
		}
	})
	defer unsubscribe()

	driver := timer.NewDriver(s.Engine, u.opts...)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- driver.Run(runCtx) }()

	if err := driver.Start(runCtx); err != nil {
		cancel()
		<-done
		return err
	}
	u.out.Info("Timer running, press Ctrl+C to stop")

	<-ctx.Done()
	cancel()
	err := <-done
	// The driver goroutine has returned, so the engine has no other user.
	s.Engine.Stop()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
