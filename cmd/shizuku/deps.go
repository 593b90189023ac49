package main

import (
	"context"
	"io"
	"sync"

	"github.com/cristianoliveira/shizuku/internal/app"
	"github.com/cristianoliveira/shizuku/internal/colors"
	tuiapp "github.com/cristianoliveira/shizuku/internal/tui/app"
	"github.com/cristianoliveira/shizuku/internal/tui/state"
	"github.com/cristianoliveira/shizuku/internal/version"
)

// Services are opened on first use, after the root command loaded the config.
var (
	servicesMu  sync.Mutex
	services    *app.Services
	openService = app.Open
)

func getServices() (*app.Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	if services != nil {
		return services, nil
	}
	s, err := openService()
	if err != nil {
		return nil, err
	}
	services = s
	return s, nil
}

func closeServices() {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	if services == nil {
		return
	}
	if err := services.Close(); err != nil {
		colors.Warning(err.Error())
	}
	services = nil
}

// coreClient adapts the use-cases to the narrow interfaces of the commands.
type coreClient struct{}

var defaultClient = coreClient{}

func (coreClient) StartTUI(view state.View) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	client := tuiapp.NewDefaultClient(s.TUIDeps(), nil)
	model, err := client.CreateModel(view)
	if err != nil {
		return err
	}
	return client.RunProgram(model)
}

func (coreClient) RunHeadless(ctx context.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	return app.NewHeadlessUseCase(s).Run(ctx)
}

func (coreClient) ShowSettings(w io.Writer) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	return app.NewSettingsUseCase(s.Settings).Show(w)
}

func (coreClient) SetSettings(input app.SetSettingsInput) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	_, err = app.NewSettingsUseCase(s.Settings).Set(input)
	return err
}

func (coreClient) ResetSettings(input app.ResetSettingsInput) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	return app.NewSettingsUseCase(s.Settings).Reset(input)
}

func (coreClient) Mute(action string, w io.Writer) error {
	s, err := getServices()
	if err != nil {
		return err
	}
	return app.NewMuteUseCase(s.Mute).Execute(action, w)
}

func (coreClient) TestSound() error {
	s, err := getServices()
	if err != nil {
		return err
	}
	_, err = app.NewSoundUseCase(s.Cues).Test()
	return err
}

func (coreClient) Version() version.Info {
	return version.Get()
}
