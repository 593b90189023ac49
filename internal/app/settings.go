package app

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	apperrors "github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/settings"
)

// SettingsClient defines dependencies required by settings commands.
type SettingsClient interface {
	Current() settings.Settings
	Save(p settings.Partial) settings.Settings
	Reset() settings.Settings
	Floor() int
}

// SettingsUseCase coordinates settings command behavior.
type SettingsUseCase struct {
	client SettingsClient
	out    apperrors.ErrorHandler
}

// NewSettingsUseCase creates a settings use-case.
func NewSettingsUseCase(client SettingsClient) *SettingsUseCase {
	if client == nil {
		panic("NewSettingsUseCase: client dependency cannot be nil")
	}

	return &SettingsUseCase{client: client, out: apperrors.NewDefaultCLIHandler()}
}

// settingsView is the JSON shape printed by settings show.
type settingsView struct {
	FocusSec     int     `json:"focusSec"`
	BreakSec     int     `json:"breakSec"`
	FocusMinutes float64 `json:"focusMinutes"`
	BreakMinutes float64 `json:"breakMinutes"`
	FloorSec     int     `json:"floorSec"`
}

// Show writes the current settings as JSON.
func (u *SettingsUseCase) Show(w io.Writer) error {
	cur := u.client.Current()
	data, err := json.MarshalIndent(settingsView{
		FocusSec:     cur.FocusSec,
		BreakSec:     cur.BreakSec,
		FocusMinutes: roundMinutes(cur.FocusSec),
		BreakMinutes: roundMinutes(cur.BreakSec),
		FloorSec:     u.client.Floor(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = fmt.Fprintln(w, strings.TrimSpace(string(data)))
	return err
}

func roundMinutes(sec int) float64 {
	return math.Round(settings.SecondsToMinutes(sec)*100) / 100
}

// SetSettingsInput holds the raw minute values given on the command line.
// Empty strings leave the field unchanged.
type SetSettingsInput struct {
	Focus string
	Break string
}

// Set parses, clamps and saves the given minute values.
func (u *SettingsUseCase) Set(input SetSettingsInput) (settings.Settings, error) {
	var p settings.Partial
	if input.Focus == "" && input.Break == "" {
		return settings.Settings{}, fmt.Errorf("settings set: nothing to change, pass --focus and/or --break")
	}
	if input.Focus != "" {
		sec, err := u.parseMinutesFlag("focus", input.Focus)
		if err != nil {
			return settings.Settings{}, err
		}
		p.FocusSec = &sec
	}
	if input.Break != "" {
		sec, err := u.parseMinutesFlag("break", input.Break)
		if err != nil {
			return settings.Settings{}, err
		}
		p.BreakSec = &sec
	}

	saved := u.client.Save(p)
	u.out.Success(fmt.Sprintf("Focus %s min, break %s min",
		settings.FormatMinutes(settings.SecondsToMinutes(saved.FocusSec)),
		settings.FormatMinutes(settings.SecondsToMinutes(saved.BreakSec))))
	return saved, nil
}

func (u *SettingsUseCase) parseMinutesFlag(name, raw string) (int, error) {
	m, ok := settings.ParseMinutes(settings.NormalizeDecimalInput(raw))
	if !ok {
		return 0, fmt.Errorf("settings set: invalid --%s value %q", name, raw)
	}
	clamped := settings.ClampMinutes(m)
	if clamped != m {
		u.out.Warning(fmt.Sprintf("--%s %s is out of range, using %s", name, raw, settings.FormatMinutes(clamped)))
	}
	return settings.MinutesToSeconds(clamped), nil
}

// ResetSettingsInput contains reset options and environment adapters.
type ResetSettingsInput struct {
	Force     bool
	GetEnv    func(string) string
	ConfirmFn func() bool
}

// Reset executes settings reset behavior.
func (u *SettingsUseCase) Reset(input ResetSettingsInput) error {
	getEnv := input.GetEnv
	if getEnv == nil {
		getEnv = func(string) string { return "" }
	}

	if !input.Force && getEnv("CI") == "" {
		if input.ConfirmFn != nil && !input.ConfirmFn() {
			u.out.Info("Operation cancelled")
			return nil
		}
	}

	u.client.Reset()
	u.out.Success("Settings reset to defaults")
	return nil
}
