package app

import (
	"fmt"
	"io"
	"strings"
)

// MuteClient defines dependencies required by the mute command.
type MuteClient interface {
	Muted() bool
	Set(muted bool)
	Toggle() bool
}

// Mute actions accepted by MuteUseCase.Execute.
const (
	MuteOn     = "on"
	MuteOff    = "off"
	MuteToggle = "toggle"
	MuteStatus = "status"
)

// MuteUseCase coordinates the persisted mute flag.
type MuteUseCase struct {
	client MuteClient
}

// NewMuteUseCase creates a mute use-case.
func NewMuteUseCase(client MuteClient) *MuteUseCase {
	if client == nil {
		panic("NewMuteUseCase: client dependency cannot be nil")
	}
	return &MuteUseCase{client: client}
}

// Execute applies action and writes the resulting state ("muted" or
// "unmuted") to w. An empty action toggles.
func (u *MuteUseCase) Execute(action string, w io.Writer) error {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case MuteOn:
		u.client.Set(true)
	case MuteOff:
		u.client.Set(false)
	case "", MuteToggle:
		u.client.Toggle()
	case MuteStatus:
	default:
		return fmt.Errorf("mute: unknown action %q (expected on, off, toggle or status)", action)
	}

	state := "unmuted"
	if u.client.Muted() {
		state = "muted"
	}
	_, err := fmt.Fprintln(w, state)
	return err
}
