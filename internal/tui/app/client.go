package app

import (
	"fmt"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/tui/state"
)

// Client defines dependencies needed by the start command.
type Client interface {
	CreateModel(view state.View) (*state.Model, error)
	RunProgram(model *state.Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	deps          state.Deps
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(deps state.Deps, programRunner ProgramRunner) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		deps:          deps,
		programRunner: programRunner,
	}
}

// CreateModel builds the TUI model showing view.
func (d *DefaultClient) CreateModel(view state.View) (*state.Model, error) {
	return state.NewModel(d.deps, view)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
// Console output is silenced while the alternate screen is active.
func (d *DefaultClient) RunProgram(model *state.Model) error {
	colors.SetQuiet(true)
	err := d.programRunner.Run(model)
	colors.SetQuiet(false)
	model.Close()
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
