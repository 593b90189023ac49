// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model and blocks
	// until it exits.
	Run(model tea.Model) error
}

// sender is implemented by models that receive messages from goroutines
// other than the update loop.
type sender interface {
	SetSend(send func(tea.Msg))
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct {
	opts []tea.ProgramOption
}

// NewDefaultProgramRunner creates a new DefaultProgramRunner. Without
// options the program runs in the alternate screen.
func NewDefaultProgramRunner(opts ...tea.ProgramOption) *DefaultProgramRunner {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &DefaultProgramRunner{opts: opts}
}

// Run starts a bubbletea program with the given model.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, r.opts...)
	if s, ok := model.(sender); ok {
		s.SetSend(p.Send)
	}

	_, err := p.Run()
	return err
}
