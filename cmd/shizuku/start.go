package main

import (
	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/tui/state"
	"github.com/spf13/cobra"
)

type startClient interface {
	StartTUI(view state.View) error
}

const startCommandLong = `Open the timer in the terminal UI.

USAGE:
    shizuku start [OPTIONS]

OPTIONS:
    --view NAME    Screen to open first: home, settings or sound (default home)
    -h, --help     Show this help

KEYS:
    space  play/pause     s  stop        m  mute
    ,      settings       t  sound test  q  quit`

// NewStartCmd creates the start command with explicit dependencies.
func NewStartCmd(client startClient) *cobra.Command {
	if client == nil {
		panic("NewStartCmd: client dependency cannot be nil")
	}

	var viewName string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Open the timer",
		Long:  startCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(client, viewName)
		},
	}
	startCmd.Flags().StringVar(&viewName, "view", "home", "Screen to open first (home, settings, sound)")
	return startCmd
}

func runStart(client startClient, viewName string) error {
	view, err := state.ParseView(viewName)
	if err != nil {
		return err
	}
	return client.StartTUI(view)
}

var startCmd = NewStartCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(startCmd)
	cmd.RootCmd.RunE = func(c *cobra.Command, args []string) error {
		return runStart(defaultClient, "home")
	}
}
