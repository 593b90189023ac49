package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/tui/state"
	"github.com/spf13/cobra"
)

type runClient interface {
	startClient
	RunHeadless(ctx context.Context) error
}

const runCommandLong = `Run the timer.

With --headless the countdown runs without a UI until interrupted. Cues
still play, completed focus phases are counted and, inside tmux, the jar is
published to the @shizuku option for the status line:

    set -g status-right '#{@shizuku}'

USAGE:
    shizuku run [OPTIONS]

OPTIONS:
    --headless    Run without the terminal UI
    -h, --help    Show this help`

// NewRunCmd creates the run command with explicit dependencies.
func NewRunCmd(client runClient) *cobra.Command {
	if client == nil {
		panic("NewRunCmd: client dependency cannot be nil")
	}

	var headless bool
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timer, optionally without the UI",
		Long:  runCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !headless {
				return client.StartTUI(state.ViewHome)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return client.RunHeadless(ctx)
		},
	}
	runCmd.Flags().BoolVar(&headless, "headless", false, "Run without the terminal UI")
	return runCmd
}

var runCmd = NewRunCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(runCmd)
}
