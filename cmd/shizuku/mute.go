package main

import (
	"io"

	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/app"
	"github.com/spf13/cobra"
)

type muteClient interface {
	Mute(action string, w io.Writer) error
}

const muteCommandLong = `Mute or unmute the cues. The flag is shared with the terminal UI.

USAGE:
    shizuku mute [on|off|toggle|status]

Without an argument the flag is toggled. The resulting state is printed.`

// NewMuteCmd creates the mute command with explicit dependencies.
func NewMuteCmd(client muteClient) *cobra.Command {
	if client == nil {
		panic("NewMuteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:       "mute [on|off|toggle|status]",
		Short:     "Mute or unmute the cues",
		Long:      muteCommandLong,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.MuteOn, app.MuteOff, app.MuteToggle, app.MuteStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := app.MuteToggle
			if len(args) == 1 {
				action = args[0]
			}
			return client.Mute(action, cmd.OutOrStdout())
		},
	}
}

var muteCmd = NewMuteCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(muteCmd)
}
