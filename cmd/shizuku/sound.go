package main

import (
	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/spf13/cobra"
)

type soundClient interface {
	TestSound() error
}

// NewSoundCmd creates the sound command with explicit dependencies.
func NewSoundCmd(client soundClient) *cobra.Command {
	if client == nil {
		panic("NewSoundCmd: client dependency cannot be nil")
	}

	soundCmd := &cobra.Command{
		Use:   "sound",
		Short: "Audio diagnostics",
		Long:  `Audio diagnostics. The backend is chosen by audio_backend in the config file.`,
	}
	soundCmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Play one water drop",
		Long:  `Open the audio device and play one water drop at the cue volume.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.TestSound()
		},
	})
	return soundCmd
}

var soundCmd = NewSoundCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(soundCmd)
}
