package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/app"
	"github.com/spf13/cobra"
)

type settingsClient interface {
	ShowSettings(w io.Writer) error
	SetSettings(input app.SetSettingsInput) error
	ResetSettings(input app.ResetSettingsInput) error
}

const (
	settingsCommandLong = `Manage the focus and break durations.

USAGE:
    shizuku settings <subcommand>

SUBCOMMANDS:
    show     Display current settings
    set      Change durations, in minutes
    reset    Reset settings to defaults

EXAMPLES:
    # Show current settings
    shizuku settings show

    # 50 minutes of focus, 10 of break
    shizuku settings set --focus 50 --break 10

    # Reset settings without confirmation
    shizuku settings reset --force`
	setCommandLong = `Change the focus and/or break duration.

Values are minutes and may be fractional (0.5 is thirty seconds). They are
clamped to 0.1 .. 600. A running timer keeps its current phase length and
uses the new values from the next phase on.

USAGE:
    shizuku settings set [OPTIONS]

OPTIONS:
    --focus MIN    Focus duration in minutes
    --break MIN    Break duration in minutes
    -h, --help     Show this help`
	resetCommandLong = `Reset durations to 25 minutes of focus and 5 of break.

USAGE:
    shizuku settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation
    -h, --help Show this help`
	showCommandLong = `Display current settings in JSON format.

USAGE:
    shizuku settings show`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client settingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change durations",
		Long:  settingsCommandLong,
	}

	settingsCmd.AddCommand(newShowCmd(client))
	settingsCmd.AddCommand(newSetCmd(client))
	settingsCmd.AddCommand(newResetCmd(client))

	return settingsCmd
}

func newShowCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long:  showCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.ShowSettings(cmd.OutOrStdout())
		},
	}
}

func newSetCmd(client settingsClient) *cobra.Command {
	var input app.SetSettingsInput
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change durations",
		Long:  setCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.SetSettings(input)
		},
	}
	setCmd.Flags().StringVar(&input.Focus, "focus", "", "Focus duration in minutes")
	setCmd.Flags().StringVar(&input.Break, "break", "", "Break duration in minutes")
	return setCmd
}

func newResetCmd(client settingsClient) *cobra.Command {
	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset settings to defaults",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.ResetSettings(app.ResetSettingsInput{
				Force:  resetForce,
				GetEnv: os.Getenv,
				ConfirmFn: func() bool {
					return confirmReset(cmd.InOrStdin(), cmd.OutOrStdout())
				},
			})
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Reset without confirmation")
	return resetCmd
}

// confirmReset asks the user for confirmation before resetting settings.
func confirmReset(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure you want to reset settings to defaults? (y/N): ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		// If we can't read, assume no
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

var settingsCmd = NewSettingsCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(settingsCmd)
}
