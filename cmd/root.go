package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/shizuku/internal/colors"
	"github.com/cristianoliveira/shizuku/internal/config"
	"github.com/cristianoliveira/shizuku/internal/errors"
	"github.com/cristianoliveira/shizuku/internal/logging"
	"github.com/cristianoliveira/shizuku/internal/version"
	"github.com/spf13/cobra"
)

const description = "A water-drop pomodoro timer for the terminal."

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "shizuku",
	Short:             description,
	Long:              description,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	},
}

// outputWriter overrides the help destination in tests.
var outputWriter io.Writer

// Execute runs the root command and reports a failing command once.
func Execute() error {
	err := RootCmd.Execute()
	errors.Report(errors.NewDefaultCLIHandler(), "", err)
	return err
}

// setup loads the config and starts the file logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	logging.Info("command started", "command", cmd.CommandPath(), "args", len(args))
	return nil
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(helpWriter(cmd), cmd.UsageString())
			return
		}
		PrintHelp(cmd)
	})
	RootCmd.SetHelpCommand(helpCmd)
}

// helpCmd represents the help command
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd.Root())
	},
}

func helpWriter(cmd *cobra.Command) io.Writer {
	if outputWriter != nil {
		return outputWriter
	}
	return cmd.OutOrStdout()
}

// PrintHelp writes the command overview in a fixed order.
func PrintHelp(cmd *cobra.Command) {
	commandOrder := []string{
		"start",
		"run",
		"settings",
		"mute",
		"sound",
		"version",
		"help",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`shizuku v%s

%s

USAGE:
    shizuku [COMMAND] [OPTIONS]

Without a command the timer opens in the terminal UI.

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version
`, cmd.Version, description, strings.Join(cmdLines, "\n"))
	fmt.Fprint(helpWriter(cmd), helpText)
}
