package main

import (
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/shizuku/cmd"
	"github.com/cristianoliveira/shizuku/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() version.Info
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	var asJSON bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of shizuku.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := client.Version()
			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shizuku version %s (%s, %s)\n", info.Version, info.Commit, info.Platform)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	return versionCmd
}

var versionCmd = NewVersionCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
