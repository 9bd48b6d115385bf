package main

import (
	"github.com/spf13/cobra"

	"github.com/harborsec/go-jamf-classic-adapter/version"
)

// rootFlags holds the persistent flag values shared by every subcommand.
type rootFlags struct {
	configPath string
	output     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "jamfadapter",
		Short: "Query and command a Jamf Pro server over its Classic API",
		Long: `jamfadapter exposes Jamf Pro computer and mobile device inventory,
user lookups and device actions (lock, erase, lost mode) as named
commands for orchestration runtimes and operators.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to a YAML config file; JAMF_* environment variables override it")
	cmd.PersistentFlags().StringVar(&flags.output, "output", "table",
		"output format: json or table")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newCommandsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
