package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborsec/go-jamf-classic-adapter/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the adapter version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", version.GetAppName(), version.GetVersion())
		},
	}
}
