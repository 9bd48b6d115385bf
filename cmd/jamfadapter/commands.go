package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harborsec/go-jamf-classic-adapter/integration"
	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

func newCommandsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List every adapter command with its argument schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The schema is static; no server connection is needed.
			adapter := integration.New(nil, logger.BuildNopLogger())

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Command", "Arguments", "Description"})
			for _, c := range adapter.Commands() {
				t.AppendRow(table.Row{c.Name, formatArgSpecs(c.Args), c.Description})
			}
			t.Render()
			return nil
		},
	}
}

func formatArgSpecs(specs []integration.ArgSpec) string {
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		name := spec.Name
		if spec.Required {
			name += "*"
		}
		if len(spec.Allowed) > 0 {
			name = fmt.Sprintf("%s(%s)", name, strings.Join(spec.Allowed, "|"))
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}
