package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harborsec/go-jamf-classic-adapter/httpclient"
	"github.com/harborsec/go-jamf-classic-adapter/integration"
	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [key=value ...]",
		Short: "Run one adapter command against the configured Jamf Pro server",
		Long: `Run dispatches a named adapter command. Arguments are supplied as
key=value pairs and validated against the command's schema before any
request leaves the process.

Example:
  jamfadapter run jamf-get-computers limit=25 page=0
  jamfadapter run jamf-computer-lock id=12 passcode=123456`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			supplied, err := parseKeyValueArgs(args[1:])
			if err != nil {
				return err
			}

			adapter, err := buildAdapter(flags)
			if err != nil {
				return err
			}

			result, err := adapter.Dispatch(cmd.Context(), args[0], supplied)
			if err != nil {
				return err
			}

			return writeResult(cmd, flags.output, result)
		},
	}
}

// buildAdapter loads configuration (file first, environment second), builds
// the HTTP client and returns the command registry over it.
func buildAdapter(flags *rootFlags) (*integration.Adapter, error) {
	cfg := &httpclient.Config{}
	if flags.configPath != "" {
		loaded, err := httpclient.LoadConfigFromFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg = httpclient.LoadConfigFromEnv(cfg)

	client, err := httpclient.BuildClient(*cfg)
	if err != nil {
		return nil, err
	}

	service := jamf.NewService(client)
	return integration.New(service, client.Logger), nil
}

func parseKeyValueArgs(pairs []string) (map[string]string, error) {
	supplied := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("argument %q is not a key=value pair", pair)
		}
		supplied[key] = value
	}
	return supplied, nil
}

func writeResult(cmd *cobra.Command, output string, result *integration.Result) error {
	switch output {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Outputs)
	case "table":
		fmt.Fprintln(cmd.OutOrStdout(), result.Readable)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, want json or table", output)
	}
}
