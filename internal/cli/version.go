package cli

import (
	"encoding/json"
	"fmt"

	"github.com/juhanify-labs/juhanify/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCommand(opts *Options) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := opts.Build
			out := cmd.OutOrStdout()

			if short {
				fmt.Fprintln(out, b.Version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": b.Version,
					"commit":  b.Commit,
					"date":    b.Date,
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), b.Version, b.Commit, b.Date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
