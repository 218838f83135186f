package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/juhanify-labs/juhanify/internal/branding"
	"github.com/juhanify-labs/juhanify/internal/config"
	"github.com/juhanify-labs/juhanify/internal/registry"
	"github.com/juhanify-labs/juhanify/internal/toolchain"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write ` + branding.DisplayName() + ` configuration stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  package_manager   npm, yarn, or pnpm (default npm)
  vcs               git executable name or path (default git)
  default_template  template used when create is given none
  author            package.json author (default: git user)
  log_level         debug, info, warn, or error (default info)`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if err := checkConfigValue(key, value); err != nil {
					return err
				}
				if err := config.Set(key, value); err != nil {
					return fmt.Errorf("setting config key %q: %w", key, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
				return nil
			},
		},
	)

	return cmd
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// checkConfigValue rejects values create would refuse later.
func checkConfigValue(key, value string) error {
	switch key {
	case config.KeyPackageManager:
		_, err := toolchain.Lookup(value)
		return err
	case config.KeyDefaultTemplate:
		if !registry.Builtin().Has(value) {
			return fmt.Errorf("unknown template %q (available: %v)", value, registry.Builtin().IDs())
		}
	case config.KeyLogLevel:
		if !slices.Contains(logLevels, strings.ToLower(value)) {
			return fmt.Errorf("unknown log level %q: use debug, info, warn, or error", value)
		}
	}
	return nil
}
