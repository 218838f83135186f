package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/juhanify-labs/juhanify/internal/branding"
	"github.com/juhanify-labs/juhanify/internal/config"
	"github.com/juhanify-labs/juhanify/internal/logging"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options stores global CLI options shared between commands.
type Options struct {
	LogLevel string
	Build    BuildInfo

	// Stderr receives diagnostics; nil means os.Stderr.
	Stderr io.Writer
}

// Execute builds the root command, runs it with args, and reports any error
// on stderr.
func Execute(args []string, build BuildInfo) error {
	opts := &Options{Build: build}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates React single page applications bundled with esbuild.
It lays out the project from a built-in template, initializes a git
repository, and installs dependencies with npm, yarn, or pnpm.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.Load()

			levelName := opts.LogLevel
			if !cmd.Flags().Changed("log-level") {
				levelName = config.Current().LogLevel
			}
			level := logging.ParseLevel(levelName)

			stderr := opts.Stderr
			if stderr == nil {
				stderr = os.Stderr
			}
			logger := logging.NewLogger(stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level.String(), "config", config.FilePath())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCreateCommand(opts),
		newTemplatesCommand(),
		newDoctorCommand(),
		newConfigCommand(),
		newVersionCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// loggerFromContext extracts the command logger or falls back to a discarding one.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return logging.Discard()
}
