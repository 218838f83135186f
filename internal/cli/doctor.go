package cli

import (
	"fmt"
	"io"

	"github.com/juhanify-labs/juhanify/internal/config"
	"github.com/juhanify-labs/juhanify/internal/toolchain"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git, node, and the package manager are usable",
		Long: `Run diagnostic checks on the tools "create" depends on. Each tool must be on
PATH and at least the minimum supported version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()
			out := cmd.OutOrStdout()

			pm, err := toolchain.Lookup(settings.PackageManager)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Toolchain check:")
			failed := 0
			for _, probe := range []struct{ program, minVersion string }{
				{settings.VCS, toolchain.MinGit},
				{"node", toolchain.MinNode},
				{pm.Name(), pm.MinVersion()},
			} {
				tool := toolchain.Probe(cmd.Context(), probe.program, probe.minVersion)
				printTool(out, tool)
				if !tool.OK() {
					failed++
				}
			}

			fmt.Fprintln(out, "\nAuthor:")
			if author := settings.Author; author != "" {
				fmt.Fprintf(out, "  [ OK ] %s (from config)\n", author)
			} else if author := toolchain.GitAuthor(); author != "" {
				fmt.Fprintf(out, "  [ OK ] %s (from git config)\n", author)
			} else {
				fmt.Fprintln(out, "  [INFO] No author configured; package.json will omit it")
			}

			if failed > 0 {
				return fmt.Errorf("%d toolchain check(s) failed", failed)
			}
			return nil
		},
	}
}

func printTool(w io.Writer, t toolchain.Tool) {
	switch {
	case t.Path == "":
		fmt.Fprintf(w, "  [MISS] %s not found\n", t.Name)
	case t.Err != nil:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", t.Name, t.Err)
	default:
		fmt.Fprintf(w, "  [ OK ] %s %s found at %s (>= %s)\n", t.Name, t.Version, t.Path, t.Min)
	}
}
