package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/juhanify-labs/juhanify/internal/registry"
	"github.com/spf13/cobra"
)

// templateEntry represents a built-in template for display.
type templateEntry struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	Default         bool     `json:"default"`
	Files           int      `json:"files"`
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"devDependencies"`
}

func newTemplatesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Builtin()

			var entries []templateEntry
			for _, id := range reg.IDs() {
				t := reg.Resolve(id)
				entries = append(entries, templateEntry{
					ID:              id,
					Description:     t.Description,
					Default:         id == registry.DefaultID,
					Files:           len(t.Files),
					Dependencies:    t.Dependencies,
					DevDependencies: t.DevDependencies,
				})
			}

			if asJSON {
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFILES\tDESCRIPTION")
			for _, e := range entries {
				id := e.ID
				if e.Default {
					id += " (default)"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", id, e.Files, e.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
