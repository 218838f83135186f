package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/juhanify-labs/juhanify/internal/branding"
	"github.com/juhanify-labs/juhanify/internal/config"
	"github.com/juhanify-labs/juhanify/internal/engine"
	"github.com/juhanify-labs/juhanify/internal/toolchain"
	"github.com/spf13/cobra"
)

type createFlags struct {
	template       string
	packageManager string
	description    string
	author         string
	skipGit        bool
	skipInstall    bool
}

func newCreateCommand(opts *Options) *cobra.Command {
	f := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <project-name> [template]",
		Short: "Scaffold a new React app",
		Long: `Create a new project directory from a built-in template, run "git init",
and install the template's dependencies.

The project name must start with a letter and may contain letters, digits,
underscores, and hyphens. The template defaults to "default"; run
"` + branding.CLIName() + ` templates" to see the others.

Examples:
  ` + branding.CLIName() + ` create my-app
  ` + branding.CLIName() + ` create my-app jest
  ` + branding.CLIName() + ` create my-app --package-manager pnpm --skip-git`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()

			engineOpts, err := f.engineOptions(args, settings)
			if err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			engineOpts.WorkingDir = wd

			eng := engine.New(loggerFromContext(cmd.Context()))
			report, err := eng.Run(cmd.Context(), engineOpts)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), report)
			printNextSteps(cmd.OutOrStdout(), report, engineOpts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template id (default: config default_template, then \"default\")")
	cmd.Flags().StringVarP(&f.packageManager, "package-manager", "p", "", "Package manager: npm, yarn, or pnpm")
	cmd.Flags().StringVar(&f.description, "description", "", "Description written to package.json")
	cmd.Flags().StringVar(&f.author, "author", "", "Author written to package.json (default: config author, then git user)")
	cmd.Flags().BoolVar(&f.skipGit, "skip-git", false, "Do not initialize a git repository")
	cmd.Flags().BoolVar(&f.skipInstall, "skip-install", false, "Do not install dependencies")

	return cmd
}

// engineOptions resolves arguments, flags, and settings into engine options.
// Flags win over settings; settings win over built-in defaults.
func (f *createFlags) engineOptions(args []string, settings config.Settings) (engine.Options, error) {
	var name, positional string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		positional = args[1]
	}

	templateID := f.template
	switch {
	case positional != "" && f.template != "" && positional != f.template:
		return engine.Options{}, fmt.Errorf("template given twice: %q and --template %q", positional, f.template)
	case positional != "":
		templateID = positional
	case templateID == "":
		templateID = settings.DefaultTemplate
	}

	manager := f.packageManager
	if manager == "" {
		manager = settings.PackageManager
	}

	author := f.author
	if author == "" {
		author = settings.Author
	}
	if author == "" {
		author = toolchain.GitAuthor()
	}

	return engine.Options{
		ProjectName:    name,
		TemplateID:     templateID,
		PackageManager: manager,
		VCS:            settings.VCS,
		Description:    f.description,
		Author:         author,
		SkipVCS:        f.skipGit,
		SkipInstall:    f.skipInstall,
	}, nil
}

func printResult(w io.Writer, report *engine.Report) {
	fmt.Fprintf(w, "Created %s from template %q at %s/\n", report.Project.Name, report.Template.ID, report.Project.Path)
	for _, f := range report.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func printNextSteps(w io.Writer, report *engine.Report, opts engine.Options) {
	manager := opts.PackageManager
	if manager == "" {
		manager = toolchain.NPM
	}
	run := manager + " run"
	if manager != toolchain.NPM {
		run = manager
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", report.Project.Name)
	step := 2
	if opts.SkipInstall {
		fmt.Fprintf(w, "  %d. %s install\n", step, manager)
		step++
	}
	fmt.Fprintf(w, "  %d. %s start    (dev server with live reload)\n", step, run)
	fmt.Fprintf(w, "  %d. %s build    (production bundle in build/)\n", step+1, run)
	if report.Template.ID == "jest" {
		fmt.Fprintf(w, "  %d. %s test\n", step+2, run)
	}
}
