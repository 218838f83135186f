package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/juhanify-labs/juhanify/internal/process"
	"github.com/juhanify-labs/juhanify/internal/project"
	"github.com/juhanify-labs/juhanify/internal/registry"
	"github.com/juhanify-labs/juhanify/internal/scaffold"
	"github.com/juhanify-labs/juhanify/internal/toolchain"
)

// Options is the complete input of a run. It is built once by the caller;
// the engine never consults arguments, environment, or the process working
// directory on its own.
type Options struct {
	ProjectName    string
	TemplateID     string // empty selects registry.DefaultID
	WorkingDir     string
	PackageManager string // empty selects npm
	VCS            string // git executable; empty selects "git"
	Description    string
	Author         string
	SkipVCS        bool
	SkipInstall    bool
}

// Runner executes process steps in order.
type Runner interface {
	Run(ctx context.Context, steps []process.Step) ([]process.Result, error)
}

// Report describes a run, complete or not.
type Report struct {
	State    State
	Project  *project.Project
	Template *registry.Template
	Files    []string
	Warnings []string
	Steps    []process.Result
}

// Engine wires the components of a run together.
type Engine struct {
	Registry *registry.Registry
	Runner   Runner
	Logger   *slog.Logger
}

// New returns an Engine backed by the built-in templates and a process
// orchestrator that logs subprocess output through logger.
func New(logger *slog.Logger) *Engine {
	return &Engine{
		Registry: registry.Builtin(),
		Runner:   &process.Orchestrator{Logger: logger},
		Logger:   logger,
	}
}

type run struct {
	logger *slog.Logger
	report *Report
}

func (r *run) advance(to State) {
	from := r.report.State
	if !canTransition(from, to) {
		panic(fmt.Sprintf("engine: illegal transition %s -> %s", from, to))
	}
	r.report.State = to
	r.logger.Debug("state", "from", from.String(), "to", to.String())
}

func (r *run) fail(err error) (*Report, error) {
	state := r.report.State
	r.advance(Failed)
	return r.report, &Error{State: state, Err: err}
}

// Run executes a complete create run. The returned Report is never nil; on
// failure it reflects everything done before the error, and the error is an
// *Error naming the state that failed.
func (e *Engine) Run(ctx context.Context, opts Options) (*Report, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &run{logger: logger, report: &Report{State: Validating}}

	// Validating
	p, err := project.New(opts.ProjectName, opts.WorkingDir)
	if err != nil {
		return r.fail(err)
	}
	r.report.Project = p

	templateID, err := project.ValidateTemplate(opts.TemplateID, registry.DefaultID, e.Registry.IDs())
	if err != nil {
		return r.fail(err)
	}

	managerName := opts.PackageManager
	if managerName == "" {
		managerName = toolchain.NPM
	}
	pm, err := toolchain.Lookup(managerName)
	if err != nil {
		return r.fail(err)
	}

	// Resolving
	r.advance(Resolving)
	tmpl := e.Registry.Resolve(templateID)
	r.report.Template = tmpl
	logger.Info("resolved template", "template", tmpl.ID, "files", len(tmpl.Files))

	// Materializing
	r.advance(Materializing)
	vars := scaffold.NewVars(p.Name)
	vars.Description = opts.Description
	vars.Author = opts.Author

	result, err := scaffold.Generate(p, tmpl, e.Registry.Payloads(), vars)
	if err != nil {
		return r.fail(err)
	}
	r.report.Files = result.Files
	r.report.Warnings = result.Warnings
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	logger.Info("materialized project", "root", p.Path, "files", len(result.Files))

	// Orchestrating
	r.advance(Orchestrating)
	var steps []process.Step
	if !opts.SkipVCS {
		steps = append(steps, toolchain.VCSInitStep(opts.VCS, p.Path))
	}
	if !opts.SkipInstall {
		steps = append(steps, toolchain.InstallSteps(pm, p.Path, tmpl.Dependencies, tmpl.DevDependencies)...)
	}

	if len(steps) > 0 {
		results, err := e.Runner.Run(ctx, steps)
		r.report.Steps = results
		if err != nil {
			return r.fail(err)
		}
	}

	r.advance(Done)
	return r.report, nil
}
