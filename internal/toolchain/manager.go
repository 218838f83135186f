package toolchain

import (
	"fmt"
	"slices"

	"github.com/juhanify-labs/juhanify/internal/process"
)

// PackageManager builds install commands for one package manager.
type PackageManager interface {
	// Name is the manager's executable name.
	Name() string
	// InstallArgs returns the arguments that add pkgs as runtime or dev
	// dependencies.
	InstallArgs(pkgs []string, dev bool) []string
	// MinVersion is the oldest release juhanify is known to work with.
	MinVersion() string
}

// Supported package manager identifiers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Managers lists the supported package managers.
var Managers = []string{NPM, Yarn, PNPM}

// Lookup returns the PackageManager for name.
func Lookup(name string) (PackageManager, error) {
	switch name {
	case NPM:
		return npm{}, nil
	case Yarn:
		return yarn{}, nil
	case PNPM:
		return pnpm{}, nil
	default:
		return nil, fmt.Errorf("unknown package manager %q: supported managers are %v", name, Managers)
	}
}

type npm struct{}

func (npm) Name() string       { return NPM }
func (npm) MinVersion() string { return "7.0.0" }

func (npm) InstallArgs(pkgs []string, dev bool) []string {
	args := []string{"install"}
	if dev {
		args = append(args, "--save-dev")
	}
	return append(args, pkgs...)
}

type yarn struct{}

func (yarn) Name() string       { return Yarn }
func (yarn) MinVersion() string { return "1.22.0" }

func (yarn) InstallArgs(pkgs []string, dev bool) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "--dev")
	}
	return append(args, pkgs...)
}

type pnpm struct{}

func (pnpm) Name() string       { return PNPM }
func (pnpm) MinVersion() string { return "8.0.0" }

func (pnpm) InstallArgs(pkgs []string, dev bool) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "-D")
	}
	return append(args, pkgs...)
}

// InstallSteps returns the runtime install step followed by the dev install
// step. A step with no packages is omitted.
func InstallSteps(pm PackageManager, dir string, deps, devDeps []string) []process.Step {
	var steps []process.Step
	if len(deps) > 0 {
		steps = append(steps, process.Step{
			Program: pm.Name(),
			Args:    pm.InstallArgs(slices.Clone(deps), false),
			Dir:     dir,
		})
	}
	if len(devDeps) > 0 {
		steps = append(steps, process.Step{
			Program: pm.Name(),
			Args:    pm.InstallArgs(slices.Clone(devDeps), true),
			Dir:     dir,
		})
	}
	return steps
}

// VCSInitStep returns the step that initializes a repository in dir. vcs is
// the git executable name or path.
func VCSInitStep(vcs, dir string) process.Step {
	if vcs == "" {
		vcs = "git"
	}
	return process.Step{Program: vcs, Args: []string{"init"}, Dir: dir}
}
