package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum versions for the non-package-manager tools.
const (
	MinGit  = "2.0.0"
	MinNode = "18.0.0"
)

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// Tool is the outcome of probing one executable.
type Tool struct {
	Name    string
	Path    string // empty when not found on PATH
	Version string // empty when it could not be determined
	Min     string
	Err     error
}

// OK reports whether the tool was found and meets its minimum version.
func (t Tool) OK() bool {
	return t.Err == nil && t.Path != ""
}

// Probe locates program on PATH, runs "program --version", and checks the
// reported version against minVersion. A problem is recorded in Tool.Err.
func Probe(ctx context.Context, program, minVersion string) Tool {
	tool := Tool{Name: program, Min: minVersion}

	path, err := exec.LookPath(program)
	if err != nil {
		tool.Err = fmt.Errorf("%s not found on PATH", program)
		return tool
	}
	tool.Path = path

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		tool.Err = fmt.Errorf("running %s --version: %w", program, err)
		return tool
	}

	version, err := ExtractVersion(string(out))
	if err != nil {
		tool.Err = err
		return tool
	}
	tool.Version = version

	ok, err := AtLeast(version, minVersion)
	if err != nil {
		tool.Err = err
		return tool
	}
	if !ok {
		tool.Err = fmt.Errorf("%s %s is older than the required %s", program, version, minVersion)
	}
	return tool
}

// ExtractVersion finds the first version number in tool output such as
// "git version 2.43.0" or "v20.11.1".
func ExtractVersion(output string) (string, error) {
	m := versionPattern.FindString(output)
	if m == "" {
		return "", fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return strings.TrimPrefix(m, "v"), nil
}

// AtLeast reports whether version >= minVersion. Both tolerate a leading "v".
func AtLeast(version, minVersion string) (bool, error) {
	cmp, err := CompareVersions(version, minVersion)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
