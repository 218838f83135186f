package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

// NamePattern is the canonical project name rule: a leading ASCII letter
// followed by one or more letters, digits, underscores, or hyphens.
const NamePattern = `^[A-Za-z][A-Za-z0-9_-]+$`

var nameRegexp = regexp.MustCompile(NamePattern)

// Project identifies the directory a run will create.
type Project struct {
	Name string // validated project name
	Path string // absolute path of the project root
}

// ValidateName checks name against NamePattern.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("%w %q: must start with a letter and contain only letters, digits, underscore and hyphen", ErrInvalidProjectName, name)
	}
	return nil
}

// ValidateTemplate returns the effective template id. An empty id selects
// fallback; any other id must appear in known.
func ValidateTemplate(id, fallback string, known []string) (string, error) {
	if id == "" {
		id = fallback
	}
	if !slices.Contains(known, id) {
		return "", fmt.Errorf("%w %q (available: %v)", ErrUnsupportedTemplate, id, known)
	}
	return id, nil
}

// New validates name and resolves the project root under workingDir. It fails
// with ErrProjectAlreadyExists when any filesystem entry already uses the
// name. The check is not atomic with the later directory creation; a lost
// race shows up as a creation failure instead.
func New(name, workingDir string) (*Project, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(workingDir)
	if err != nil {
		return nil, fmt.Errorf("resolving working directory %s: %w", workingDir, err)
	}
	path := filepath.Join(absDir, name)

	if _, err := os.Lstat(path); err == nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrProjectAlreadyExists, name, absDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	return &Project{Name: name, Path: path}, nil
}
