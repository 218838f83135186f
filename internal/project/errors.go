package project

import "errors"

var (
	// ErrInvalidProjectName is returned when a name does not match NamePattern.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrUnsupportedTemplate is returned for a template id outside the registry.
	ErrUnsupportedTemplate = errors.New("unsupported template")

	// ErrProjectAlreadyExists is returned when the working directory already
	// holds an entry with the project's name.
	ErrProjectAlreadyExists = errors.New("project already exists")
)
