// Package cli defines the Cobra command tree for the juhanify CLI. Each file
// in this package builds one top-level command (create, templates, doctor,
// config, version). Commands turn flags, arguments, and user settings into
// explicit options for internal packages and only handle I/O formatting.
package cli
