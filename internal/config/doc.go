// Package config manages user-level settings stored at ~/.juhanify/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred package manager and the default template. Environment
// variables prefixed with JUHANIFY_ override the file.
package config
