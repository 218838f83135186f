// Package process runs external programs one after another inside a project
// directory, streaming each output line as it arrives. A step fails when its
// program cannot start or exits non-zero, and no later step runs after that.
package process
