// Package project validates the inputs of a scaffolding run and produces the
// immutable Project value that the rest of the pipeline works against.
//
// Validation never touches the filesystem beyond a single existence check in
// the working directory; nothing is created here.
package project
