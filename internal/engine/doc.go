// Package engine drives one "create" run through its states: validate the
// inputs, resolve the template, materialize files, then run the VCS and
// package manager steps. The first failure ends the run in the Failed state;
// nothing already written is removed.
package engine
