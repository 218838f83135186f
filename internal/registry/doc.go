// Package registry holds the built-in project templates. Each template is a
// template.yaml instruction set plus payload files, all embedded in the
// binary. The registry is loaded once and treated as read-only reference
// data: a template that breaks its own ordering or path invariants is a
// build defect, so Builtin panics instead of returning an error.
package registry
