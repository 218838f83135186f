// Package manifest edits and validates package.json manifests. Edits are
// order-preserving: fields are overwritten in place, new fields are appended,
// and the document is re-serialized with two-space indentation. The result
// can be checked against an embedded JSON Schema that mirrors the rules npm
// applies to package names and versions.
package manifest
