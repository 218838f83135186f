// Package scaffold materializes a template into a fresh project directory. It
// powers "juhanify create": directories are created, payloads are copied or
// token-substituted, and package.json is rewritten with the project's name.
// A failure stops materialization where it happened; nothing is rolled back.
package scaffold
