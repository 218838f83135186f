// Package toolchain knows how to drive the external tools a new project
// needs: the package manager (npm, yarn, or pnpm) and the version control
// system. It builds process steps for them, probes installed versions for
// "juhanify doctor", and reads the git author for package.json.
package toolchain
