package main

import (
	"os"

	"github.com/juhanify-labs/juhanify/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	build := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(os.Args[1:], build); err != nil {
		os.Exit(1)
	}
}
