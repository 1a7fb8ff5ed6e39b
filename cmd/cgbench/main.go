// cmd/cgbench/main.go
package main

import (
	cmd "github.com/mwiater/cgbench/internal/commands"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// function aliases so the wiring can be tested.
var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the cgbench CLI by injecting build metadata and delegating to
// the cobra root command defined in the commands package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
