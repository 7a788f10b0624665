// Command mediareport scans media library directories and reports, per
// library, how many items have an NFO file, subtitles and cover artwork.
package main

import (
	"os"

	"github.com/backmassage/mediareport/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.Build{Version: version, Commit: commit}, os.Args[1:], os.Stdout))
}
