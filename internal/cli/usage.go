package cli

import (
	"fmt"
	"io"

	"github.com/backmassage/mediareport/internal/term"
)

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mediareport [--color-scheme=<scheme>] <library_path1> [<library_path2> ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Color schemes available:")
	for _, name := range term.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "Use --color-scheme=%s to pick a random scheme.\n", term.RandomScheme)
	fmt.Fprintln(w)

	const col1 = 26 // width of "  --color-scheme <name>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"Options", ""},
		{"  --color-scheme <name>", "Color scheme (default: " + term.DefaultScheme + ")"},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Verbose output"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}
	for _, l := range lines {
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
