package display

import (
	"strings"

	"github.com/backmassage/mediareport/internal/term"
)

// bannerLines is the ASCII art header. Trailing spaces are significant.
var bannerLines = []string{
	"",
	"     __  __          _ _         ____                       _   ",
	"    |  \\/  | ___  __| (_) __ _  |  _ \\ ___ _ __   ___  _ __| |_ ",
	"    | |\\/| |/ _ \\/ _` | |/ _` | | |_) / _ \\ '_ \\ / _ \\| '__| __|",
	"    | |  | |  __/ (_| | | (_| | |  _ <  __/ |_) | (_) | |  | |_ ",
	"    |_|  |_|\\___|\\__,_|_|\\__,_| |_| \\_\\___| .__/ \\___/|_|   \\__|",
	"                                          |_|                    ",
	"    ",
}

// Banner returns the ASCII art header in the palette's header color,
// followed by a blank line.
func Banner(pal term.Palette) string {
	return pal.Header + strings.Join(bannerLines, "\n") + pal.Reset + "\n\n"
}
