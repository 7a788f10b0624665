package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/mediareport/internal/library"
	"github.com/backmassage/mediareport/internal/term"
)

// Row labels, padded so the bars line up.
const (
	labelInfo      = "NFO Files       "
	labelSubtitles = "Subtitle Files  "
	labelImages    = "Image Files     "
)

// writeHeader writes the library line and an underline of the same display
// width.
func writeHeader(w io.Writer, header string) {
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", lipgloss.Width(header)))
}

// RenderReport writes the block for one scan result, ending in a blank line.
func RenderReport(w io.Writer, r library.ScanResult, pal term.Palette) {
	writeHeader(w, fmt.Sprintf("Library: %s (%d items)", r.Root, r.Total))
	if r.Empty() {
		fmt.Fprint(w, "  No media files found.\n\n")
		return
	}

	row := func(label string, c library.Coverage) {
		fmt.Fprintf(w, "%s%s %d / %d (%s)\n", label, Bar(c.Percent, pal), c.Count, r.Total, FormatPercent(c.Percent))
	}
	row(labelInfo, r.Info)
	row(labelSubtitles, r.Subtitles)
	row(labelImages, r.Images)

	fmt.Fprintf(w, "Status: %s%s%s - %s\n\n", r.Status.Color, r.Status.Label, pal.Reset, r.Status.Message)
}

// RenderFailure writes the block for a library whose scan failed.
func RenderFailure(w io.Writer, root string, err error, pal term.Palette) {
	writeHeader(w, fmt.Sprintf("Library: %s", root))
	fmt.Fprintf(w, "  %sScan failed:%s %v\n\n", pal.Poor, pal.Reset, err)
}
