// Package term provides the color scheme registry.
//
// A run selects exactly one [Palette] during startup and passes it by value
// to every package that formats output (logging, display, library). When
// colors are disabled the palette's codes are empty strings, making string
// concatenation a no-op.
//
// Output is colored unconditionally unless --no-color is given. The
// environment and the attached terminal are never consulted.
package term

import "github.com/backmassage/mediareport/internal/config"

// ColorsEnabled reports whether mode asks for ANSI codes.
func ColorsEnabled(mode config.ColorMode) bool {
	return mode != config.ColorNever
}
