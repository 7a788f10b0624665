// Package config holds runtime configuration: defaults, CLI flag binding,
// and validation.
package config

import (
	"errors"
	"fmt"
)

// ErrNoPaths is returned by [Config.Validate] when no library path remains
// after flags are stripped from the argument list.
var ErrNoPaths = errors.New("no library paths provided")

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAlways ColorMode = "always" // Emit the palette's ANSI codes (default).
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultMaxWorkers caps the number of libraries scanned at once.
const DefaultMaxWorkers = 8

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flag parsing before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Library roots as typed by the user (unvalidated, possibly quoted).
	Paths []string

	// Display.
	ColorScheme string    // Default: "default". Lowercased on parse.
	ColorMode   ColorMode // Default: "always".
	Verbose     bool

	// Scanning.
	MaxWorkers int // Fixed: 8.
	CacheSize  int // Directory summaries kept per scan. Default: 1024.
}

// DefaultConfig returns the base Config before flags are applied.
func DefaultConfig() Config {
	return Config{
		ColorScheme: "default",
		ColorMode:   ColorAlways,
		Verbose:     false,
		MaxWorkers:  DefaultMaxWorkers,
		CacheSize:   1024,
	}
}

// Validate checks enum fields and limits, then requires at least one path.
// A missing path is reported as [ErrNoPaths] so callers can tell it apart
// from malformed settings.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'always' or 'never')", c.ColorMode)
	}
	if c.MaxWorkers < 1 {
		return errors.New("max workers must be at least 1")
	}
	if c.CacheSize < 1 {
		return errors.New("cache size must be at least 1")
	}
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}
	return nil
}

// PoolSize returns the number of concurrent scans for n valid libraries.
func (c *Config) PoolSize(n int) int {
	return max(1, min(c.MaxWorkers, n))
}
