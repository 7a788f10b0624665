package config

// This file binds CLI flags onto a pflag.FlagSet. Negated flags are captured
// separately and applied after parsing so Config defaults hold unless set.

import (
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds boolean flags that are applied to a Config after Parse, or
// that short-circuit the run (help, version).
type Flags struct {
	ForceColor  bool
	NoColor     bool
	ShowVersion bool
}

// BindFlags registers every mediareport flag on fs, writing directly into
// cfg where possible. The returned Flags must be passed to [ApplyFlags]
// once parsing has finished.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	var f Flags
	fs.Var(&schemeValue{&cfg.ColorScheme}, "color-scheme", "Color scheme name, or 'random'")
	fs.BoolVar(&f.ForceColor, "color", false, "Colored output (default)")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&f.ShowVersion, "version", "V", false, "Print version and exit")
	return &f
}

// ApplyFlags copies negated and override flag values into cfg.
// --no-color wins over --color.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.NoColor {
		cfg.ColorMode = ColorNever
	} else if f.ForceColor {
		cfg.ColorMode = ColorAlways
	}
}

// schemeValue adapts the scheme name to pflag.Value, lowercasing input.
// Unknown names are accepted here; the registry falls back to the default.
type schemeValue struct{ p *string }

func (s *schemeValue) String() string { return *s.p }
func (s *schemeValue) Type() string   { return "name" }
func (s *schemeValue) Set(v string) error {
	*s.p = strings.ToLower(strings.TrimSpace(v))
	return nil
}
