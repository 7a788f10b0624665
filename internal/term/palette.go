package term

// Severity ranks how complete a library (or one coverage category) is.
// Both the overall status and the per-category bars map onto it.
type Severity int

const (
	SeverityPoor Severity = iota
	SeverityFair
	SeverityGood
)

// String returns the upper-case label used in status lines.
func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "GOOD"
	case SeverityFair:
		return "FAIR"
	default:
		return "POOR"
	}
}

// RandomScheme is the pseudo-scheme name that picks one registered palette
// at startup.
const RandomScheme = "random"

// DefaultScheme is used when no scheme, or an unknown one, is requested.
const DefaultScheme = "default"

// Palette maps the five semantic roles to ANSI escape sequences.
type Palette struct {
	Name   string
	Good   string
	Fair   string
	Poor   string
	Header string
	Reset  string
}

// Color returns the escape code for sev.
func (p Palette) Color(sev Severity) string {
	switch sev {
	case SeverityGood:
		return p.Good
	case SeverityFair:
		return p.Fair
	default:
		return p.Poor
	}
}

// Plain returns a copy of p with every code emptied.
func (p Palette) Plain() Palette {
	return Palette{Name: p.Name}
}

const reset = "\033[0m"

// Schemes is the fixed, ordered registry of named palettes. Usage text
// lists them in this order.
var Schemes = []Palette{
	{Name: "default", Good: "\033[32m", Fair: "\033[33m", Poor: "\033[31m", Header: "\033[1;37m", Reset: reset},
	{Name: "monochrome", Good: "\033[37m", Fair: "\033[90m", Poor: "\033[30m", Header: "\033[1;30m", Reset: reset},
	{Name: "blueish", Good: "\033[34m", Fair: "\033[36m", Poor: "\033[35m", Header: "\033[1;34m", Reset: reset},
	{Name: "highcontrast", Good: "\033[92m", Fair: "\033[93m", Poor: "\033[91m", Header: "\033[1;37m", Reset: reset},
	{Name: "pastel", Good: "\033[38;5;82m", Fair: "\033[38;5;220m", Poor: "\033[38;5;196m", Header: "\033[38;5;81m", Reset: reset},
	{Name: "vintage", Good: "\033[38;5;154m", Fair: "\033[38;5;226m", Poor: "\033[38;5;124m", Header: "\033[38;5;102m", Reset: reset},
	{Name: "retro", Good: "\033[38;5;47m", Fair: "\033[38;5;214m", Poor: "\033[38;5;196m", Header: "\033[38;5;51m", Reset: reset},
	{Name: "fire", Good: "\033[38;5;202m", Fair: "\033[38;5;214m", Poor: "\033[38;5;124m", Header: "\033[38;5;202m", Reset: reset},
	{Name: "neon", Good: "\033[38;5;81m", Fair: "\033[38;5;13m", Poor: "\033[38;5;9m", Header: "\033[38;5;51m", Reset: reset},
	{Name: "tropical", Good: "\033[38;5;34m", Fair: "\033[38;5;226m", Poor: "\033[38;5;196m", Header: "\033[38;5;51m", Reset: reset},
	{Name: "earthy", Good: "\033[38;5;59m", Fair: "\033[38;5;130m", Poor: "\033[38;5;88m", Header: "\033[38;5;28m", Reset: reset},
	{Name: "sunset", Good: "\033[38;5;214m", Fair: "\033[38;5;220m", Poor: "\033[38;5;124m", Header: "\033[38;5;208m", Reset: reset},
	{Name: "aqua", Good: "\033[38;5;48m", Fair: "\033[38;5;33m", Poor: "\033[38;5;129m", Header: "\033[38;5;39m", Reset: reset},
	{Name: "forest", Good: "\033[38;5;22m", Fair: "\033[38;5;148m", Poor: "\033[38;5;130m", Header: "\033[38;5;28m", Reset: reset},
	{Name: "ocean", Good: "\033[38;5;32m", Fair: "\033[38;5;67m", Poor: "\033[38;5;196m", Header: "\033[38;5;33m", Reset: reset},
	{Name: "rose", Good: "\033[38;5;210m", Fair: "\033[38;5;13m", Poor: "\033[38;5;88m", Header: "\033[38;5;201m", Reset: reset},
	{Name: "emerald", Good: "\033[38;5;46m", Fair: "\033[38;5;40m", Poor: "\033[38;5;9m", Header: "\033[38;5;40m", Reset: reset},
}

// Names returns the registered scheme names in registry order.
func Names() []string {
	names := make([]string, len(Schemes))
	for i, p := range Schemes {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the palette registered under name.
func Lookup(name string) (Palette, bool) {
	for _, p := range Schemes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Default returns the default palette.
func Default() Palette {
	p, _ := Lookup(DefaultScheme)
	return p
}

// Select resolves a scheme name to a palette. [RandomScheme] calls pick
// exactly once with the number of registered schemes and uses the returned
// index; unknown names fall back to [Default].
func Select(name string, pick func(n int) int) Palette {
	if name == RandomScheme {
		i := pick(len(Schemes))
		if i < 0 || i >= len(Schemes) {
			return Default()
		}
		return Schemes[i]
	}
	if p, ok := Lookup(name); ok {
		return p
	}
	return Default()
}
