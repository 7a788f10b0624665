// Package logging provides a leveled logger whose level tags are colored
// from the active palette.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/backmassage/mediareport/internal/config"
	"github.com/backmassage/mediareport/internal/term"
)

// Logger provides leveled, optionally colored logging to a single writer.
// Report blocks go through [Logger.Print] so they never interleave with
// log lines written from scan goroutines.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	palette term.Palette
	verbose bool
}

// NewLogger returns a Logger writing to out. Debug lines are emitted only
// when cfg.Verbose is set.
func NewLogger(cfg *config.Config, out io.Writer, pal term.Palette) *Logger {
	return &Logger{out: out, palette: pal, verbose: cfg.Verbose}
}

// line writes one tagged log line under the lock.
func (l *Logger) line(level, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if color != "" {
		_, _ = io.WriteString(l.out, color+"["+level+"]"+l.palette.Reset+" "+text+"\n")
	} else {
		_, _ = io.WriteString(l.out, "["+level+"] "+text+"\n")
	}
}

// Print writes a pre-formatted block verbatim. A trailing newline is added
// when missing.
func (l *Logger) Print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, text)
}

// Warn logs at WARN level (fair color).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", l.palette.Fair, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (poor color).
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", l.palette.Poor, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", l.palette.Header, fmt.Sprintf(format, args...))
}
