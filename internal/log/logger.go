// Package log provides the verbose progress logger for conformance
// runs.
package log

import (
	"fmt"
	"io"
)

// Logger writes per-fixture progress lines when Enabled is true.
// Output goes to the configured writer (typically stderr).
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

// Lint records one engine invocation.
func (l *Logger) Lint(path string) {
	l.Printf("linting %s", path)
}

// Ignore records a fixture excluded by an ignore pattern.
func (l *Logger) Ignore(path string) {
	l.Printf("ignoring %s", path)
}
