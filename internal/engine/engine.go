// Package engine is the boundary to the external lint engine. The
// engine does all analysis; this package only invokes it and decodes
// its output.
package engine

import (
	"github.com/mazarelo/eslint-config/internal/lint"
)

// Engine lints a single file and returns its diagnostics in emission
// order. Implementations are constructed once per run and must be
// safe for concurrent read-only use.
type Engine interface {
	LintFile(path string) ([]lint.Diagnostic, error)
}

// Run invokes the engine once for path and wraps the diagnostics in a
// Result. Engine errors are returned unconverted; callers decide how
// a failed invocation is surfaced.
func Run(e Engine, path string) (*lint.Result, error) {
	diagnostics, err := e.LintFile(path)
	if err != nil {
		return nil, err
	}
	return lint.NewResult(diagnostics), nil
}
