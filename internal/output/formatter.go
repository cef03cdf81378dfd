// Package output renders diagnostics for the standalone CLI run.
package output

import (
	"io"

	"github.com/mazarelo/eslint-config/internal/lint"
)

// Formatter writes a diagnostic listing to w.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}
