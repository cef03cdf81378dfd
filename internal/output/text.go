package output

import (
	"fmt"
	"io"

	"github.com/mazarelo/eslint-config/internal/lint"
)

// TextFormatter renders diagnostics as human-readable lines. When
// Color is true, the location is printed in cyan and the rule ID in
// yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each diagnostic as a single line in the pattern:
// file:line:col severity rule message
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	for _, d := range diagnostics {
		rule := d.RuleID
		if rule == "" {
			rule = "(unattributed)"
		}
		var err error
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%s:%d:%d\033[0m %s \033[33m%s\033[0m %s\n",
				d.File, d.Line, d.Column, d.Severity, rule, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d:%d %s %s %s\n",
				d.File, d.Line, d.Column, d.Severity, rule, d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
