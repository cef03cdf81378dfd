package conformance

import (
	"fmt"
	"strings"

	"github.com/mazarelo/eslint-config/internal/expect"
	"github.com/mazarelo/eslint-config/internal/lint"
)

// validFailure builds the failure message for a valid fixture that
// produced error-severity diagnostics, or "" if there were none.
// Every offending diagnostic is listed on its own line so the output
// alone is enough to locate the discrepancy.
func validFailure(path string, errs []lint.Diagnostic) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: expected no errors, got %d:", path, len(errs))
	for _, d := range errs {
		fmt.Fprintf(&b, "\n  - %s: %s (line %d)", d.RuleID, d.Message, d.Line)
	}
	return b.String()
}

// invalidFailures checks the declared expectation against the actual
// diagnostics of an invalid fixture. The check is containment, not
// equality: every expected identifier must appear among the actual
// identifiers of the same severity.
func invalidFailures(path string, exp expect.Expectation, res *lint.Result) []string {
	var failures []string

	actualErrors := lint.RuleIDs(res.Errors())
	for _, id := range exp.Errors {
		if !contains(actualErrors, id) {
			failures = append(failures, fmt.Sprintf(
				"expected error %q in %s; actual errors: %v",
				id, path, actualErrors))
		}
	}

	actualWarnings := lint.RuleIDs(res.Warnings())
	for _, id := range exp.Warnings {
		if !contains(actualWarnings, id) {
			failures = append(failures, fmt.Sprintf(
				"expected warning %q in %s; actual warnings: %v",
				id, path, actualWarnings))
		}
	}

	return failures
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
