package lint

// Result holds the diagnostics the engine emitted for one file, in
// emission order. The views below partition by severity; they never
// re-order.
type Result struct {
	diagnostics []Diagnostic
}

// NewResult wraps the engine's diagnostic list for one file.
func NewResult(diagnostics []Diagnostic) *Result {
	return &Result{diagnostics: diagnostics}
}

// All returns every diagnostic, including any with a severity outside
// the warning/error set.
func (r *Result) All() []Diagnostic {
	return r.diagnostics
}

// Errors returns the diagnostics with error severity.
func (r *Result) Errors() []Diagnostic {
	return r.filter(Error)
}

// Warnings returns the diagnostics with warning severity.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(Warning)
}

func (r *Result) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// RuleIDs returns the rule identifiers of the given diagnostics,
// keeping order and duplicates. Unattributed diagnostics contribute
// an empty string.
func RuleIDs(diagnostics []Diagnostic) []string {
	ids := make([]string, len(diagnostics))
	for i, d := range diagnostics {
		ids[i] = d.RuleID
	}
	return ids
}
