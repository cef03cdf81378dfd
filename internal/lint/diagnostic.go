// Package lint defines the diagnostic model shared between the engine
// boundary and the conformance harness.
package lint

// Severity is the engine's numeric severity scale.
type Severity int

// Severity levels. The engine may in principle report other values;
// those are excluded from the error and warning views but kept in All.
const (
	Warning Severity = 1
	Error   Severity = 2
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding reported by the lint engine.
// RuleID is empty when the engine could not attribute the finding to a
// rule (e.g. a parse error).
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	RuleID   string
	Severity Severity
	Message  string
}
