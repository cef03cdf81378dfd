package conformance

import (
	"fmt"

	"github.com/mazarelo/eslint-config/internal/engine"
	"github.com/mazarelo/eslint-config/internal/expect"
	"github.com/mazarelo/eslint-config/internal/fixture"
	"github.com/mazarelo/eslint-config/internal/lint"
)

// FileReport is the outcome of checking one fixture file.
//
// Err is set when the check could not run at all (engine invocation
// or fixture read failure); Failures hold assertion failures from a
// completed check. The two are distinct: an Err aborts the file's
// check, a Failure is a verdict on it.
type FileReport struct {
	Path        string
	Failures    []string
	Diagnostics []lint.Diagnostic
	Err         error
}

// Passed reports whether the check ran and found nothing wrong.
func (r FileReport) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// CheckValid lints one valid fixture and fails it on any
// error-severity diagnostic.
func CheckValid(e engine.Engine, s fixture.Store, category, name string) FileReport {
	report := FileReport{Path: s.Path(category, fixture.Valid, name)}

	res, err := engine.Run(e, report.Path)
	if err != nil {
		report.Err = err
		return report
	}
	report.Diagnostics = res.All()

	if msg := validFailure(report.Path, res.Errors()); msg != "" {
		report.Failures = append(report.Failures, msg)
	}
	return report
}

// CheckInvalid parses the fixture's expectation, lints it, and fails
// it when a declared identifier is missing from the actual output.
// An invalid fixture that declares nothing is itself a failure: the
// fixture is then not testing anything.
func CheckInvalid(e engine.Engine, s fixture.Store, category, name string) FileReport {
	report := FileReport{Path: s.Path(category, fixture.Invalid, name)}

	content, err := s.Read(category, fixture.Invalid, name)
	if err != nil {
		report.Err = fmt.Errorf("reading %s: %w", report.Path, err)
		return report
	}

	exp := expect.Parse(content)
	if exp.Empty() {
		report.Failures = append(report.Failures, fmt.Sprintf(
			"%s: invalid fixture declares no expected errors or warnings",
			report.Path))
		return report
	}

	res, err := engine.Run(e, report.Path)
	if err != nil {
		report.Err = err
		return report
	}
	report.Diagnostics = res.All()

	report.Failures = append(report.Failures, invalidFailures(report.Path, exp, res)...)
	return report
}
