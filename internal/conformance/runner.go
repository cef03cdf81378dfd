// Package conformance runs the preset against the fixture tree and
// asserts expected-vs-actual diagnostics per file.
//
// Valid fixtures must lint clean of errors. Invalid fixtures declare
// the rule identifiers they must trigger (see package expect); the
// declared set must be contained in the actual set. Extra diagnostics
// on an invalid fixture are allowed: those fixtures assert presence
// of targeted violations, not exhaustiveness.
package conformance

import (
	"strings"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mazarelo/eslint-config/internal/engine"
	"github.com/mazarelo/eslint-config/internal/fixture"
)

// Runner drives one conformance pass. Engine and Store are injected
// so tests can substitute in-memory implementations; both are used
// read-only and must be fully constructed before Run.
type Runner struct {
	Engine     engine.Engine
	Store      fixture.Store
	Categories []string
}

// Run registers one subtest per fixture file, grouped by category and
// validity. Each file check is stateless and independent; the test
// runner decides ordering and parallelism.
func (r *Runner) Run(t *testing.T) {
	for _, category := range r.Categories {
		category := category
		t.Run(Label(category), func(t *testing.T) {
			t.Run("Valid", func(t *testing.T) {
				r.runGroup(t, category, fixture.Valid, r.checkValid)
			})
			t.Run("Invalid", func(t *testing.T) {
				r.runGroup(t, category, fixture.Invalid, r.checkInvalid)
			})
		})
	}
}

// runGroup enumerates the fixture group and registers one subtest per
// file. An empty group registers a single skipped case so missing
// coverage is visible in the test output without failing the run.
func (r *Runner) runGroup(
	t *testing.T, category string, validity fixture.Validity,
	check func(t *testing.T, category, name string),
) {
	t.Helper()

	names, err := r.Store.List(category, validity)
	if err != nil {
		t.Fatalf("listing %s/%s fixtures: %v", category, validity, err)
	}

	if len(names) == 0 {
		t.Run("none", func(t *testing.T) {
			t.Skipf("no %s fixtures for %s", validity, category)
		})
		return
	}

	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			check(t, category, name)
		})
	}
}

// checkValid asserts that a valid fixture lints clean of errors.
func (r *Runner) checkValid(t *testing.T, category, name string) {
	t.Helper()
	r.report(t, CheckValid(r.Engine, r.Store, category, name))
}

// checkInvalid asserts that an invalid fixture declares expectations
// and that every declared identifier shows up in the actual output.
func (r *Runner) checkInvalid(t *testing.T, category, name string) {
	t.Helper()
	r.report(t, CheckInvalid(r.Engine, r.Store, category, name))
}

// report surfaces a FileReport through the test runner. A check that
// could not run (engine or read failure) aborts the case; assertion
// failures are reported individually.
func (r *Runner) report(t *testing.T, report FileReport) {
	t.Helper()
	if report.Err != nil {
		t.Fatalf("checking %s: %v", report.Path, report.Err)
	}
	for _, msg := range report.Failures {
		t.Error(msg)
	}
}

// Label turns a category identifier into a display label:
// "react-hooks" becomes "React Hooks". The caser is built per call;
// cases.Caser is not safe for concurrent use.
func Label(category string) string {
	caser := cases.Title(language.English)
	words := strings.Split(category, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
