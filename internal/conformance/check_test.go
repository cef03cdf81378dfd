package conformance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazarelo/eslint-config/internal/fixture"
	"github.com/mazarelo/eslint-config/internal/lint"
)

// failingEngine always reports an invocation failure.
type failingEngine struct{ err error }

func (f *failingEngine) LintFile(path string) ([]lint.Diagnostic, error) {
	return nil, f.err
}

func TestCheckValid_Pass(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react/valid/ok.tsx": []byte("const x = 1;\n"),
	}}
	report := CheckValid(&fakeEngine{}, store, "react", "ok.tsx")

	assert.True(t, report.Passed())
	assert.Equal(t, "react/valid/ok.tsx", report.Path)
}

func TestCheckValid_FailsOnErrors(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react/valid/bad.tsx": []byte("const x = 1;\n"),
	}}
	eng := &fakeEngine{diags: map[string][]lint.Diagnostic{
		"react/valid/bad.tsx": {
			{RuleID: "react/jsx-key", Severity: lint.Error, Line: 3, Message: "Missing \"key\" prop"},
		},
	}}

	report := CheckValid(eng, store, "react", "bad.tsx")

	assert.False(t, report.Passed())
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "react/jsx-key")
	assert.Contains(t, report.Failures[0], "line 3")
}

func TestCheckValid_EngineErrorIsNotAFailure(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react/valid/ok.tsx": []byte(""),
	}}
	sentinel := errors.New("file not found")

	report := CheckValid(&failingEngine{err: sentinel}, store, "react", "ok.tsx")

	assert.True(t, errors.Is(report.Err, sentinel))
	assert.Empty(t, report.Failures)
	assert.False(t, report.Passed())
}

func TestCheckInvalid_Pass(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react/invalid/leaked-render.tsx": []byte(
			"// @errors: react/jsx-no-leaked-render\n"),
	}}
	eng := &fakeEngine{diags: map[string][]lint.Diagnostic{
		"react/invalid/leaked-render.tsx": {
			{RuleID: "react/jsx-no-leaked-render", Severity: lint.Error, Line: 6},
		},
	}}

	report := CheckInvalid(eng, store, "react", "leaked-render.tsx")
	assert.True(t, report.Passed())
}

func TestCheckInvalid_NoExpectationIsAFailure(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react/invalid/unannotated.tsx": []byte("const x = 1;\n"),
	}}
	eng := &fakeEngine{}

	report := CheckInvalid(eng, store, "react", "unannotated.tsx")

	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "react/invalid/unannotated.tsx")
	assert.Contains(t, report.Failures[0], "declares no expected errors or warnings")
	// The self-check fires before the engine is ever invoked.
	assert.Empty(t, eng.linted)
}

func TestCheckInvalid_MissingExpectedWarning(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{
		"react-hooks/invalid/missing-deps.tsx": []byte(
			"// @warnings: react-hooks/exhaustive-deps\n"),
	}}
	eng := &fakeEngine{diags: map[string][]lint.Diagnostic{
		"react-hooks/invalid/missing-deps.tsx": {
			{RuleID: "react-hooks/rules-of-hooks", Severity: lint.Error, Line: 5},
		},
	}}

	report := CheckInvalid(eng, store, "react-hooks", "missing-deps.tsx")

	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], `expected warning "react-hooks/exhaustive-deps"`)
}

func TestCheckInvalid_ReadFailure(t *testing.T) {
	store := &fixture.MemStore{Files: map[string][]byte{}}

	report := CheckInvalid(&fakeEngine{}, store, "react", "ghost.tsx")

	assert.Error(t, report.Err)
	assert.False(t, report.Passed())
}
