package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/mazarelo/eslint-config/internal/lint"
)

func sampleDiagnostics() []lint.Diagnostic {
	return []lint.Diagnostic{
		{
			File:     "fixtures/react/invalid/leaked-render.tsx",
			Line:     6,
			Column:   8,
			RuleID:   "react/jsx-no-leaked-render",
			Severity: lint.Error,
			Message:  "Potential leaked value that might cause unintentionally rendered values",
		},
		{
			File:     "fixtures/base/invalid/console-log.ts",
			Line:     4,
			Column:   3,
			RuleID:   "no-console",
			Severity: lint.Warning,
			Message:  "Unexpected console statement.",
		},
		{
			File:     "fixtures/typescript/invalid/broken.tsx",
			Line:     1,
			Column:   1,
			RuleID:   "",
			Severity: lint.Error,
			Message:  "Parsing error: Unexpected token",
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, sampleDiagnostics()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	newGoldie(t).Assert(t, "text_plain", buf.Bytes())
}

func TestTextFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{Color: true}
	if err := f.Format(&buf, sampleDiagnostics()[:1]); err != nil {
		t.Fatalf("Format: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\033[36m") || !strings.Contains(out, "\033[33m") {
		t.Errorf("colored output missing ANSI sequences: %q", out)
	}
	if !strings.Contains(out, "react/jsx-no-leaked-render") {
		t.Errorf("colored output missing rule ID: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Format(&buf, sampleDiagnostics()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	newGoldie(t).Assert(t, "json", buf.Bytes())
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Format(&buf, nil); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty diagnostics = %q, want []", got)
	}
}
