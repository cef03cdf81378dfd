package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"github.com/mazarelo/eslint-config/internal/lint"
)

// ESLint invokes the eslint binary with JSON output and decodes the
// result into diagnostics. The zero value is not usable; construct
// with NewESLint.
type ESLint struct {
	bin        string
	configPath string
	dir        string
}

// NewESLint returns an engine that runs bin from dir. configPath, if
// non-empty, is passed via --config so the engine resolves the preset
// under test instead of whatever config the fixture tree would pick up.
func NewESLint(bin, configPath, dir string) *ESLint {
	return &ESLint{bin: bin, configPath: configPath, dir: dir}
}

// fileResult mirrors the engine's per-file JSON output.
type fileResult struct {
	FilePath string    `json:"filePath"`
	Messages []message `json:"messages"`
}

// message mirrors one diagnostic in the engine's JSON output. RuleID
// is a pointer because the engine reports null for findings it cannot
// attribute to a rule.
type message struct {
	RuleID   *string `json:"ruleId"`
	Severity int     `json:"severity"`
	Message  string  `json:"message"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
}

// LintFile implements Engine. The engine exits 1 when it found lint
// errors, which is not an invocation failure; only exit codes above 1
// (fatal: unreadable file, malformed configuration) are errors.
func (e *ESLint) LintFile(path string) ([]lint.Diagnostic, error) {
	cmd := exec.Command(e.bin, e.args(path)...)
	cmd.Dir = e.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() > 1 {
			return nil, fmt.Errorf("running %s on %s: %w: %s",
				e.bin, path, err, bytes.TrimSpace(stderr.Bytes()))
		}
	}

	return decodeResults(stdout.Bytes())
}

func (e *ESLint) args(path string) []string {
	args := []string{"--format", "json", "--no-color"}
	if e.configPath != "" {
		args = append(args, "--config", e.configPath)
	}
	return append(args, path)
}

// decodeResults parses the engine's JSON output and flattens the
// per-file message lists into diagnostics, preserving order.
func decodeResults(data []byte) ([]lint.Diagnostic, error) {
	var results []fileResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decoding engine output: %w", err)
	}

	var diagnostics []lint.Diagnostic
	for _, r := range results {
		for _, m := range r.Messages {
			d := lint.Diagnostic{
				File:     r.FilePath,
				Line:     m.Line,
				Column:   m.Column,
				Severity: lint.Severity(m.Severity),
				Message:  m.Message,
			}
			if m.RuleID != nil {
				d.RuleID = *m.RuleID
			}
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics, nil
}
