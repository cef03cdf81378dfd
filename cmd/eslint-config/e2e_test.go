package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	tmp, err := os.MkdirTemp("", "eslint-config-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "eslint-config")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the binary with the given args and returns stdout,
// stderr, and the exit code.
func runBinary(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}

func TestE2E_NoArgs_PrintsUsage(t *testing.T) {
	_, stderr, exitCode := runBinary(t)
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stderr, "Usage: eslint-config") {
		t.Errorf("stderr missing usage: %q", stderr)
	}
}

func TestE2E_UnknownCommand(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "frobnicate")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestE2E_Emit_ValidJSON(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "emit")
	if exitCode != 0 {
		t.Fatalf("emit exited %d", exitCode)
	}

	var layers []map[string]any
	if err := json.Unmarshal([]byte(stdout), &layers); err != nil {
		t.Fatalf("emit output is not valid JSON: %v", err)
	}
	if len(layers) == 0 {
		t.Fatal("emit produced no layers")
	}
	if layers[0]["name"] != "preset/ignores" {
		t.Errorf("first layer = %v", layers[0]["name"])
	}
}

func TestE2E_Emit_TSConfigOverride(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "emit", "--tsconfig", "./tsconfig.app.json")
	if exitCode != 0 {
		t.Fatalf("emit exited %d", exitCode)
	}
	if !strings.Contains(stdout, "./tsconfig.app.json") {
		t.Error("emit output does not reflect --tsconfig")
	}
}

func TestE2E_Docs_List(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "docs")
	if exitCode != 0 {
		t.Fatalf("docs exited %d", exitCode)
	}
	for _, category := range []string{"base", "typescript", "react", "react-hooks", "jsx-a11y"} {
		if !strings.Contains(stdout, category) {
			t.Errorf("docs listing missing %s", category)
		}
	}
}

func TestE2E_Docs_Show(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "docs", "react-hooks")
	if exitCode != 0 {
		t.Fatalf("docs react-hooks exited %d", exitCode)
	}
	if !strings.Contains(stdout, "rules-of-hooks") {
		t.Errorf("docs content = %q", stdout)
	}
}

func TestE2E_Check_EmptyFixtureTree(t *testing.T) {
	// With an empty fixtures root every group is skipped and the run
	// succeeds without ever invoking the engine.
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".conformance.yml")
	cfg := "fixtures-root: " + filepath.Join(dir, "fixtures") + "\nengine:\n  bin: /nonexistent/eslint\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, exitCode := runBinary(t, "check", "--config", cfgPath)
	if exitCode != 0 {
		t.Fatalf("check exited %d: %s", exitCode, stdout)
	}
	if !strings.Contains(stdout, "skip") {
		t.Errorf("expected skip lines, got %q", stdout)
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "version")
	if exitCode != 0 {
		t.Fatalf("version exited %d", exitCode)
	}
	if !strings.HasPrefix(stdout, "eslint-config ") {
		t.Errorf("version output = %q", stdout)
	}
}
