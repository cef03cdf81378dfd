// Package expect extracts expected-diagnostic annotations from the
// leading comment block of a fixture file.
//
// The syntax is one line per kind:
//
//	// @errors: rule-a, rule-b
//	// @warnings: rule-c
//
// Only the contiguous block of comment or blank lines at the top of
// the file is scanned; annotations after the first code line are
// never seen.
package expect

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	errorsRe   = regexp.MustCompile(`^//\s*@errors:\s*(.*)$`)
	warningsRe = regexp.MustCompile(`^//\s*@warnings:\s*(.*)$`)
)

// Expectation is the declared set of rule identifiers an invalid
// fixture must trigger, split by severity.
type Expectation struct {
	Errors   []string
	Warnings []string
}

// Empty reports whether no identifiers were declared for either kind.
func (e Expectation) Empty() bool {
	return len(e.Errors) == 0 && len(e.Warnings) == 0
}

// Parse scans the leading comment block of content for annotation
// lines. When a kind is declared more than once, the last declaration
// wins; earlier ones are discarded, not merged.
func Parse(content []byte) Expectation {
	var exp Expectation

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "//") {
			break
		}
		if m := errorsRe.FindStringSubmatch(line); m != nil {
			exp.Errors = splitIDs(m[1])
			continue
		}
		if m := warningsRe.FindStringSubmatch(line); m != nil {
			exp.Warnings = splitIDs(m[1])
		}
	}

	return exp
}

// splitIDs parses a comma-separated identifier list, trimming
// whitespace per entry and dropping empty entries.
func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		id := strings.TrimSpace(part)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
