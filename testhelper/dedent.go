// Package testhelper holds small helpers shared by tests.
package testhelper

import (
	"strings"
	"testing"
)

// Dedent removes the first line of src and strips the indentation of the
// second line from every following line. Tabs left after that are widened
// to four spaces and blank lines are emptied. It keeps multi-line SQL and Markdown fixtures readable
// inside raw string literals.
func Dedent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	lines = lines[1:]
	indent := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		line = strings.TrimPrefix(line, indent)
		trimmed := strings.TrimLeft(line, "\t")
		lines[i] = strings.Repeat("    ", len(line)-len(trimmed)) + trimmed
	}

	return strings.Join(lines, "\n")
}
