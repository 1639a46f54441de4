package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/mysqldialect"
)

func newMarkdownFormatter() *MarkdownFormatter {
	return NewMarkdownFormatter(NewSQLFormatter(mysqldialect.New()), []string{"sql", "mysql"})
}

func TestMarkdownFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "basic SQL code block",
			input: "# Locks\n\n" +
				"```sql\nlock tables t1 read\n```\n\nDone.",
			expected: "# Locks\n\n" +
				"```sql\nLOCK TABLES `t1` READ;\n```\n\nDone.",
		},
		{
			name:     "mysql language tag",
			input:    "```MySQL\nunlock tables\n```",
			expected: "```MySQL\nUNLOCK TABLES;\n```",
		},
		{
			name:     "indented block",
			input:    "- item\n\n  ```sql\n  select a from t\n  ```",
			expected: "- item\n\n  ```sql\n  SELECT `a` FROM `t`;\n  ```",
		},
		{
			name:     "other languages untouched",
			input:    "```go\nlock tables t1 read\n```",
			expected: "```go\nlock tables t1 read\n```",
		},
		{
			name:     "invalid SQL kept",
			input:    "```sql\nlock tables t1\n```",
			expected: "```sql\nlock tables t1\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newMarkdownFormatter().Format(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMarkdownFormatter_FormatFromReader(t *testing.T) {
	var out bytes.Buffer
	err := newMarkdownFormatter().FormatFromReader(strings.NewReader("```sql\nselect 1\n```\n"), &out)
	assert.NoError(t, err)
	assert.Equal(t, "```sql\nSELECT 1;\n```", out.String())
}

func TestIsMarkdownFile(t *testing.T) {
	assert.True(t, IsMarkdownFile("docs/README.md"))
	assert.True(t, IsMarkdownFile("notes.Markdown"))
	assert.False(t, IsMarkdownFile("schema.sql"))
}
