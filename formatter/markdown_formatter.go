package formatter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var (
	codeBlockStartRe = regexp.MustCompile("^(\\s*)`{3}\\s*([A-Za-z0-9_-]*)\\s*$")
	codeBlockEndRe   = regexp.MustCompile("^(\\s*)`{3}\\s*$")
)

// MarkdownFormatter formats SQL code blocks within Markdown files
type MarkdownFormatter struct {
	sqlFormatter *SQLFormatter
	languages    []string
}

// NewMarkdownFormatter creates a new Markdown formatter. Only fenced blocks
// tagged with one of languages are formatted.
func NewMarkdownFormatter(sqlFormatter *SQLFormatter, languages []string) *MarkdownFormatter {
	return &MarkdownFormatter{
		sqlFormatter: sqlFormatter,
		languages:    languages,
	}
}

// Format formats SQL code blocks within a Markdown document. Blocks that do
// not parse are kept as they are.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var (
		result      strings.Builder
		inSQLBlock  bool
		blockIndent string
		content     strings.Builder
	)

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	for scanner.Scan() {
		line := scanner.Text()

		if !inSQLBlock {
			if match := codeBlockStartRe.FindStringSubmatch(line); match != nil && f.isSQL(match[2]) {
				inSQLBlock = true
				blockIndent = match[1]
				content.Reset()
			}

			result.WriteString(line)
			result.WriteString("\n")

			continue
		}

		if !codeBlockEndRe.MatchString(line) {
			content.WriteString(strings.TrimPrefix(line, blockIndent))
			content.WriteString("\n")

			continue
		}

		inSQLBlock = false
		f.writeBlock(&result, content.String(), blockIndent)
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	// unterminated block
	if inSQLBlock {
		result.WriteString(content.String())
	}

	return strings.TrimRight(result.String(), "\n"), nil
}

func (f *MarkdownFormatter) isSQL(language string) bool {
	return slices.ContainsFunc(f.languages, func(l string) bool { return strings.EqualFold(l, language) })
}

func (f *MarkdownFormatter) writeBlock(result *strings.Builder, sql, indent string) {
	if strings.TrimSpace(sql) == "" {
		return
	}

	formatted, err := f.sqlFormatter.Format(sql)
	if err != nil {
		result.WriteString(indentLines(sql, indent))
		return
	}

	result.WriteString(indentLines(formatted, indent))
}

func indentLines(text, indent string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatFromReader formats SQL code blocks from a reader and writes to a writer
func (f *MarkdownFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return fmt.Errorf("failed to format markdown: %w", err)
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}
