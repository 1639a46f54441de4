// Package markdownparser extracts SQL code blocks from Markdown documents.
package markdownparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidFrontMatter is returned when the YAML front matter is malformed.
var ErrInvalidFrontMatter = errors.New("invalid front matter")

// DefaultLanguages are the fence info strings treated as SQL.
var DefaultLanguages = []string{"sql"}

// Document is a parsed Markdown file
type Document struct {
	Metadata map[string]any
	Title    string
	Blocks   []SQLBlock
}

// SQLBlock is one fenced SQL code block
type SQLBlock struct {
	Language  string
	Heading   string // text of the nearest heading above the block
	SQL       string
	StartLine int // 1-based line of the first SQL line in the original document
}

// Parse reads a Markdown document and returns its SQL blocks in document
// order. A block is SQL when its info string matches one of languages,
// ignoring case; nil selects DefaultLanguages.
func Parse(reader io.Reader, languages []string) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	if languages == nil {
		languages = DefaultLanguages
	}

	frontMatter, body, frontMatterLines, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	source := []byte(body)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	document := &Document{Metadata: frontMatter}

	var heading string

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading = extractTextFromHeadingNode(node, source)
			if node.Level == 1 && document.Title == "" {
				document.Title = heading
			}

			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			language := getCodeBlockInfo(node, source)
			if !isSQLLanguage(language, languages) || node.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}

			start := node.Lines().At(0).Start
			document.Blocks = append(document.Blocks, SQLBlock{
				Language:  language,
				Heading:   heading,
				SQL:       extractCodeBlockContent(node, source),
				StartLine: frontMatterLines + bytes.Count(source[:start], []byte("\n")) + 1,
			})

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown: %w", err)
	}

	return document, nil
}

func isSQLLanguage(language string, languages []string) bool {
	return slices.ContainsFunc(languages, func(l string) bool { return strings.EqualFold(l, language) })
}

// extractTextFromHeadingNode extracts text content from a heading AST node
func extractTextFromHeadingNode(heading ast.Node, content []byte) string {
	var result strings.Builder

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			result.Write(content[segment.Start:segment.Stop])
		case *ast.String:
			result.Write(node.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

// getCodeBlockInfo returns the language word of a fenced code block
func getCodeBlockInfo(codeBlock *ast.FencedCodeBlock, content []byte) string {
	if codeBlock.Info == nil {
		return ""
	}

	segment := codeBlock.Info.Segment
	fields := strings.Fields(string(content[segment.Start:segment.Stop]))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// extractCodeBlockContent extracts the actual content from a code block AST node
func extractCodeBlockContent(codeBlock ast.Node, content []byte) string {
	var result strings.Builder

	lines := codeBlock.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		result.Write(line.Value(content))
	}

	return strings.TrimRight(result.String(), "\n")
}
