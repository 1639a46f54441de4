package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shibukawa/dialectsql/formatter"
	"github.com/shibukawa/dialectsql/markdownparser"
	"github.com/shibukawa/dialectsql/parser"
)

// source is one piece of SQL text: a whole SQL file or one Markdown block.
type source struct {
	Name      string
	SQL       string
	StartLine int
}

const stdinName = "<stdin>"

// loadSources reads every path, or stdin when paths is empty. Markdown files
// contribute one source per SQL block.
func loadSources(paths []string, stdin io.Reader, languages []string) ([]source, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		return []source{{Name: stdinName, SQL: string(data), StartLine: 1}}, nil
	}

	var sources []source

	for _, path := range paths {
		if !formatter.IsMarkdownFile(path) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}

			sources = append(sources, source{Name: path, SQL: string(data), StartLine: 1})

			continue
		}

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		doc, err := markdownparser.Parse(file, languages)
		file.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to parse Markdown %s: %w", path, err)
		}

		for _, block := range doc.Blocks {
			sources = append(sources, source{Name: path, SQL: block.SQL, StartLine: block.StartLine})
		}
	}

	return sources, nil
}

// describeError prefixes err with the file and document line it refers to.
func (s source) describeError(err error) string {
	var parserError *parser.ParserError
	if errors.As(err, &parserError) {
		line := s.StartLine + parserError.Position.Line - 1
		return fmt.Sprintf("%s:%d:%d: %s", s.Name, line, parserError.Position.Column, parserError.Message)
	}

	return fmt.Sprintf("%s: %s", s.Name, strings.TrimSpace(err.Error()))
}
