package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/formatter"
	"github.com/shibukawa/dialectsql/parser"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Inputs []string `arg:"" optional:"" help:"SQL or Markdown files (default: stdin)"`
	Output string   `short:"o" help:"Output format: yaml, json, xml or sql (default: from config)"`
	Strict bool     `help:"Stop at the first input that fails to parse"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	dialect, err := ctx.ParserDialect(config)
	if err != nil {
		return err
	}

	sources, err := loadSources(cmd.Inputs, os.Stdin, config.Markdown.Languages)
	if err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = config.Output
	}

	if ctx.Verbose {
		color.Blue("Parsing %d source(s) with the %s dialect", len(sources), config.Dialect)
	}

	stmts, failed, err := parseSources(sources, dialect, cmd.Strict || config.Strict, os.Stderr)
	if err != nil {
		return err
	}

	if err := writeStatements(os.Stdout, output, dialect, stmts); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrParseFailed, failed, len(sources))
	}

	return nil
}

// parseSources parses each source in turn. In strict mode the first error is
// returned; otherwise errors are reported to errOut and counted.
func parseSources(sources []source, dialect parser.Dialect, strict bool, errOut io.Writer) ([]ast.Statement, int, error) {
	var (
		all    []ast.Statement
		failed int
	)

	for _, src := range sources {
		stmts, err := parser.ParseStatements(dialect, src.SQL)
		if err != nil {
			if strict {
				return nil, 0, fmt.Errorf("%s", src.describeError(err))
			}

			fmt.Fprintln(errOut, color.RedString("%s", src.describeError(err)))

			failed++

			continue
		}

		all = append(all, stmts...)
	}

	return all, failed, nil
}

func writeStatements(w io.Writer, output string, dialect parser.Dialect, stmts []ast.Statement) error {
	if output == "sql" {
		_, err := io.WriteString(w, formatter.NewSQLFormatter(dialect).FormatStatements(stmts))
		return err
	}

	return formatter.Encode(w, output, stmts)
}
