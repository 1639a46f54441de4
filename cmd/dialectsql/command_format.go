package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/dialectsql/formatter"
)

// FormatCmd represents the format command
type FormatCmd struct {
	Input string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Write bool   `short:"w" help:"Write result to input file instead of stdout"`
	Check bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
}

type formatters struct {
	sql       *formatter.SQLFormatter
	markdown  *formatter.MarkdownFormatter
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	dialect, err := ctx.ParserDialect(config)
	if err != nil {
		return err
	}

	sqlFormatter := formatter.NewSQLFormatter(dialect)
	f := formatters{
		sql:      sqlFormatter,
		markdown: formatter.NewMarkdownFormatter(sqlFormatter, config.Markdown.Languages),
	}

	if cmd.Input == "" {
		return cmd.formatFromReader(f, os.Stdin, os.Stdout, stdinName)
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return cmd.formatDirectory(ctx, f, cmd.Input)
	}

	return cmd.formatFile(ctx, f, cmd.Input)
}

// format returns the formatted text of one input
func (f formatters) format(input, filename string) (string, error) {
	if formatter.IsMarkdownFile(filename) {
		formatted, err := f.markdown.Format(input)
		if err != nil {
			return "", fmt.Errorf("failed to format Markdown in %s: %w", filename, err)
		}

		return formatted, nil
	}

	formatted, err := f.sql.Format(input)
	if err != nil {
		return "", fmt.Errorf("failed to format SQL in %s: %w", filename, err)
	}

	return formatted, nil
}

// formatFromReader formats SQL from a reader and writes to a writer
func (cmd *FormatCmd) formatFromReader(f formatters, reader io.Reader, writer io.Writer, filename string) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.format(string(input), filename)
	if err != nil {
		return err
	}

	if cmd.Check {
		if strings.TrimSpace(string(input)) != strings.TrimSpace(formatted) {
			fmt.Fprintf(os.Stderr, "%s is not formatted\n", filename)
			return ErrFileNotFormatted
		}

		return nil
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

// formatFile formats a single file
func (cmd *FormatCmd) formatFile(ctx *Context, f formatters, filename string) error {
	input, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	formatted, err := f.format(string(input), filename)
	if err != nil {
		return err
	}

	switch {
	case cmd.Check:
		if strings.TrimSpace(string(input)) != strings.TrimSpace(formatted) {
			fmt.Fprintf(os.Stderr, "%s is not formatted\n", filename)
			return ErrFileNotFormatted
		}

		return nil
	case cmd.Write:
		if formatted == string(input) {
			return nil
		}

		if err := writeFileAtomic(filename, formatted); err != nil {
			return err
		}

		if !ctx.Quiet {
			color.Green("Formatted %s", filename)
		}

		return nil
	default:
		_, err = io.WriteString(os.Stdout, formatted)
		return err
	}
}

// formatDirectory formats every SQL and Markdown file under dir
func (cmd *FormatCmd) formatDirectory(ctx *Context, f formatters, dir string) error {
	var hasErrors bool

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !isFormattable(path) {
			return nil
		}

		if err := cmd.formatFile(ctx, f, path); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))

			hasErrors = true
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	if hasErrors {
		return ErrFormattingErrors
	}

	return nil
}

func isFormattable(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql") || formatter.IsMarkdownFile(path)
}

// writeFileAtomic replaces filename through a temporary file in the same directory
func writeFileAtomic(filename, content string) error {
	tempFile, err := os.CreateTemp(filepath.Dir(filename), ".dialectsql-format-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), filename); err != nil {
		os.Remove(tempFile.Name())
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}

	return nil
}
