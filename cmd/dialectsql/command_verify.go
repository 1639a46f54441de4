package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/dialectsql/verify"
)

// VerifyCmd represents the verify command
type VerifyCmd struct {
	Inputs []string `arg:"" optional:"" help:"SQL or Markdown files (default: stdin)"`
	Env    string   `help:"Database environment from the configuration" default:"development"`
	Keep   bool     `help:"Keep the scratch tables created during verification"`
}

// Run executes the verify command
func (cmd *VerifyCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	dialect, err := ctx.ParserDialect(config)
	if err != nil {
		return err
	}

	database, err := config.Database(cmd.Env)
	if err != nil {
		return err
	}

	sources, err := loadSources(cmd.Inputs, os.Stdin, config.Markdown.Languages)
	if err != nil {
		return err
	}

	stmts, _, err := parseSources(sources, dialect, true, os.Stderr)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Connecting to the %s environment", cmd.Env)
	}

	background := context.Background()

	db, err := verify.NewConnector().Open(background, database.Connection)
	if err != nil {
		return err
	}
	defer db.Close()

	verifier, err := verify.New(background, db, dialect)
	if err != nil {
		return err
	}
	defer verifier.Close()

	verifier.DropCreated = !cmd.Keep

	results, err := verifier.Verify(background, stmts)
	if !ctx.Quiet {
		printResults(ctx, results)
	}

	return err
}

func printResults(ctx *Context, results []verify.Result) {
	for _, result := range results {
		switch {
		case !result.Executed:
			color.Yellow("SKIP %s", result.Rendered)
		case len(result.MissingOptions) > 0:
			color.Yellow("OK   %s (server dropped: %s)", result.Rendered, strings.Join(result.MissingOptions, ", "))
		default:
			color.Green("OK   %s", result.Rendered)
		}

		if ctx.Verbose && result.ExecutedSQL != "" {
			color.Blue("sent: %s", result.ExecutedSQL)
		}

		if ctx.Verbose && result.ServerDDL != "" {
			fmt.Println(result.ServerDDL)
		}
	}
}
