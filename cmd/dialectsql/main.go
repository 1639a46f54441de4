package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/dialectsql"
	"github.com/shibukawa/dialectsql/parser"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Dialect string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads the configuration file and applies the --dialect override
func (c *Context) LoadConfig() (*dialectsql.Config, error) {
	config, err := dialectsql.LoadConfig(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.Dialect != "" {
		config.Dialect = c.Dialect
	}

	return config, nil
}

// ParserDialect resolves the dialect selected by configuration and flags
func (c *Context) ParserDialect(config *dialectsql.Config) (parser.Dialect, error) {
	return config.ParserDialect()
}

// CLI represents the command-line interface
var CLI struct {
	Config       string          `help:"Configuration file path" default:"dialectsql.yaml"`
	Dialect      string          `help:"SQL dialect (overrides configuration)" short:"D"`
	Verbose      bool            `help:"Enable verbose output" short:"v"`
	Quiet        bool            `help:"Suppress output" short:"q"`
	Parse        ParseCmd        `cmd:"" help:"Parse SQL or Markdown files and print the syntax tree"`
	Tokens       TokensCmd       `cmd:"" help:"Print the token stream of SQL files"`
	Format       FormatCmd       `cmd:"" help:"Format SQL files and SQL blocks in Markdown files"`
	Capabilities CapabilitiesCmd `cmd:"" help:"Show the capability flags of a dialect"`
	Options      OptionsCmd      `cmd:"" help:"List the MySQL table options and their accepted values"`
	Verify       VerifyCmd       `cmd:"" help:"Replay statements against a MySQL server and re-parse its DDL"`
	Version      VersionCmd      `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("dialectsql v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dialectsql"),
		kong.Description("SQL dialect parser toolkit"),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Dialect: CLI.Dialect,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
