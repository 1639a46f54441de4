package main

import (
	"fmt"
	"os"

	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	Inputs     []string `arg:"" optional:"" help:"SQL or Markdown files (default: stdin)"`
	Whitespace bool     `help:"Include whitespace tokens"`
	Comments   bool     `help:"Include comment tokens"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
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

	options := tok.TokenizerOptions{
		SkipWhitespace: !cmd.Whitespace,
		SkipComments:   !cmd.Comments,
	}

	for _, src := range sources {
		for token, err := range tok.NewSqlTokenizer(src.SQL, dialect, options).Tokens() {
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}

			fmt.Println(formatToken(src, token))
		}
	}

	return nil
}

func formatToken(src source, token tok.Token) string {
	line := src.StartLine + token.Position.Line - 1
	return fmt.Sprintf("%s:%d:%d\t%s\t%q", src.Name, line, token.Position.Column, token.Type, token.Value)
}
