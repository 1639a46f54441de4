package parser

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

var semicolon pc.Parser[tok.Token] = func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
	if len(tokens) > 0 && tokens[0].Val.Type == tok.SEMICOLON {
		return 1, tokens[:1], nil
	}
	return 0, nil, pc.ErrNotMatch
}

// ParseStatements parses a script of semicolon separated statements.
// Empty statements are skipped.
func ParseStatements(dialect Dialect, sql string) ([]ast.Statement, error) {
	tokens, err := tok.NewSqlTokenizer(sql, dialect, tok.TokenizerOptions{SkipWhitespace: true, SkipComments: true}).AllTokens()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenize, err)
	}

	var statements []ast.Statement
	for _, chunk := range SplitStatements(tokens) {
		if len(chunk) == 0 {
			continue
		}
		stmt, err := ParseSingle(NewWithTokens(dialect, chunk))
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// ParseSingle parses one statement and rejects anything left after it.
func ParseSingle(p *Parser) (ast.Statement, error) {
	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	if !p.AtEOF() {
		return nil, p.Expected("end of statement", p.PeekToken())
	}
	return stmt, nil
}

// SplitStatements cuts a token stream at semicolons. Trivia and EOF tokens
// are dropped; the returned chunks may be empty.
func SplitStatements(tokens []tok.Token) [][]tok.Token {
	pTokens := make([]pc.Token[tok.Token], 0, len(tokens))
	for _, t := range tokens {
		if t.IsTrivia() || t.Type == tok.EOF {
			continue
		}
		pTokens = append(pTokens, pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  t.Position.Line,
				Col:   t.Position.Column,
				Index: t.Position.Offset,
			},
			Val: t,
			Raw: t.Value,
		})
	}

	pctx := pc.NewParseContext[tok.Token]()
	var chunks [][]tok.Token
	for _, part := range pc.FindIter(pctx, semicolon, pTokens) {
		chunk := make([]tok.Token, len(part.Skipped))
		for i, t := range part.Skipped {
			chunk[i] = t.Val
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
