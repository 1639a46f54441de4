// Package parser is a recursive descent SQL parser whose grammar is adjusted
// by a Dialect. The cursor primitives are exported so dialect hooks can
// drive the same token stream as the host.
package parser

import (
	"fmt"

	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
	"github.com/shopspring/decimal"
)

// Parser holds a trivia-free token stream that always ends with EOF.
type Parser struct {
	dialect Dialect
	tokens  []tok.Token
	index   int
}

// New tokenizes sql with the dialect's lexical rules.
func New(dialect Dialect, sql string) (*Parser, error) {
	tokens, err := tok.NewSqlTokenizer(sql, dialect, tok.TokenizerOptions{SkipWhitespace: true, SkipComments: true}).AllTokens()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenize, err)
	}
	return NewWithTokens(dialect, tokens), nil
}

// NewWithTokens creates a parser over already tokenized input.
// Whitespace and comments are dropped and a trailing EOF is guaranteed.
func NewWithTokens(dialect Dialect, tokens []tok.Token) *Parser {
	filtered := make([]tok.Token, 0, len(tokens)+1)
	var eof tok.Token
	hasEOF := false
	for _, t := range tokens {
		switch {
		case t.Type == tok.EOF:
			eof = t
			hasEOF = true
		case !t.IsTrivia():
			filtered = append(filtered, t)
		}
	}
	if !hasEOF {
		eof = tok.Token{Type: tok.EOF}
		if n := len(tokens); n > 0 {
			last := tokens[n-1].Position
			eof.Position = tok.Position{Line: last.Line, Column: last.Column + len([]rune(tokens[n-1].String())), Offset: last.Offset + len(tokens[n-1].String())}
		} else {
			eof.Position = tok.Position{Line: 1, Column: 1}
		}
	}
	return &Parser{
		dialect: dialect,
		tokens:  append(filtered, eof),
	}
}

// Dialect returns the dialect driving this parser.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Index returns the cursor position for a later Rewind.
func (p *Parser) Index() int {
	return p.index
}

// Rewind moves the cursor back to a position returned by Index.
func (p *Parser) Rewind(index int) {
	p.index = index
}

// PeekToken returns the next token without consuming it.
func (p *Parser) PeekToken() tok.Token {
	return p.PeekNthToken(0)
}

// PeekNthToken returns the token n positions ahead. Past the end it is EOF.
func (p *Parser) PeekNthToken(n int) tok.Token {
	if i := p.index + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

// NextToken consumes and returns the next token.
func (p *Parser) NextToken() tok.Token {
	t := p.PeekToken()
	p.index++
	return t
}

// PrevToken steps the cursor back by one token.
func (p *Parser) PrevToken() {
	if p.index > 0 {
		p.index--
	}
}

// AtEOF reports whether all tokens are consumed.
func (p *Parser) AtEOF() bool {
	return p.PeekToken().Type == tok.EOF
}

// ConsumeToken consumes the next token if it has the given type.
func (p *Parser) ConsumeToken(tt tok.TokenType) bool {
	if p.PeekToken().Type == tt {
		p.index++
		return true
	}
	return false
}

// ExpectToken consumes a token of the given type or fails.
func (p *Parser) ExpectToken(tt tok.TokenType) (tok.Token, error) {
	t := p.PeekToken()
	if t.Type != tt {
		return t, p.Expected(tokenLabel(tt), t)
	}
	p.index++
	return t, nil
}

// PeekKeyword reports whether the next token is kw.
func (p *Parser) PeekKeyword(kw tok.Keyword) bool {
	return p.PeekToken().IsKeyword(kw)
}

// ParseKeyword consumes kw if it is next.
func (p *Parser) ParseKeyword(kw tok.Keyword) bool {
	if p.PeekKeyword(kw) {
		p.index++
		return true
	}
	return false
}

// ParseKeywords consumes the whole keyword sequence or nothing.
func (p *Parser) ParseKeywords(kws ...tok.Keyword) bool {
	start := p.index
	for _, kw := range kws {
		if !p.ParseKeyword(kw) {
			p.index = start
			return false
		}
	}
	return true
}

// ParseOneOfKeywords consumes the first of kws that is next and returns it,
// or returns NoKeyword.
func (p *Parser) ParseOneOfKeywords(kws ...tok.Keyword) tok.Keyword {
	for _, kw := range kws {
		if p.ParseKeyword(kw) {
			return kw
		}
	}
	return tok.NoKeyword
}

// ExpectKeyword consumes kw or fails.
func (p *Parser) ExpectKeyword(kw tok.Keyword) (tok.Token, error) {
	t := p.PeekToken()
	if !t.IsKeyword(kw) {
		return t, p.Expected(kw.String(), t)
	}
	p.index++
	return t, nil
}

// ParseIdentifier reads a word, or a quoted string used as a name.
func (p *Parser) ParseIdentifier() (ast.Ident, error) {
	t := p.NextToken()
	switch t.Type {
	case tok.WORD:
		return ast.Ident{Value: t.Value, QuoteStyle: t.Quote}, nil
	case tok.STRING:
		return ast.NewQuotedIdent(t.Value, '\''), nil
	case tok.DOUBLE_QUOTED_STRING:
		return ast.NewQuotedIdent(t.Value, '"'), nil
	}
	return ast.Ident{}, p.Expected("identifier", t)
}

// ParseObjectName reads a dotted name.
func (p *Parser) ParseObjectName() (ast.ObjectName, error) {
	var name ast.ObjectName
	for {
		ident, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		name = append(name, ident)
		if !p.ConsumeToken(tok.DOT) {
			return name, nil
		}
	}
}

// ParseOptionalAlias reads [AS] alias. Without AS, a word listed in
// reserved ends the construct and is left unconsumed.
func (p *Parser) ParseOptionalAlias(reserved []tok.Keyword) (*ast.Ident, error) {
	afterAs := p.ParseKeyword(tok.AS)
	t := p.NextToken()
	switch t.Type {
	case tok.WORD:
		if afterAs || t.Quote != 0 || !containsKeyword(reserved, t.Keyword) {
			ident := ast.Ident{Value: t.Value, QuoteStyle: t.Quote}
			return &ident, nil
		}
	case tok.STRING:
		ident := ast.NewQuotedIdent(t.Value, '\'')
		return &ident, nil
	case tok.DOUBLE_QUOTED_STRING:
		ident := ast.NewQuotedIdent(t.Value, '"')
		return &ident, nil
	}
	if afterAs {
		return nil, p.Expected("an identifier after AS", t)
	}
	p.PrevToken()
	return nil, nil
}

// ParseTableAlias reads an optional table alias, asking the dialect whether
// the next word may serve as one.
func (p *Parser) ParseTableAlias() (*ast.Ident, error) {
	explicit := p.ParseKeyword(tok.AS)
	t := p.PeekToken()
	if t.Type == tok.WORD && (t.Quote != 0 || p.dialect.IsTableFactorAlias(explicit, t.Keyword)) {
		p.index++
		ident := ast.Ident{Value: t.Value, QuoteStyle: t.Quote}
		return &ident, nil
	}
	if explicit {
		return nil, p.Expected("an identifier after AS", t)
	}
	return nil, nil
}

// ParseCommaSeparated reads one or more items separated by commas.
func ParseCommaSeparated[T any](p *Parser, fn func(*Parser) (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := fn(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.ConsumeToken(tok.COMMA) {
			return items, nil
		}
	}
}

// ParseCommaSeparated0 is ParseCommaSeparated that also accepts an empty
// list when the next token is end. The end token is not consumed.
func ParseCommaSeparated0[T any](p *Parser, fn func(*Parser) (T, error), end tok.TokenType) ([]T, error) {
	if p.PeekToken().Type == end {
		return []T{}, nil
	}
	return ParseCommaSeparated(p, fn)
}

// ParseNumber converts the text of a numeric literal.
func ParseNumber(raw string, pos tok.Position) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, NewParserError(ErrInvalidNumber, pos, "Could not parse '%s' as number: %v", raw, err)
	}
	return d, nil
}

// ParseNumberValue reads a numeric literal.
func (p *Parser) ParseNumberValue() (ast.NumberValue, error) {
	t := p.NextToken()
	if t.Type != tok.NUMBER {
		return ast.NumberValue{}, p.Expected("literal number", t)
	}
	return numberFromToken(t)
}

// ParseLiteralString reads a single quoted string.
func (p *Parser) ParseLiteralString() (string, error) {
	t := p.NextToken()
	if t.Type != tok.STRING {
		return "", p.Expected("literal string", t)
	}
	return t.Value, nil
}

func numberFromToken(t tok.Token) (ast.NumberValue, error) {
	d, err := ParseNumber(t.Value, t.Position)
	if err != nil {
		return ast.NumberValue{}, err
	}
	return ast.NumberValue{Raw: t.Value, Number: d, Long: t.Long}, nil
}

func containsKeyword(kws []tok.Keyword, kw tok.Keyword) bool {
	for _, k := range kws {
		if k == kw && kw != tok.NoKeyword {
			return true
		}
	}
	return false
}

var tokenLabels = map[tok.TokenType]string{
	tok.OPENED_PARENS: "(",
	tok.CLOSED_PARENS: ")",
	tok.COMMA:         ",",
	tok.SEMICOLON:     ";",
	tok.DOT:           ".",
	tok.EQUAL:         "=",
	tok.STRING:        "literal string",
	tok.NUMBER:        "literal number",
	tok.WORD:          "identifier",
}

func tokenLabel(tt tok.TokenType) string {
	if label, ok := tokenLabels[tt]; ok {
		return label
	}
	return tt.String()
}
