package tokenizer

import (
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter    = errors.New("unexpected character")
	ErrUnterminatedString     = errors.New("unterminated string literal")
	ErrUnterminatedComment    = errors.New("unterminated block comment")
	ErrUnterminatedIdentifier = errors.New("unterminated delimited identifier")
	ErrInvalidNumber          = errors.New("invalid number format")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	WORD                 // identifiers, keywords, delimited identifiers
	NUMBER               // numeric literals
	STRING               // 'single quoted'
	DOUBLE_QUOTED_STRING // "double quoted" when '"' does not delimit identifiers
	OPENED_PARENS        // (
	CLOSED_PARENS        // )
	COMMA                // ,
	SEMICOLON            // ;
	DOT                  // .
	AT                   // @ when it cannot start an identifier

	// SQL operators
	EQUAL         // =
	NOT_EQUAL     // <>, !=
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=
	PLUS          // +
	MINUS         // -
	MULTIPLY      // *
	DIVIDE        // /
	MODULO        // %

	// Comments
	LINE_COMMENT  // -- line comment
	BLOCK_COMMENT // /* block comment */

	// Others
	OTHER
)

var tokenTypeNames = map[TokenType]string{
	EOF:                  "EOF",
	WHITESPACE:           "WHITESPACE",
	WORD:                 "WORD",
	NUMBER:               "NUMBER",
	STRING:               "STRING",
	DOUBLE_QUOTED_STRING: "DOUBLE_QUOTED_STRING",
	OPENED_PARENS:        "OPENED_PARENS",
	CLOSED_PARENS:        "CLOSED_PARENS",
	COMMA:                "COMMA",
	SEMICOLON:            "SEMICOLON",
	DOT:                  "DOT",
	AT:                   "AT",
	EQUAL:                "EQUAL",
	NOT_EQUAL:            "NOT_EQUAL",
	LESS_THAN:            "LESS_THAN",
	GREATER_THAN:         "GREATER_THAN",
	LESS_EQUAL:           "LESS_EQUAL",
	GREATER_EQUAL:        "GREATER_EQUAL",
	PLUS:                 "PLUS",
	MINUS:                "MINUS",
	MULTIPLY:             "MULTIPLY",
	DIVIDE:               "DIVIDE",
	MODULO:               "MODULO",
	LINE_COMMENT:         "LINE_COMMENT",
	BLOCK_COMMENT:        "BLOCK_COMMENT",
	OTHER:                "OTHER",
}

// String returns the string representation of TokenType
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type  TokenType
	Value string // raw text; unescaped content for strings and delimited identifiers
	// Keyword is set for undelimited words found in the keyword table.
	Keyword Keyword
	// Quote is the opening delimiter of a delimited identifier, 0 otherwise.
	Quote rune
	// Long marks a numeric literal with an L suffix.
	Long     bool
	Position Position
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Type == WORD && t.Keyword == kw && kw != NoKeyword
}

// IsTrivia reports whether the token carries no grammar meaning.
func (t Token) IsTrivia() bool {
	return t.Type == WHITESPACE || t.Type == LINE_COMMENT || t.Type == BLOCK_COMMENT
}

// String returns the string representation of Token
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case STRING:
		return "'" + t.Value + "'"
	case DOUBLE_QUOTED_STRING:
		return strconv.Quote(t.Value)
	case WORD:
		if t.Quote != 0 {
			return string(t.Quote) + t.Value + string(ClosingQuote(t.Quote))
		}
		return t.Value
	case NUMBER:
		if t.Long {
			return t.Value + "L"
		}
		return t.Value
	default:
		return t.Value
	}
}

// ClosingQuote returns the rune that ends a delimited identifier opened by quote.
func ClosingQuote(quote rune) rune {
	if quote == '[' {
		return ']'
	}
	return quote
}
