package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SqlDialect is the lexical part of a dialect: the identifier character
// classes and the flags that change how literals and comments are scanned.
type SqlDialect interface {
	IsIdentifierStart(r rune) bool
	IsIdentifierPart(r rune) bool
	IsDelimitedIdentifierStart(r rune) bool
	SupportsStringLiteralBackslashEscape() bool
	IgnoresWildcardEscapes() bool
	SupportsNumericPrefix() bool
	RequiresSingleLineCommentWhitespace() bool
}

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// SqlTokenizer is a tokenizer that returns an iterator
type SqlTokenizer struct {
	input   string
	dialect SqlDialect
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	SkipComments   bool
}

// NewSqlTokenizer creates a new SqlTokenizer
func NewSqlTokenizer(input string, dialect SqlDialect, options ...TokenizerOptions) *SqlTokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	return &SqlTokenizer{
		input:   input,
		dialect: dialect,
		options: opts,
	}
}

// Tokens returns an iterator of tokens. The iterator stops after the first error.
func (t *SqlTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:   t.input,
			line:    1,
			column:  1,
			dialect: t.dialect,
			upper:   cases.Upper(language.Und),
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			// Filtering based on options
			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}
			if t.options.SkipComments && (token.Type == LINE_COMMENT || token.Type == BLOCK_COMMENT) {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens collects every token up to and including EOF.
func (t *SqlTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input   string
	offset  int // byte offset of current
	width   int // byte width of current
	line    int
	column  int
	current rune
	dialect SqlDialect
	upper   cases.Caser
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	r := t.current

	switch {
	case t.eof():
		return Token{Type: EOF, Position: t.pos()}, nil
	case unicode.IsSpace(r):
		return t.readWhitespace(), nil
	case t.dialect.IsDelimitedIdentifierStart(r):
		return t.readDelimitedIdentifier()
	case r == '\'':
		return t.readString('\'', STRING)
	case r == '"':
		return t.readString('"', DOUBLE_QUOTED_STRING)
	case isASCIIDigit(r) || (r == '.' && isASCIIDigit(t.peekChar())):
		return t.readNumber()
	case t.dialect.IsIdentifierStart(r):
		return t.readWord(t.pos())
	}

	start := t.pos()
	single := func(tt TokenType) (Token, error) {
		t.readChar()
		return Token{Type: tt, Value: string(r), Position: start}, nil
	}
	double := func(tt TokenType, value string) (Token, error) {
		t.readChar()
		t.readChar()
		return Token{Type: tt, Value: value, Position: start}, nil
	}

	switch r {
	case '(':
		return single(OPENED_PARENS)
	case ')':
		return single(CLOSED_PARENS)
	case ',':
		return single(COMMA)
	case ';':
		return single(SEMICOLON)
	case '.':
		return single(DOT)
	case '@':
		return single(AT)
	case '=':
		return single(EQUAL)
	case '+':
		return single(PLUS)
	case '*':
		return single(MULTIPLY)
	case '%':
		return single(MODULO)
	case '-':
		if t.peekChar() == '-' && t.startsLineComment() {
			return t.readLineComment(), nil
		}
		return single(MINUS)
	case '/':
		if t.peekChar() == '*' {
			return t.readBlockComment()
		}
		return single(DIVIDE)
	case '<':
		switch t.peekChar() {
		case '=':
			return double(LESS_EQUAL, "<=")
		case '>':
			return double(NOT_EQUAL, "<>")
		}
		return single(LESS_THAN)
	case '>':
		if t.peekChar() == '=' {
			return double(GREATER_EQUAL, ">=")
		}
		return single(GREATER_THAN)
	case '!':
		if t.peekChar() == '=' {
			return double(NOT_EQUAL, "!=")
		}
		return single(OTHER)
	default:
		return single(OTHER)
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.current == '\n' {
		t.line++
		t.column = 1
	} else if t.width > 0 {
		t.column++
	}

	t.offset += t.width
	if t.offset >= len(t.input) {
		t.current = 0
		t.width = 0
		return
	}

	t.current, t.width = utf8.DecodeRuneInString(t.input[t.offset:])
}

// eof reports whether every byte of the input has been read. A NUL rune
// in the input is an ordinary character.
func (t *tokenizer) eof() bool {
	return t.offset >= len(t.input)
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	next := t.offset + t.width
	if next >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[next:])
	return r
}

// peekCharAt looks n characters past the current one.
func (t *tokenizer) peekCharAt(n int) rune {
	next := t.offset + t.width
	for ; n > 1 && next < len(t.input); n-- {
		_, w := utf8.DecodeRuneInString(t.input[next:])
		next += w
	}
	if next >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[next:])
	return r
}

func (t *tokenizer) pos() Position {
	return Position{Line: t.line, Column: t.column, Offset: t.offset}
}

// startsLineComment decides whether "--" at the cursor opens a comment.
func (t *tokenizer) startsLineComment() bool {
	if !t.dialect.RequiresSingleLineCommentWhitespace() {
		return true
	}
	after := t.peekCharAt(2)
	return after == 0 || unicode.IsSpace(after)
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	start := t.pos()

	for !t.eof() && unicode.IsSpace(t.current) {
		t.readChar()
	}

	return Token{Type: WHITESPACE, Value: t.input[start.Offset:t.offset], Position: start}
}

// readWord reads an undelimited identifier or keyword starting at start,
// which may lie before the cursor when the number scanner hands over.
func (t *tokenizer) readWord(start Position) (Token, error) {
	for !t.eof() && t.dialect.IsIdentifierPart(t.current) {
		t.readChar()
	}

	word := t.input[start.Offset:t.offset]

	return Token{
		Type:     WORD,
		Value:    word,
		Keyword:  LookupKeyword(t.upper.String(word)),
		Position: start,
	}, nil
}

// readDelimitedIdentifier reads `quoted` identifiers. A doubled closing
// quote stands for itself.
func (t *tokenizer) readDelimitedIdentifier() (Token, error) {
	start := t.pos()
	quote := t.current
	closing := ClosingQuote(quote)
	var builder strings.Builder

	t.readChar()
	for {
		switch {
		case t.eof():
			return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedIdentifier, quote, start.Line, start.Column)
		case t.current == closing && t.peekChar() == closing:
			builder.WriteRune(closing)
			t.readChar()
			t.readChar()
		case t.current == closing:
			t.readChar()
			return Token{Type: WORD, Value: builder.String(), Quote: quote, Position: start}, nil
		default:
			builder.WriteRune(t.current)
			t.readChar()
		}
	}
}

// readString reads string literals and stores the unescaped content.
func (t *tokenizer) readString(delimiter rune, tokenType TokenType) (Token, error) {
	start := t.pos()
	var builder strings.Builder

	t.readChar()

	for {
		switch {
		case t.eof():
			return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedString, delimiter, start.Line, start.Column)
		case t.current == delimiter && t.peekChar() == delimiter:
			builder.WriteRune(delimiter)
			t.readChar()
			t.readChar()
		case t.current == delimiter:
			t.readChar()
			return Token{Type: tokenType, Value: builder.String(), Position: start}, nil
		case t.current == '\\' && t.dialect.SupportsStringLiteralBackslashEscape():
			t.readChar()
			if t.eof() {
				return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedString, delimiter, start.Line, start.Column)
			}
			t.writeEscape(&builder)
			t.readChar()
		default:
			builder.WriteRune(t.current)
			t.readChar()
		}
	}
}

// writeEscape writes the character denoted by a backslash escape whose
// second character is current.
func (t *tokenizer) writeEscape(builder *strings.Builder) {
	switch t.current {
	case '0':
		builder.WriteByte(0)
	case 'b':
		builder.WriteByte('\b')
	case 'n':
		builder.WriteByte('\n')
	case 'r':
		builder.WriteByte('\r')
	case 't':
		builder.WriteByte('\t')
	case 'Z':
		builder.WriteByte('\x1a')
	case '%', '_':
		if t.dialect.IgnoresWildcardEscapes() {
			builder.WriteByte('\\')
		}
		builder.WriteRune(t.current)
	default:
		builder.WriteRune(t.current)
	}
}

// readNumber reads numeric literals. With numeric prefixes enabled an
// integer run followed by identifier characters is a word such as 1col.
func (t *tokenizer) readNumber() (Token, error) {
	start := t.pos()

	for isASCIIDigit(t.current) {
		t.readChar()
	}

	fraction := false
	if t.current == '.' && (isASCIIDigit(t.peekChar()) || t.offset == start.Offset) {
		fraction = true
		t.readChar()
		for isASCIIDigit(t.current) {
			t.readChar()
		}
	}

	if (t.current == 'e' || t.current == 'E') && t.exponentFollows() {
		t.readChar()
		if t.current == '+' || t.current == '-' {
			t.readChar()
		}
		for isASCIIDigit(t.current) {
			t.readChar()
		}
	} else if t.current == 'e' || t.current == 'E' {
		if !t.dialect.SupportsNumericPrefix() || fraction {
			return Token{}, fmt.Errorf("%w: invalid exponent at line %d, column %d", ErrInvalidNumber, start.Line, start.Column)
		}
	}

	if !fraction && t.dialect.SupportsNumericPrefix() && !t.eof() && t.dialect.IsIdentifierPart(t.current) {
		return t.readWord(start)
	}

	token := Token{Type: NUMBER, Value: t.input[start.Offset:t.offset], Position: start}
	if t.current == 'L' && !t.dialect.IsIdentifierPart(t.peekChar()) {
		token.Long = true
		t.readChar()
	}

	return token, nil
}

// exponentFollows reports whether the e/E at the cursor starts an exponent.
func (t *tokenizer) exponentFollows() bool {
	next := t.peekChar()
	if isASCIIDigit(next) {
		return true
	}
	return (next == '+' || next == '-') && isASCIIDigit(t.peekCharAt(2))
}

// readLineComment reads line comments
func (t *tokenizer) readLineComment() Token {
	start := t.pos()

	for !t.eof() && t.current != '\n' {
		t.readChar()
	}

	return Token{Type: LINE_COMMENT, Value: t.input[start.Offset:t.offset], Position: start}
}

// readBlockComment reads block comments
func (t *tokenizer) readBlockComment() (Token, error) {
	start := t.pos()

	t.readChar()
	t.readChar()

	for !t.eof() {
		if t.current == '*' && t.peekChar() == '/' {
			t.readChar()
			t.readChar()
			return Token{Type: BLOCK_COMMENT, Value: t.input[start.Offset:t.offset], Position: start}, nil
		}
		t.readChar()
	}

	return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedComment, start.Line, start.Column)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
