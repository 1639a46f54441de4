package parser

import (
	"slices"
	"unicode"

	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// Dialect customizes the host parser. Lexical rules come from the embedded
// tokenizer.SqlDialect; grammar switches are plain flags, and the three
// hooks may take over parsing at fixed points.
//
// Hooks report "not handled" without consuming tokens. The host rewinds
// anyway, so a hook that peeks ahead through NextToken stays harmless.
type Dialect interface {
	tok.SqlDialect

	// IdentifierQuoteStyle returns the quote rune used when an identifier
	// has to be quoted in generated SQL.
	IdentifierQuoteStyle(ident string) (rune, bool)

	SupportsLimitComma() bool
	SupportsCreateTableSelect() bool
	SupportsInsertSet() bool
	SupportsUserHostGrantee() bool
	SupportsTableHints() bool
	SupportsMatchAgainst() bool
	SupportsSetNames() bool
	SupportsCommaSeparatedSetAssignments() bool
	RequireIntervalQualifier() bool

	// IsTableFactorAlias decides whether a word after a table name is its alias.
	IsTableFactorAlias(explicit bool, kw tok.Keyword) bool

	// ParseInfix is called before the built-in infix operators.
	ParseInfix(p *Parser, left ast.Expr, precedence int) (ast.Expr, bool, error)
	// ParseStatement is called before the built-in statements.
	ParseStatement(p *Parser) (ast.Statement, bool, error)
	// ParsePlainOption is called for each table option before the built-in
	// ones. A nil option with a nil error means the dialect has no opinion.
	ParsePlainOption(p *Parser) (ast.SqlOption, error)
}

// GenericDialect accepts a permissive ANSI-ish SQL and defines no hooks.
type GenericDialect struct{}

var _ Dialect = GenericDialect{}

func (GenericDialect) IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '#' || r == '@'
}

func (d GenericDialect) IsIdentifierPart(r rune) bool {
	return d.IsIdentifierStart(r) || unicode.IsDigit(r) || r == '$'
}

func (GenericDialect) IsDelimitedIdentifierStart(r rune) bool  { return r == '"' }
func (GenericDialect) SupportsStringLiteralBackslashEscape() bool { return false }
func (GenericDialect) IgnoresWildcardEscapes() bool              { return false }
func (GenericDialect) SupportsNumericPrefix() bool               { return false }
func (GenericDialect) RequiresSingleLineCommentWhitespace() bool { return false }

func (GenericDialect) IdentifierQuoteStyle(string) (rune, bool) { return 0, false }

func (GenericDialect) SupportsLimitComma() bool                   { return false }
func (GenericDialect) SupportsCreateTableSelect() bool            { return false }
func (GenericDialect) SupportsInsertSet() bool                    { return false }
func (GenericDialect) SupportsUserHostGrantee() bool              { return false }
func (GenericDialect) SupportsTableHints() bool                   { return false }
func (GenericDialect) SupportsMatchAgainst() bool                 { return false }
func (GenericDialect) SupportsSetNames() bool                     { return false }
func (GenericDialect) SupportsCommaSeparatedSetAssignments() bool { return false }
func (GenericDialect) RequireIntervalQualifier() bool             { return false }

func (GenericDialect) IsTableFactorAlias(explicit bool, kw tok.Keyword) bool {
	return explicit || !IsReservedForTableAlias(kw)
}

func (GenericDialect) ParseInfix(*Parser, ast.Expr, int) (ast.Expr, bool, error) {
	return nil, false, nil
}

func (GenericDialect) ParseStatement(*Parser) (ast.Statement, bool, error) {
	return nil, false, nil
}

func (GenericDialect) ParsePlainOption(*Parser) (ast.SqlOption, error) {
	return nil, nil
}

// IsReservedForTableAlias reports whether kw can never be an implicit table alias.
func IsReservedForTableAlias(kw tok.Keyword) bool {
	return slices.Contains(tok.ReservedForTableAlias, kw)
}
