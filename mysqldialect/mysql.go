// Package mysqldialect implements the MySQL dialect of the parser: its
// lexical rules and grammar flags, the DIV operator, LOCK/UNLOCK TABLES and
// the MySQL table options of CREATE TABLE.
package mysqldialect

import (
	"slices"
	"unicode"

	"github.com/shibukawa/dialectsql/parser"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// Dialect is the MySQL dialect. The zero value is ready to use and may be
// shared by any number of parsers.
type Dialect struct{}

var _ parser.Dialect = Dialect{}

// New returns the MySQL dialect.
func New() Dialect {
	return Dialect{}
}

// Name is the registry name of the dialect.
func (Dialect) Name() string {
	return "mysql"
}

// IsIdentifierStart accepts letters, _, $, @ and the BMP range above ASCII
// that MySQL allows in unquoted identifiers. Digits never start one.
func (Dialect) IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$' || r == '@' || (r >= 0x80 && r <= 0xffff)
}

// IsIdentifierPart accepts identifier start characters and ASCII digits.
func (d Dialect) IsIdentifierPart(r rune) bool {
	return d.IsIdentifierStart(r) || (r >= '0' && r <= '9')
}

func (Dialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '`'
}

// IdentifierQuoteStyle always quotes with backticks.
func (Dialect) IdentifierQuoteStyle(string) (rune, bool) {
	return '`', true
}

func (Dialect) SupportsStringLiteralBackslashEscape() bool { return true }
func (Dialect) IgnoresWildcardEscapes() bool              { return true }
func (Dialect) SupportsNumericPrefix() bool               { return true }
func (Dialect) RequiresSingleLineCommentWhitespace() bool { return true }
func (Dialect) RequireIntervalQualifier() bool            { return true }
func (Dialect) SupportsLimitComma() bool                  { return true }
func (Dialect) SupportsCreateTableSelect() bool           { return true }
func (Dialect) SupportsInsertSet() bool                   { return true }
func (Dialect) SupportsUserHostGrantee() bool             { return true }
func (Dialect) SupportsTableHints() bool                  { return true }
func (Dialect) SupportsMatchAgainst() bool                { return true }
func (Dialect) SupportsSetNames() bool                    { return true }

func (Dialect) SupportsCommaSeparatedSetAssignments() bool { return true }

// tableHintKeywords start index hints and can never be an implicit alias.
var tableHintKeywords = []tok.Keyword{tok.USE, tok.IGNORE, tok.FORCE}

// IsTableFactorAlias rejects reserved words and table hint keywords as
// implicit aliases. An alias after AS is always accepted.
func (Dialect) IsTableFactorAlias(explicit bool, kw tok.Keyword) bool {
	if explicit {
		return true
	}
	return !slices.Contains(tableHintKeywords, kw) && !parser.IsReservedForTableAlias(kw)
}
