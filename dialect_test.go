package dialectsql

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/mysqldialect"
	"github.com/shibukawa/dialectsql/parser"
)

func TestLookup(t *testing.T) {
	d, err := Lookup("MySQL")
	assert.NoError(t, err)
	assert.Equal(t, parser.Dialect(mysqldialect.Dialect{}), d)

	d, err = Lookup("generic")
	assert.NoError(t, err)
	assert.Equal(t, parser.Dialect(parser.GenericDialect{}), d)

	_, err = Lookup("oracle")
	assert.True(t, errors.Is(err, ErrUnknownDialect))
	assert.Contains(t, err.Error(), "must be one of generic, mysql")

	assert.Equal(t, []string{"generic", "mysql"}, DialectNames())
}

func TestCapabilities(t *testing.T) {
	mysql := Capabilities(mysqldialect.New())
	assert.Equal(t, 13, len(mysql))
	for _, c := range mysql {
		assert.True(t, c.Supported, c.Name)
	}
	assert.Equal(t, Capability{Name: "string_literal_backslash_escape", Lexical: true, Supported: true}, mysql[0])

	for _, c := range Capabilities(parser.GenericDialect{}) {
		assert.False(t, c.Supported, c.Name)
	}
}

func TestDescribeIdentifiers(t *testing.T) {
	assert.Equal(t, IdentifierRules{
		QuoteStyle:     "`",
		DollarStart:    true,
		AtStart:        true,
		DigitStart:     false,
		NonASCIILetter: true,
	}, DescribeIdentifiers(mysqldialect.New()))

	generic := DescribeIdentifiers(parser.GenericDialect{})
	assert.Equal(t, "", generic.QuoteStyle)
	assert.False(t, generic.DollarStart)
	assert.False(t, generic.DigitStart)
}
