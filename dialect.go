// Package dialectsql ties the SQL parser packages together: it names the
// available dialects, reports their capabilities and loads the tool
// configuration.
package dialectsql

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shibukawa/dialectsql/mysqldialect"
	"github.com/shibukawa/dialectsql/parser"
)

// DialectName is the registry name of a dialect.
type DialectName string

const (
	DialectGeneric DialectName = "generic"
	DialectMySQL   DialectName = "mysql"
)

var dialects = map[DialectName]parser.Dialect{
	DialectGeneric: parser.GenericDialect{},
	DialectMySQL:   mysqldialect.New(),
}

// Lookup returns the dialect registered under name. Names are case-insensitive.
func Lookup(name string) (parser.Dialect, error) {
	d, ok := dialects[DialectName(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("%w: '%s': must be one of %s", ErrUnknownDialect, name, strings.Join(DialectNames(), ", "))
	}
	return d, nil
}

// DialectNames lists the registered dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}
