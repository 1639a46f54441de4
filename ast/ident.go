// Package ast defines the syntax tree produced by the parser and its dialect
// hooks. Every node renders back to SQL text through String, and parsing that
// text again yields an equal node.
package ast

import (
	"fmt"
	"strings"
)

// Ident is an identifier with the quote rune it was written with.
// QuoteStyle is 0 for bare identifiers.
type Ident struct {
	Value      string
	QuoteStyle rune
}

// NewIdent creates a bare identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// NewQuotedIdent creates an identifier rendered with the given quote rune.
func NewQuotedIdent(value string, quote rune) Ident {
	return Ident{Value: value, QuoteStyle: quote}
}

func (i Ident) String() string {
	switch i.QuoteStyle {
	case 0:
		return i.Value
	case '\'', '"':
		return quoteString(i.Value, i.QuoteStyle)
	case '[':
		return "[" + strings.ReplaceAll(i.Value, "]", "]]") + "]"
	default:
		q := string(i.QuoteStyle)
		return q + strings.ReplaceAll(i.Value, q, q+q) + q
	}
}

// ObjectName is a possibly qualified name such as db.table.
type ObjectName []Ident

func (n ObjectName) String() string {
	return join(n, ".")
}

// quoteString renders a string literal. Quotes are doubled, and backslashes,
// NUL and Ctrl-Z are escaped so that dialects with backslash escapes read
// back the same value.
func quoteString(s string, quote rune) string {
	q := string(quote)
	s = strings.NewReplacer(`\`, `\\`, "\x00", `\0`, "\x1a", `\Z`, q, q+q).Replace(s)
	return q + s + q
}

func join[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, sep)
}
