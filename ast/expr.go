package ast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expr is an SQL expression.
type Expr interface {
	String() string
	exprNode()
}

// Identifier is a bare or quoted column reference.
type Identifier struct {
	Ident Ident
}

// CompoundIdentifier is a dotted reference such as t.col.
type CompoundIdentifier struct {
	Parts []Ident
}

// Wildcard is * in a projection or function argument list.
type Wildcard struct{}

// ValueExpr wraps a literal.
type ValueExpr struct {
	Value Value
}

// BinaryOp is left op right.
type BinaryOp struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

// UnaryOp is a prefix operator applied to an expression.
type UnaryOp struct {
	Op   UnaryOperator
	Expr Expr
}

// Nested is a parenthesised expression.
type Nested struct {
	Expr Expr
}

// IsNull is expr IS [NOT] NULL.
type IsNull struct {
	Expr    Expr
	Negated bool
}

// Function is a function call. Args may contain a Wildcard.
type Function struct {
	Name     ObjectName
	Distinct bool
	Args     []Expr
}

// Interval is INTERVAL value [unit].
type Interval struct {
	Value Expr
	Unit  string
}

// MatchAgainst is MySQL's full text search predicate.
type MatchAgainst struct {
	Columns  []ObjectName
	Against  Value
	Modifier SearchModifier
}

// SearchModifier selects the full text search mode of MATCH ... AGAINST.
type SearchModifier int

const (
	SearchDefault SearchModifier = iota
	SearchNaturalLanguage
	SearchNaturalLanguageWithQueryExpansion
	SearchBoolean
	SearchWithQueryExpansion
)

func (m SearchModifier) String() string {
	switch m {
	case SearchNaturalLanguage:
		return "IN NATURAL LANGUAGE MODE"
	case SearchNaturalLanguageWithQueryExpansion:
		return "IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION"
	case SearchBoolean:
		return "IN BOOLEAN MODE"
	case SearchWithQueryExpansion:
		return "WITH QUERY EXPANSION"
	default:
		return ""
	}
}

func (*Identifier) exprNode()         {}
func (*CompoundIdentifier) exprNode() {}
func (*Wildcard) exprNode()           {}
func (*ValueExpr) exprNode()          {}
func (*BinaryOp) exprNode()           {}
func (*UnaryOp) exprNode()            {}
func (*Nested) exprNode()             {}
func (*IsNull) exprNode()             {}
func (*Function) exprNode()           {}
func (*Interval) exprNode()           {}
func (*MatchAgainst) exprNode()       {}

func (e *Identifier) String() string         { return e.Ident.String() }
func (e *CompoundIdentifier) String() string { return join(e.Parts, ".") }
func (*Wildcard) String() string             { return "*" }
func (e *ValueExpr) String() string          { return e.Value.String() }

func (e *BinaryOp) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

func (e *UnaryOp) String() string {
	if e.Op == OpNot {
		return "NOT " + e.Expr.String()
	}
	return e.Op.String() + e.Expr.String()
}

func (e *Nested) String() string { return "(" + e.Expr.String() + ")" }

func (e *IsNull) String() string {
	if e.Negated {
		return e.Expr.String() + " IS NOT NULL"
	}
	return e.Expr.String() + " IS NULL"
}

func (e *Function) String() string {
	var b strings.Builder
	b.WriteString(e.Name.String())
	b.WriteByte('(')
	if e.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(join(e.Args, ", "))
	b.WriteByte(')')
	return b.String()
}

func (e *Interval) String() string {
	if e.Unit == "" {
		return "INTERVAL " + e.Value.String()
	}
	return "INTERVAL " + e.Value.String() + " " + e.Unit
}

func (e *MatchAgainst) String() string {
	s := "MATCH (" + join(e.Columns, ", ") + ") AGAINST (" + e.Against.String()
	if e.Modifier != SearchDefault {
		s += " " + e.Modifier.String()
	}
	return s + ")"
}

// Value is a literal.
type Value interface {
	String() string
	valueNode()
}

// NumberValue is a numeric literal. Raw keeps the source spelling.
type NumberValue struct {
	Raw    string
	Number decimal.Decimal
	Long   bool
}

// SingleQuotedString is a 'string' literal holding the unescaped content.
type SingleQuotedString string

// DoubleQuotedString is a "string" literal holding the unescaped content.
type DoubleQuotedString string

// BooleanValue is TRUE or FALSE.
type BooleanValue bool

// NullValue is NULL.
type NullValue struct{}

func (NumberValue) valueNode()        {}
func (SingleQuotedString) valueNode() {}
func (DoubleQuotedString) valueNode() {}
func (BooleanValue) valueNode()       {}
func (NullValue) valueNode()          {}

func (v NumberValue) String() string {
	if v.Long {
		return v.Raw + "L"
	}
	return v.Raw
}

func (v SingleQuotedString) String() string { return quoteString(string(v), '\'') }
func (v DoubleQuotedString) String() string { return quoteString(string(v), '"') }

func (v BooleanValue) String() string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (NullValue) String() string { return "NULL" }

// NewValue wraps a literal in an expression.
func NewValue(v Value) *ValueExpr {
	return &ValueExpr{Value: v}
}

// NewNumber builds a number literal. It panics on malformed input and is
// meant for constants and tests; the parser validates through ParseNumber.
func NewNumber(raw string) NumberValue {
	return NumberValue{Raw: raw, Number: decimal.RequireFromString(raw)}
}
