package formatter

import (
	"strings"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
)

// quoter applies the dialect quote style to every unquoted identifier that
// names a schema object. Keywords stored as identifiers (option keys, option
// values, charsets), function names and user variables are left alone.
type quoter struct {
	dialect parser.Dialect
}

func (q quoter) ident(i *ast.Ident) {
	if i == nil || i.QuoteStyle != 0 || i.Value == "*" || strings.HasPrefix(i.Value, "@") {
		return
	}
	if quote, ok := q.dialect.IdentifierQuoteStyle(i.Value); ok {
		i.QuoteStyle = quote
	}
}

func (q quoter) idents(list []ast.Ident) {
	for i := range list {
		q.ident(&list[i])
	}
}

func (q quoter) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.CreateTable:
		q.idents(s.Name)
		for i := range s.Columns {
			c := &s.Columns[i]
			q.ident(&c.Name)
			for _, arg := range c.DataType.Args {
				q.expr(arg)
			}
			for _, o := range c.Options {
				q.expr(o.Value)
			}
		}
		for i := range s.Constraints {
			q.ident(s.Constraints[i].Name)
			q.idents(s.Constraints[i].Columns)
		}
		for _, o := range s.Options {
			if union, ok := o.(*ast.UnionOption); ok {
				q.idents(union.Tables)
			}
		}
		if s.Query != nil {
			q.statement(s.Query)
		}
	case *ast.CreateView:
		q.idents(s.Name)
		q.statement(s.Query)
	case *ast.Select:
		for i := range s.Projection {
			q.expr(s.Projection[i].Expr)
			q.ident(s.Projection[i].Alias)
		}
		if s.From != nil {
			q.idents(s.From.Name)
			q.ident(s.From.Alias)
			for i := range s.From.Hints {
				q.idents(s.From.Hints[i].Indexes)
			}
		}
		q.expr(s.Where)
		for _, o := range s.OrderBy {
			q.expr(o.Expr)
		}
	case *ast.Insert:
		q.idents(s.Table)
		q.idents(s.Columns)
		for _, row := range s.Values {
			for _, e := range row {
				q.expr(e)
			}
		}
		for i := range s.Assignments {
			q.idents(s.Assignments[i].Target)
			q.expr(s.Assignments[i].Value)
		}
	case *ast.SetVariables:
		for _, a := range s.Assignments {
			q.expr(a.Value)
		}
	case *ast.LockTables:
		for i := range s.Tables {
			q.ident(&s.Tables[i].Table)
			q.ident(s.Tables[i].Alias)
		}
	}
}

func (q quoter) expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Identifier:
		q.ident(&e.Ident)
	case *ast.CompoundIdentifier:
		q.idents(e.Parts)
	case *ast.BinaryOp:
		q.expr(e.Left)
		q.expr(e.Right)
	case *ast.UnaryOp:
		q.expr(e.Expr)
	case *ast.Nested:
		q.expr(e.Expr)
	case *ast.IsNull:
		q.expr(e.Expr)
	case *ast.Function:
		for _, arg := range e.Args {
			q.expr(arg)
		}
	case *ast.Interval:
		q.expr(e.Value)
	case *ast.MatchAgainst:
		for _, c := range e.Columns {
			q.idents(c)
		}
	}
}
