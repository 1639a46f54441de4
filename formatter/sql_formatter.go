package formatter

import (
	"fmt"
	"strings"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
)

// SQLFormatter re-renders SQL scripts in canonical form: one statement per
// line, upper-case keywords and dialect-quoted identifiers.
type SQLFormatter struct {
	dialect parser.Dialect
}

// NewSQLFormatter creates a new SQL formatter for the dialect
func NewSQLFormatter(dialect parser.Dialect) *SQLFormatter {
	return &SQLFormatter{dialect: dialect}
}

// Format parses a script and renders it back
func (f *SQLFormatter) Format(sql string) (string, error) {
	stmts, err := parser.ParseStatements(f.dialect, sql)
	if err != nil {
		return "", fmt.Errorf("failed to parse SQL: %w", err)
	}

	return f.FormatStatements(stmts), nil
}

// FormatStatements renders already parsed statements, each terminated by a
// semicolon and a newline.
func (f *SQLFormatter) FormatStatements(stmts []ast.Statement) string {
	var b strings.Builder

	for _, stmt := range stmts {
		b.WriteString(f.FormatStatement(stmt))
		b.WriteString(";\n")
	}

	return b.String()
}

// FormatStatement renders one statement without terminator. Identifiers in
// stmt are quoted in place.
func (f *SQLFormatter) FormatStatement(stmt ast.Statement) string {
	quoter{dialect: f.dialect}.statement(stmt)
	return stmt.String()
}
