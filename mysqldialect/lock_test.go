package mysqldialect

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
)

func aliasOf(name string) *ast.Ident {
	alias := ast.NewIdent(name)
	return &alias
}

func TestLockTables(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []ast.LockTable
	}{
		{
			name: "read and low priority write",
			sql:  "LOCK TABLES t1 READ, t2 LOW_PRIORITY WRITE",
			expected: []ast.LockTable{
				{Table: ast.NewIdent("t1"), LockType: ast.ReadLock{Local: false}},
				{Table: ast.NewIdent("t2"), LockType: ast.WriteLock{LowPriority: true}},
			},
		},
		{
			name: "aliases",
			sql:  "lock tables t1 AS a READ LOCAL, t2 b WRITE",
			expected: []ast.LockTable{
				{Table: ast.NewIdent("t1"), Alias: aliasOf("a"), LockType: ast.ReadLock{Local: true}},
				{Table: ast.NewIdent("t2"), Alias: aliasOf("b"), LockType: ast.WriteLock{}},
			},
		},
		{
			name: "quoted table",
			sql:  "LOCK TABLES `order` WRITE",
			expected: []ast.LockTable{
				{Table: ast.NewQuotedIdent("order", '`'), LockType: ast.WriteLock{}},
			},
		},
		{
			name: "explicit alias may be a lock keyword",
			sql:  "LOCK TABLES t1 AS write READ",
			expected: []ast.LockTable{
				{Table: ast.NewIdent("t1"), Alias: aliasOf("write"), LockType: ast.ReadLock{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.ParseStatements(Dialect{}, tt.sql)
			assert.NoError(t, err)
			assert.Equal(t, []ast.Statement{&ast.LockTables{Tables: tt.expected}}, stmts)
		})
	}
}

func TestLockTablesErrors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
	}{
		{"missing lock type", "LOCK TABLES t1", "Expected: a lock type in LOCK TABLES, found: EOF"},
		{"two aliases", "LOCK TABLES t1 a b", "Expected: a lock type in LOCK TABLES, found: b"},
		{"low priority read", "LOCK TABLES t1 LOW_PRIORITY READ", "Expected: a lock type in LOCK TABLES, found: LOW_PRIORITY at Line: 1, Column: 16"},
		{"trailing comma", "LOCK TABLES t1 READ,", "Expected: identifier, found: EOF"},
		{"no tables", "LOCK TABLES", "Expected: identifier, found: EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseStatements(Dialect{}, tt.sql)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, parser.ErrExpected))
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestUnlockTables(t *testing.T) {
	stmts, err := parser.ParseStatements(Dialect{}, "UNLOCK TABLES; lock tables t write; unlock tables")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(stmts))
	assert.Equal(t, ast.Statement(&ast.UnlockTables{}), stmts[0])
	assert.Equal(t, ast.Statement(&ast.UnlockTables{}), stmts[2])

	p, err := parser.New(Dialect{}, "UNLOCK TABLES extra")
	assert.NoError(t, err)
	stmt, handled, err := Dialect{}.ParseStatement(p)
	assert.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, ast.Statement(&ast.UnlockTables{}), stmt)
	assert.Equal(t, "extra", p.PeekToken().Value)

	p.Rewind(0)
	_, err = parser.ParseSingle(p)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Expected: end of statement, found: extra")
}

func TestParseStatementNotHandled(t *testing.T) {
	for _, sql := range []string{"SELECT 1", "LOCK TABLE t READ", "UNLOCK t", "`LOCK` TABLES t READ", ""} {
		t.Run(sql, func(t *testing.T) {
			p, err := parser.New(Dialect{}, sql)
			assert.NoError(t, err)
			stmt, handled, err := Dialect{}.ParseStatement(p)
			assert.NoError(t, err)
			assert.False(t, handled)
			assert.Zero(t, stmt)
			assert.Equal(t, 0, p.Index())
		})
	}
}
