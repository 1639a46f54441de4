package verify

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/mysqldialect"
	"github.com/shibukawa/dialectsql/parser"
)

func tableOptions(t *testing.T, sql string) []ast.SqlOption {
	t.Helper()
	stmts, err := parser.ParseStatements(mysqldialect.New(), sql)
	assert.NoError(t, err)
	create, ok := singleCreateTable(stmts)
	assert.True(t, ok)
	return create.Options
}

func TestMissingOptions(t *testing.T) {
	sent := tableOptions(t, "CREATE TABLE t (id int) ENGINE = MyISAM KEY_BLOCK_SIZE = 8 START TRANSACTION UNION = (a) TABLESPACE ts")
	reported := tableOptions(t, "CREATE TABLE `t` (`id` int) ENGINE=MyISAM DEFAULT CHARSET=utf8mb4 KEY_BLOCK_SIZE=8 UNION=(`a`)")

	assert.Equal(t, []string{"START TRANSACTION", "TABLESPACE"}, missingOptions(sent, reported))
	assert.Zero(t, missingOptions(reported[:1], reported))
}

func TestSingleCreateTable(t *testing.T) {
	stmts, err := parser.ParseStatements(mysqldialect.New(), "UNLOCK TABLES")
	assert.NoError(t, err)
	_, ok := singleCreateTable(stmts)
	assert.False(t, ok)

	_, ok = singleCreateTable(nil)
	assert.False(t, ok)
}

func TestScratchTables(t *testing.T) {
	stmts, err := parser.ParseStatements(mysqldialect.New(),
		"CREATE TABLE IF NOT EXISTS shop.Users (id int); LOCK TABLES users AS u READ, other WRITE")
	assert.NoError(t, err)
	create := stmts[0].(*ast.CreateTable)
	lock := stmts[1].(*ast.LockTables)

	scratch := scratchTables{}
	created := scratch.createStatement(create)

	assert.False(t, created.IfNotExists)
	assert.True(t, create.IfNotExists)
	assert.Equal(t, "Users", create.Name[1].Value)
	assert.Equal(t, "shop", created.Name[0].Value)
	assert.True(t, strings.HasPrefix(created.Name[1].Value, scratchPrefix))
	assert.Equal(t, len(scratchPrefix)+32, len(created.Name[1].Value))
	assert.Equal(t, '`', created.Name[1].QuoteStyle)

	rewritten := scratch.lockStatement(lock)
	assert.Equal(t, created.Name[1], rewritten.Tables[0].Table)
	assert.Equal(t, "u", rewritten.Tables[0].Alias.Value)
	assert.Equal(t, "other", rewritten.Tables[1].Table.Value)
	assert.Equal(t, "users", lock.Tables[0].Table.Value)

	again := scratch.createStatement(&ast.CreateTable{Name: ast.ObjectName{ast.NewIdent("audit")}})
	assert.NotEqual(t, created.Name[1].Value, again.Name[0].Value)
	assert.Equal(t, []string{again.Name.String(), created.Name.String()}, scratch.names())
}
