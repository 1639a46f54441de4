package verify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/mysqldialect"
	"github.com/shibukawa/dialectsql/parser"
)

func TestMySQLRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := t.Context()

	mysqlContainer, err := mysql.Run(ctx,
		"mysql:8.4",
		mysql.WithDatabase("testdb"),
		mysql.WithUsername("testuser"),
		mysql.WithPassword("testpass"),
	)
	testcontainers.CleanupContainer(t, mysqlContainer)
	require.NoError(t, err)

	connStr, err := mysqlContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := NewConnector().Open(ctx, connStr)
	require.NoError(t, err)

	defer db.Close()

	// an existing table of the same name must survive verification
	_, err = db.ExecContext(ctx, "CREATE TABLE orders (legacy int)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO orders VALUES (1)")
	require.NoError(t, err)

	stmts, err := parser.ParseStatements(mysqldialect.New(), `
CREATE TABLE IF NOT EXISTS orders (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  total DECIMAL(10, 2) DEFAULT 0,
  PRIMARY KEY (id)
) ENGINE=InnoDB ROW_FORMAT=COMPRESSED KEY_BLOCK_SIZE=8 STATS_PERSISTENT=0 COMMENT='orders';
LOCK TABLES orders READ LOCAL;
UNLOCK TABLES;
LOCK TABLES orders AS o LOW_PRIORITY WRITE;
UNLOCK TABLES;
`)
	require.NoError(t, err)

	v, err := New(ctx, db, mysqldialect.New())
	require.NoError(t, err)

	defer v.Close()

	v.DropCreated = true

	results, err := v.Verify(ctx, stmts)
	require.NoError(t, err)
	require.Len(t, results, 5)

	for _, r := range results {
		require.True(t, r.Executed, r.Rendered)
	}

	create := results[0]
	require.Contains(t, create.ServerDDL, "KEY_BLOCK_SIZE=8")
	require.NotNil(t, create.Reparsed)
	require.Equal(t, "`orders`", create.Reparsed.Name.String())
	require.Contains(t, create.Reparsed.Options, ast.SqlOption(&ast.KeyValueOption{
		Key:   ast.NewIdent("KEY_BLOCK_SIZE"),
		Value: ast.NewValue(ast.NewNumber("8")),
	}))
	require.NotContains(t, create.MissingOptions, "ROW_FORMAT")
	require.Contains(t, create.ExecutedSQL, "CREATE TABLE `dialectsql_")
	require.Contains(t, results[1].ExecutedSQL, "LOCK TABLES `dialectsql_")

	var legacy int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT legacy FROM orders").Scan(&legacy))
	require.Equal(t, 1, legacy)

	var scratch int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name LIKE 'dialectsql\\_%'").Scan(&scratch))
	require.Equal(t, 0, scratch)
}
