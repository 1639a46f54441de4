package mysqldialect

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

func parseExpr(t *testing.T, d parser.Dialect, sql string) ast.Expr {
	t.Helper()
	p, err := parser.New(d, sql)
	assert.NoError(t, err)
	expr, err := p.ParseExpr()
	assert.NoError(t, err)
	assert.True(t, p.AtEOF())
	return expr
}

func TestIntegerDivide(t *testing.T) {
	expr := parseExpr(t, Dialect{}, "a DIV b")
	assert.Equal(t, ast.Expr(&ast.BinaryOp{
		Left:  ident("a"),
		Op:    ast.OpMyIntegerDivide,
		Right: ident("b"),
	}), expr)
	assert.Equal(t, "a DIV b", expr.String())

	// the right operand extends to the end of the expression
	expr = parseExpr(t, Dialect{}, "a div b + c")
	assert.Equal(t, ast.Expr(&ast.BinaryOp{
		Left: ident("a"),
		Op:   ast.OpMyIntegerDivide,
		Right: &ast.BinaryOp{
			Left:  ident("b"),
			Op:    ast.OpPlus,
			Right: ident("c"),
		},
	}), expr)

	expr = parseExpr(t, Dialect{}, "x * 10 DIV 3")
	assert.Equal(t, ast.Expr(&ast.BinaryOp{
		Left: &ast.BinaryOp{Left: ident("x"), Op: ast.OpMultiply, Right: num("10")},
		Op:   ast.OpMyIntegerDivide,
		Right: num("3"),
	}), expr)

	// the generic grammar keeps DIV at multiplicative precedence
	generic := parseExpr(t, parser.GenericDialect{}, "a DIV b + c")
	assert.Equal(t, ast.Expr(&ast.BinaryOp{
		Left:  &ast.BinaryOp{Left: ident("a"), Op: ast.OpMyIntegerDivide, Right: ident("b")},
		Op:    ast.OpPlus,
		Right: ident("c"),
	}), generic)
}

func TestParseInfixHook(t *testing.T) {
	t.Run("right side error", func(t *testing.T) {
		p, err := parser.New(Dialect{}, "DIV )")
		assert.NoError(t, err)
		expr, handled, err := Dialect{}.ParseInfix(p, ident("a"), parser.PrecedenceMulDivMod)
		assert.True(t, handled)
		assert.Zero(t, expr)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Expected: an expression, found: )")
	})

	t.Run("other operators are not handled", func(t *testing.T) {
		for _, sql := range []string{"+ b", "MOD b", "`DIV` b", ""} {
			p, err := parser.New(Dialect{}, sql)
			assert.NoError(t, err)
			expr, handled, err := Dialect{}.ParseInfix(p, ident("a"), parser.PrecedenceLowest)
			assert.NoError(t, err)
			assert.False(t, handled)
			assert.Zero(t, expr)
			assert.Equal(t, 0, p.Index())
		}
	})

	t.Run("missing right side in a statement", func(t *testing.T) {
		_, err := parser.ParseStatements(Dialect{}, "SELECT a DIV")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Expected: an expression, found: EOF")
	})
}

func TestIdentifierCharacters(t *testing.T) {
	d := Dialect{}
	for _, r := range []rune{'a', 'Z', '_', '$', '@', 'é', '日'} {
		assert.True(t, d.IsIdentifierStart(r), "start %q", r)
		assert.True(t, d.IsIdentifierPart(r), "part %q", r)
	}
	assert.False(t, d.IsIdentifierStart('1'))
	assert.True(t, d.IsIdentifierPart('1'))
	for _, r := range []rune{'-', '.', '`', '"', ' ', '('} {
		assert.False(t, d.IsIdentifierStart(r), "start %q", r)
		assert.False(t, d.IsIdentifierPart(r), "part %q", r)
	}
	assert.True(t, d.IsDelimitedIdentifierStart('`'))
	assert.False(t, d.IsDelimitedIdentifierStart('"'))
	assert.False(t, d.IsDelimitedIdentifierStart('['))

	quote, ok := d.IdentifierQuoteStyle("anything")
	assert.True(t, ok)
	assert.Equal(t, '`', quote)
}

func TestTokenizeWithDialect(t *testing.T) {
	tokens, err := tok.NewSqlTokenizer("SELECT `my col`, $v, @x1 FROM t", Dialect{}, tok.TokenizerOptions{SkipWhitespace: true}).AllTokens()
	assert.NoError(t, err)
	var values []string
	for _, token := range tokens {
		if token.Type == tok.WORD {
			values = append(values, token.Value)
		}
	}
	assert.Equal(t, []string{"SELECT", "my col", "$v", "@x1", "FROM", "t"}, values)
}

func TestFlags(t *testing.T) {
	var d parser.Dialect = Dialect{}
	flags := map[string]bool{
		"SupportsStringLiteralBackslashEscape": d.SupportsStringLiteralBackslashEscape(),
		"IgnoresWildcardEscapes":               d.IgnoresWildcardEscapes(),
		"SupportsNumericPrefix":                d.SupportsNumericPrefix(),
		"RequiresSingleLineCommentWhitespace":  d.RequiresSingleLineCommentWhitespace(),
		"RequireIntervalQualifier":             d.RequireIntervalQualifier(),
		"SupportsLimitComma":                   d.SupportsLimitComma(),
		"SupportsCreateTableSelect":            d.SupportsCreateTableSelect(),
		"SupportsInsertSet":                    d.SupportsInsertSet(),
		"SupportsUserHostGrantee":              d.SupportsUserHostGrantee(),
		"SupportsTableHints":                   d.SupportsTableHints(),
		"SupportsMatchAgainst":                 d.SupportsMatchAgainst(),
		"SupportsSetNames":                     d.SupportsSetNames(),
		"SupportsCommaSeparatedSetAssignments": d.SupportsCommaSeparatedSetAssignments(),
	}
	for name, value := range flags {
		assert.True(t, value, name)
	}
	assert.Equal(t, "mysql", New().Name())
}

func TestIsTableFactorAlias(t *testing.T) {
	d := Dialect{}
	tests := []struct {
		name     string
		explicit bool
		kw       tok.Keyword
		expected bool
	}{
		{"plain word", false, tok.NoKeyword, true},
		{"unreserved keyword", false, tok.DATA, true},
		{"use hint", false, tok.USE, false},
		{"ignore hint", false, tok.IGNORE, false},
		{"force hint", false, tok.FORCE, false},
		{"reserved", false, tok.WHERE, false},
		{"limit", false, tok.LIMIT, false},
		{"explicit hint", true, tok.USE, true},
		{"explicit reserved", true, tok.WHERE, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.IsTableFactorAlias(tt.explicit, tt.kw))
		})
	}
}

func TestTableHints(t *testing.T) {
	stmts, err := parser.ParseStatements(Dialect{}, "SELECT * FROM t1 ignore INDEX (i1, i2) WHERE a = 1")
	assert.NoError(t, err)
	sel := stmts[0].(*ast.Select)
	assert.Zero(t, sel.From.Alias)
	assert.Equal(t, []ast.TableHint{{
		Type:    "IGNORE",
		Keyword: "INDEX",
		Indexes: []ast.Ident{ast.NewIdent("i1"), ast.NewIdent("i2")},
	}}, sel.From.Hints)

	stmts, err = parser.ParseStatements(Dialect{}, "SELECT * FROM t1 AS use USE KEY FOR ORDER BY (k)")
	assert.NoError(t, err)
	sel = stmts[0].(*ast.Select)
	assert.Equal(t, "use", sel.From.Alias.Value)
	assert.Equal(t, "ORDER BY", sel.From.Hints[0].For)
}

func TestControlCharactersInStrings(t *testing.T) {
	stmts, err := parser.ParseStatements(Dialect{}, `CREATE TABLE t (a int) ENCRYPTION = 'a\0b'`)
	assert.NoError(t, err)
	create := stmts[0].(*ast.CreateTable)
	assert.Equal(t, kv("ENCRYPTION", str("a\x00b")), create.Options[0])
	assert.Equal(t, `CREATE TABLE t (a int) ENCRYPTION = 'a\0b'`, create.String())
}

func TestMySQLGrammar(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
	}{
		{"limit comma", "SELECT a FROM t LIMIT 5, 10", "SELECT a FROM t LIMIT 5, 10"},
		{"interval", "SELECT INTERVAL 1 + 1 DAY", "SELECT INTERVAL 1 + 1 DAY"},
		{"insert set", "INSERT INTO t SET a = 1, b = 'x'", "INSERT INTO t SET a = 1, b = 'x'"},
		{"set names", "SET NAMES utf8mb4 COLLATE utf8mb4_bin", "SET NAMES utf8mb4 COLLATE utf8mb4_bin"},
		{"grantee host", "GRANT SELECT ON db.* TO 'app'@'localhost'", "GRANT SELECT ON db.* TO 'app'@'localhost'"},
		{"create table select", "CREATE TABLE t2 AS SELECT a FROM t1", "CREATE TABLE t2 AS SELECT a FROM t1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.ParseStatements(Dialect{}, tt.sql)
			assert.NoError(t, err)
			assert.Equal(t, 1, len(stmts))
			assert.Equal(t, tt.expected, stmts[0].String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"CREATE TABLE `orders` (`id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT, `total` DECIMAL(10, 2) DEFAULT 0, PRIMARY KEY (`id`)) " +
			"ENGINE = InnoDB AUTO_INCREMENT = 10 DEFAULT CHARSET = utf8mb4 KEY_BLOCK_SIZE = 8 ROW_FORMAT = COMPRESSED " +
			"DATA DIRECTORY = '/data' INDEX DIRECTORY = '/idx' PACK_KEYS = DEFAULT STATS_AUTO_RECALC = 1 STATS_PERSISTENT = DEFAULT " +
			"STATS_SAMPLE_PAGES = 20 DELAY_KEY_WRITE = 0 COMPRESSION = 'ZLIB' ENCRYPTION = 'N' MAX_ROWS = 100 MIN_ROWS = 1 " +
			"AUTOEXTEND_SIZE = 4194304 AVG_ROW_LENGTH = 50 CHECKSUM = 1 CONNECTION = 'conn' ENGINE_ATTRIBUTE = '{}' " +
			"PASSWORD = 'p' SECONDARY_ENGINE_ATTRIBUTE = '{}' START TRANSACTION TABLESPACE ts1 STORAGE DISK " +
			"UNION = (a, `b c`) INSERT_METHOD = LAST",
		"LOCK TABLES t1 AS a READ LOCAL, `t 2` LOW_PRIORITY WRITE",
		"UNLOCK TABLES",
		"SELECT a DIV b + c, a DIV (b + c) AS q FROM t1 WHERE x DIV 2 = 1",
		`CREATE TABLE t (a int) ENCRYPTION = 'a\0b' PASSWORD = 'c\Zd' CONNECTION = 'back\\slash'`,
	}
	for _, sql := range tests {
		t.Run(sql, func(t *testing.T) {
			first, err := parser.ParseStatements(Dialect{}, sql)
			assert.NoError(t, err)
			rendered := first[0].String()

			second, err := parser.ParseStatements(Dialect{}, rendered)
			assert.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Equal(t, rendered, second[0].String())
		})
	}
}
