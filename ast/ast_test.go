package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIdentString(t *testing.T) {
	tests := []struct {
		name     string
		ident    Ident
		expected string
	}{
		{"bare", NewIdent("users"), "users"},
		{"backtick", NewQuotedIdent("order", '`'), "`order`"},
		{"backtick doubled", NewQuotedIdent("a`b", '`'), "`a``b`"},
		{"single quote", NewQuotedIdent("it's", '\''), "'it''s'"},
		{"double quote", NewQuotedIdent("x", '"'), `"x"`},
		{"bracket", NewQuotedIdent("a]b", '['), "[a]]b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ident.String())
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "'50\\\\%'", SingleQuotedString(`50\%`).String())
	assert.Equal(t, "'a''b'", SingleQuotedString("a'b").String())
	assert.Equal(t, "10L", NumberValue{Raw: "10", Long: true}.String())
	assert.Equal(t, "1.5", NewNumber("1.5").String())
	assert.Equal(t, "TRUE", BooleanValue(true).String())
	assert.Equal(t, "NULL", NullValue{}.String())
}

func TestOptionString(t *testing.T) {
	tests := []struct {
		name     string
		option   SqlOption
		expected string
	}{
		{
			name:     "key value",
			option:   &KeyValueOption{Key: NewIdent("KEY_BLOCK_SIZE"), Value: NewValue(NewNumber("8"))},
			expected: "KEY_BLOCK_SIZE = 8",
		},
		{
			name:     "directory",
			option:   &KeyValueOption{Key: NewIdent("DATA DIRECTORY"), Value: NewValue(SingleQuotedString("/var/data"))},
			expected: "DATA DIRECTORY = '/var/data'",
		},
		{
			name:     "ident",
			option:   &IdentOption{Name: NewIdent("START TRANSACTION")},
			expected: "START TRANSACTION",
		},
		{
			name:     "tablespace",
			option:   &TableSpaceOption{Name: "ts1"},
			expected: "TABLESPACE ts1",
		},
		{
			name:     "tablespace with storage",
			option:   &TableSpaceOption{Name: "ts1", Storage: Storage(StorageMemory)},
			expected: "TABLESPACE ts1 STORAGE MEMORY",
		},
		{
			name:     "tablespace quoted name",
			option:   &TableSpaceOption{Name: "my space", Storage: Storage(StorageDisk)},
			expected: "TABLESPACE 'my space' STORAGE DISK",
		},
		{
			name:     "union",
			option:   &UnionOption{Tables: []Ident{NewIdent("t1"), NewQuotedIdent("t2", '`')}},
			expected: "UNION = (t1, `t2`)",
		},
		{
			name:     "empty union",
			option:   &UnionOption{},
			expected: "UNION = ()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.option.String())
		})
	}
}

func TestLockString(t *testing.T) {
	alias := NewIdent("a")
	stmt := &LockTables{Tables: []LockTable{
		{Table: NewIdent("t1"), Alias: &alias, LockType: ReadLock{Local: true}},
		{Table: NewIdent("t2"), LockType: WriteLock{LowPriority: true}},
		{Table: NewIdent("t3"), LockType: WriteLock{}},
	}}

	assert.Equal(t, "LOCK TABLES t1 AS a READ LOCAL, t2 LOW_PRIORITY WRITE, t3 WRITE", stmt.String())
	assert.Equal(t, "UNLOCK TABLES", (&UnlockTables{}).String())
}

func TestExprString(t *testing.T) {
	expr := &BinaryOp{
		Left:  &Identifier{Ident: NewIdent("a")},
		Op:    OpMyIntegerDivide,
		Right: &BinaryOp{Left: &Identifier{Ident: NewIdent("b")}, Op: OpPlus, Right: NewValue(NewNumber("1"))},
	}
	assert.Equal(t, "a DIV b + 1", expr.String())

	match := &MatchAgainst{
		Columns:  []ObjectName{{NewIdent("title")}, {NewIdent("body")}},
		Against:  SingleQuotedString("database"),
		Modifier: SearchBoolean,
	}
	assert.Equal(t, "MATCH (title, body) AGAINST ('database' IN BOOLEAN MODE)", match.String())

	interval := &Interval{Value: NewValue(NewNumber("1")), Unit: "DAY"}
	assert.Equal(t, "INTERVAL 1 DAY", interval.String())

	fn := &Function{Name: ObjectName{NewIdent("COUNT")}, Args: []Expr{&Wildcard{}}}
	assert.Equal(t, "COUNT(*)", fn.String())
}

func TestStatementString(t *testing.T) {
	asc := false
	sel := &Select{
		Projection: []SelectItem{{Expr: &Identifier{Ident: NewIdent("id")}}},
		From: &TableFactor{
			Name:  ObjectName{NewIdent("users")},
			Hints: []TableHint{{Type: "USE", Keyword: "INDEX", Indexes: []Ident{NewIdent("idx")}}},
		},
		OrderBy:    []OrderByExpr{{Expr: &Identifier{Ident: NewIdent("id")}, Asc: &asc}},
		Limit:      NewValue(NewNumber("10")),
		Offset:     NewValue(NewNumber("5")),
		LimitComma: true,
	}
	assert.Equal(t, "SELECT id FROM users USE INDEX (idx) ORDER BY id DESC LIMIT 5, 10", sel.String())

	create := &CreateTable{
		Name: ObjectName{NewIdent("t")},
		Columns: []ColumnDef{{
			Name:     NewIdent("id"),
			DataType: DataType{Name: "int", Modifiers: []string{"unsigned"}},
			Options:  []ColumnOption{{Kind: ColumnNotNull}, {Kind: ColumnAutoIncrement}},
		}},
		Constraints: []TableConstraint{{Kind: ConstraintPrimaryKey, Columns: []Ident{NewIdent("id")}}},
		Options:     []SqlOption{&KeyValueOption{Key: NewIdent("ENGINE"), Value: &Identifier{Ident: NewIdent("InnoDB")}}},
	}
	assert.Equal(t, "CREATE TABLE t (id int unsigned NOT NULL AUTO_INCREMENT, PRIMARY KEY (id)) ENGINE = InnoDB", create.String())

	host := NewQuotedIdent("localhost", '\'')
	grant := &Grant{
		Privileges: []string{"SELECT", "INSERT"},
		Object:     []string{"db", "*"},
		Grantees:   []Grantee{{User: NewQuotedIdent("app", '\''), Host: &host}},
	}
	assert.Equal(t, "GRANT SELECT, INSERT ON db.* TO 'app'@'localhost'", grant.String())

	insert := &Insert{
		Table:       ObjectName{NewIdent("t")},
		Assignments: []Assignment{{Target: ObjectName{NewIdent("a")}, Value: NewValue(NewNumber("1"))}},
	}
	assert.Equal(t, "INSERT INTO t SET a = 1", insert.String())
}
