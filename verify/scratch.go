package verify

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/shibukawa/dialectsql/ast"
)

const scratchPrefix = "dialectsql_"

// scratchTables maps the lower-cased table name of a verified CREATE TABLE
// to the scratch table it was created as.
type scratchTables map[string]ast.ObjectName

// add registers a fresh scratch table for name and returns it. Any schema
// qualifier of name is kept.
func (s scratchTables) add(name ast.ObjectName) ast.ObjectName {
	scratch := slices.Clone(name)
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	scratch[len(scratch)-1] = ast.NewQuotedIdent(scratchPrefix+id, '`')
	s[strings.ToLower(name[len(name)-1].Value)] = scratch

	return scratch
}

// createStatement is stmt aimed at its scratch table. IF NOT EXISTS is
// dropped so the server always builds the table from the statement.
func (s scratchTables) createStatement(stmt *ast.CreateTable) *ast.CreateTable {
	scratch := *stmt
	scratch.Name = s.add(stmt.Name)
	scratch.IfNotExists = false

	return &scratch
}

// lockStatement rewrites table names of stmt that refer to scratch tables.
func (s scratchTables) lockStatement(stmt *ast.LockTables) *ast.LockTables {
	tables := slices.Clone(stmt.Tables)
	for i, table := range tables {
		if scratch, ok := s[strings.ToLower(table.Table.Value)]; ok {
			tables[i].Table = scratch[len(scratch)-1]
		}
	}

	return &ast.LockTables{Tables: tables}
}

// names lists the scratch tables in a stable order.
func (s scratchTables) names() []string {
	names := make([]string, 0, len(s))
	for _, name := range s {
		names = append(names, name.String())
	}
	slices.Sort(names)

	return names
}
