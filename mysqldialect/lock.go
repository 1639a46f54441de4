package mysqldialect

import (
	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// lockTypeKeywords can not be used as implicit aliases in LOCK TABLES.
var lockTypeKeywords = []tok.Keyword{tok.READ, tok.WRITE, tok.LOW_PRIORITY}

// ParseStatement handles LOCK TABLES and UNLOCK TABLES.
func (Dialect) ParseStatement(p *parser.Parser) (ast.Statement, bool, error) {
	switch {
	case p.ParseKeywords(tok.LOCK, tok.TABLES):
		tables, err := parser.ParseCommaSeparated(p, parseLockTable)
		if err != nil {
			return nil, true, err
		}
		return &ast.LockTables{Tables: tables}, true, nil
	case p.ParseKeywords(tok.UNLOCK, tok.TABLES):
		return &ast.UnlockTables{}, true, nil
	}
	return nil, false, nil
}

func parseLockTable(p *parser.Parser) (ast.LockTable, error) {
	table, err := p.ParseIdentifier()
	if err != nil {
		return ast.LockTable{}, err
	}
	alias, err := p.ParseOptionalAlias(lockTypeKeywords)
	if err != nil {
		return ast.LockTable{}, err
	}
	lockType, err := parseLockTablesType(p)
	if err != nil {
		return ast.LockTable{}, err
	}
	return ast.LockTable{Table: table, Alias: alias, LockType: lockType}, nil
}

// parseLockTablesType reads READ [LOCAL] | [LOW_PRIORITY] WRITE.
func parseLockTablesType(p *parser.Parser) (ast.LockTableType, error) {
	switch {
	case p.ParseKeyword(tok.READ):
		return ast.ReadLock{Local: p.ParseKeyword(tok.LOCAL)}, nil
	case p.ParseKeyword(tok.WRITE):
		return ast.WriteLock{}, nil
	case p.ParseKeywords(tok.LOW_PRIORITY, tok.WRITE):
		return ast.WriteLock{LowPriority: true}, nil
	}
	return nil, p.Expected("a lock type in LOCK TABLES", p.PeekToken())
}
