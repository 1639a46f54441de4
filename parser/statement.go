package parser

import (
	"strings"

	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// ParseStatement parses one statement. The dialect hook runs first.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	start := p.index
	stmt, handled, err := p.dialect.ParseStatement(p)
	if err != nil {
		return nil, err
	}
	if handled {
		return stmt, nil
	}
	p.index = start

	t := p.PeekToken()
	if t.Type == tok.WORD && t.Quote == 0 {
		switch t.Keyword {
		case tok.CREATE:
			return p.parseCreate()
		case tok.SELECT:
			return p.ParseSelect()
		case tok.INSERT:
			return p.parseInsert()
		case tok.SET:
			return p.parseSet()
		case tok.GRANT:
			return p.parseGrant()
		}
	}
	return nil, p.Expected("an SQL statement", t)
}

// ParseSelect parses SELECT ... [FROM] [WHERE] [ORDER BY] [LIMIT].
func (p *Parser) ParseSelect() (*ast.Select, error) {
	if _, err := p.ExpectKeyword(tok.SELECT); err != nil {
		return nil, err
	}
	sel := &ast.Select{Distinct: p.ParseKeyword(tok.DISTINCT)}

	projection, err := ParseCommaSeparated(p, (*Parser).parseSelectItem)
	if err != nil {
		return nil, err
	}
	sel.Projection = projection

	if p.ParseKeyword(tok.FROM) {
		if sel.From, err = p.parseTableFactor(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(tok.WHERE) {
		if sel.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(tok.ORDER, tok.BY) {
		if sel.OrderBy, err = ParseCommaSeparated(p, (*Parser).parseOrderByExpr); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(tok.LIMIT) {
		if sel.Limit, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		switch {
		case p.dialect.SupportsLimitComma() && p.ConsumeToken(tok.COMMA):
			sel.Offset = sel.Limit
			sel.LimitComma = true
			if sel.Limit, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		case p.ParseKeyword(tok.OFFSET):
			if sel.Offset, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	}
	return sel, nil
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.SelectItem{}, err
	}
	if _, ok := expr.(*ast.Wildcard); ok {
		return ast.SelectItem{Expr: expr}, nil
	}
	alias, err := p.ParseOptionalAlias(tok.ReservedForTableAlias)
	if err != nil {
		return ast.SelectItem{}, err
	}
	return ast.SelectItem{Expr: expr, Alias: alias}, nil
}

func (p *Parser) parseTableFactor() (*ast.TableFactor, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	alias, err := p.ParseTableAlias()
	if err != nil {
		return nil, err
	}
	factor := &ast.TableFactor{Name: name, Alias: alias}
	if p.dialect.SupportsTableHints() {
		if factor.Hints, err = p.parseTableHints(); err != nil {
			return nil, err
		}
	}
	return factor, nil
}

// parseTableHints reads USE|IGNORE|FORCE {INDEX|KEY} [FOR target] (names).
func (p *Parser) parseTableHints() ([]ast.TableHint, error) {
	var hints []ast.TableHint
	for {
		hintType := p.ParseOneOfKeywords(tok.USE, tok.IGNORE, tok.FORCE)
		if hintType == tok.NoKeyword {
			return hints, nil
		}
		t := p.NextToken()
		if !t.IsKeyword(tok.INDEX) && !t.IsKeyword(tok.KEY) {
			return nil, p.Expected("INDEX or KEY", t)
		}
		hint := ast.TableHint{Type: hintType.String(), Keyword: t.Keyword.String()}
		if p.ParseKeyword(tok.FOR) {
			switch {
			case p.ParseKeyword(tok.JOIN):
				hint.For = "JOIN"
			case p.ParseKeywords(tok.ORDER, tok.BY):
				hint.For = "ORDER BY"
			case p.ParseKeywords(tok.GROUP, tok.BY):
				hint.For = "GROUP BY"
			default:
				return nil, p.Expected("JOIN, ORDER BY or GROUP BY", p.PeekToken())
			}
		}
		if _, err := p.ExpectToken(tok.OPENED_PARENS); err != nil {
			return nil, err
		}
		indexes, err := ParseCommaSeparated0(p, (*Parser).ParseIdentifier, tok.CLOSED_PARENS)
		if err != nil {
			return nil, err
		}
		hint.Indexes = indexes
		if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
			return nil, err
		}
		hints = append(hints, hint)
	}
}

func (p *Parser) parseOrderByExpr() (ast.OrderByExpr, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.OrderByExpr{}, err
	}
	item := ast.OrderByExpr{Expr: expr}
	switch p.ParseOneOfKeywords(tok.ASC, tok.DESC) {
	case tok.ASC:
		asc := true
		item.Asc = &asc
	case tok.DESC:
		asc := false
		item.Asc = &asc
	}
	return item, nil
}

func (p *Parser) parseInsert() (ast.Statement, error) {
	if _, err := p.ExpectKeyword(tok.INSERT); err != nil {
		return nil, err
	}
	p.ParseKeyword(tok.INTO)
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	insert := &ast.Insert{Table: table}

	if p.PeekToken().Type == tok.OPENED_PARENS && !p.PeekNthToken(1).IsKeyword(tok.SELECT) {
		p.NextToken()
		if insert.Columns, err = ParseCommaSeparated0(p, (*Parser).ParseIdentifier, tok.CLOSED_PARENS); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
			return nil, err
		}
	}

	if p.dialect.SupportsInsertSet() && len(insert.Columns) == 0 && p.ParseKeyword(tok.SET) {
		if insert.Assignments, err = ParseCommaSeparated(p, (*Parser).parseAssignment); err != nil {
			return nil, err
		}
		return insert, nil
	}

	if _, err := p.ExpectKeyword(tok.VALUES); err != nil {
		return nil, err
	}
	insert.Values, err = ParseCommaSeparated(p, func(p *Parser) ([]ast.Expr, error) {
		if _, err := p.ExpectToken(tok.OPENED_PARENS); err != nil {
			return nil, err
		}
		row, err := ParseCommaSeparated0(p, (*Parser).ParseExpr, tok.CLOSED_PARENS)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
			return nil, err
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return insert, nil
}

func (p *Parser) parseAssignment() (ast.Assignment, error) {
	target, err := p.ParseObjectName()
	if err != nil {
		return ast.Assignment{}, err
	}
	if _, err := p.ExpectToken(tok.EQUAL); err != nil {
		return ast.Assignment{}, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Target: target, Value: value}, nil
}

func (p *Parser) parseSet() (ast.Statement, error) {
	if _, err := p.ExpectKeyword(tok.SET); err != nil {
		return nil, err
	}

	if p.dialect.SupportsSetNames() && p.ParseKeyword(tok.NAMES) {
		stmt := &ast.SetNames{}
		if p.ParseKeyword(tok.DEFAULT) {
			stmt.Charset = ast.NewIdent("DEFAULT")
			return stmt, nil
		}
		charset, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Charset = charset
		if p.ParseKeyword(tok.COLLATE) {
			collation, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			stmt.Collation = &collation
		}
		return stmt, nil
	}

	if p.dialect.SupportsCommaSeparatedSetAssignments() {
		assignments, err := ParseCommaSeparated(p, (*Parser).parseAssignment)
		if err != nil {
			return nil, err
		}
		return &ast.SetVariables{Assignments: assignments}, nil
	}
	assignment, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.SetVariables{Assignments: []ast.Assignment{assignment}}, nil
}

// parseGrant reads GRANT privileges ON object TO grantees.
func (p *Parser) parseGrant() (ast.Statement, error) {
	if _, err := p.ExpectKeyword(tok.GRANT); err != nil {
		return nil, err
	}
	grant := &ast.Grant{}

	var words []string
	for {
		t := p.NextToken()
		switch {
		case t.Type == tok.WORD && t.Quote == 0 && t.Keyword != tok.ON:
			words = append(words, strings.ToUpper(t.Value))
			continue
		case t.Type == tok.COMMA && len(words) > 0:
			grant.Privileges = append(grant.Privileges, strings.Join(words, " "))
			words = nil
			continue
		case t.IsKeyword(tok.ON) && len(words) > 0:
			grant.Privileges = append(grant.Privileges, strings.Join(words, " "))
		default:
			return nil, p.Expected("privilege", t)
		}
		break
	}

	for {
		t := p.NextToken()
		switch t.Type {
		case tok.MULTIPLY:
			grant.Object = append(grant.Object, "*")
		case tok.WORD:
			grant.Object = append(grant.Object, ast.Ident{Value: t.Value, QuoteStyle: t.Quote}.String())
		default:
			return nil, p.Expected("grant object", t)
		}
		if !p.ConsumeToken(tok.DOT) {
			break
		}
	}

	if _, err := p.ExpectKeyword(tok.TO); err != nil {
		return nil, err
	}
	grantees, err := ParseCommaSeparated(p, (*Parser).parseGrantee)
	if err != nil {
		return nil, err
	}
	grant.Grantees = grantees
	return grant, nil
}

// parseGrantee reads a user name. Dialects with user@host accounts also
// accept 'user'@'host', which tokenizes either with an AT token, with a
// lone "@" word, or with the host glued to the "@" word.
func (p *Parser) parseGrantee() (ast.Grantee, error) {
	user, err := p.ParseIdentifier()
	if err != nil {
		return ast.Grantee{}, err
	}
	grantee := ast.Grantee{User: user}
	if !p.dialect.SupportsUserHostGrantee() {
		return grantee, nil
	}

	t := p.PeekToken()
	switch {
	case t.Type == tok.AT, t.Type == tok.WORD && t.Quote == 0 && t.Value == "@":
		p.NextToken()
		host, err := p.ParseIdentifier()
		if err != nil {
			return ast.Grantee{}, err
		}
		grantee.Host = &host
	case t.Type == tok.WORD && t.Quote == 0 && len(t.Value) > 1 && t.Value[0] == '@':
		p.NextToken()
		host := ast.NewIdent(t.Value[1:])
		grantee.Host = &host
	}
	return grantee, nil
}
