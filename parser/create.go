package parser

import (
	"strings"

	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

func (p *Parser) parseCreate() (ast.Statement, error) {
	if _, err := p.ExpectKeyword(tok.CREATE); err != nil {
		return nil, err
	}
	if p.ParseKeyword(tok.VIEW) {
		return p.parseCreateView()
	}
	temporary := p.ParseKeyword(tok.TEMPORARY)
	if _, err := p.ExpectKeyword(tok.TABLE); err != nil {
		return nil, err
	}
	return p.parseCreateTable(temporary)
}

func (p *Parser) parseCreateView() (ast.Statement, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(tok.AS); err != nil {
		return nil, err
	}
	query, err := p.ParseSelect()
	if err != nil {
		return nil, err
	}
	return &ast.CreateView{Name: name, Query: query}, nil
}

func (p *Parser) parseCreateTable(temporary bool) (ast.Statement, error) {
	stmt := &ast.CreateTable{
		Temporary:   temporary,
		IfNotExists: p.ParseKeywords(tok.IF, tok.NOT, tok.EXISTS),
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if p.PeekToken().Type == tok.OPENED_PARENS && !p.PeekNthToken(1).IsKeyword(tok.SELECT) {
		p.NextToken()
		if err := p.parseTableElements(stmt); err != nil {
			return nil, err
		}
	}

	if stmt.Options, err = p.ParseTableOptions(); err != nil {
		return nil, err
	}

	if p.dialect.SupportsCreateTableSelect() {
		stmt.AsKeyword = p.ParseKeyword(tok.AS)
		if stmt.AsKeyword || p.PeekKeyword(tok.SELECT) {
			if stmt.Query, err = p.ParseSelect(); err != nil {
				return nil, err
			}
		}
	}
	return stmt, nil
}

func (p *Parser) parseTableElements(stmt *ast.CreateTable) error {
	for {
		switch {
		case p.PeekKeyword(tok.PRIMARY), p.PeekKeyword(tok.UNIQUE), p.PeekKeyword(tok.KEY), p.PeekKeyword(tok.INDEX):
			constraint, err := p.parseTableConstraint()
			if err != nil {
				return err
			}
			stmt.Constraints = append(stmt.Constraints, constraint)
		default:
			column, err := p.parseColumnDef()
			if err != nil {
				return err
			}
			stmt.Columns = append(stmt.Columns, column)
		}
		if !p.ConsumeToken(tok.COMMA) {
			break
		}
	}
	_, err := p.ExpectToken(tok.CLOSED_PARENS)
	return err
}

func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	var constraint ast.TableConstraint
	switch {
	case p.ParseKeywords(tok.PRIMARY, tok.KEY):
		constraint.Kind = ast.ConstraintPrimaryKey
	case p.ParseKeyword(tok.UNIQUE):
		constraint.Kind = ast.ConstraintUnique
		p.ParseOneOfKeywords(tok.KEY, tok.INDEX)
	default:
		p.NextToken()
		constraint.Kind = ast.ConstraintIndex
	}
	if p.PeekToken().Type != tok.OPENED_PARENS {
		name, err := p.ParseIdentifier()
		if err != nil {
			return constraint, err
		}
		constraint.Name = &name
	}
	if _, err := p.ExpectToken(tok.OPENED_PARENS); err != nil {
		return constraint, err
	}
	columns, err := ParseCommaSeparated(p, (*Parser).ParseIdentifier)
	if err != nil {
		return constraint, err
	}
	constraint.Columns = columns
	_, err = p.ExpectToken(tok.CLOSED_PARENS)
	return constraint, err
}

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	dataType, err := p.parseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	column := ast.ColumnDef{Name: name, DataType: dataType}
	for {
		option, ok, err := p.parseColumnOption()
		if err != nil {
			return ast.ColumnDef{}, err
		}
		if !ok {
			return column, nil
		}
		column.Options = append(column.Options, option)
	}
}

var dataTypeModifiers = []string{"UNSIGNED", "SIGNED", "ZEROFILL"}

func (p *Parser) parseDataType() (ast.DataType, error) {
	t := p.NextToken()
	if t.Type != tok.WORD {
		return ast.DataType{}, p.Expected("a data type name", t)
	}
	dataType := ast.DataType{Name: t.Value}
	if p.ConsumeToken(tok.OPENED_PARENS) {
		args, err := ParseCommaSeparated(p, (*Parser).ParseExpr)
		if err != nil {
			return ast.DataType{}, err
		}
		dataType.Args = args
		if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
			return ast.DataType{}, err
		}
	}
	for {
		t := p.PeekToken()
		if t.Type != tok.WORD || t.Quote != 0 || !isDataTypeModifier(t.Value) {
			return dataType, nil
		}
		p.NextToken()
		dataType.Modifiers = append(dataType.Modifiers, t.Value)
	}
}

func isDataTypeModifier(word string) bool {
	for _, m := range dataTypeModifiers {
		if strings.EqualFold(m, word) {
			return true
		}
	}
	return false
}

func (p *Parser) parseColumnOption() (ast.ColumnOption, bool, error) {
	switch {
	case p.ParseKeywords(tok.NOT, tok.NULL):
		return ast.ColumnOption{Kind: ast.ColumnNotNull}, true, nil
	case p.ParseKeyword(tok.NULL):
		return ast.ColumnOption{Kind: ast.ColumnNull}, true, nil
	case p.ParseKeyword(tok.DEFAULT):
		value, err := p.ParseSubexpr(PrecedenceIs)
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnDefault, Value: value}, true, nil
	case p.ParseKeyword(tok.AUTO_INCREMENT):
		return ast.ColumnOption{Kind: ast.ColumnAutoIncrement}, true, nil
	case p.ParseKeywords(tok.PRIMARY, tok.KEY):
		return ast.ColumnOption{Kind: ast.ColumnPrimaryKey}, true, nil
	case p.ParseKeyword(tok.UNIQUE):
		p.ParseKeyword(tok.KEY)
		return ast.ColumnOption{Kind: ast.ColumnUnique}, true, nil
	case p.ParseKeyword(tok.COMMENT):
		s, err := p.ParseLiteralString()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnComment, Value: ast.NewValue(ast.SingleQuotedString(s))}, true, nil
	case p.ParseKeywords(tok.CHARACTER, tok.SET), p.ParseKeyword(tok.CHARSET):
		name, err := p.ParseIdentifier()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnCharacterSet, Name: &name}, true, nil
	case p.ParseKeyword(tok.COLLATE):
		name, err := p.ParseIdentifier()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnCollate, Name: &name}, true, nil
	}
	return ast.ColumnOption{}, false, nil
}

// ParseTableOptions reads table options until none matches. Each option is
// offered to the dialect first; options may be separated by commas.
func (p *Parser) ParseTableOptions() ([]ast.SqlOption, error) {
	var options []ast.SqlOption
	afterComma := false
	for {
		start := p.index
		option, err := p.dialect.ParsePlainOption(p)
		if err != nil {
			return nil, err
		}
		if option == nil {
			p.index = start
			if option, err = p.parseGenericOption(); err != nil {
				return nil, err
			}
		}
		if option == nil {
			if afterComma {
				return nil, p.Expected("table option", p.PeekToken())
			}
			return options, nil
		}
		options = append(options, option)
		afterComma = p.ConsumeToken(tok.COMMA)
	}
}

// parseGenericOption handles the options every dialect understands:
// ENGINE, AUTO_INCREMENT, [DEFAULT] CHARACTER SET/CHARSET, [DEFAULT] COLLATE
// and COMMENT.
func (p *Parser) parseGenericOption() (ast.SqlOption, error) {
	var key string
	switch {
	case p.ParseKeyword(tok.ENGINE):
		key = "ENGINE"
	case p.ParseKeyword(tok.AUTO_INCREMENT):
		p.ConsumeToken(tok.EQUAL)
		n, err := p.ParseNumberValue()
		if err != nil {
			return nil, err
		}
		return &ast.KeyValueOption{Key: ast.NewIdent("AUTO_INCREMENT"), Value: ast.NewValue(n)}, nil
	case p.ParseKeyword(tok.COMMENT):
		p.ConsumeToken(tok.EQUAL)
		s, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		return &ast.KeyValueOption{Key: ast.NewIdent("COMMENT"), Value: ast.NewValue(ast.SingleQuotedString(s))}, nil
	case p.ParseKeywords(tok.DEFAULT, tok.CHARACTER, tok.SET):
		key = "DEFAULT CHARACTER SET"
	case p.ParseKeywords(tok.DEFAULT, tok.CHARSET):
		key = "DEFAULT CHARSET"
	case p.ParseKeywords(tok.DEFAULT, tok.COLLATE):
		key = "DEFAULT COLLATE"
	case p.ParseKeywords(tok.CHARACTER, tok.SET):
		key = "CHARACTER SET"
	case p.ParseKeyword(tok.CHARSET):
		key = "CHARSET"
	case p.ParseKeyword(tok.COLLATE):
		key = "COLLATE"
	default:
		return nil, nil
	}

	p.ConsumeToken(tok.EQUAL)
	value, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.KeyValueOption{Key: ast.NewIdent(key), Value: &ast.Identifier{Ident: value}}, nil
}
