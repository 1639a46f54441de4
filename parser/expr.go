package parser

import (
	"github.com/shibukawa/dialectsql/ast"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// Operator precedences. Higher binds tighter.
const (
	PrecedenceLowest     = 0
	PrecedenceOr         = 5
	PrecedenceXor        = 6
	PrecedenceAnd        = 10
	PrecedenceNot        = 15
	PrecedenceIs         = 17
	PrecedenceComparison = 20
	PrecedencePlusMinus  = 30
	PrecedenceMulDivMod  = 40
	PrecedenceUnary      = 50
)

var dateTimeFields = []tok.Keyword{
	tok.YEAR, tok.QUARTER, tok.MONTH, tok.WEEK, tok.DAY, tok.HOUR, tok.MINUTE, tok.SECOND,
}

// ParseExpr parses a full expression.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.ParseSubexpr(PrecedenceLowest)
}

// ParseSubexpr parses an expression whose operators bind tighter than precedence.
func (p *Parser) ParseSubexpr(precedence int) (ast.Expr, error) {
	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		next := p.nextPrecedence()
		if precedence >= next {
			return expr, nil
		}
		expr, err = p.parseInfix(expr, next)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) nextPrecedence() int {
	t := p.PeekToken()
	switch t.Type {
	case tok.EQUAL, tok.NOT_EQUAL, tok.LESS_THAN, tok.LESS_EQUAL, tok.GREATER_THAN, tok.GREATER_EQUAL:
		return PrecedenceComparison
	case tok.PLUS, tok.MINUS:
		return PrecedencePlusMinus
	case tok.MULTIPLY, tok.DIVIDE, tok.MODULO:
		return PrecedenceMulDivMod
	case tok.WORD:
		if t.Quote != 0 {
			return PrecedenceLowest
		}
		switch t.Keyword {
		case tok.OR:
			return PrecedenceOr
		case tok.XOR:
			return PrecedenceXor
		case tok.AND:
			return PrecedenceAnd
		case tok.IS:
			return PrecedenceIs
		case tok.LIKE:
			return PrecedenceComparison
		case tok.NOT:
			if p.PeekNthToken(1).IsKeyword(tok.LIKE) {
				return PrecedenceComparison
			}
		case tok.DIV, tok.MOD:
			return PrecedenceMulDivMod
		}
	}
	return PrecedenceLowest
}

var infixOperators = map[tok.TokenType]ast.BinaryOperator{
	tok.EQUAL:         ast.OpEq,
	tok.NOT_EQUAL:     ast.OpNotEq,
	tok.LESS_THAN:     ast.OpLt,
	tok.LESS_EQUAL:    ast.OpLtEq,
	tok.GREATER_THAN:  ast.OpGt,
	tok.GREATER_EQUAL: ast.OpGtEq,
	tok.PLUS:          ast.OpPlus,
	tok.MINUS:         ast.OpMinus,
	tok.MULTIPLY:      ast.OpMultiply,
	tok.DIVIDE:        ast.OpDivide,
	tok.MODULO:        ast.OpModulo,
}

var infixKeywords = map[tok.Keyword]ast.BinaryOperator{
	tok.OR:   ast.OpOr,
	tok.XOR:  ast.OpXor,
	tok.AND:  ast.OpAnd,
	tok.LIKE: ast.OpLike,
	tok.DIV:  ast.OpMyIntegerDivide,
	tok.MOD:  ast.OpModulo,
}

func (p *Parser) parseInfix(left ast.Expr, precedence int) (ast.Expr, error) {
	start := p.index
	expr, handled, err := p.dialect.ParseInfix(p, left, precedence)
	if err != nil {
		return nil, err
	}
	if handled {
		return expr, nil
	}
	p.index = start

	t := p.NextToken()
	if op, ok := infixOperators[t.Type]; ok {
		return p.parseBinaryRight(left, op, precedence)
	}
	if t.Type == tok.WORD && t.Quote == 0 {
		if op, ok := infixKeywords[t.Keyword]; ok {
			return p.parseBinaryRight(left, op, precedence)
		}
		switch t.Keyword {
		case tok.NOT:
			if p.ParseKeyword(tok.LIKE) {
				return p.parseBinaryRight(left, ast.OpNotLike, precedence)
			}
		case tok.IS:
			negated := p.ParseKeyword(tok.NOT)
			if _, err := p.ExpectKeyword(tok.NULL); err != nil {
				return nil, err
			}
			return &ast.IsNull{Expr: left, Negated: negated}, nil
		}
	}
	return nil, p.Expected("an infix operator", t)
}

func (p *Parser) parseBinaryRight(left ast.Expr, op ast.BinaryOperator, precedence int) (ast.Expr, error) {
	right, err := p.ParseSubexpr(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parsePrefix() (ast.Expr, error) {
	t := p.NextToken()
	switch t.Type {
	case tok.NUMBER:
		n, err := numberFromToken(t)
		if err != nil {
			return nil, err
		}
		return ast.NewValue(n), nil
	case tok.STRING:
		return ast.NewValue(ast.SingleQuotedString(t.Value)), nil
	case tok.DOUBLE_QUOTED_STRING:
		return ast.NewValue(ast.DoubleQuotedString(t.Value)), nil
	case tok.MINUS, tok.PLUS:
		op := ast.OpUnaryMinus
		if t.Type == tok.PLUS {
			op = ast.OpUnaryPlus
		}
		expr, err := p.ParseSubexpr(PrecedenceUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Expr: expr}, nil
	case tok.OPENED_PARENS:
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
			return nil, err
		}
		return &ast.Nested{Expr: expr}, nil
	case tok.MULTIPLY:
		return &ast.Wildcard{}, nil
	case tok.WORD:
		return p.parseWordPrefix(t)
	}
	return nil, p.Expected("an expression", t)
}

func (p *Parser) parseWordPrefix(t tok.Token) (ast.Expr, error) {
	if t.Quote == 0 {
		switch t.Keyword {
		case tok.TRUE:
			return ast.NewValue(ast.BooleanValue(true)), nil
		case tok.FALSE:
			return ast.NewValue(ast.BooleanValue(false)), nil
		case tok.NULL:
			return ast.NewValue(ast.NullValue{}), nil
		case tok.NOT:
			expr, err := p.ParseSubexpr(PrecedenceNot)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: ast.OpNot, Expr: expr}, nil
		case tok.INTERVAL:
			return p.parseInterval()
		case tok.MATCH:
			if p.dialect.SupportsMatchAgainst() && p.PeekToken().Type == tok.OPENED_PARENS {
				return p.parseMatchAgainst()
			}
		}
	}

	p.PrevToken()
	name, err := p.parseCompoundName()
	if err != nil {
		return nil, err
	}
	if p.ConsumeToken(tok.OPENED_PARENS) {
		return p.parseFunctionArgs(name)
	}
	if len(name) == 1 {
		return &ast.Identifier{Ident: name[0]}, nil
	}
	return &ast.CompoundIdentifier{Parts: name}, nil
}

// parseCompoundName reads a.b.c where every part is a word.
func (p *Parser) parseCompoundName() (ast.ObjectName, error) {
	var name ast.ObjectName
	for {
		t := p.NextToken()
		if t.Type == tok.MULTIPLY && len(name) > 0 {
			name = append(name, ast.NewIdent("*"))
			return name, nil
		}
		if t.Type != tok.WORD {
			return nil, p.Expected("identifier", t)
		}
		name = append(name, ast.Ident{Value: t.Value, QuoteStyle: t.Quote})
		if !p.ConsumeToken(tok.DOT) {
			return name, nil
		}
	}
}

func (p *Parser) parseFunctionArgs(name ast.ObjectName) (ast.Expr, error) {
	fn := &ast.Function{Name: name}
	fn.Distinct = p.ParseKeyword(tok.DISTINCT)
	args, err := ParseCommaSeparated0(p, (*Parser).ParseExpr, tok.CLOSED_PARENS)
	if err != nil {
		return nil, err
	}
	fn.Args = args
	if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseInterval reads the rest of INTERVAL value [unit]. Dialects that
// require a qualifier accept a full expression as value and must name a unit.
func (p *Parser) parseInterval() (ast.Expr, error) {
	var (
		value ast.Expr
		err   error
	)
	if p.dialect.RequireIntervalQualifier() {
		value, err = p.ParseExpr()
	} else {
		value, err = p.parsePrefix()
	}
	if err != nil {
		return nil, err
	}

	unit := p.ParseOneOfKeywords(dateTimeFields...)
	if unit == tok.NoKeyword {
		if p.dialect.RequireIntervalQualifier() {
			return nil, p.Expected("date/time field", p.PeekToken())
		}
		return &ast.Interval{Value: value}, nil
	}
	return &ast.Interval{Value: value, Unit: unit.String()}, nil
}

// parseMatchAgainst reads the rest of MATCH (cols) AGAINST ('text' [modifier]).
func (p *Parser) parseMatchAgainst() (ast.Expr, error) {
	if _, err := p.ExpectToken(tok.OPENED_PARENS); err != nil {
		return nil, err
	}
	columns, err := ParseCommaSeparated(p, (*Parser).ParseObjectName)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(tok.AGAINST); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(tok.OPENED_PARENS); err != nil {
		return nil, err
	}

	t := p.NextToken()
	var against ast.Value
	switch t.Type {
	case tok.STRING:
		against = ast.SingleQuotedString(t.Value)
	case tok.DOUBLE_QUOTED_STRING:
		against = ast.DoubleQuotedString(t.Value)
	default:
		return nil, p.Expected("literal string", t)
	}

	modifier := ast.SearchDefault
	switch {
	case p.ParseKeywords(tok.IN, tok.NATURAL, tok.LANGUAGE, tok.MODE):
		modifier = ast.SearchNaturalLanguage
		if p.ParseKeywords(tok.WITH, tok.QUERY, tok.EXPANSION) {
			modifier = ast.SearchNaturalLanguageWithQueryExpansion
		}
	case p.ParseKeywords(tok.IN, tok.BOOLEAN, tok.MODE):
		modifier = ast.SearchBoolean
	case p.ParseKeywords(tok.WITH, tok.QUERY, tok.EXPANSION):
		modifier = ast.SearchWithQueryExpansion
	}

	if _, err := p.ExpectToken(tok.CLOSED_PARENS); err != nil {
		return nil, err
	}
	return &ast.MatchAgainst{Columns: columns, Against: against, Modifier: modifier}, nil
}
