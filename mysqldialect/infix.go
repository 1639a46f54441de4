package mysqldialect

import (
	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/parser"
	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// ParseInfix handles the integer division operator DIV. The right operand is
// a full expression, so the precedence passed by the host is not used.
func (Dialect) ParseInfix(p *parser.Parser, left ast.Expr, _ int) (ast.Expr, bool, error) {
	if !p.ParseKeyword(tok.DIV) {
		return nil, false, nil
	}
	right, err := p.ParseExpr()
	if err != nil {
		return nil, true, err
	}
	return &ast.BinaryOp{Left: left, Op: ast.OpMyIntegerDivide, Right: right}, true, nil
}
