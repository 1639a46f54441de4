package ast

// BinaryOperator is an infix operator.
type BinaryOperator int

const (
	OpPlus BinaryOperator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpModulo
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAnd
	OpOr
	OpXor
	OpLike
	OpNotLike
	// OpMyIntegerDivide is MySQL's DIV.
	OpMyIntegerDivide
)

var binaryOperatorText = [...]string{
	OpPlus:            "+",
	OpMinus:           "-",
	OpMultiply:        "*",
	OpDivide:          "/",
	OpModulo:          "%",
	OpEq:              "=",
	OpNotEq:           "<>",
	OpLt:              "<",
	OpLtEq:            "<=",
	OpGt:              ">",
	OpGtEq:            ">=",
	OpAnd:             "AND",
	OpOr:              "OR",
	OpXor:             "XOR",
	OpLike:            "LIKE",
	OpNotLike:         "NOT LIKE",
	OpMyIntegerDivide: "DIV",
}

func (o BinaryOperator) String() string {
	if o < 0 || int(o) >= len(binaryOperatorText) {
		return "?"
	}
	return binaryOperatorText[o]
}

// UnaryOperator is a prefix operator.
type UnaryOperator int

const (
	OpUnaryMinus UnaryOperator = iota
	OpUnaryPlus
	OpNot
)

func (o UnaryOperator) String() string {
	switch o {
	case OpUnaryMinus:
		return "-"
	case OpUnaryPlus:
		return "+"
	default:
		return "NOT"
	}
}
