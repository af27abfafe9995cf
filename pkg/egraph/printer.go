package egraph

import "fmt"

// printExpression renders an Expression as infix text: Const -> digits,
// Var -> name, MetaVar -> "?" + name, Neg(x) -> "-(x)", binary ops ->
// "(l op r)". Well-formed arity is assumed; malformed inputs yield a
// placeholder glyph rather than failing.
func printExpression(e Expression) string {
	switch e.Op {
	case OpConst:
		return fmt.Sprintf("%d", e.IntValue)
	case OpVar:
		return e.Name
	case OpMetaVar:
		return "?" + e.Name
	case OpNeg:
		if len(e.Children) == 1 {
			return fmt.Sprintf("-(%s)", printExpression(e.Children[0]))
		}
		return "-(?)"
	case OpAdd:
		return printBinary(e, "+")
	case OpSub:
		return printBinary(e, "-")
	case OpMul:
		return printBinary(e, "*")
	case OpDiv:
		return printBinary(e, "/")
	default:
		return "?"
	}
}

func printBinary(e Expression, symbol string) string {
	if len(e.Children) == 2 {
		return fmt.Sprintf("(%s %s %s)", printExpression(e.Children[0]), symbol, printExpression(e.Children[1]))
	}
	return fmt.Sprintf("(? %s ?)", symbol)
}
