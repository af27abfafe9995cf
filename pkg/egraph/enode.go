package egraph

// ENode is an operator applied to an ordered list of e-class identifiers
// (not subtrees). MetaVar tags never appear in e-nodes stored in a
// graph — they are a pattern-language construct only.
type ENode struct {
	Op       Operator
	IntValue int
	Name     string
	Children []int
}

// sameShape reports whether n has the same tag, scalar payload, and
// arity as expr — the "could this node represent expr" check used by
// both insertion and matching, before descending into children.
func (n ENode) sameShape(expr Expression) bool {
	if n.Op != expr.Op || len(n.Children) != len(expr.Children) {
		return false
	}
	switch n.Op {
	case OpConst:
		return n.IntValue == expr.IntValue
	case OpVar:
		return n.Name == expr.Name
	default:
		return true
	}
}

// toExpression builds a leaf Expression carrying n's own tag and scalar
// payload, with no children populated. Callers fill in Children once
// the recursive child expansions are known.
func (n ENode) toExpression() Expression {
	return Expression{Op: n.Op, IntValue: n.IntValue, Name: n.Name}
}
