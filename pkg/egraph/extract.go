package egraph

// ExtractAll enumerates every Expression reachable from class id (via
// its root) within recursion depth maxDepth. The top-level call is
// depth 0; each descent into a child class
// increments depth. Results are ordered by class-node insertion order,
// then by cartesian-product order over child expansions (first child
// varying slowest) — this order is part of the contract, tests rely on
// it being deterministic. Duplicates are possible and not filtered.
func (g *EGraph) ExtractAll(id, maxDepth int) []Expression {
	return g.extractAt(id, maxDepth, 0)
}

func (g *EGraph) extractAt(id, maxDepth, depth int) []Expression {
	if depth > maxDepth {
		return nil
	}
	root := g.Find(id)
	var out []Expression
	for _, node := range g.classes[root].Nodes {
		out = append(out, g.extractNode(node, maxDepth, depth)...)
	}
	return out
}

func (g *EGraph) extractNode(node ENode, maxDepth, depth int) []Expression {
	childLists := make([][]Expression, len(node.Children))
	for i, childID := range node.Children {
		childLists[i] = g.extractAt(childID, maxDepth, depth+1)
	}

	template := node.toExpression()
	var out []Expression
	for _, tuple := range cartesianProduct(childLists) {
		e := template
		e.Children = tuple
		out = append(out, e)
	}
	return out
}

// cartesianProduct computes the cartesian product of lists, preserving
// the order: first list varies slowest, last list varies fastest. An
// empty input yields a single empty tuple (the identity for the
// product), matching a leaf e-node's (childless) expansion.
func cartesianProduct(lists [][]Expression) [][]Expression {
	if len(lists) == 0 {
		return [][]Expression{{}}
	}
	first := lists[0]
	rest := cartesianProduct(lists[1:])

	var out [][]Expression
	for _, item := range first {
		for _, tail := range rest {
			tuple := make([]Expression, 0, len(tail)+1)
			tuple = append(tuple, item)
			tuple = append(tuple, tail...)
			out = append(out, tuple)
		}
	}
	return out
}
