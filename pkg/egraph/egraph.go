package egraph

// EGraph is an ordered, append-only sequence of EClasses indexed by
// identifier. Class identifiers are never reused or renumbered; once
// assigned, an identifier remains valid for the lifetime of the graph,
// though it may become non-root after a Union.
type EGraph struct {
	classes []EClass
}

// New returns an empty e-graph.
func New() *EGraph {
	return &EGraph{}
}

// NumClasses returns the number of classes ever created (roots and
// non-roots alike).
func (g *EGraph) NumClasses() int {
	return len(g.classes)
}

// AddExpression ensures the e-graph contains expr and returns the
// identifier of the class representing it. expr must not contain a
// MetaVar tag; that precondition is the caller's responsibility.
func (g *EGraph) AddExpression(expr Expression) int {
	for id := range g.classes {
		if g.classMatchesExpression(expr, id) {
			return id
		}
	}

	childIDs := make([]int, len(expr.Children))
	for i, c := range expr.Children {
		childIDs[i] = g.AddExpression(c)
	}

	id := len(g.classes)
	g.classes = append(g.classes, EClass{
		Representative: id,
		Nodes: []ENode{{
			Op:       expr.Op,
			IntValue: expr.IntValue,
			Name:     expr.Name,
			Children: childIDs,
		}},
	})
	return id
}

// classMatchesExpression reports whether some e-node literally held by
// class id (no resolve-to-root step) has the same tag/arity as expr and
// each of its child classes, resolved to its root, recursively matches
// the corresponding child of expr. A non-root class holds no nodes, so
// it correctly reports false: its identity was transferred to its root
// at union time.
func (g *EGraph) classMatchesExpression(expr Expression, id int) bool {
	class := g.classes[id]
	for _, node := range class.Nodes {
		if !node.sameShape(expr) {
			continue
		}
		allMatch := true
		for i, childID := range node.Children {
			if !g.classMatchesExpression(expr.Children[i], g.Find(childID)) {
				allMatch = false
				break
			}
		}
		if allMatch {
			return true
		}
	}
	return false
}

// Find walks the Representative chain from id to its root and returns
// the root identifier. The root of any chain is always the numerically
// smallest identifier in it; Union's lo/hi redirect is what establishes
// this, and Find performs no path compression so that property stays
// trivially preserved.
func (g *EGraph) Find(id int) int {
	for g.classes[id].Representative != id {
		id = g.classes[id].Representative
	}
	return id
}

// Union merges the classes identified by i and j. If i == j, or either
// identifier is out of range, this is a silent no-op. The
// higher-numbered class's e-nodes move into the lower-numbered class;
// no congruence-closure rebuild is performed here. The applier recovers
// equivalences over subsequent iterations by re-inserting RHS
// expressions and relying on AddExpression's own congruence check.
func (g *EGraph) Union(i, j int) {
	if i == j || i < 0 || j < 0 || i >= len(g.classes) || j >= len(g.classes) {
		return
	}
	lo, hi := i, j
	if hi < lo {
		lo, hi = hi, lo
	}

	g.classes[lo].Nodes = append(g.classes[lo].Nodes, g.classes[hi].Nodes...)
	g.classes[hi].Nodes = nil
	g.classes[hi].Representative = lo
}

// Clone returns a deep copy of the graph, used by the applier to take a
// logical snapshot of the graph so that matches found during one
// saturation iteration are not re-matched against changes the same
// iteration makes.
func (g *EGraph) Clone() *EGraph {
	out := &EGraph{classes: make([]EClass, len(g.classes))}
	for i, c := range g.classes {
		nodes := make([]ENode, len(c.Nodes))
		for j, n := range c.Nodes {
			children := make([]int, len(n.Children))
			copy(children, n.Children)
			n.Children = children
			nodes[j] = n
		}
		out.classes[i] = EClass{Representative: c.Representative, Nodes: nodes}
	}
	return out
}
