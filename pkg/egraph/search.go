package egraph

// SearchHit pairs a substitution discovered by Search with the
// identifier of the class it was found in.
type SearchHit struct {
	Sub   Substitution
	Class int
}

// Search finds every substitution by which pattern matches some
// extracted expression of any class in the graph, within depth maxDepth.
// Non-root classes contribute nothing (their node list is empty) so
// they are effectively skipped. Duplicate substitutions are kept.
func (g *EGraph) Search(pattern Expression, maxDepth int) []SearchHit {
	var hits []SearchHit
	for id := range g.classes {
		if g.Find(id) != id {
			// Non-root: its nodes were moved to its root at union time,
			// so it has nothing of its own to contribute. Skipping it
			// here (rather than letting SearchInClass silently resolve
			// it to its root) avoids reporting the same match twice,
			// once under the root id and once under the stale non-root
			// id that the caller happened to enumerate.
			continue
		}
		for _, sub := range g.SearchInClass(id, pattern, maxDepth) {
			hits = append(hits, SearchHit{Sub: sub, Class: id})
		}
	}
	return hits
}

// SearchInClass resolves id to its root, then for each e-node of that
// root either binds a bare MetaVar pattern to every expression
// extractable from that node at depth maxDepth, or — for a structural
// pattern — recurses into each child class, takes the cartesian product
// of per-child substitutions, and keeps only the tuples whose bindings
// merge consistently. This is a class-directed matcher: it descends the
// graph structurally, exploiting e-class child-sharing, rather than
// enumerating all expressions first and matching against the flat list.
func (g *EGraph) SearchInClass(id int, pattern Expression, maxDepth int) []Substitution {
	root := g.Find(id)
	var out []Substitution

	for _, node := range g.classes[root].Nodes {
		if pattern.Op == OpMetaVar {
			for _, e := range g.extractNode(node, maxDepth, 0) {
				out = append(out, Substitution{pattern.Name: e})
			}
			continue
		}

		if !node.sameShape(pattern) {
			continue
		}

		childSubLists := make([][]Substitution, len(node.Children))
		for i, childID := range node.Children {
			childSubLists[i] = g.SearchInClass(childID, pattern.Children[i], maxDepth)
		}

		for _, tuple := range cartesianSubProduct(childSubLists) {
			merged := Substitution{}
			ok := true
			for _, childSub := range tuple {
				m, merges := merged.Merge(childSub)
				if !merges {
					ok = false
					break
				}
				merged = m
			}
			if ok {
				out = append(out, merged)
			}
		}
	}

	return out
}

// cartesianSubProduct is cartesianProduct specialized to Substitution
// tuples, kept as its own small function rather than a generic helper,
// following a convention of one plain function per concrete shape
// instead of reaching for generics.
func cartesianSubProduct(lists [][]Substitution) [][]Substitution {
	if len(lists) == 0 {
		return [][]Substitution{{}}
	}
	first := lists[0]
	rest := cartesianSubProduct(lists[1:])

	var out [][]Substitution
	for _, item := range first {
		for _, tail := range rest {
			tuple := make([]Substitution, 0, len(tail)+1)
			tuple = append(tuple, item)
			tuple = append(tuple, tail...)
			out = append(out, tuple)
		}
	}
	return out
}
