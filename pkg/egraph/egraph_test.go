package egraph

import "testing"

// TestAddExpressionIdempotent checks that adding the same expression
// twice returns the same identifier and does not grow the graph.
func TestAddExpressionIdempotent(t *testing.T) {
	g := New()
	expr := Add(Const(0), Var("x"))

	id1 := g.AddExpression(expr)
	before := g.NumClasses()

	id2 := g.AddExpression(expr)
	after := g.NumClasses()

	if id1 != id2 {
		t.Fatalf("second AddExpression returned %d, want %d", id2, id1)
	}
	if before != after {
		t.Fatalf("class count changed on repeat insertion: %d -> %d", before, after)
	}

	t.Run("exactly three classes, id 2 for the Add node", func(t *testing.T) {
		if g.NumClasses() != 3 {
			t.Errorf("NumClasses() = %d, want 3", g.NumClasses())
		}
		if id1 != 2 {
			t.Errorf("Add(Const 0, Var x) got id %d, want 2", id1)
		}
	})
}

// TestAddExpressionDeduplicatesSharedChildren verifies that inserting
// two expressions sharing a subexpression reuses the child's class.
func TestAddExpressionDeduplicatesSharedChildren(t *testing.T) {
	g := New()
	x := Var("x")
	left := Add(x, Const(1))
	right := Sub(x, Const(1))

	g.AddExpression(left)
	before := g.NumClasses()
	g.AddExpression(right)
	after := g.NumClasses()

	// x and Const(1) are shared; only the Sub node itself is new.
	if after-before != 1 {
		t.Errorf("expected exactly one new class for the Sub node, got %d new classes", after-before)
	}
}

// TestUnionIsNoOpOutOfRange checks that Union tolerates a self-union or
// an out-of-range identifier rather than panicking or corrupting state.
func TestUnionIsNoOpOutOfRange(t *testing.T) {
	g := New()
	id := g.AddExpression(Const(1))
	before := g.NumClasses()

	g.Union(id, id) // same id
	g.Union(id, 999)
	g.Union(999, id)
	g.Union(-1, id)

	if g.NumClasses() != before {
		t.Error("out-of-range or self Union should not change graph shape")
	}
	if g.Find(id) != id {
		t.Error("out-of-range Union should not move the representative")
	}
}

// TestUnionRedirectsToLowerID checks that the root is always the
// numerically smallest identifier in its chain, and that after a Union,
// re-adding either original expression returns the surviving id.
func TestUnionRedirectsToLowerID(t *testing.T) {
	g := New()
	a := g.AddExpression(Var("a"))
	b := g.AddExpression(Var("b"))

	if a > b {
		a, b = b, a
	}

	g.Union(b, a) // order of arguments should not matter

	if g.Find(a) != a {
		t.Errorf("Find(%d) = %d, want %d (lower id should remain root)", a, g.Find(a), a)
	}
	if g.Find(b) != a {
		t.Errorf("Find(%d) = %d, want %d (higher id should redirect to lower)", b, g.Find(b), a)
	}

	t.Run("only the root holds nodes", func(t *testing.T) {
		if len(g.classes[b].Nodes) != 0 {
			t.Error("non-root class should have an empty node list")
		}
		if len(g.classes[a].Nodes) == 0 {
			t.Error("root class should hold the merged nodes")
		}
	})

	t.Run("AddExpression after Union collapses to the surviving id", func(t *testing.T) {
		if got := g.AddExpression(Var("a")); got != a {
			t.Errorf("AddExpression(Var a) = %d, want %d", got, a)
		}
		if got := g.AddExpression(Var("b")); got != a {
			t.Errorf("AddExpression(Var b) = %d, want %d", got, a)
		}
	})
}

// TestFindTerminatesAndFindsSmallestRoot checks that a chain of three
// unions still converges on a single, numerically smallest root.
func TestFindTerminatesAndFindsSmallestRoot(t *testing.T) {
	g := New()
	ids := []int{
		g.AddExpression(Var("p")),
		g.AddExpression(Var("q")),
		g.AddExpression(Var("r")),
		g.AddExpression(Var("s")),
	}

	g.Union(ids[3], ids[1])
	g.Union(ids[2], ids[0])
	g.Union(ids[1], ids[0])

	root := g.Find(ids[3])
	for _, id := range ids {
		if got := g.Find(id); got != root {
			t.Errorf("Find(%d) = %d, want %d (all classes should share one root)", id, got, root)
		}
	}
	min := ids[0]
	for _, id := range ids {
		if id < min {
			min = id
		}
	}
	if root != min {
		t.Errorf("root = %d, want smallest id %d", root, min)
	}
}

// TestExtractAllContainsOriginal checks that extracting at a depth deep
// enough to cover the original tree always recovers it.
func TestExtractAllContainsOriginal(t *testing.T) {
	g := New()
	expr := Div(Mul(Var("x"), Const(2)), Const(2))
	id := g.AddExpression(expr)

	results := g.ExtractAll(id, expr.Height())

	found := false
	for _, r := range results {
		if r.Equal(expr) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ExtractAll(id, %d) did not contain the original expression; got %v", expr.Height(), results)
	}
}

// TestExtractDepthCutoffMonotone checks that the number of extracted
// expressions never decreases as the depth cutoff grows.
func TestExtractDepthCutoffMonotone(t *testing.T) {
	g := New()
	expr := Add(Sub(Const(1), Const(2)), Mul(Const(3), Const(4)))
	id := g.AddExpression(expr)

	var prevLen int
	for depth := 0; depth <= expr.Height()+1; depth++ {
		results := g.ExtractAll(id, depth)
		if depth > 0 && len(results) < prevLen {
			t.Errorf("ExtractAll size decreased from depth %d to %d: %d -> %d", depth-1, depth, prevLen, len(results))
		}
		prevLen = len(results)
	}

	if len(g.ExtractAll(id, 0)) > len(g.classes[g.Find(id)].Nodes) {
		t.Error("depth 0 should yield at most one expression per node held by the root")
	}
}

// TestClassSyntacticallyEqualSkipsNonRoots checks that a non-root class,
// whose nodes were moved to its root at union time, never itself
// reports a syntactic match.
func TestClassSyntacticallyEqualSkipsNonRoots(t *testing.T) {
	g := New()
	a := g.AddExpression(Var("a"))
	b := g.AddExpression(Var("b"))
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	g.Union(hi, lo)

	if g.classMatchesExpression(Var("b"), hi) {
		t.Error("a non-root class should never report a syntactic match")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	id := g.AddExpression(Var("x"))
	snapshot := g.Clone()

	other := g.AddExpression(Var("y"))
	g.Union(id, other)

	if snapshot.NumClasses() != 1 {
		t.Errorf("clone should not observe later insertions, got %d classes", snapshot.NumClasses())
	}
	if snapshot.Find(id) != id {
		t.Error("clone should not observe later unions")
	}
}
