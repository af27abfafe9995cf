// Package rewrite implements the rewrite-rule catalogue and the
// applier that drives one e-graph saturation iteration: search the
// graph for every rule's left-hand side, instantiate its right-hand
// side under the captured substitution, insert the result, and union
// it with the class the match was found in.
package rewrite

import "github.com/gitrdm/eqsat/pkg/egraph"

// Rule is a single rewrite: whenever LHS matches some expression in the
// graph, RHS.ApplyAssignment(substitution) is asserted equal to it. LHS
// may contain MetaVars; RHS may reference the same meta-variable names.
type Rule struct {
	Name string
	LHS  egraph.Expression
	RHS  egraph.Expression
}

// Catalogue is an ordered collection of rules, supplied by a client.
type Catalogue []Rule

// DefaultCatalogue returns the canonical small rule set used by the
// demonstration driver and by the package's own tests: commutativity of
// addition and multiplication, additive and multiplicative identities,
// regrouping (a * b) / b as a * (b / b), cancellation of a common
// factor across a division, division of an expression by itself, and
// double negation.
func DefaultCatalogue() Catalogue {
	a, b, c := egraph.MetaVar("a"), egraph.MetaVar("b"), egraph.MetaVar("c")
	return Catalogue{
		{
			Name: "add-commutative",
			LHS:  egraph.Add(a, b),
			RHS:  egraph.Add(b, a),
		},
		{
			Name: "add-identity",
			LHS:  egraph.Add(a, egraph.Const(0)),
			RHS:  a,
		},
		{
			Name: "mul-commutative",
			LHS:  egraph.Mul(a, b),
			RHS:  egraph.Mul(b, a),
		},
		{
			Name: "mul-assoc-div",
			// (a * b) / b  ->  a * (b / b), letting div-by-self collapse
			// b / b to 1 on a later iteration.
			LHS: egraph.Div(egraph.Mul(a, b), b),
			RHS: egraph.Mul(a, egraph.Div(b, b)),
		},
		{
			Name: "div-cancel-common-factor",
			// (a * b) / (a * c)  ->  b / c, exposing a ground b/c for
			// const folding even when a itself is not ground.
			LHS: egraph.Div(egraph.Mul(a, b), egraph.Mul(a, c)),
			RHS: egraph.Div(b, c),
		},
		{
			Name: "div-by-self",
			LHS:  egraph.Div(a, a),
			RHS:  egraph.Const(1),
		},
		{
			Name: "mul-identity",
			LHS:  egraph.Mul(a, egraph.Const(1)),
			RHS:  a,
		},
		{
			Name: "double-negation",
			LHS:  egraph.Negate(egraph.Negate(a)),
			RHS:  a,
		},
	}
}
