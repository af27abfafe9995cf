package rewrite

import (
	"github.com/rs/zerolog"

	"github.com/gitrdm/eqsat/pkg/egraph"
)

// pendingMatch is a (rhs, substitution, class) triple accumulated
// during a saturation step, waiting to be instantiated and unioned in.
type pendingMatch struct {
	rule  Rule
	sub   egraph.Substitution
	class int
}

// Step runs one saturation iteration over g: take a logical snapshot so
// that matches found this iteration are not re-matched against changes
// this same iteration makes, search every rule's LHS against the
// snapshot, discover numeric equalities via const folding,
// then apply every accumulated match against the live graph. maxDepth
// bounds both the search and any extraction the const-fold augmentation
// performs. It returns the number of rule matches applied.
func Step(g *egraph.EGraph, catalogue Catalogue, maxDepth int, log zerolog.Logger) int {
	snapshot := g.Clone()

	var pending []pendingMatch
	for _, rule := range catalogue {
		hits := snapshot.Search(rule.LHS, maxDepth)
		for _, hit := range hits {
			pending = append(pending, pendingMatch{rule: rule, sub: hit.Sub, class: hit.Class})
		}
		log.Debug().Str("rule", rule.Name).Int("hits", len(hits)).Msg("searched rule")
	}

	foldFired := foldConstants(g, snapshot, maxDepth, log)

	applied := 0
	for _, m := range pending {
		instantiated := m.rule.RHS.ApplyAssignment(m.sub)
		newClass := g.AddExpression(instantiated)
		g.Union(newClass, m.class)
		applied++
	}

	log.Info().
		Int("classes_before", snapshot.NumClasses()).
		Int("classes_after", g.NumClasses()).
		Int("rules_applied", applied).
		Int("const_folds", foldFired).
		Msg("saturation step complete")

	return applied
}

// Saturate runs Step repeatedly for a fixed, caller-chosen number of
// iterations. There is no fixed-point early exit; iterations continue
// to the budget even once a step applies zero matches, since a later
// const-fold discovery can still unlock a rule that previously found
// nothing.
func Saturate(g *egraph.EGraph, catalogue Catalogue, maxDepth, iterations int, log zerolog.Logger) {
	for i := 0; i < iterations; i++ {
		iterLog := log.With().Int("iteration", i).Logger()
		Step(g, catalogue, maxDepth, iterLog)
	}
}

// foldConstants finds every binding of a bare MetaVar("a") pattern, and
// for each whose bound expression
// const-evaluates to an integer v, insert Const(v) (and, if v is
// negative, also Neg(Const(-v))) into the live graph and union it with
// the matched class. It returns the number of folding hits (one per
// bound expression that const-evaluates, so a class with several such
// expressions is counted more than once).
func foldConstants(g *egraph.EGraph, snapshot *egraph.EGraph, maxDepth int, log zerolog.Logger) int {
	hits := snapshot.Search(egraph.MetaVar("a"), maxDepth)
	folded := 0
	for _, hit := range hits {
		bound, ok := hit.Sub["a"]
		if !ok {
			continue
		}
		v, ok := bound.ConstEval()
		if !ok {
			continue
		}

		constClass := g.AddExpression(egraph.Const(v))
		g.Union(constClass, hit.Class)
		folded++

		if v < 0 {
			negClass := g.AddExpression(egraph.Negate(egraph.Const(-v)))
			g.Union(negClass, hit.Class)
		}
	}
	log.Debug().Int("folded", folded).Msg("const-fold pass")
	return folded
}
