// Package evalcheck cross-checks ConstEval's arithmetic against an
// independent evaluator. ConstEval folds ground Expression trees
// directly; this package instead renders the same tree to ordinary
// infix text and hands it to a general-purpose expression evaluator, so
// a bug shared between the printer and the folder is unlikely to also
// be shared with a third-party evaluation library.
package evalcheck

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/gitrdm/eqsat/pkg/egraph"
)

// Evaluate renders expr as infix text and evaluates it with govaluate,
// returning the result as an int. It fails if expr contains a Var or
// MetaVar (not ground), or if the govaluate result has a fractional
// part (ConstEval only ever folds exact integer division; this check
// only makes sense for expressions with the same guarantee).
func Evaluate(expr egraph.Expression) (int, error) {
	text := expr.String()
	parsed, err := govaluate.NewEvaluableExpression(text)
	if err != nil {
		return 0, fmt.Errorf("evalcheck: parsing %q: %w", text, err)
	}
	if len(parsed.Vars()) > 0 {
		return 0, fmt.Errorf("evalcheck: %q is not ground, contains variables %v", text, parsed.Vars())
	}

	result, err := parsed.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("evalcheck: evaluating %q: %w", text, err)
	}

	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("evalcheck: %q evaluated to non-numeric result %v", text, result)
	}
	i := int(f)
	if float64(i) != f {
		return 0, fmt.Errorf("evalcheck: %q evaluated to non-integral result %v", text, f)
	}
	return i, nil
}

// Agrees reports whether expr's ConstEval result matches an independent
// govaluate evaluation of the same tree. If both sides fail to produce
// a ground integer result it returns true (both agree there is none);
// if exactly one side fails it returns false. Callers that need the
// reason should call ConstEval and Evaluate directly.
func Agrees(expr egraph.Expression) bool {
	wantVal, wantOK := expr.ConstEval()
	gotVal, err := Evaluate(expr)
	if !wantOK || err != nil {
		return !wantOK && err != nil
	}
	return wantVal == gotVal
}
