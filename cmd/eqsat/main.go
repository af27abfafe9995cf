// Command eqsat runs a small equality-saturation demonstration: parse
// an arithmetic expression, load a rewrite-rule catalogue, saturate an
// e-graph for a fixed number of iterations, and print every equivalent
// expression extractable from the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/gitrdm/eqsat/internal/sexpr"
	"github.com/gitrdm/eqsat/pkg/egraph"
	"github.com/gitrdm/eqsat/pkg/rewrite"
)

var (
	exprText   = flag.String("expr", "((x * 2) / 2)", "arithmetic expression to saturate, in the sexpr grammar")
	rulesPath  = flag.String("rules", "", "path to a YAML rule catalogue (defaults to the built-in catalogue)")
	iterations = flag.Int("iterations", 3, "number of saturation iterations to run")
	maxDepth   = flag.Int("max-depth", 4, "maximum recursion depth for search and extraction")
	verbose    = flag.Bool("v", false, "log each saturation step at debug level")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("eqsat failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	expr, err := sexpr.Parse(*exprText)
	if err != nil {
		return fmt.Errorf("parsing -expr %q: %w", *exprText, err)
	}

	catalogue, err := loadCatalogue()
	if err != nil {
		return err
	}

	g := egraph.New()
	root := g.AddExpression(expr)

	log.Info().Str("expr", expr.String()).Int("rules", len(catalogue)).Int("iterations", *iterations).Msg("starting saturation")
	rewrite.Saturate(g, catalogue, *maxDepth, *iterations, log)

	results := g.ExtractAll(root, *maxDepth)
	printResults(expr, results)
	return nil
}

func loadCatalogue() (rewrite.Catalogue, error) {
	if *rulesPath == "" {
		return rewrite.DefaultCatalogue(), nil
	}
	catalogue, err := rewrite.LoadFile(*rulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading -rules %q: %w", *rulesPath, err)
	}
	return catalogue, nil
}

func printResults(original egraph.Expression, results []egraph.Expression) {
	fmt.Printf("original: %s\n", original.String())
	fmt.Printf("equivalent expressions (%d, depth-bounded, may repeat):\n", len(results))

	seen := make(map[string]bool, len(results))
	var unique []string
	for _, r := range results {
		s := r.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		unique = append(unique, s)
	}
	sort.Strings(unique)
	for _, s := range unique {
		fmt.Printf("  %s\n", s)
	}
}
