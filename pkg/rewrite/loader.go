package rewrite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/eqsat/internal/sexpr"
)

// ruleFile is the on-disk YAML shape for a rule catalogue: an ordered
// list of named {lhs, rhs} pairs, each side written in the small
// s-expression text grammar internal/sexpr parses.
type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Name string `yaml:"name"`
	LHS  string `yaml:"lhs"`
	RHS  string `yaml:"rhs"`
}

// LoadFile reads a YAML rule catalogue from path. This is a system
// boundary where real errors are surfaced to the caller: a missing
// file, malformed YAML, or a malformed expression side all return a
// wrapped error rather than panicking.
func LoadFile(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rewrite: reading rule file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML rule-catalogue bytes into a Catalogue.
func Parse(data []byte) (Catalogue, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rewrite: parsing rule catalogue YAML: %w", err)
	}

	catalogue := make(Catalogue, 0, len(file.Rules))
	for i, entry := range file.Rules {
		if entry.Name == "" {
			return nil, fmt.Errorf("rewrite: rule at index %d is missing a name", i)
		}
		lhs, err := sexpr.Parse(entry.LHS)
		if err != nil {
			return nil, fmt.Errorf("rewrite: rule %q: parsing lhs %q: %w", entry.Name, entry.LHS, err)
		}
		rhs, err := sexpr.Parse(entry.RHS)
		if err != nil {
			return nil, fmt.Errorf("rewrite: rule %q: parsing rhs %q: %w", entry.Name, entry.RHS, err)
		}
		catalogue = append(catalogue, Rule{Name: entry.Name, LHS: lhs, RHS: rhs})
	}
	return catalogue, nil
}
