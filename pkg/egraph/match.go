package egraph

// Substitution maps a meta-variable name to the Expression it is bound
// to. Names are small ASCII identifiers; the domain of a substitution is
// finite per pattern.
type Substitution map[string]Expression

// clone returns a shallow copy of s (Expressions are immutable values,
// so a shallow copy is a full copy for our purposes).
func (s Substitution) clone() Substitution {
	out := make(Substitution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge combines s with other. Merging fails if the same meta-variable
// name is bound to two structurally different Expressions in s and
// other; inconsistent rebinding is a failure, not an override.
func (s Substitution) Merge(other Substitution) (Substitution, bool) {
	merged := s.clone()
	for k, v := range other {
		if existing, ok := merged[k]; ok {
			if !existing.Equal(v) {
				return nil, false
			}
			continue
		}
		merged[k] = v
	}
	return merged, true
}

// StructuralMatch attempts to match the receiver (a pattern, possibly
// containing MetaVar nodes) against subject. It returns the substitution
// on success. Meta-variables may repeat in the pattern; the first
// binding wins and subsequent bindings must structurally agree.
func (e Expression) StructuralMatch(subject Expression) (Substitution, bool) {
	if e.Op == OpMetaVar {
		return Substitution{e.Name: subject}, true
	}

	if e.Op != subject.Op || len(e.Children) != len(subject.Children) {
		return nil, false
	}
	switch e.Op {
	case OpConst:
		if e.IntValue != subject.IntValue {
			return nil, false
		}
	case OpVar:
		if e.Name != subject.Name {
			return nil, false
		}
	}

	result := Substitution{}
	for i := range e.Children {
		childSub, ok := e.Children[i].StructuralMatch(subject.Children[i])
		if !ok {
			return nil, false
		}
		merged, ok := result.Merge(childSub)
		if !ok {
			return nil, false
		}
		result = merged
	}
	return result, true
}

// ApplyAssignment recursively replaces each MetaVar(x) in the receiver
// (used as a rewrite template) by sub[x], leaving unassigned
// meta-variables unchanged. Non-MetaVar nodes keep their tag; children
// are substituted recursively.
func (e Expression) ApplyAssignment(sub Substitution) Expression {
	if e.Op == OpMetaVar {
		if bound, ok := sub[e.Name]; ok {
			return bound
		}
		return e
	}
	if len(e.Children) == 0 {
		return e
	}
	newChildren := make([]Expression, len(e.Children))
	for i, c := range e.Children {
		newChildren[i] = c.ApplyAssignment(sub)
	}
	out := e
	out.Children = newChildren
	return out
}
