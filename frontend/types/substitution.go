package types

import (
	"maps"
	"slices"
	"strings"
)

// Substitution is the mutable result of unification: a binding of variable names to types.
//
// A variable is bound at most once, and Walk follows chains of
// variable-to-variable bindings.
type Substitution struct {
	bindings map[string]Type
}

func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[string]Type)}
}

// Walk resolves t until it is either a Term or an unbound variable.
// A nil Substitution has no bindings.
func (s *Substitution) Walk(t Type) Type {
	if s == nil {
		return t
	}
	for {
		asVar, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.bindings[asVar.Name]
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply returns t with every bound variable replaced, recursively.
func (s *Substitution) Apply(t Type) Type {
	switch t := s.Walk(t).(type) {
	case *Term:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &Term{Name: t.Name, Args: args}
	default:
		return t
	}
}

// Lookup returns the type bound to the variable name, if any.
func (s *Substitution) Lookup(name string) (Type, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.bindings[name]
	return t, ok
}

func (s *Substitution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

func (s *Substitution) bind(name string, t Type) {
	s.bindings[name] = t
}

func (s *Substitution) String() string {
	if s.Len() == 0 {
		return "{}"
	}
	sb := &strings.Builder{}
	sb.WriteString("{")
	for i, name := range slices.Sorted(maps.Keys(s.bindings)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("'" + name)
		sb.WriteString(" := ")
		sb.WriteString(s.bindings[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
