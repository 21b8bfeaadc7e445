package types

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Type is a unification term: either a type variable or a constructed type.
type Type interface {
	fmt.Stringer
	typeNode()
}

// Var is a type variable. Two variables are the same variable iff their names are equal.
type Var struct {
	Name string
}

// Term is a type constructor applied to its arguments, like Nat or 'A List.
type Term struct {
	Name string
	Args []Type
}

func (*Var) typeNode()  {}
func (*Term) typeNode() {}

func (v *Var) String() string { return "'" + v.Name }

// String renders t in the postfix syntax types are written in:
// arguments first, then the constructor name.
func (t *Term) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	sb := &strings.Builder{}
	for _, arg := range t.Args {
		if asTerm, ok := arg.(*Term); ok && len(asTerm.Args) > 0 {
			sb.WriteString("(")
			sb.WriteString(asTerm.String())
			sb.WriteString(")")
		} else {
			sb.WriteString(arg.String())
		}
		sb.WriteString(" ")
	}
	sb.WriteString(t.Name)
	return sb.String()
}

// NewTerm is a shorthand for building a Term.
func NewTerm(name string, args ...Type) *Term {
	return &Term{Name: name, Args: args}
}

// Equals reports whether a and b are structurally identical, without applying any substitution.
func Equals(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		asVar, ok := b.(*Var)
		return ok && asVar.Name == a.Name
	case *Term:
		asTerm, ok := b.(*Term)
		if !ok || asTerm.Name != a.Name || len(asTerm.Args) != len(a.Args) {
			return false
		}
		for i := range a.Args {
			if !Equals(a.Args[i], asTerm.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FreeVars returns the names of the variables in t, after following the bindings in sub.
// sub may be nil.
func FreeVars(sub *Substitution, t Type) *set.Set[string] {
	vars := set.New[string](0)
	collectFreeVars(sub, t, vars)
	return vars
}

func collectFreeVars(sub *Substitution, t Type, into *set.Set[string]) {
	switch t := sub.Walk(t).(type) {
	case *Var:
		into.Insert(t.Name)
	case *Term:
		for _, arg := range t.Args {
			collectFreeVars(sub, arg, into)
		}
	}
}
