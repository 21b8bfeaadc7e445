package types

import (
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
)

var logger = log.DefaultLogger.With("section", "check")

// Unify makes a and b equal by extending sub, or fails with
// ilerr.TypeMismatch or ilerr.OccursCheckFailure.
//
// sub keeps the bindings made before a failure.
func Unify(sub *Substitution, a, b Type) error {
	logger.Debug("unify", "a", a, "b", b)
	a = sub.Walk(a)
	b = sub.Walk(b)

	if aVar, ok := a.(*Var); ok {
		if bVar, ok := b.(*Var); ok && aVar.Name == bVar.Name {
			return nil
		}
		return bindVar(sub, aVar, b)
	}
	if bVar, ok := b.(*Var); ok {
		return bindVar(sub, bVar, a)
	}

	aTerm, bTerm := a.(*Term), b.(*Term)
	if aTerm.Name != bTerm.Name || len(aTerm.Args) != len(bTerm.Args) {
		return ilerr.New(ilerr.NewTypeMismatch{
			First:  sub.Apply(a).String(),
			Second: sub.Apply(b).String(),
		})
	}
	for i := range aTerm.Args {
		if err := Unify(sub, aTerm.Args[i], bTerm.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

func bindVar(sub *Substitution, v *Var, t Type) error {
	if FreeVars(sub, t).Contains(v.Name) {
		return ilerr.New(ilerr.NewOccursCheckFailure{
			Var:  v.String(),
			Type: sub.Apply(t).String(),
		})
	}
	sub.bind(v.Name, t)
	return nil
}
