package types

import (
	"testing"

	"github.com/cottand/inet/frontend/ilerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nat     = NewTerm("Nat")
	boolean = NewTerm("Bool")
)

func list(t Type) *Term { return NewTerm("List", t) }

func TestUnify(t *testing.T) {
	a, b := &Var{Name: "A"}, &Var{Name: "B"}
	tests := []struct {
		name  string
		left  Type
		right Type
		code  ilerr.ErrCode
	}{
		{"same term", nat, nat, ilerr.None},
		{"different terms", nat, boolean, ilerr.TypeMismatch},
		{"variable left", a, nat, ilerr.None},
		{"variable right", list(nat), a, ilerr.None},
		{"same variable", a, a, ilerr.None},
		{"two variables", a, b, ilerr.None},
		{"nested", list(a), list(nat), ilerr.None},
		{"nested mismatch", list(nat), list(boolean), ilerr.TypeMismatch},
		{"arity mismatch", NewTerm("Pair", nat), NewTerm("Pair", nat, nat), ilerr.TypeMismatch},
		{"occurs", a, list(a), ilerr.OccursCheckFailure},
		{"occurs nested", list(a), list(list(a)), ilerr.OccursCheckFailure},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Unify(NewSubstitution(), test.left, test.right)
			if test.code == ilerr.None {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, test.code, ilerr.KindOf(err))
		})
	}
}

func TestUnifyFollowsBindings(t *testing.T) {
	sub := NewSubstitution()
	a, b := &Var{Name: "A"}, &Var{Name: "B"}

	require.NoError(t, Unify(sub, a, b))
	require.NoError(t, Unify(sub, b, nat))
	assert.Equal(t, "Nat", sub.Apply(a).String())

	err := Unify(sub, a, boolean)
	assert.Equal(t, ilerr.TypeMismatch, ilerr.KindOf(err))

	// occurs check through a chain of bindings
	c := &Var{Name: "C"}
	require.NoError(t, Unify(sub, c, &Var{Name: "D"}))
	err = Unify(sub, &Var{Name: "D"}, list(c))
	assert.Equal(t, ilerr.OccursCheckFailure, ilerr.KindOf(err))
}

func TestSubstitutionString(t *testing.T) {
	sub := NewSubstitution()
	assert.Equal(t, "{}", sub.String())
	require.NoError(t, Unify(sub, list(&Var{Name: "B"}), &Var{Name: "A"}))
	assert.Equal(t, "{'A := 'B List}", sub.String())

	_, ok := sub.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, 1, sub.Len())
}

func TestFreshen(t *testing.T) {
	counters := make(Counters)
	occurred := make(Occurred)
	pair := NewTerm("Pair", &Var{Name: "A"}, list(&Var{Name: "A"}))

	fresh := Freshen(counters, pair, occurred)
	assert.Equal(t, "'A#1 ('A#1 List) Pair", fresh.String())

	// the same occurred map keeps the renaming
	assert.Equal(t, "'A#1", Freshen(counters, &Var{Name: "A"}, occurred).String())

	// a new one does not
	again := Freshen(counters, &Var{Name: "A"}, make(Occurred))
	assert.Equal(t, "'A#2", again.String())

	// freshening a fresh variable does not stack suffixes
	assert.Equal(t, "'A#3", Freshen(counters, again, make(Occurred)).String())

	assert.Same(t, nat, Freshen(counters, nat, occurred))
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "Nat", nat.String())
	assert.Equal(t, "Nat List", list(nat).String())
	assert.Equal(t, "(Nat List) List", list(list(nat)).String())
	assert.Equal(t, "'A", (&Var{Name: "A"}).String())
}

func TestEquals(t *testing.T) {
	assert.True(t, Equals(list(nat), list(nat)))
	assert.False(t, Equals(list(nat), list(boolean)))
	assert.True(t, Equals(&Var{Name: "A"}, &Var{Name: "A"}))
	assert.False(t, Equals(&Var{Name: "A"}, nat))
}

func TestFreeVars(t *testing.T) {
	sub := NewSubstitution()
	require.NoError(t, Unify(sub, &Var{Name: "B"}, nat))

	free := FreeVars(sub, NewTerm("Pair", &Var{Name: "A"}, &Var{Name: "B"}))
	assert.True(t, free.Contains("A"))
	assert.False(t, free.Contains("B"))
	assert.Equal(t, 1, free.Size())
}
