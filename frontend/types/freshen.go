package types

import (
	"fmt"
	"strings"
)

// Counters generates fresh variable names, one sequence per base name.
type Counters map[string]int

// Fresh returns a variable named after base that no earlier call returned.
func (c Counters) Fresh(base string) *Var {
	base, _, _ = strings.Cut(base, "#")
	c[base]++
	return &Var{Name: fmt.Sprintf("%s#%d", base, c[base])}
}

// Occurred maps the name of each variable of a declared signature to its fresh replacement.
type Occurred map[string]*Var

// Freshen renames every variable of t to a fresh one, consistently: a variable
// already recorded in occurred keeps its earlier replacement. Sharing occurred
// between the input and output of a signature keeps their variables linked.
func Freshen(counters Counters, t Type, occurred Occurred) Type {
	switch t := t.(type) {
	case *Var:
		if found, ok := occurred[t.Name]; ok {
			return found
		}
		fresh := counters.Fresh(t.Name)
		occurred[t.Name] = fresh
		return fresh
	case *Term:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Freshen(counters, arg, occurred)
		}
		return &Term{Name: t.Name, Args: args}
	default:
		return t
	}
}
