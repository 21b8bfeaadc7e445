package compose

import (
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/types"
	"github.com/cottand/inet/util"
)

// Env is the state threaded through the composition of one word sequence.
type Env struct {
	Mod    *Mod
	Net    *graph.Net
	Stack  util.Stack[graph.Value]
	Locals map[string]graph.Value
}

func NewEnv(mod *Mod) *Env {
	return &Env{
		Mod:    mod,
		Net:    graph.NewNet(),
		Locals: make(map[string]graph.Value),
	}
}

// Checking is the unification state of one check.
type Checking struct {
	Substitution *types.Substitution
	Counters     types.Counters
}

func NewChecking() *Checking {
	return &Checking{
		Substitution: types.NewSubstitution(),
		Counters:     make(types.Counters),
	}
}

// Current is the active pair a rule is being applied to.
type Current struct {
	First  *graph.Node
	Second *graph.Node
}

// Options selects the mode of Compose. With a nil Checking, words only build
// the net; with a Checking, every connection also unifies the types of its ports.
type Options struct {
	Current  *Current
	Checking *Checking
}

func (o Options) counters(net *graph.Net) types.Counters {
	if o.Checking != nil {
		return o.Checking.Counters
	}
	return net.Counters
}

// unify is a no-op outside of checking mode.
func (o Options) unify(a, b types.Type) error {
	if o.Checking == nil {
		return nil
	}
	return types.Unify(o.Checking.Substitution, a, b)
}
