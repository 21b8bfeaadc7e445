package compose

import (
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
	"github.com/cottand/inet/util"
)

// CollectWords composes words on top of env's stack and pops every value they
// produced as a type, in the order the words produced them.
//
// Values below the height of the stack when CollectWords was called are left alone.
func CollectWords(mod *Mod, env *Env, words []ast.Word, opts Options) ([]types.Type, error) {
	height := env.Stack.Len()
	if err := ComposeWords(mod, env, words, opts); err != nil {
		return nil, err
	}
	if env.Stack.Len() < height {
		return nil, ilerr.New(ilerr.NewExtraOrMissingArity{
			Message: "type words consumed values they did not produce: " + ast.FormatWords(words),
		})
	}
	return util.MapSlice(env.Stack.Truncate(height), valueToType)
}

// collectFreshTypes collects words and freshens the resulting types, recording
// the renaming in occurred.
func collectFreshTypes(mod *Mod, env *Env, words []ast.Word, checking *Checking, occurred types.Occurred) ([]types.Type, error) {
	collected, err := CollectWords(mod, env, words, Options{Checking: checking})
	if err != nil {
		return nil, err
	}
	for i, t := range collected {
		collected[i] = types.Freshen(checking.Counters, t, occurred)
	}
	return collected, nil
}

// CapType materialises t as the principal port of a new boundary node, so a
// declared input can be pushed and unified like any other port.
func CapType(net *graph.Net, t types.Type) graph.Port {
	node := net.AddNode(capNodeName, []graph.PortTemplate{{
		Name:        capPortName,
		T:           t,
		Sign:        graph.Output,
		IsPrincipal: true,
	}})
	entry, _ := node.Port(capPortName)
	return entry.Port
}

const (
	capNodeName = "@cap"
	capPortName = "covering"
)
