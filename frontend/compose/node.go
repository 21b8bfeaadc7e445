package compose

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
	"github.com/cottand/inet/util"
	"github.com/xtgo/set"
)

// instantiate adds a node for def to env's net, with its port types freshened
// consistently across the ports of the node.
func instantiate(env *Env, def *NodeDefinition, opts Options) *graph.Node {
	counters := opts.counters(env.Net)
	occurred := make(types.Occurred)
	templates := def.Templates()
	for i, template := range templates {
		templates[i].T = types.Freshen(counters, template.T, occurred)
	}
	return env.Net.AddNode(def.Name, templates)
}

// composeNode connects the ports named by input to ports popped from the
// stack (the last name to the top of the stack), then pushes the ports named by output.
func composeNode(env *Env, node *graph.Node, opts Options, input, output []string) error {
	for name := range util.Reverse(input) {
		entry, ok := node.Port(name)
		if !ok {
			return ilerr.New(ilerr.NewPortNotFound{NodeName: node.Name, PortName: name})
		}
		port, err := popPort(env, fmt.Sprintf("a port for %s", entry.Port))
		if err != nil {
			return err
		}
		if err := graph.Connect(env.Net, port, entry.Port); err != nil {
			return err
		}
		if err := opts.unify(port.T, entry.Port.T); err != nil {
			return err
		}
	}
	for _, name := range output {
		entry, ok := node.Port(name)
		if !ok {
			return ilerr.New(ilerr.NewPortNotFound{NodeName: node.Name, PortName: name})
		}
		env.Stack.Push(entry.Port)
	}
	return nil
}

// checkRearrangement requires input and output to name every port of def exactly once.
func checkRearrangement(def *NodeDefinition, input, output []string) error {
	declared := portNames(def.Templates())
	sort.Strings(declared)

	named := slices.Concat(input, output)
	sort.Strings(named)
	unique := slices.Clone(named)
	unique = unique[:set.Uniq(sort.StringSlice(unique))]

	if unknown := sortedDiff(unique, declared); len(unknown) > 0 {
		return ilerr.New(ilerr.NewPortNotFound{NodeName: def.Name, PortName: unknown[0]})
	}
	if len(unique) != len(named) {
		return ilerr.New(ilerr.NewExtraOrMissingArity{
			Message: fmt.Sprintf("rearranging node '%s' names a port more than once", def.Name),
		})
	}
	if missing := sortedDiff(declared, unique); len(missing) > 0 {
		return ilerr.New(ilerr.NewExtraOrMissingArity{
			Message: fmt.Sprintf("rearranging node '%s' leaves out ports %v", def.Name, missing),
		})
	}
	return nil
}

// sortedDiff returns the elements of a that are not in b. Both must be sorted and unique.
func sortedDiff(a, b []string) []string {
	data := slices.Concat(a, b)
	size := set.Diff(sort.StringSlice(data), len(a))
	return data[:size]
}

// composeType pops the arguments of a type constructor and pushes the constructed type.
func composeType(env *Env, def *TypeDefinition) error {
	// the last argument is on top of the stack
	var args []types.Type
	for i := def.Arity; i > 0; i-- {
		value, ok := env.Stack.Pop()
		if !ok {
			return ilerr.New(ilerr.NewEmptyStack{Expected: fmt.Sprintf("argument %d of type %s", i, def.Name)})
		}
		t, err := valueToType(value)
		if err != nil {
			return err
		}
		args = append(args, t)
	}
	slices.Reverse(args)
	env.Stack.Push(graph.TypeValue{T: &types.Term{Name: def.Name, Args: args}})
	return nil
}

func valueToType(value graph.Value) (types.Type, error) {
	switch value := value.(type) {
	case graph.TypeValue:
		return value.T, nil
	case graph.Symbol:
		return &types.Var{Name: value.Name}, nil
	case graph.Labeled:
		return valueToType(value.Value)
	default:
		return nil, ilerr.New(ilerr.NewNotAType{Found: graph.FormatValue(value)})
	}
}
