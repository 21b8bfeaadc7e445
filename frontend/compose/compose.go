package compose

import (
	"fmt"

	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
)

var logger = log.DefaultLogger.With("section", "compose")

// Compose interprets word against env.
//
// The same interpreter builds nets and checks them: when opts.Checking is
// set, every connection made also unifies the types of the two ports.
// Failures are returned wrapped in an ilerr.WordFailure pointing at word.
func Compose(mod *Mod, env *Env, word ast.Word, opts Options) error {
	logger.Debug("composing word", "word", ast.FormatWord(word), "checking", opts.Checking != nil, "stack", env.Stack.Len())
	if err := composeWord(mod, env, word, opts); err != nil {
		return ilerr.WrapWord(err, word, mod.Text)
	}
	return nil
}

// ComposeWords composes each of words in order, stopping at the first failure.
func ComposeWords(mod *Mod, env *Env, words []ast.Word, opts Options) error {
	for _, word := range words {
		if err := Compose(mod, env, word, opts); err != nil {
			return err
		}
	}
	return nil
}

func composeWord(mod *Mod, env *Env, word ast.Word, opts Options) error {
	switch word := word.(type) {
	case *ast.Call:
		if found, ok := env.Locals[word.Name]; ok {
			env.Stack.Push(found)
			delete(env.Locals, word.Name)
			return nil
		}
		def, err := FindDefinitionOrFail(mod, word.Name)
		if err != nil {
			return err
		}
		return composeDefinition(mod, env, def, opts)

	case *ast.Builtin:
		def, ok := mod.Builtins[word.Name]
		if !ok {
			return ilerr.New(ilerr.NewUndefinedBuiltin{Name: word.Name})
		}
		return composeDefinition(mod, env, def, opts)

	case *ast.Local:
		value, ok := env.Stack.Pop()
		if !ok {
			return ilerr.New(ilerr.NewEmptyStack{Expected: "a value to bind to $" + word.Name})
		}
		env.Locals[word.Name] = value
		return nil

	case *ast.PortPush:
		peer, err := freeCurrentPort(env.Net, word.NodeName, word.PortName, opts)
		if err != nil {
			return err
		}
		env.Stack.Push(peer)
		return nil

	case *ast.PortReconnect:
		peer, err := freeCurrentPort(env.Net, word.NodeName, word.PortName, opts)
		if err != nil {
			return err
		}
		port, err := popPort(env, "a port to reconnect")
		if err != nil {
			return err
		}
		if err := graph.Connect(env.Net, port, peer); err != nil {
			return err
		}
		return opts.unify(port.T, peer.T)

	case *ast.GenerateSymbol:
		env.Stack.Push(graph.Symbol{Name: word.Name})
		return nil

	case *ast.Label:
		value, ok := env.Stack.Pop()
		if !ok {
			return ilerr.New(ilerr.NewEmptyStack{Expected: "a value to label"})
		}
		env.Stack.Push(graph.Labeled{Value: value, Label: word.Label, IsImportant: word.IsImportant})
		return nil

	case *ast.NodeRearrange:
		def, err := findNodeDefinitionOrFail(mod, word.Name)
		if err != nil {
			return err
		}
		if err := checkRearrangement(def, word.Input, word.Output); err != nil {
			return err
		}
		node := instantiate(env, def, opts)
		return composeNode(env, node, opts, word.Input, word.Output)

	default:
		return fmt.Errorf("unexpected word %T", word)
	}
}

func composeDefinition(mod *Mod, env *Env, def Definition, opts Options) error {
	switch def := def.(type) {
	case *NodeDefinition:
		node := instantiate(env, def, opts)
		return composeNode(env, node, opts, portNames(def.Input), portNames(def.Output))

	case *WordDefinition:
		return ComposeWords(mod, env, def.Words, opts)

	case *TypeDefinition:
		return composeType(env, def)

	case *BuiltinDefinition:
		return def.Compose(mod, env, opts)

	default:
		return fmt.Errorf("unexpected definition %T", def)
	}
}

// popPort pops a Port, looking through labels.
// expected describes the port for the error when the stack is empty.
func popPort(env *Env, expected string) (graph.Port, error) {
	value, ok := env.Stack.Pop()
	if !ok {
		return graph.Port{}, ilerr.New(ilerr.NewEmptyStack{Expected: expected})
	}
	port, ok := asPort(value)
	if !ok {
		return graph.Port{}, ilerr.New(ilerr.NewTopNotPort{Found: graph.FormatValue(value)})
	}
	return port, nil
}

func asPort(value graph.Value) (graph.Port, bool) {
	switch value := value.(type) {
	case graph.Port:
		return value, true
	case graph.Labeled:
		return asPort(value.Value)
	default:
		return graph.Port{}, false
	}
}

// findCurrentPortOrFail finds the port called portName on whichever node of
// the active pair is called nodeName.
func findCurrentPortOrFail(nodeName, portName string, opts Options) (graph.Port, error) {
	if opts.Current == nil {
		return graph.Port{}, ilerr.New(ilerr.NewPortNotFound{NodeName: nodeName, PortName: portName})
	}
	for _, node := range []*graph.Node{opts.Current.First, opts.Current.Second} {
		if node == nil || node.Name != nodeName {
			continue
		}
		entry, ok := node.Port(portName)
		if !ok {
			break
		}
		return entry.Port, nil
	}
	return graph.Port{}, ilerr.New(ilerr.NewPortNotFound{NodeName: nodeName, PortName: portName})
}

// freeCurrentPort disconnects a port of the active pair and returns the port it was connected to.
func freeCurrentPort(net *graph.Net, nodeName, portName string, opts Options) (graph.Port, error) {
	current, err := findCurrentPortOrFail(nodeName, portName, opts)
	if err != nil {
		return graph.Port{}, err
	}
	peer, err := graph.PeerOf(net, current.Ref())
	if err != nil {
		return graph.Port{}, err
	}
	if err := graph.DisconnectPort(net, current.Ref()); err != nil {
		return graph.Port{}, err
	}
	return peer, nil
}
