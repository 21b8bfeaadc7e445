package compose

import (
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
	"github.com/pkg/errors"
)

var reduceLogger = log.DefaultLogger.With("section", "reduce")

type RunOptions struct {
	// MaxSteps aborts the reduction after that many interactions, when positive
	MaxSteps int
}

type RunStats struct {
	Steps int
}

// Run rewrites active pairs, oldest first, until net is in normal form.
//
// Every active pair must have a rule, or reduction stops with ilerr.NoRuleFor.
func Run(mod *Mod, net *graph.Net, opts RunOptions) (RunStats, error) {
	stats := RunStats{}
	for {
		edge, ok := net.NextActiveEdge()
		if !ok {
			reduceLogger.Debug("reached normal form", "steps", stats.Steps)
			return stats, nil
		}
		if opts.MaxSteps > 0 && stats.Steps >= opts.MaxSteps {
			return stats, ilerr.New(ilerr.NewStepLimitExceeded{Limit: opts.MaxSteps})
		}
		if err := interact(mod, net, edge); err != nil {
			return stats, err
		}
		stats.Steps++
	}
}

func interact(mod *Mod, net *graph.Net, edge graph.Edge) error {
	first, ok := net.Node(edge.First.Node)
	if !ok {
		return ilerr.New(ilerr.NewNodeNotFound{ID: int(edge.First.Node)})
	}
	second, ok := net.Node(edge.Second.Node)
	if !ok {
		return ilerr.New(ilerr.NewNodeNotFound{ID: int(edge.Second.Node)})
	}

	rule, ok := mod.FindRule(first.Name, second.Name)
	if !ok {
		return ilerr.New(ilerr.NewNoRuleFor{First: first.Name, Second: second.Name})
	}
	reduceLogger.Debug("interacting", "rule", rule.String(), "first", first.ID, "second", second.ID)

	if err := graph.DisconnectPort(net, edge.First); err != nil {
		return err
	}

	env := &Env{Mod: mod, Net: net, Locals: make(map[string]graph.Value)}
	opts := Options{Current: rule.current(first, second)}
	if err := ComposeWords(mod, env, rule.Words, opts); err != nil {
		return errors.Wrapf(err, "applying rule %s", rule)
	}
	if env.Stack.Len() != 0 {
		return ilerr.New(ilerr.NewExtraOrMissingArity{
			Message: "rule " + rule.String() + " left values on the stack",
			Stack:   formatStack(env),
		})
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return errors.Wrapf(err, "applying rule %s", rule)
	}

	for _, node := range []*graph.Node{first, second} {
		for entry := range node.Ports() {
			if entry.Connection != nil {
				return ilerr.New(ilerr.NewUnsplicedPort{Port: entry.Port.String(), Rule: rule.String()})
			}
		}
	}
	if err := net.RemoveNode(first.ID); err != nil {
		return err
	}
	return net.RemoveNode(second.ID)
}

const (
	rootNodeName = "@root"
	rootPortName = "value"
)

// runEnv reduces env's net to normal form. Free ports on the stack are
// attached to boundary nodes for the duration of the reduction, so rules can
// reconnect them, and are replaced by whatever the boundary ends up attached to.
func runEnv(mod *Mod, env *Env) (RunStats, error) {
	values := env.Stack.PopAll()
	roots := make([]*graph.Node, len(values))
	for i, value := range values {
		port, ok := asPort(value)
		if !ok {
			continue
		}
		entry, err := env.Net.FindPortEntry(port.Ref())
		if err != nil {
			return RunStats{}, err
		}
		if entry.Connection != nil {
			continue
		}
		roots[i] = env.Net.AddNode(rootNodeName, []graph.PortTemplate{{
			Name: rootPortName,
			T:    entry.Port.T,
			Sign: -entry.Port.Sign,
		}})
		rootEntry, _ := roots[i].Port(rootPortName)
		if err := graph.Connect(env.Net, entry.Port, rootEntry.Port); err != nil {
			return RunStats{}, err
		}
	}

	stats, err := Run(mod, env.Net, RunOptions{MaxSteps: mod.MaxSteps})
	if err != nil {
		return stats, err
	}

	for i, value := range values {
		if roots[i] == nil {
			env.Stack.Push(value)
			continue
		}
		rootEntry, _ := roots[i].Port(rootPortName)
		result, err := graph.PeerOf(env.Net, rootEntry.Port.Ref())
		if err != nil {
			return stats, err
		}
		if err := env.Net.RemoveNode(roots[i].ID); err != nil {
			return stats, err
		}
		env.Stack.Push(replacePort(value, result))
	}
	return stats, nil
}

// replacePort swaps the port inside value for port, keeping any labels.
func replacePort(value graph.Value, port graph.Port) graph.Value {
	if labeled, ok := value.(graph.Labeled); ok {
		labeled.Value = replacePort(labeled.Value, port)
		return labeled
	}
	return port
}
