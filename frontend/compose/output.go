package compose

import (
	"strings"

	"github.com/cottand/inet/frontend/graph"
)

// FormatValueIn renders value; a port is rendered together with the part of net it is connected to.
func FormatValueIn(net *graph.Net, value graph.Value) string {
	port, ok := asPort(value)
	if !ok {
		return graph.FormatValue(value)
	}
	component := graph.FormatNet(graph.ConnectedComponent(net, port.Node))
	sb := &strings.Builder{}
	sb.WriteString("net_from_port ")
	sb.WriteString(graph.FormatValue(value))
	sb.WriteString("\n")
	for _, line := range strings.Split(component, "\n") {
		if line == "" {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("end")
	return sb.String()
}

func outputStack(mod *Mod, env *Env) {
	for _, value := range env.Stack.All() {
		mod.Loader.OnOutput(FormatValueIn(env.Net, value))
	}
}
