package graph

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// FormatNet renders every edge of net on its own line, passive edges as
// 'a -- b' and active edges as 'a -!- b'. Nodes without any connection are
// listed on their own. The output is sorted, so equal nets render equally.
func FormatNet(net *Net) string {
	var lines []string
	formatEdge := func(edge Edge, link string) string {
		first, second := edge.First, edge.Second
		if comparePortRefs(first, second) > 0 {
			first, second = second, first
		}
		return fmt.Sprintf("%s %s %s", net.formatRef(first), link, net.formatRef(second))
	}
	for _, edge := range net.edges {
		lines = append(lines, formatEdge(edge, "--"))
	}
	for _, edge := range net.activeEdges {
		lines = append(lines, formatEdge(edge, "-!-"))
	}
	slices.Sort(lines)

	for _, node := range net.Nodes() {
		connected := false
		for entry := range node.Ports() {
			connected = connected || entry.Connection != nil
		}
		if !connected {
			lines = append(lines, fmt.Sprintf("(%s#%d)", node.Name, node.ID))
		}
	}
	return strings.Join(lines, "\n")
}

func (net *Net) formatRef(ref PortRef) string {
	if node, ok := net.nodes[ref.Node]; ok {
		return fmt.Sprintf("(%s#%d)-%s", node.Name, ref.Node, ref.Name)
	}
	return fmt.Sprintf("(?#%d)-%s", ref.Node, ref.Name)
}

func comparePortRefs(a, b PortRef) int {
	if c := cmp.Compare(a.Node, b.Node); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
