package graph

import (
	"github.com/hashicorp/go-set/v3"
)

// ConnectedComponent returns a read-only view of the part of net reachable
// from the node with the given id.
//
// The view shares its nodes with net, so it must not be mutated.
func ConnectedComponent(net *Net, id NodeID) *Net {
	component := &Net{
		nodes:    make(map[NodeID]*Node),
		Counters: net.Counters,
		nextID:   net.nextID,
	}
	visited := set.New[NodeID](8)
	pending := []NodeID{id}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if !visited.Insert(current) {
			continue
		}
		node, ok := net.nodes[current]
		if !ok {
			continue
		}
		component.nodes[current] = node
		for entry := range node.Ports() {
			if entry.Connection != nil && !visited.Contains(entry.Connection.Peer.Node) {
				pending = append(pending, entry.Connection.Peer.Node)
			}
		}
	}

	inComponent := func(edge Edge) bool {
		return visited.Contains(edge.First.Node)
	}
	for _, edge := range net.edges {
		if inComponent(edge) {
			component.edges = append(component.edges, edge)
		}
	}
	for _, edge := range net.activeEdges {
		if inComponent(edge) {
			component.activeEdges = append(component.activeEdges, edge)
		}
	}
	return component
}
