package graph

import (
	"maps"
	"slices"

	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
)

// Net is the graph under construction or reduction.
//
// The Net owns every Node. Edges and Ports refer to nodes by NodeID, so a
// removed node shows up as a failed lookup rather than a dangling pointer.
type Net struct {
	nodes       map[NodeID]*Node
	edges       []Edge
	activeEdges []Edge
	nextID      NodeID

	// Counters freshens the port types of nodes instantiated outside of a check
	Counters types.Counters
}

func NewNet() *Net {
	return &Net{
		nodes:    make(map[NodeID]*Node),
		nextID:   1,
		Counters: make(types.Counters),
	}
}

// AddNode instantiates a node called name with one unconnected port per template.
func (net *Net) AddNode(name string, templates []PortTemplate) *Node {
	node := &Node{
		ID:    net.nextID,
		Name:  name,
		ports: make(map[string]*PortEntry, len(templates)),
		order: make([]string, 0, len(templates)),
	}
	net.nextID++
	for _, template := range templates {
		node.ports[template.Name] = &PortEntry{
			Port: Port{
				PortRef:     PortRef{Node: node.ID, Name: template.Name},
				NodeName:    name,
				T:           template.T,
				Sign:        template.Sign,
				IsPrincipal: template.IsPrincipal,
			},
		}
		node.order = append(node.order, template.Name)
	}
	net.nodes[node.ID] = node
	return node
}

// Node returns the node with the given id, if it is still in the net.
func (net *Net) Node(id NodeID) (*Node, bool) {
	node, ok := net.nodes[id]
	return node, ok
}

// Nodes returns every node of the net, ordered by id.
func (net *Net) Nodes() []*Node {
	ids := slices.Sorted(maps.Keys(net.nodes))
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, net.nodes[id])
	}
	return nodes
}

func (net *Net) NodeCount() int { return len(net.nodes) }

// Edges returns the passive edges of the net.
func (net *Net) Edges() []Edge { return slices.Clone(net.edges) }

// ActiveEdges returns the edges between two principal ports, in the order they were made.
func (net *Net) ActiveEdges() []Edge { return slices.Clone(net.activeEdges) }

// NextActiveEdge returns the oldest active edge without removing it.
func (net *Net) NextActiveEdge() (Edge, bool) {
	if len(net.activeEdges) == 0 {
		return Edge{}, false
	}
	return net.activeEdges[0], true
}

// FindPortEntry returns the entry for ref, failing with
// ilerr.NodeNotFound or ilerr.PortNotFound.
func (net *Net) FindPortEntry(ref PortRef) (*PortEntry, error) {
	node, ok := net.nodes[ref.Node]
	if !ok {
		return nil, ilerr.New(ilerr.NewNodeNotFound{ID: int(ref.Node)})
	}
	entry, ok := node.ports[ref.Name]
	if !ok {
		return nil, ilerr.New(ilerr.NewPortNotFound{NodeName: node.Name, PortName: ref.Name})
	}
	return entry, nil
}

// RemoveNode disconnects every connected port of the node with the given id, then deletes it.
func (net *Net) RemoveNode(id NodeID) error {
	node, ok := net.nodes[id]
	if !ok {
		return ilerr.New(ilerr.NewNodeNotFound{ID: int(id)})
	}
	for entry := range node.Ports() {
		if entry.Connection == nil {
			continue
		}
		if err := DisconnectPort(net, entry.Port.Ref()); err != nil {
			return err
		}
	}
	delete(net.nodes, id)
	return nil
}

func (net *Net) removeEdge(edge Edge) {
	remove := func(edges []Edge) []Edge {
		return slices.DeleteFunc(edges, edge.equivalent)
	}
	net.edges = remove(net.edges)
	net.activeEdges = remove(net.activeEdges)
}
