package graph

import "iter"

// Node is an instantiated agent. Its ports are fixed when it is created.
type Node struct {
	ID   NodeID
	Name string

	ports map[string]*PortEntry
	// order is the declaration order of the ports
	order []string
}

// Port returns the entry of the port called name.
func (n *Node) Port(name string) (*PortEntry, bool) {
	entry, ok := n.ports[name]
	return entry, ok
}

// Ports iterates over the port entries of n in declaration order.
func (n *Node) Ports() iter.Seq[*PortEntry] {
	return func(yield func(*PortEntry) bool) {
		for _, name := range n.order {
			if !yield(n.ports[name]) {
				return
			}
		}
	}
}

// PortNames returns the names of the ports of n in declaration order.
func (n *Node) PortNames() []string {
	return append([]string(nil), n.order...)
}

// Principal returns the principal port of n, if it has one.
func (n *Node) Principal() (*PortEntry, bool) {
	for entry := range n.Ports() {
		if entry.Port.IsPrincipal {
			return entry, true
		}
	}
	return nil, false
}
