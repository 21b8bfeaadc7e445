package graph

import (
	"fmt"

	"github.com/cottand/inet/frontend/types"
)

type NodeID int

// Sign tells whether a port receives a value (Input) or offers one (Output).
// A connection always joins an Input with an Output.
type Sign int8

const (
	Input  Sign = -1
	Output Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Sign(%d)", int8(s))
	}
}

// PortRef is a logical reference to one port of one node of a Net.
type PortRef struct {
	Node NodeID
	Name string
}

// Port is a typed terminal of a node. It is also a Value, so ports can live on the stack.
//
// A Port is a copy of the data of its node's PortEntry, and does not own
// anything: connection state is only ever read from the Net.
type Port struct {
	PortRef
	NodeName    string
	T           types.Type
	Sign        Sign
	IsPrincipal bool
}

func (p Port) Ref() PortRef { return p.PortRef }

func (p Port) String() string {
	return fmt.Sprintf("(%s#%d)-%s", p.NodeName, p.Node, p.Name)
}

// PortTemplate is the static description of a port in a node definition.
type PortTemplate struct {
	Name        string
	T           types.Type
	Sign        Sign
	IsPrincipal bool
}

// PortEntry is the state of one port inside its node: the port and its connection, if any.
type PortEntry struct {
	Port       Port
	Connection *Connection
}

// Connection records the edge a port belongs to, and the port at its other end.
type Connection struct {
	Edge Edge
	Peer PortRef
}

// Edge is an undirected wire between two ports.
type Edge struct {
	First  PortRef
	Second PortRef
}

// Has reports whether ref is one of the ends of e.
func (e Edge) Has(ref PortRef) bool {
	return e.First == ref || e.Second == ref
}

func (e Edge) equivalent(other Edge) bool {
	return e == other || (e.First == other.Second && e.Second == other.First)
}
