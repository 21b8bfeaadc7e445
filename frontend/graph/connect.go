package graph

import (
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
)

var logger = log.DefaultLogger.With("section", "compose.net")

// Connect wires first to second.
//
// A port holds at most one connection, so connecting an already connected
// port fails with ilerr.AlreadyConnected, and both ports must have opposite
// signs or it fails with ilerr.SignMismatch. The new edge is active iff both
// ports are principal.
func Connect(net *Net, first, second Port) error {
	firstEntry, err := net.FindPortEntry(first.Ref())
	if err != nil {
		return err
	}
	secondEntry, err := net.FindPortEntry(second.Ref())
	if err != nil {
		return err
	}

	if firstEntry.Connection != nil {
		return ilerr.New(ilerr.NewAlreadyConnected{First: first.String(), Second: second.String(), Which: first.String()})
	}
	if secondEntry.Connection != nil {
		return ilerr.New(ilerr.NewAlreadyConnected{First: first.String(), Second: second.String(), Which: second.String()})
	}
	if firstEntry.Port.Sign == secondEntry.Port.Sign {
		return ilerr.New(ilerr.NewSignMismatch{First: first.String(), Second: second.String(), Sign: firstEntry.Port.Sign.String()})
	}

	edge := Edge{First: first.Ref(), Second: second.Ref()}
	firstEntry.Connection = &Connection{Edge: edge, Peer: second.Ref()}
	secondEntry.Connection = &Connection{Edge: edge, Peer: first.Ref()}

	if firstEntry.Port.IsPrincipal && secondEntry.Port.IsPrincipal {
		net.activeEdges = append(net.activeEdges, edge)
		logger.Debug("connected active pair", "first", first, "second", second)
	} else {
		net.edges = append(net.edges, edge)
		logger.Debug("connected", "first", first, "second", second)
	}
	return nil
}

// DisconnectPort removes the connection of the port ref refers to, on both of its ends.
// The port must be connected, or it fails with ilerr.NoConnection.
func DisconnectPort(net *Net, ref PortRef) error {
	entry, err := net.FindPortEntry(ref)
	if err != nil {
		return err
	}
	if entry.Connection == nil {
		return ilerr.New(ilerr.NewNoConnection{Port: entry.Port.String()})
	}
	connection := entry.Connection
	entry.Connection = nil

	// the peer may already be gone if its node was removed
	if peer, err := net.FindPortEntry(connection.Peer); err == nil {
		peer.Connection = nil
	}
	net.removeEdge(connection.Edge)
	return nil
}

// PeerOf returns the port connected to ref, failing with ilerr.NoConnection.
func PeerOf(net *Net, ref PortRef) (Port, error) {
	entry, err := net.FindPortEntry(ref)
	if err != nil {
		return Port{}, err
	}
	if entry.Connection == nil {
		return Port{}, ilerr.New(ilerr.NewNoConnection{Port: entry.Port.String()})
	}
	peer, err := net.FindPortEntry(entry.Connection.Peer)
	if err != nil {
		return Port{}, err
	}
	return peer.Port, nil
}
