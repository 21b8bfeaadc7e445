package graph

import (
	"testing"

	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nat = types.NewTerm("Nat")

func addZero(net *Net) *Node {
	return net.AddNode("zero", []PortTemplate{{Name: "value", T: nat, Sign: Output, IsPrincipal: true}})
}

func addAdd1(net *Net) *Node {
	return net.AddNode("add1", []PortTemplate{
		{Name: "prev", T: nat, Sign: Input},
		{Name: "value", T: nat, Sign: Output, IsPrincipal: true},
	})
}

func addSink(net *Net) *Node {
	return net.AddNode("sink", []PortTemplate{{Name: "target", T: nat, Sign: Input, IsPrincipal: true}})
}

func port(t *testing.T, node *Node, name string) Port {
	t.Helper()
	entry, ok := node.Port(name)
	require.True(t, ok, "no port %s on %s", name, node.Name)
	return entry.Port
}

func TestAddNode(t *testing.T) {
	net := NewNet()
	zero := addZero(net)
	add1 := addAdd1(net)

	assert.Equal(t, NodeID(1), zero.ID)
	assert.Equal(t, NodeID(2), add1.ID)
	assert.Equal(t, []string{"prev", "value"}, add1.PortNames())

	principal, ok := add1.Principal()
	require.True(t, ok)
	assert.Equal(t, "value", principal.Port.Name)
	assert.Equal(t, "(add1#2)-value", principal.Port.String())
}

func TestConnectClassifiesEdges(t *testing.T) {
	net := NewNet()
	zero, add1, sink := addZero(net), addAdd1(net), addSink(net)

	require.NoError(t, Connect(net, port(t, zero, "value"), port(t, add1, "prev")))
	assert.Len(t, net.Edges(), 1)
	assert.Empty(t, net.ActiveEdges())

	require.NoError(t, Connect(net, port(t, add1, "value"), port(t, sink, "target")))
	assert.Len(t, net.Edges(), 1)
	require.Len(t, net.ActiveEdges(), 1)

	edge, ok := net.NextActiveEdge()
	require.True(t, ok)
	assert.True(t, edge.Has(port(t, sink, "target").Ref()))

	peer, err := PeerOf(net, port(t, zero, "value").Ref())
	require.NoError(t, err)
	assert.Equal(t, "(add1#2)-prev", peer.String())
}

func TestConnectFailures(t *testing.T) {
	net := NewNet()
	zero, other, add1 := addZero(net), addZero(net), addAdd1(net)
	require.NoError(t, Connect(net, port(t, zero, "value"), port(t, add1, "prev")))

	err := Connect(net, port(t, other, "value"), port(t, add1, "prev"))
	assert.Equal(t, ilerr.AlreadyConnected, ilerr.KindOf(err))

	// the failed connection leaves the first one in place
	peer, err := PeerOf(net, port(t, add1, "prev").Ref())
	require.NoError(t, err)
	assert.Equal(t, port(t, zero, "value").Ref(), peer.Ref())
	entry, err := net.FindPortEntry(port(t, other, "value").Ref())
	require.NoError(t, err)
	assert.Nil(t, entry.Connection)
	assert.Len(t, net.Edges(), 1)

	err = Connect(net, port(t, other, "value"), port(t, add1, "value"))
	assert.Equal(t, ilerr.SignMismatch, ilerr.KindOf(err))

	err = Connect(net, port(t, other, "value"), Port{PortRef: PortRef{Node: 42, Name: "value"}})
	assert.Equal(t, ilerr.NodeNotFound, ilerr.KindOf(err))

	err = Connect(net, port(t, other, "value"), Port{PortRef: PortRef{Node: add1.ID, Name: "missing"}})
	assert.Equal(t, ilerr.PortNotFound, ilerr.KindOf(err))
}

func TestDisconnectPort(t *testing.T) {
	net := NewNet()
	zero, add1, sink := addZero(net), addAdd1(net), addSink(net)
	require.NoError(t, Connect(net, port(t, zero, "value"), port(t, add1, "prev")))
	require.NoError(t, Connect(net, port(t, add1, "value"), port(t, sink, "target")))

	// either end disconnects the edge
	require.NoError(t, DisconnectPort(net, port(t, sink, "target").Ref()))
	assert.Empty(t, net.ActiveEdges())
	entry, _ := add1.Port("value")
	assert.Nil(t, entry.Connection)

	err := DisconnectPort(net, port(t, sink, "target").Ref())
	assert.Equal(t, ilerr.NoConnection, ilerr.KindOf(err))

	_, err = PeerOf(net, port(t, sink, "target").Ref())
	assert.Equal(t, ilerr.NoConnection, ilerr.KindOf(err))

	// a disconnected port can be connected again
	require.NoError(t, Connect(net, port(t, add1, "value"), port(t, sink, "target")))
	assert.Len(t, net.ActiveEdges(), 1)
}

func TestRemoveNode(t *testing.T) {
	net := NewNet()
	zero, add1 := addZero(net), addAdd1(net)
	require.NoError(t, Connect(net, port(t, zero, "value"), port(t, add1, "prev")))

	require.NoError(t, net.RemoveNode(add1.ID))
	assert.Equal(t, 1, net.NodeCount())
	assert.Empty(t, net.Edges())

	entry, _ := zero.Port("value")
	assert.Nil(t, entry.Connection)

	_, ok := net.Node(add1.ID)
	assert.False(t, ok)
	_, err := net.FindPortEntry(PortRef{Node: add1.ID, Name: "value"})
	assert.Equal(t, ilerr.NodeNotFound, ilerr.KindOf(err))
	assert.Equal(t, ilerr.NodeNotFound, ilerr.KindOf(net.RemoveNode(add1.ID)))
}

func TestFormatNetAndComponent(t *testing.T) {
	net := NewNet()
	zero, add1, sink := addZero(net), addAdd1(net), addSink(net)
	lonely := addZero(net)
	require.NoError(t, Connect(net, port(t, zero, "value"), port(t, add1, "prev")))
	require.NoError(t, Connect(net, port(t, sink, "target"), port(t, add1, "value")))

	assert.Equal(t, `(add1#2)-value -!- (sink#3)-target
(zero#1)-value -- (add1#2)-prev
(zero#4)`, FormatNet(net))

	component := ConnectedComponent(net, sink.ID)
	assert.Equal(t, 3, component.NodeCount())
	assert.Equal(t, `(add1#2)-value -!- (sink#3)-target
(zero#1)-value -- (add1#2)-prev`, FormatNet(component))

	assert.Equal(t, "(zero#4)", FormatNet(ConnectedComponent(net, lonely.ID)))
}

func TestFormatValue(t *testing.T) {
	net := NewNet()
	zero := addZero(net)
	assert.Equal(t, "(zero#1)-value", FormatValue(port(t, zero, "value")))
	assert.Equal(t, "'x", FormatValue(Symbol{Name: "x"}))
	assert.Equal(t, "'x :a :b!", FormatValue(Labeled{
		Value:       Labeled{Value: Symbol{Name: "x"}, Label: "a"},
		Label:       "b",
		IsImportant: true,
	}))
	assert.Equal(t, "Nat", FormatValue(TypeValue{T: nat}))
}
