package compose

import (
	"testing"

	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNodeConnectsInputs(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	env, err := composeString(t, mod, "zero add1")
	require.NoError(t, err)

	assert.Equal(t, 2, env.Net.NodeCount())
	assert.Len(t, env.Net.Edges(), 1)
	assert.Empty(t, env.Net.ActiveEdges())
	require.Equal(t, 1, env.Stack.Len())

	top, _ := env.Stack.Peek()
	port, ok := top.(graph.Port)
	require.True(t, ok)
	assert.Equal(t, "add1", port.NodeName)
	assert.Equal(t, "value", port.Name)
}

func TestComposePrincipalPortsMakeActivePair(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	env, err := composeString(t, mod, "two two add")
	require.NoError(t, err)

	active := env.Net.ActiveEdges()
	require.Len(t, active, 1)
	assert.Equal(t, 7, env.Net.NodeCount())
	assert.Equal(t, 1, env.Stack.Len())
}

func TestComposeFailures(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	tests := []struct {
		words string
		code  ilerr.ErrCode
	}{
		{"add1", ilerr.EmptyStack},
		{"'a add1", ilerr.TopNotPort},
		{"missing", ilerr.UndefinedName},
		{"@missing", ilerr.UndefinedBuiltin},
		{"$x", ilerr.EmptyStack},
		{":label", ilerr.EmptyStack},
		{"zero $x x x", ilerr.UndefinedName},
		{"(add)-addend", ilerr.PortNotFound},
		{"zero -(add)-result", ilerr.PortNotFound},
		{"(zero)[ -- ]", ilerr.ExtraOrMissingArity},
		{"zero (add1)[prev prev -- value]", ilerr.ExtraOrMissingArity},
		{"zero (add1)[prev -- other]", ilerr.PortNotFound},
		{"zero (Nat)[ -- ]", ilerr.UndefinedName},
	}
	for _, test := range tests {
		t.Run(test.words, func(t *testing.T) {
			_, err := composeString(t, mod, test.words)
			require.Error(t, err)
			assert.Equal(t, test.code, ilerr.KindOf(err), "error: %v", err)

			var frame *ilerr.WordFailure
			assert.ErrorAs(t, err, &frame)
		})
	}
}

func TestComposeSymbolsAndLabels(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	env, err := composeString(t, mod, "'a :first 'b :second!")
	require.NoError(t, err)

	assert.Equal(t, []string{"'a :first", "'b :second!"}, formatStack(env))
}

func TestComposeLocalsAreConsumed(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	env, err := composeString(t, mod, "zero one $b $a b a")
	require.NoError(t, err)

	assert.Empty(t, env.Locals)
	assert.Equal(t, []string{"(add1#3)-value", "(zero#1)-value"}, formatStack(env))
}

func TestComposeRearrange(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	// an output port cannot receive another output
	_, err := composeString(t, mod, "zero (add1)[value -- prev]")
	assert.Equal(t, ilerr.SignMismatch, ilerr.KindOf(err))

	env, err := composeString(t, mod, "zero (add)[addend -- target result]")
	require.NoError(t, err)
	assert.Equal(t, []string{"(add#2)-target", "(add#2)-result"}, formatStack(env))
	assert.Len(t, env.Net.Edges(), 1)
}

func TestComposeLabeledPortsConnect(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	env, err := composeString(t, mod, "zero :x add1")
	require.NoError(t, err)
	assert.Len(t, env.Net.Edges(), 1)
}

func TestComposeTypeWords(t *testing.T) {
	mod, _ := loadMod(t, natPrelude+"\ntype Pair 2 end\n")
	env, err := composeString(t, mod, "Nat 'A Pair")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nat 'A Pair"}, formatStack(env))

	_, err = composeString(t, mod, "Nat Pair")
	assert.Equal(t, ilerr.EmptyStack, ilerr.KindOf(err))

	_, err = composeString(t, mod, "zero Nat Pair")
	assert.Equal(t, ilerr.NotAType, ilerr.KindOf(err))
}

func TestComposeTypeWithHugeArity(t *testing.T) {
	mod, _ := loadMod(t, natPrelude+"\ntype Huge 9999999999999999 end\n")
	assert.NotPanics(t, func() {
		_, err := composeString(t, mod, "Nat Huge")
		assert.Equal(t, ilerr.EmptyStack, ilerr.KindOf(err))
	})
}
