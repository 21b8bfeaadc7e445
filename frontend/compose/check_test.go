package compose

import (
	"testing"

	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkString(t *testing.T, mod *Mod, input, output, body string) error {
	t.Helper()
	return CheckWords(mod, parseWords(t, input), parseWords(t, output), parseWords(t, body))
}

func TestCheckWords(t *testing.T) {
	mod, _ := loadMod(t, natPrelude+`
type List 1 end
type Bool end

node true
  value!: Bool
end
`)
	tests := []struct {
		name                string
		input, output, body string
		code                ilerr.ErrCode
	}{
		{name: "identity", input: "Nat", output: "Nat", body: ""},
		{name: "constant", input: "", output: "Nat", body: "zero add1"},
		{name: "node as function", input: "Nat", output: "Nat", body: "add1"},
		{name: "principal input", input: "Nat Nat", output: "Nat", body: "add"},
		{name: "swap", input: "'A 'B", output: "'B 'A", body: "$a $b a b"},
		{name: "polymorphic identity", input: "'A List", output: "'A List", body: ""},
		{name: "definition", input: "Nat", output: "Nat", body: "two add"},

		{name: "wrong type", input: "", output: "Nat", body: "true", code: ilerr.TypeMismatch},
		{name: "occurs", input: "'A", output: "'A List", body: "", code: ilerr.OccursCheckFailure},
		{name: "extra output", input: "", output: "", body: "zero", code: ilerr.ExtraOrMissingArity},
		{name: "missing output", input: "", output: "Nat", body: "", code: ilerr.EmptyStack},
		{name: "unused input", input: "Nat", output: "", body: "$n", code: ilerr.UnusedLocal},
		{name: "output not a port", input: "", output: "Nat", body: "'a", code: ilerr.TopNotPort},
		{name: "undefined type", input: "Missing", output: "", body: "", code: ilerr.UndefinedName},
		{name: "port as type", input: "zero", output: "", body: "", code: ilerr.NotAType},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := checkString(t, mod, test.input, test.output, test.body)
			if test.code == ilerr.None {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, test.code, ilerr.KindOf(err), "error: %v", err)
		})
	}
}

func TestCheckWordsDoesNotOutput(t *testing.T) {
	mod, loader := loadMod(t, natPrelude)
	require.NoError(t, checkString(t, mod, "", "Nat", "zero @inspect @run"))
	assert.Empty(t, loader.outputs)
}

func TestCheckAllLocalsAreUsed(t *testing.T) {
	assert.NoError(t, CheckAllLocalsAreUsed(nil))

	err := CheckAllLocalsAreUsed(map[string]graph.Value{
		"b": graph.Symbol{Name: "x"},
		"a": graph.Symbol{Name: "y"},
	})
	require.Error(t, err)
	assert.Equal(t, ilerr.UnusedLocal, ilerr.KindOf(err))
	assert.Contains(t, err.Error(), "a, b")
}

func TestCapType(t *testing.T) {
	net := graph.NewNet()
	port := CapType(net, types.NewTerm("Nat"))
	assert.Equal(t, graph.Output, port.Sign)
	assert.True(t, port.IsPrincipal)
	assert.Equal(t, "Nat", port.T.String())
	assert.Equal(t, 1, net.NodeCount())
}
