package compose

import (
	"testing"

	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeAll executes every statement of text on mod, returning the error of each.
func executeAll(t *testing.T, mod *Mod, text string) []error {
	t.Helper()
	file, errs := parser.ParseToAST(text)
	require.False(t, errs.HasError(), "parse errors: %v", errs.Errors())
	results := make([]error, 0, len(file.Stmts))
	for _, stmt := range file.Stmts {
		results = append(results, ExecuteStmt(mod, stmt))
	}
	return results
}

func TestExecuteDeclarationErrors(t *testing.T) {
	tests := map[string]struct {
		text string
		code ilerr.ErrCode
	}{
		"no principal port":    {"node loose value: Nat end", ilerr.PrincipalCount},
		"two principal ports":  {"node greedy a!: Nat -- b!: Nat end", ilerr.PrincipalCount},
		"duplicate port":       {"node twice a!: Nat a: Nat end", ilerr.AlreadyDefined},
		"port of two types":    {"node wide a!: Nat Nat end", ilerr.ExtraOrMissingArity},
		"port without type":    {"node bare a!: end", ilerr.ExtraOrMissingArity},
		"redefined type":       {"type Nat end", ilerr.AlreadyDefined},
		"redefined node":       {"node zero value!: Nat end", ilerr.AlreadyDefined},
		"rule on a type":       {"rule zero Nat end", ilerr.UndefinedName},
		"duplicate rule":       {"rule add zero end", ilerr.AlreadyDefined},
		"duplicate claim":      {"claim one -- Nat end", ilerr.AlreadyDefined},
		"define without claim": {"define three two add1 end", ilerr.MissingClaim},
		"show unused local":    {"show zero $x end", ilerr.UnusedLocal},
		"run without rule":     {"node sink target!: Nat -- end run zero sink end", ilerr.NoRuleFor},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			mod, _ := loadMod(t, natPrelude)
			results := executeAll(t, mod, test.text)
			last := results[len(results)-1]
			require.Error(t, last)
			assert.Equal(t, test.code, ilerr.KindOf(last), "error: %v", last)
		})
	}
}

func TestExecuteDefineChecksClaim(t *testing.T) {
	mod, _ := loadMod(t, natPrelude)
	results := executeAll(t, mod, `
claim three Nat -- Nat end
define three two add1 end
`)
	require.Len(t, results, 2)
	assert.NoError(t, results[0])
	assert.Equal(t, ilerr.ExtraOrMissingArity, ilerr.KindOf(results[1]), "error: %v", results[1])

	_, err := FindDefinitionOrFail(mod, "three")
	assert.Equal(t, ilerr.UndefinedName, ilerr.KindOf(err))
}

func TestExecuteNodeTypes(t *testing.T) {
	mod, _ := loadMod(t, natPrelude+`
type List 1 end
node cons
  head: 'A
  tail: 'A List
  --
  value!: 'A List
end
`)
	def, err := findNodeDefinitionOrFail(mod, "cons")
	require.NoError(t, err)
	require.Len(t, def.Input, 2)
	require.Len(t, def.Output, 1)
	assert.Equal(t, "'A", def.Input[0].T.String())
	assert.Equal(t, "'A List", def.Input[1].T.String())
	assert.True(t, def.Output[0].IsPrincipal)
}

func TestExecuteShowAndRunOutput(t *testing.T) {
	_, loader := loadMod(t, natPrelude+`
show one end
run one one add end
`)
	require.Len(t, loader.outputs, 2)
	assert.Equal(t, `net_from_port (add1#2)-value
  (zero#1)-value -- (add1#2)-prev
end`, loader.outputs[0])
	assert.Contains(t, loader.outputs[1], "net_from_port (add1#")
	assert.NotContains(t, loader.outputs[1], "add#")
}

func TestExecuteInspect(t *testing.T) {
	_, loader := loadMod(t, natPrelude+`
show 'a @inspect end
`)
	assert.Equal(t, []string{"'a", "'a"}, loader.outputs)
}
