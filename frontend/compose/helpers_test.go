package compose

import (
	"testing"

	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/parser"
	"github.com/stretchr/testify/require"
)

const natPrelude = `
type Nat end

node zero
  value!: Nat
end

node add1
  prev: Nat
  --
  value!: Nat
end

node add
  target!: Nat
  addend: Nat
  --
  result: Nat
end

rule zero add
  (add)-addend
  -(add)-result
end

rule add1 add
  (add)-addend (add1)-prev add
  add1 -(add)-result
end

claim one -- Nat end
define one zero add1 end

claim two -- Nat end
define two one add1 end
`

type recordingLoader struct {
	outputs []string
}

func (l *recordingLoader) OnOutput(text string) {
	l.outputs = append(l.outputs, text)
}

// loadMod executes every statement of text, failing the test on any error.
func loadMod(t *testing.T, text string) (*Mod, *recordingLoader) {
	t.Helper()
	loader := &recordingLoader{}
	mod := NewMod(text, loader)
	file, errs := parser.ParseToAST(text)
	require.False(t, errs.HasError(), "parse errors: %v", errs.Errors())
	for _, stmt := range file.Stmts {
		require.NoError(t, ExecuteStmt(mod, stmt))
	}
	return mod, loader
}

// parseWords parses the words of a show statement.
func parseWords(t *testing.T, words string) []ast.Word {
	t.Helper()
	file, errs := parser.ParseToAST("show " + words + " end")
	require.False(t, errs.HasError(), "parse errors: %v", errs.Errors())
	require.Len(t, file.Stmts, 1)
	return file.Stmts[0].(*ast.ShowStmt).Words
}

// composeString composes words in a fresh Env in execution mode.
func composeString(t *testing.T, mod *Mod, words string) (*Env, error) {
	t.Helper()
	env := NewEnv(mod)
	return env, ComposeWords(mod, env, parseWords(t, words), Options{})
}
