package compose

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/ilerr"
)

// Loader receives the text a module outputs, from show and run statements
// and from the inspect builtin.
type Loader interface {
	OnOutput(text string)
}

// DiscardLoader drops all output.
type DiscardLoader struct{}

func (DiscardLoader) OnOutput(string) {}

// Mod is the registry of everything a module has declared so far.
type Mod struct {
	// Text is the source of the module, which every ast.Range points into
	Text   string
	Loader Loader
	// MaxSteps bounds every reduction of the module, when positive
	MaxSteps int
	Builtins map[string]Definition

	definitions *immutable.SortedMap[string, Definition]
	rules       map[RuleKey]*Rule
	claims      map[string]*ast.ClaimStmt
}

func NewMod(text string, loader Loader) *Mod {
	if loader == nil {
		loader = DiscardLoader{}
	}
	return &Mod{
		Text:        text,
		Loader:      loader,
		Builtins:    defaultBuiltins(),
		definitions: immutable.NewSortedMap[string, Definition](nil),
		rules:       make(map[RuleKey]*Rule),
		claims:      make(map[string]*ast.ClaimStmt),
	}
}

// Define registers def under its name, which must not be taken yet.
func (m *Mod) Define(def Definition) error {
	name := def.DefinitionName()
	if _, ok := m.definitions.Get(name); ok {
		return ilerr.New(ilerr.NewAlreadyDefined{Name: name})
	}
	m.definitions = m.definitions.Set(name, def)
	return nil
}

// Definitions iterates over the definitions of the module, sorted by name.
func (m *Mod) Definitions() iter.Seq2[string, Definition] {
	return func(yield func(string, Definition) bool) {
		itr := m.definitions.Iterator()
		for !itr.Done() {
			name, def, _ := itr.Next()
			if !yield(name, def) {
				return
			}
		}
	}
}

// FindDefinitionOrFail resolves name, or fails with ilerr.UndefinedName.
func FindDefinitionOrFail(mod *Mod, name string) (Definition, error) {
	def, ok := mod.definitions.Get(name)
	if !ok {
		return nil, ilerr.New(ilerr.NewUndefinedName{Name: name})
	}
	return def, nil
}

func findNodeDefinitionOrFail(mod *Mod, name string) (*NodeDefinition, error) {
	def, err := FindDefinitionOrFail(mod, name)
	if err != nil {
		return nil, err
	}
	nodeDef, ok := def.(*NodeDefinition)
	if !ok {
		return nil, ilerr.New(ilerr.NewUndefinedName{Name: name, As: "a node"})
	}
	return nodeDef, nil
}

// AddRule registers rule for its pair of nodes, which must not have a rule yet.
func (m *Mod) AddRule(rule *Rule) error {
	if _, ok := m.rules[rule.Key()]; ok {
		return ilerr.New(ilerr.NewAlreadyDefined{Name: "rule " + rule.String()})
	}
	m.rules[rule.Key()] = rule
	return nil
}

// FindRule returns the rule for an active pair of nodes called first and second, in any order.
func (m *Mod) FindRule(first, second string) (*Rule, bool) {
	rule, ok := m.rules[NewRuleKey(first, second)]
	return rule, ok
}

func (m *Mod) addClaim(claim *ast.ClaimStmt) error {
	if _, ok := m.claims[claim.Name]; ok {
		return ilerr.New(ilerr.NewAlreadyDefined{Name: "claim " + claim.Name})
	}
	m.claims[claim.Name] = claim
	return nil
}
