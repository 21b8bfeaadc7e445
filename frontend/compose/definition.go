package compose

import (
	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
)

// Definition is anything a name can resolve to.
type Definition interface {
	DefinitionName() string
}

// NodeDefinition is the template nodes are instantiated from.
type NodeDefinition struct {
	Name   string
	Input  []graph.PortTemplate
	Output []graph.PortTemplate
}

// WordDefinition is a named word sequence that has been checked against its claim.
type WordDefinition struct {
	Name  string
	Words []ast.Word
	Claim *ast.ClaimStmt
}

// TypeDefinition is a type constructor taking Arity arguments.
type TypeDefinition struct {
	Name  string
	Arity int
}

// BuiltinDefinition is implemented in Go rather than in words.
type BuiltinDefinition struct {
	Name    string
	Compose func(mod *Mod, env *Env, opts Options) error
}

func (d *NodeDefinition) DefinitionName() string    { return d.Name }
func (d *WordDefinition) DefinitionName() string    { return d.Name }
func (d *TypeDefinition) DefinitionName() string    { return d.Name }
func (d *BuiltinDefinition) DefinitionName() string { return d.Name }

// Templates returns the input templates followed by the output templates.
func (d *NodeDefinition) Templates() []graph.PortTemplate {
	all := make([]graph.PortTemplate, 0, len(d.Input)+len(d.Output))
	all = append(all, d.Input...)
	return append(all, d.Output...)
}

func portNames(templates []graph.PortTemplate) []string {
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, template.Name)
	}
	return names
}
