package compose

import (
	"fmt"

	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/pkg/errors"
)

// ExecuteStmt applies stmt to mod: declarations are registered, and show and
// run statements build a net and output its values through mod.Loader.
func ExecuteStmt(mod *Mod, stmt ast.Stmt) error {
	logger.Debug("executing statement", "kind", ast.StmtKind(stmt), "range", ast.RangeOf(stmt))
	switch stmt := stmt.(type) {
	case *ast.TypeStmt:
		return mod.Define(&TypeDefinition{Name: stmt.Name, Arity: stmt.Arity})

	case *ast.NodeStmt:
		def, err := declareNode(mod, stmt)
		if err != nil {
			return errors.Wrapf(err, "declaring node %s", stmt.Name)
		}
		return mod.Define(def)

	case *ast.RuleStmt:
		for _, name := range []string{stmt.First, stmt.Second} {
			if _, err := findNodeDefinitionOrFail(mod, name); err != nil {
				return errors.Wrapf(err, "declaring rule %s %s", stmt.First, stmt.Second)
			}
		}
		return mod.AddRule(&Rule{Range: stmt.Range, First: stmt.First, Second: stmt.Second, Words: stmt.Words})

	case *ast.ClaimStmt:
		return mod.addClaim(stmt)

	case *ast.DefineStmt:
		claim, ok := mod.claims[stmt.Name]
		if !ok {
			return ilerr.New(ilerr.NewMissingClaim{Name: stmt.Name})
		}
		if err := CheckWords(mod, claim.Input, claim.Output, stmt.Words); err != nil {
			return errors.Wrapf(err, "checking definition %s", stmt.Name)
		}
		return mod.Define(&WordDefinition{Name: stmt.Name, Words: stmt.Words, Claim: claim})

	case *ast.ShowStmt:
		env, err := composeStmtWords(mod, stmt.Words)
		if err != nil {
			return err
		}
		outputStack(mod, env)
		return nil

	case *ast.RunStmt:
		env, err := composeStmtWords(mod, stmt.Words)
		if err != nil {
			return err
		}
		stats, err := runEnv(mod, env)
		if err != nil {
			return err
		}
		logger.Debug("ran statement", "steps", stats.Steps)
		outputStack(mod, env)
		return nil

	default:
		return fmt.Errorf("unexpected statement %T", stmt)
	}
}

func composeStmtWords(mod *Mod, words []ast.Word) (*Env, error) {
	env := NewEnv(mod)
	if err := ComposeWords(mod, env, words, Options{}); err != nil {
		return nil, err
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return nil, err
	}
	return env, nil
}

// declareNode collects the type of every port of stmt. Type variables are
// shared between the ports of the node, so they are collected on one Env.
func declareNode(mod *Mod, stmt *ast.NodeStmt) (*NodeDefinition, error) {
	env := NewEnv(mod)
	opts := Options{Checking: NewChecking()}
	seen := make(map[string]bool)
	principals := 0

	collect := func(decls []ast.PortDecl, sign graph.Sign) ([]graph.PortTemplate, error) {
		templates := make([]graph.PortTemplate, 0, len(decls))
		for _, decl := range decls {
			if seen[decl.Name] {
				return nil, ilerr.New(ilerr.NewAlreadyDefined{Name: "port " + decl.Name})
			}
			seen[decl.Name] = true
			if decl.IsPrincipal {
				principals++
			}

			collected, err := CollectWords(mod, env, decl.T, opts)
			if err != nil {
				return nil, errors.Wrapf(err, "collecting the type of port %s", decl.Name)
			}
			if len(collected) != 1 {
				return nil, ilerr.New(ilerr.NewExtraOrMissingArity{
					Message: fmt.Sprintf("the type of port %s should be one type, but it is %d", decl.Name, len(collected)),
				})
			}
			templates = append(templates, graph.PortTemplate{
				Name:        decl.Name,
				T:           collected[0],
				Sign:        sign,
				IsPrincipal: decl.IsPrincipal,
			})
		}
		return templates, nil
	}

	input, err := collect(stmt.Input, graph.Input)
	if err != nil {
		return nil, err
	}
	output, err := collect(stmt.Output, graph.Output)
	if err != nil {
		return nil, err
	}
	if principals != 1 {
		return nil, ilerr.New(ilerr.NewPrincipalCount{Node: stmt.Name, Count: principals})
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return nil, err
	}
	return &NodeDefinition{Name: stmt.Name, Input: input, Output: output}, nil
}
