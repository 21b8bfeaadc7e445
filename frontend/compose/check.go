package compose

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/graph"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/frontend/types"
	"github.com/cottand/inet/internal/log"
	"github.com/cottand/inet/util"
	"github.com/pkg/errors"
)

var checkLogger = log.DefaultLogger.With("section", "check")

// CheckWords proves that composing body, starting from a stack of the declared
// input types, leaves exactly a stack of the declared output types, and that
// every local bound along the way is used exactly once.
//
// The net built while checking is thrown away.
func CheckWords(mod *Mod, input, output, body []ast.Word) error {
	checking := NewChecking()
	env := NewEnv(mod)
	opts := Options{Checking: checking}
	occurred := make(types.Occurred)

	inputTypes, err := collectFreshTypes(mod, env, input, checking, occurred)
	if err != nil {
		return errors.Wrap(err, "collecting input types")
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return err
	}

	// inputTypes is in declaration order, so the last declared input ends up on top
	for _, t := range inputTypes {
		env.Stack.Push(CapType(env.Net, t))
	}

	if err := ComposeWords(mod, env, body, opts); err != nil {
		return err
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return err
	}

	outputTypes, err := collectFreshTypes(mod, env, output, checking, occurred)
	if err != nil {
		return errors.Wrap(err, "collecting output types")
	}
	if err := CheckAllLocalsAreUsed(env.Locals); err != nil {
		return err
	}

	for t := range util.Reverse(outputTypes) {
		port, err := popPort(env, fmt.Sprintf("a port of output type %s", t))
		if err != nil {
			return err
		}
		if err := types.Unify(checking.Substitution, port.T, t); err != nil {
			return err
		}
	}

	if env.Stack.Len() != 0 {
		return ilerr.New(ilerr.NewExtraOrMissingArity{
			Message: fmt.Sprintf("expected the stack to be empty after checking, but it has %d values", env.Stack.Len()),
			Stack:   formatStack(env),
		})
	}
	checkLogger.Debug("checked words", "body", ast.FormatWords(body), "substitution", checking.Substitution)
	return nil
}

// CheckAllLocalsAreUsed fails with ilerr.UnusedLocal naming every local still bound.
func CheckAllLocalsAreUsed(locals map[string]graph.Value) error {
	if len(locals) == 0 {
		return nil
	}
	return ilerr.New(ilerr.NewUnusedLocal{Names: slices.Sorted(maps.Keys(locals))})
}

func formatStack(env *Env) []string {
	values := make([]graph.Value, 0, env.Stack.Len())
	for _, value := range env.Stack.All() {
		values = append(values, value)
	}
	return graph.FormatValues(values)
}
