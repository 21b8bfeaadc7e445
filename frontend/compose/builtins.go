package compose

import (
	"github.com/cottand/inet/frontend/ilerr"
)

func defaultBuiltins() map[string]Definition {
	return map[string]Definition{
		"inspect": &BuiltinDefinition{Name: "inspect", Compose: composeInspect},
		"run":     &BuiltinDefinition{Name: "run", Compose: composeRun},
	}
}

// composeInspect outputs the top value without popping it. Nothing is output while checking.
func composeInspect(mod *Mod, env *Env, opts Options) error {
	value, ok := env.Stack.Peek()
	if !ok {
		return ilerr.New(ilerr.NewEmptyStack{Expected: "a value to inspect"})
	}
	if opts.Checking != nil {
		return nil
	}
	mod.Loader.OnOutput(FormatValueIn(env.Net, value))
	return nil
}

// composeRun reduces the net built so far to normal form. It does nothing while checking.
func composeRun(mod *Mod, env *Env, opts Options) error {
	if opts.Checking != nil {
		return nil
	}
	_, err := runEnv(mod, env)
	return err
}
