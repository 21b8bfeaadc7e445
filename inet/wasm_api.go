//go:build js && wasm

package inet

import (
	"bytes"
	"fmt"
	"strings"
	"syscall/js"
)

// CheckModule loads the module in args[0] with its output discarded, and
// returns either "ok" or the errors of the module with source snippets.
func CheckModule(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "the checker panicked: " + fmt.Sprint(r)
		}
	}()

	module, errs, err := NewModuleFromBytes([]byte(args[0].String()), nil)
	if err != nil {
		return fmt.Sprintf("the checker encountered a failure:\n\n%s", err)
	}
	if errs.HasError() {
		return "the module has the following errors:\n" + module.FormatErrors()
	}
	return "ok"
}

// RunModule loads the module in args[0] and returns what it output.
//
// output: { error: string, output: string }
func RunModule(_ js.Value, args []js.Value) (ret any) {
	resultObj := func(err string, output string) any {
		return js.ValueOf(map[string]any{
			"error":  err,
			"output": output,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = resultObj("the interpreter panicked: "+fmt.Sprint(r), "")
		}
	}()

	output := bytes.NewBuffer(nil)
	module, errs, err := NewModuleFromBytes([]byte(args[0].String()), output)
	if err != nil {
		return resultObj(fmt.Sprintf("the interpreter encountered a failure:\n\n%s", err), "")
	}
	sb := strings.Builder{}
	if errs.HasError() {
		sb.WriteString("the module has the following errors:\n")
		sb.WriteString(module.FormatErrors())
	}
	return resultObj(sb.String(), output.String())
}
