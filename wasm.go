//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/inet/inet"
)

func main() {
	js.Global().Set("CheckModule", js.FuncOf(inet.CheckModule))
	js.Global().Set("RunModule", js.FuncOf(inet.RunModule))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
