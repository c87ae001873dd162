//go:build js && wasm

package debug

import (
	"fmt"
	"syscall/js"
)

// Log writes arguments to the browser console.
func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

// Logf writes a formatted message to the browser console.
func Logf(format string, args ...any) {
	js.Global().Get("console").Call("log", fmt.Sprintf(format, args...))
}
