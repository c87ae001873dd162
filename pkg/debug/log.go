//go:build !js || !wasm

// Package debug provides framework-internal logging that targets the
// browser console in WASM builds and a terminal logger elsewhere.
package debug

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "loom"})

// Log writes arguments as a debug line.
func Log(args ...any) {
	logger.Debug(fmt.Sprint(args...))
}

// Logf writes a formatted debug line.
func Logf(format string, args ...any) {
	logger.Debugf(format, args...)
}
