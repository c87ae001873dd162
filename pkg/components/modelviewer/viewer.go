//go:build !js || !wasm

package modelviewer

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// Viewer renders a placeholder outside the browser; the WASM build mounts
// the host engine on hydration.
func Viewer(opts *Options) (*vdom.VNode, *Controls) {
	node := builder.Div().
		Class("loom-modelviewer").
		Style("position:relative;width:100%;height:100%").
		Build()
	return node, &Controls{}
}

// Controls is inert outside the browser.
type Controls struct{}

// SetCamera is a no-op outside the browser.
func (c *Controls) SetCamera(orbitDeg, tiltDeg, distance float64) {}

// Reset is a no-op outside the browser.
func (c *Controls) Reset() {}

// Dispose is a no-op outside the browser.
func (c *Controls) Dispose() {}
