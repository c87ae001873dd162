//go:build !js || !wasm

package graphview

import (
	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/vdom"
)

// Widget renders a placeholder outside the browser. Server-side rendering
// emits the container; the WASM build takes over on hydration.
func Widget(nodes []*Node, opts Options) (*vdom.VNode, *View) {
	v := New(nodes, opts)
	node := builder.Div().
		Class("loom-graphview").
		Style("position:relative;width:100%;height:100%").
		Build()
	return node, v
}
