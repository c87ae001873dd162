//go:build js && wasm

package graphview

import (
	"syscall/js"

	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/debug"
	"github.com/loomui/loom/pkg/vdom"
)

// Widget returns a container element that mounts the canvas view when the
// host attaches it to the document. The returned View starts on mount;
// callers keep it to Stop the loop or drive the imperative API.
func Widget(nodes []*Node, opts Options) (*vdom.VNode, *View) {
	v := New(nodes, opts)
	node := builder.Div().
		Class("loom-graphview").
		Style("position:relative;width:100%;height:100%").
		Ref(func(el js.Value) {
			if el.IsNull() || el.IsUndefined() {
				v.Stop()
				return
			}
			if err := v.Start(MountCanvas(el)); err != nil {
				debug.Logf("graphview: %v", err)
			}
		}).
		Build()
	return node, v
}
