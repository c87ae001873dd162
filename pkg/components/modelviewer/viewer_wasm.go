//go:build js && wasm

package modelviewer

import (
	"syscall/js"

	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/debug"
	"github.com/loomui/loom/pkg/vdom"
)

// Viewer mounts the host page's 3D engine into the returned container
// when the element attaches. The engine global must expose
// mount(element, options) returning a handle with setCamera(), reset()
// and dispose(); a missing engine leaves the container empty and logs.
func Viewer(opts *Options) (*vdom.VNode, *Controls) {
	c := &Controls{}
	node := builder.Div().
		Class("loom-modelviewer").
		Style("position:relative;width:100%;height:100%").
		Ref(func(el js.Value) {
			if el.IsNull() || el.IsUndefined() {
				c.Dispose()
				return
			}
			c.mount(el, opts)
		}).
		Build()
	return node, c
}

// Controls drives the mounted engine handle.
type Controls struct {
	handle  js.Value
	onReady js.Func
}

func (c *Controls) mount(el js.Value, opts *Options) {
	engine := js.Global().Get(opts.engineGlobal())
	if engine.IsUndefined() || engine.IsNull() {
		debug.Logf("modelviewer: window.%s not found", opts.engineGlobal())
		return
	}
	cfg := js.Global().Get("Object").New()
	if opts != nil {
		cfg.Set("src", opts.Src)
		cfg.Set("autoRotate", opts.AutoRotate)
		if opts.Background != "" {
			cfg.Set("background", opts.Background)
		}
		if opts.OnReady != nil {
			c.onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
				opts.OnReady()
				return nil
			})
			cfg.Set("onReady", c.onReady)
		}
	}
	c.handle = engine.Call("mount", el, cfg)
}

func (c *Controls) valid() bool { return c.handle.Truthy() }

// SetCamera positions the orbit camera.
func (c *Controls) SetCamera(orbitDeg, tiltDeg, distance float64) {
	if !c.valid() {
		return
	}
	c.handle.Call("setCamera", orbitDeg, tiltDeg, distance)
}

// Reset restores the engine's default camera.
func (c *Controls) Reset() {
	if !c.valid() {
		return
	}
	c.handle.Call("reset")
}

// Dispose tears down the engine handle and releases callbacks.
func (c *Controls) Dispose() {
	if c.valid() {
		c.handle.Call("dispose")
		c.handle = js.Value{}
	}
	if c.onReady.Truthy() {
		c.onReady.Release()
	}
}
