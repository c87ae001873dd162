//go:build js && wasm

package graphview

import "syscall/js"

// canvasSurface adapts an HTMLCanvasElement to the Surface interface.
type canvasSurface struct {
	canvas js.Value
	window js.Value
}

// NewCanvasSurface wraps an existing canvas element.
func NewCanvasSurface(canvas js.Value) Surface {
	return &canvasSurface{canvas: canvas, window: js.Global()}
}

// MountCanvas creates a canvas filling the container element and returns
// a surface over it.
func MountCanvas(container js.Value) Surface {
	doc := js.Global().Get("document")
	canvas := doc.Call("createElement", "canvas")
	canvas.Get("style").Set("width", "100%")
	canvas.Get("style").Set("height", "100%")
	canvas.Get("style").Set("display", "block")
	canvas.Get("style").Set("touchAction", "none")
	container.Call("appendChild", canvas)
	return NewCanvasSurface(canvas)
}

func (s *canvasSurface) Size() (w, h float64) {
	rect := s.canvas.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

func (s *canvasSurface) DevicePixelRatio() float64 {
	dpr := s.window.Get("devicePixelRatio")
	if dpr.IsUndefined() || dpr.Float() <= 0 {
		return 1
	}
	return dpr.Float()
}

func (s *canvasSurface) SetCanvasSize(pxW, pxH int) {
	s.canvas.Set("width", pxW)
	s.canvas.Set("height", pxH)
}

func (s *canvasSurface) Context() Context2D {
	ctx := s.canvas.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil
	}
	return &jsContext2D{ctx: ctx}
}

func (s *canvasSurface) RequestFrame(fn func()) (cancel func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	id := s.window.Call("requestAnimationFrame", cb)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		s.window.Call("cancelAnimationFrame", id)
		cb.Release()
	}
}

func (s *canvasSurface) ObserveResize(fn func()) (stop func()) {
	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	s.window.Call("addEventListener", "resize", onResize)

	var observer js.Value
	if ro := s.window.Get("ResizeObserver"); !ro.IsUndefined() {
		observer = ro.New(onResize)
		observer.Call("observe", s.canvas)
	}
	return func() {
		s.window.Call("removeEventListener", "resize", onResize)
		if !observer.IsUndefined() && !observer.IsNull() {
			observer.Call("disconnect")
		}
		onResize.Release()
	}
}

func (s *canvasSurface) BindInput(h InputHandler) (detach func()) {
	local := func(ev js.Value) (float64, float64) {
		rect := s.canvas.Call("getBoundingClientRect")
		return ev.Get("clientX").Float() - rect.Get("left").Float(),
			ev.Get("clientY").Float() - rect.Get("top").Float()
	}
	touches := func(ev js.Value) [][2]float64 {
		rect := s.canvas.Call("getBoundingClientRect")
		list := ev.Get("touches")
		pts := make([][2]float64, list.Get("length").Int())
		for i := range pts {
			t := list.Index(i)
			pts[i] = [2]float64{
				t.Get("clientX").Float() - rect.Get("left").Float(),
				t.Get("clientY").Float() - rect.Get("top").Float(),
			}
		}
		return pts
	}

	onDown := js.FuncOf(func(this js.Value, args []js.Value) any {
		x, y := local(args[0])
		h.PointerDown(x, y)
		return nil
	})
	onMove := js.FuncOf(func(this js.Value, args []js.Value) any {
		x, y := local(args[0])
		h.PointerMove(x, y)
		return nil
	})
	onUp := js.FuncOf(func(this js.Value, args []js.Value) any {
		h.PointerUp()
		return nil
	})
	onWheel := js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		h.Wheel(args[0].Get("deltaY").Float())
		return nil
	})
	onTouchStart := js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		h.TouchStart(touches(args[0]))
		return nil
	})
	onTouchMove := js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		h.TouchMove(touches(args[0]))
		return nil
	})
	onTouchEnd := js.FuncOf(func(this js.Value, args []js.Value) any {
		h.TouchEnd(touches(args[0]))
		return nil
	})

	s.canvas.Call("addEventListener", "mousedown", onDown)
	s.window.Call("addEventListener", "mousemove", onMove)
	s.window.Call("addEventListener", "mouseup", onUp)
	s.canvas.Call("addEventListener", "wheel", onWheel)
	s.canvas.Call("addEventListener", "touchstart", onTouchStart)
	s.canvas.Call("addEventListener", "touchmove", onTouchMove)
	s.canvas.Call("addEventListener", "touchend", onTouchEnd)

	return func() {
		s.canvas.Call("removeEventListener", "mousedown", onDown)
		s.window.Call("removeEventListener", "mousemove", onMove)
		s.window.Call("removeEventListener", "mouseup", onUp)
		s.canvas.Call("removeEventListener", "wheel", onWheel)
		s.canvas.Call("removeEventListener", "touchstart", onTouchStart)
		s.canvas.Call("removeEventListener", "touchmove", onTouchMove)
		s.canvas.Call("removeEventListener", "touchend", onTouchEnd)
		for _, f := range []js.Func{onDown, onMove, onUp, onWheel, onTouchStart, onTouchMove, onTouchEnd} {
			f.Release()
		}
	}
}

// jsContext2D forwards Context2D calls to a CanvasRenderingContext2D.
type jsContext2D struct {
	ctx js.Value
}

func (c *jsContext2D) Save()    { c.ctx.Call("save") }
func (c *jsContext2D) Restore() { c.ctx.Call("restore") }
func (c *jsContext2D) Scale(x, y float64) {
	c.ctx.Call("scale", x, y)
}
func (c *jsContext2D) ClearRect(x, y, w, h float64) {
	c.ctx.Call("clearRect", x, y, w, h)
}
func (c *jsContext2D) FillRect(x, y, w, h float64) {
	c.ctx.Call("fillRect", x, y, w, h)
}
func (c *jsContext2D) BeginPath() { c.ctx.Call("beginPath") }
func (c *jsContext2D) Rect(x, y, w, h float64) {
	c.ctx.Call("rect", x, y, w, h)
}
func (c *jsContext2D) Clip()               { c.ctx.Call("clip") }
func (c *jsContext2D) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *jsContext2D) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }
func (c *jsContext2D) Arc(x, y, r, start, end float64) {
	c.ctx.Call("arc", x, y, r, start, end)
}
func (c *jsContext2D) Fill()   { c.ctx.Call("fill") }
func (c *jsContext2D) Stroke() { c.ctx.Call("stroke") }
func (c *jsContext2D) FillText(s string, x, y float64) {
	c.ctx.Call("fillText", s, x, y)
}
func (c *jsContext2D) SetFillStyle(style string)   { c.ctx.Set("fillStyle", style) }
func (c *jsContext2D) SetStrokeStyle(style string) { c.ctx.Set("strokeStyle", style) }
func (c *jsContext2D) SetLineWidth(w float64)      { c.ctx.Set("lineWidth", w) }
func (c *jsContext2D) SetFont(font string)         { c.ctx.Set("font", font) }
func (c *jsContext2D) SetTextAlign(align string)   { c.ctx.Set("textAlign", align) }
