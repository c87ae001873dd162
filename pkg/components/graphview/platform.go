package graphview

// Context2D is the subset of a canvas 2D drawing context the renderer
// uses. The wasm surface backs it with a real CanvasRenderingContext2D;
// tests back it with a recorder.
type Context2D interface {
	Save()
	Restore()
	Scale(x, y float64)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	BeginPath()
	Rect(x, y, w, h float64)
	Clip()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)
	Fill()
	Stroke()
	FillText(s string, x, y float64)
	SetFillStyle(style string)
	SetStrokeStyle(style string)
	SetLineWidth(w float64)
	SetFont(font string)
	SetTextAlign(align string)
}

// InputHandler receives pointer, touch and wheel input from a Surface.
// Coordinates are CSS pixels relative to the canvas origin.
type InputHandler interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
	TouchStart(points [][2]float64)
	TouchMove(points [][2]float64)
	TouchEnd(points [][2]float64)
	Wheel(deltaY float64)
}

// Surface abstracts the host canvas: sizing, the drawing context, frame
// scheduling, resize observation and input delivery. Every subscription
// returns a release function; the view calls all of them on Stop.
type Surface interface {
	// Size returns the current logical (CSS pixel) canvas size.
	Size() (w, h float64)
	// DevicePixelRatio returns the host's device pixel ratio.
	DevicePixelRatio() float64
	// SetCanvasSize resizes the backing store to pxW by pxH device pixels.
	SetCanvasSize(pxW, pxH int)
	// Context returns the 2D drawing context, or nil when the host
	// cannot provide one.
	Context() Context2D
	// RequestFrame schedules fn for the next animation frame and
	// returns a cancel function.
	RequestFrame(fn func()) (cancel func())
	// ObserveResize invokes fn whenever the canvas size may have
	// changed and returns a stop function.
	ObserveResize(fn func()) (stop func())
	// BindInput attaches h to the host's input events and returns a
	// detach function.
	BindInput(h InputHandler) (detach func())
}
