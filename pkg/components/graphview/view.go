package graphview

import "errors"

// ErrNoContext is returned by Start when the surface cannot provide a 2D
// drawing context.
var ErrNoContext = errors.New("graphview: surface has no 2d context")

// Options configures a View. The zero value selects all defaults.
type Options struct {
	Settings *Settings
	Theme    *Theme
	// DrawNode overrides the default node drawing.
	DrawNode NodeDrawer
	// OnSelect is invoked with the node's ID when a node drag begins.
	OnSelect func(id string)
}

// View ties the engine, viewport, renderer and router to one surface and
// drives them from the surface's animation-frame loop. A view is
// single-threaded: every method runs on the host's event loop.
type View struct {
	engine   *Engine
	vp       *Viewport
	renderer *Renderer
	router   *Router
	onSelect func(id string)

	surface     Surface
	ctx         Context2D
	cancelFrame func()
	stopResize  func()
	detachInput func()
	running     bool
	centered    bool
}

// New builds a view over nodes. Nothing runs until Start.
func New(nodes []*Node, opts Options) *View {
	v := &View{onSelect: opts.OnSelect}
	v.engine = NewEngine(nodes, opts.Settings)
	v.vp = NewViewport(opts.Settings)
	v.renderer = NewRenderer(opts.Settings, opts.Theme, opts.DrawNode)
	v.router = NewRouter(v.engine, v.vp, v.redraw)
	return v
}

// Engine returns the layout engine.
func (v *View) Engine() *Engine { return v.engine }

// Viewport returns the viewport.
func (v *View) Viewport() *Viewport { return v.vp }

// Router returns the interaction router.
func (v *View) Router() *Router { return v.router }

// Start binds the view to a surface and begins the animation loop.
// Starting an already-running view is a no-op. It fails when the surface
// has no 2D context; the view is left stopped and can be started against
// another surface.
func (v *View) Start(s Surface) error {
	if v.running {
		return nil
	}
	ctx := s.Context()
	if ctx == nil {
		return ErrNoContext
	}
	v.surface = s
	v.ctx = ctx
	v.running = true
	v.resize()
	v.stopResize = s.ObserveResize(v.resize)
	v.detachInput = s.BindInput(&routedInput{v})
	v.cancelFrame = s.RequestFrame(v.tick)
	return nil
}

// Stop cancels the pending frame and releases the resize and input
// subscriptions. Stopping a stopped view is a no-op.
func (v *View) Stop() {
	if !v.running {
		return
	}
	v.running = false
	if v.cancelFrame != nil {
		v.cancelFrame()
		v.cancelFrame = nil
	}
	if v.stopResize != nil {
		v.stopResize()
		v.stopResize = nil
	}
	if v.detachInput != nil {
		v.detachInput()
		v.detachInput = nil
	}
	v.surface = nil
	v.ctx = nil
}

// Running reports whether the animation loop is active.
func (v *View) Running() bool { return v.running }

func (v *View) tick() {
	if !v.running {
		return
	}
	v.engine.Step(v.vp.Center())
	if !v.centered {
		v.vp.CenterNodes(v.engine.Nodes())
		v.centered = true
	}
	v.render()
	v.cancelFrame = v.surface.RequestFrame(v.tick)
}

// redraw renders immediately, between layout frames, so drags, pans and
// zooms track the pointer.
func (v *View) redraw() {
	if !v.running {
		return
	}
	v.render()
}

func (v *View) render() {
	v.renderer.Frame(v.ctx, v.engine, v.vp, v.router.Dragged())
}

func (v *View) resize() {
	if v.surface == nil {
		return
	}
	w, h := v.surface.Size()
	pxW, pxH := v.vp.SetSize(w, h, v.surface.DevicePixelRatio())
	v.surface.SetCanvasSize(pxW, pxH)
	v.redraw()
}

// routedInput forwards surface input to the router and surfaces node
// selection to the view's callback.
type routedInput struct{ v *View }

func (r *routedInput) PointerDown(x, y float64) {
	r.v.router.PointerDown(x, y)
	if n := r.v.router.Dragged(); n != nil && r.v.onSelect != nil {
		r.v.onSelect(n.ID)
	}
}
func (r *routedInput) PointerMove(x, y float64)    { r.v.router.PointerMove(x, y) }
func (r *routedInput) PointerUp()                  { r.v.router.PointerUp() }
func (r *routedInput) TouchStart(pts [][2]float64) { r.v.router.TouchStart(pts) }
func (r *routedInput) TouchMove(pts [][2]float64)  { r.v.router.TouchMove(pts) }
func (r *routedInput) TouchEnd(pts [][2]float64)   { r.v.router.TouchEnd(pts) }
func (r *routedInput) Wheel(deltaY float64)        { r.v.router.Wheel(deltaY) }
