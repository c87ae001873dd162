package graphview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RouterState is the interaction state machine's current mode.
type RouterState uint8

const (
	StateIdle RouterState = iota
	StateDraggingNode
	StatePanning
	StatePinching
)

func (s RouterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraggingNode:
		return "dragging"
	case StatePanning:
		return "panning"
	case StatePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// Router turns raw pointer, touch and wheel input into node drags, graph
// pans and zooms. Panning translates every node rather than a camera, so
// dragging and panning share one coordinate path. Every handled event
// calls redraw so interaction never waits on the next layout frame.
type Router struct {
	engine *Engine
	vp     *Viewport
	redraw func()

	state     RouterState
	dragNode  *Node
	last      r2.Vec
	pinchDist float64
}

// NewRouter builds a router. redraw may be nil.
func NewRouter(e *Engine, vp *Viewport, redraw func()) *Router {
	if redraw == nil {
		redraw = func() {}
	}
	return &Router{engine: e, vp: vp, redraw: redraw}
}

// State returns the current interaction mode.
func (r *Router) State() RouterState { return r.state }

// Dragged returns the node being dragged, or nil.
func (r *Router) Dragged() *Node {
	if r.state != StateDraggingNode {
		return nil
	}
	return r.dragNode
}

// PointerDown hit-tests the pointer against node circles; a hit starts a
// node drag, a miss starts a pan.
func (r *Router) PointerDown(x, y float64) {
	world := r.vp.ToWorld(x, y)
	if n := r.hitTest(world); n != nil {
		r.state = StateDraggingNode
		r.dragNode = n
	} else {
		r.state = StatePanning
	}
	r.last = r2.Vec{X: x, Y: y}
	r.redraw()
}

// PointerMove snaps the dragged node to the pointer's world position, or
// in a pan translates every positioned node by the pointer delta scaled
// into world units.
func (r *Router) PointerMove(x, y float64) {
	switch r.state {
	case StateDraggingNode:
		if r.dragNode.Positioned() {
			*r.dragNode.Pos = r.vp.ToWorld(x, y)
		}
	case StatePanning:
		s := r.vp.Scale()
		d := r2.Vec{X: (x - r.last.X) / s, Y: (y - r.last.Y) / s}
		for _, n := range r.engine.Nodes() {
			if n.Positioned() {
				*n.Pos = r2.Add(*n.Pos, d)
			}
		}
	default:
		return
	}
	r.last = r2.Vec{X: x, Y: y}
	r.redraw()
}

// PointerUp ends any drag or pan.
func (r *Router) PointerUp() {
	if r.state == StateIdle {
		return
	}
	r.state = StateIdle
	r.dragNode = nil
	r.redraw()
}

// TouchStart routes a single touch like a pointer press; two or more
// touches begin a pinch.
func (r *Router) TouchStart(points [][2]float64) {
	switch {
	case len(points) >= 2:
		r.state = StatePinching
		r.dragNode = nil
		r.pinchDist = touchDist(points)
		r.redraw()
	case len(points) == 1:
		r.PointerDown(points[0][0], points[0][1])
	}
}

// TouchMove zooms by the change in finger distance during a pinch and
// otherwise routes a single touch like a pointer move.
func (r *Router) TouchMove(points [][2]float64) {
	switch {
	case r.state == StatePinching && len(points) >= 2:
		d := touchDist(points)
		r.vp.Pinch(r.pinchDist, d)
		r.pinchDist = d
		r.redraw()
	case len(points) == 1:
		r.PointerMove(points[0][0], points[0][1])
	}
}

// TouchEnd returns to idle once the last finger lifts; a pinch that drops
// to one finger stays inert until that finger lifts too.
func (r *Router) TouchEnd(points [][2]float64) {
	if len(points) == 0 {
		r.PointerUp()
	}
}

// Wheel zooms one step per event.
func (r *Router) Wheel(deltaY float64) {
	r.vp.Wheel(deltaY)
	r.redraw()
}

// hitTest returns the first node whose circle contains the world point.
func (r *Router) hitTest(p r2.Vec) *Node {
	radius := r.engine.Settings().NodeRadius
	for _, n := range r.engine.Nodes() {
		if !n.Positioned() {
			continue
		}
		if math.Hypot(p.X-n.Pos.X, p.Y-n.Pos.Y) <= radius {
			return n
		}
	}
	return nil
}

func touchDist(points [][2]float64) float64 {
	return math.Hypot(points[1][0]-points[0][0], points[1][1]-points[0][1])
}
