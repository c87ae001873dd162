package components

import (
	"fmt"

	"github.com/loomui/loom/pkg/builder"
	"github.com/loomui/loom/pkg/reactive"
	"github.com/loomui/loom/pkg/vdom"
)

// Frame is the position and size of a draggable surface, in CSS pixels.
type Frame struct {
	X, Y, W, H float64
}

// DragController owns the interaction state of one draggable/resizable
// surface. The view binds its pointer handlers to the controller; the
// frame signal drives the rendered inline style.
type DragController struct {
	frame *reactive.State[Frame]

	// Bounds clamps the surface when non-zero.
	Bounds *Frame

	// MinW and MinH stop resizing from collapsing the surface.
	MinW, MinH float64

	dragging bool
	resizing bool
	lastX    float64
	lastY    float64
}

// NewDragController creates a controller with an initial frame.
func NewDragController(initial Frame) *DragController {
	return &DragController{
		frame: reactive.CreateState(initial),
		MinW:  40,
		MinH:  30,
	}
}

// Frame returns the current frame.
func (c *DragController) Frame() Frame { return c.frame.Get() }

// FrameState exposes the frame signal.
func (c *DragController) FrameState() *reactive.State[Frame] { return c.frame }

// DragStart begins moving the surface from the given pointer position.
func (c *DragController) DragStart(x, y float64) {
	c.dragging = true
	c.resizing = false
	c.lastX, c.lastY = x, y
}

// ResizeStart begins resizing from the given pointer position.
func (c *DragController) ResizeStart(x, y float64) {
	c.resizing = true
	c.dragging = false
	c.lastX, c.lastY = x, y
}

// PointerMove applies the pointer delta to position or size, depending on
// which gesture is active.
func (c *DragController) PointerMove(x, y float64) {
	if !c.dragging && !c.resizing {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	c.frame.Update(func(f Frame) Frame {
		if c.dragging {
			f.X += dx
			f.Y += dy
		} else {
			f.W += dx
			f.H += dy
			if f.W < c.MinW {
				f.W = c.MinW
			}
			if f.H < c.MinH {
				f.H = c.MinH
			}
		}
		return c.clamp(f)
	})
}

// PointerUp ends any active gesture. Safe to call when idle.
func (c *DragController) PointerUp() {
	c.dragging = false
	c.resizing = false
}

func (c *DragController) clamp(f Frame) Frame {
	if c.Bounds == nil {
		return f
	}
	b := *c.Bounds
	if f.X < b.X {
		f.X = b.X
	}
	if f.Y < b.Y {
		f.Y = b.Y
	}
	if f.X+f.W > b.X+b.W {
		f.X = b.X + b.W - f.W
	}
	if f.Y+f.H > b.Y+b.H {
		f.Y = b.Y + b.H - f.H
	}
	return f
}

// DraggableProps configures a Draggable surface.
type DraggableProps struct {
	Controller *DragController
	Title      string
	Content    *vdom.VNode
	Resizable  bool
	Class      string
	ID         string
}

// Draggable renders a floating surface whose header drags it and whose
// corner handle resizes it.
func Draggable(props DraggableProps) *vdom.VNode {
	c := props.Controller
	f := c.Frame()

	header := builder.Div().
		Class("draggable-header").
		OnMouseDown(func(x, y float64) { c.DragStart(x, y) }).
		Text(props.Title).
		Build()

	root := builder.Div().
		Class(joinClasses("draggable", props.Class)).
		Style(fmt.Sprintf("position:absolute;left:%.0fpx;top:%.0fpx;width:%.0fpx;height:%.0fpx", f.X, f.Y, f.W, f.H)).
		OnMouseMove(func(x, y float64) { c.PointerMove(x, y) }).
		OnMouseUp(func() { c.PointerUp() }).
		Children(header)

	if props.ID != "" {
		root.ID(props.ID)
	}
	if props.Content != nil {
		root.Children(builder.Div().Class("draggable-body").Children(props.Content).Build())
	}
	if props.Resizable {
		root.Children(
			builder.Div().
				Class("draggable-resize-handle").
				OnMouseDown(func(x, y float64) { c.ResizeStart(x, y) }).
				Build(),
		)
	}

	return root.Build()
}
