package graphview

import "math"

// NodeDrawer draws one node. The context is already in world coordinates
// (device pixel ratio and zoom applied), so implementations draw at the
// node's position directly.
type NodeDrawer func(ctx Context2D, n *Node)

// Renderer draws one frame: edges under nodes, both culled against the
// visible rectangle. A nil drawing context makes every call a no-op.
type Renderer struct {
	cfg      Settings
	theme    Theme
	drawNode NodeDrawer
}

// NewRenderer builds a renderer. A nil drawNode selects the default
// circle-with-label drawing.
func NewRenderer(cfg *Settings, theme *Theme, drawNode NodeDrawer) *Renderer {
	return &Renderer{cfg: cfg.withDefaults(), theme: theme.withDefaults(), drawNode: drawNode}
}

// Frame renders the full scene. dragged, when non-nil, highlights every
// edge touching that node. Edges whose endpoints are missing or
// unpositioned are skipped.
func (r *Renderer) Frame(ctx Context2D, e *Engine, vp *Viewport, dragged *Node) {
	if ctx == nil {
		return
	}
	w, h := vp.Size()
	dpr := vp.DPR()

	ctx.Save()
	ctx.ClearRect(0, 0, w*dpr, h*dpr)
	ctx.Scale(dpr, dpr)
	ctx.BeginPath()
	ctx.Rect(0, 0, w, h)
	ctx.Clip()
	ctx.SetFillStyle(r.theme.Background)
	ctx.FillRect(0, 0, w, h)
	ctx.Scale(vp.Scale(), vp.Scale())

	pad := r.cfg.NodeRadius + r.cfg.LabelPad
	visible := vp.VisibleRect(pad)

	r.drawEdges(ctx, e, visible, dragged)
	r.drawNodes(ctx, e, visible)
	ctx.Restore()
}

// drawEdges strokes every resolvable edge whose segment touches the
// visible rectangle: either endpoint inside, or the segment crossing a
// side.
func (r *Renderer) drawEdges(ctx Context2D, e *Engine, visible Rect, dragged *Node) {
	ctx.SetLineWidth(1)
	for _, a := range e.Nodes() {
		if !a.Positioned() {
			continue
		}
		for _, id := range a.Edges {
			b := e.Lookup(id)
			if b == nil || !b.Positioned() {
				continue
			}
			if !visible.Contains(*a.Pos) && !visible.Contains(*b.Pos) &&
				!SegmentIntersectsRect(*a.Pos, *b.Pos, visible) {
				continue
			}
			if a == dragged || b == dragged {
				ctx.SetStrokeStyle(r.theme.EdgeHighlight)
			} else {
				ctx.SetStrokeStyle(r.theme.EdgeColor)
			}
			ctx.BeginPath()
			ctx.MoveTo(a.Pos.X, a.Pos.Y)
			ctx.LineTo(b.Pos.X, b.Pos.Y)
			ctx.Stroke()
		}
	}
}

func (r *Renderer) drawNodes(ctx Context2D, e *Engine, visible Rect) {
	draw := r.drawNode
	if draw == nil {
		draw = r.defaultNode
	}
	for _, n := range e.Nodes() {
		if !n.Positioned() || !visible.Contains(*n.Pos) {
			continue
		}
		draw(ctx, n)
	}
}

func (r *Renderer) defaultNode(ctx Context2D, n *Node) {
	ctx.SetFillStyle(r.theme.NodeFill)
	ctx.BeginPath()
	ctx.Arc(n.Pos.X, n.Pos.Y, r.cfg.NodeRadius, 0, 2*math.Pi)
	ctx.Fill()
	if n.Label != "" {
		ctx.SetFillStyle(r.theme.LabelColor)
		ctx.SetFont(r.theme.Font)
		ctx.SetTextAlign("center")
		ctx.FillText(n.Label, n.Pos.X, n.Pos.Y+r.cfg.NodeRadius+r.cfg.LabelPad/2)
	}
}
