package graphview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// FitGraph scales and recenters so the whole graph is visible with the
// given padding in CSS pixels on each side.
func (v *View) FitGraph(padding float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, n := range v.engine.Nodes() {
		if !n.Positioned() {
			continue
		}
		any = true
		minX = math.Min(minX, n.Pos.X)
		minY = math.Min(minY, n.Pos.Y)
		maxX = math.Max(maxX, n.Pos.X)
		maxY = math.Max(maxY, n.Pos.Y)
	}
	if !any {
		return
	}
	w, h := v.vp.Size()
	gw, gh := maxX-minX, maxY-minY
	scale := v.vp.Scale()
	if gw > 0 && gh > 0 && w > 2*padding && h > 2*padding {
		scale = math.Min((w-2*padding)/gw, (h-2*padding)/gh)
	}
	cfg := v.engine.Settings()
	v.vp.ZoomBy(clamp(scale, cfg.ScaleMin, cfg.ScaleMax) - v.vp.Scale())
	v.vp.CenterNodes(v.engine.Nodes())
	v.redraw()
}

// FocusNode translates the graph so the named node sits at the canvas
// center and zooms to the given scale. Unknown IDs are ignored.
func (v *View) FocusNode(id string, scale float64) {
	n := v.engine.Lookup(id)
	if n == nil || !n.Positioned() {
		return
	}
	if scale > 0 {
		v.vp.ZoomBy(scale - v.vp.Scale())
	}
	c := v.vp.Center()
	off := r2.Sub(c, *n.Pos)
	for _, m := range v.engine.Nodes() {
		if m.Positioned() {
			*m.Pos = r2.Add(*m.Pos, off)
		}
	}
	v.redraw()
}

// Reset restores scale 1 and recenters the graph.
func (v *View) Reset() {
	v.vp.ZoomBy(1 - v.vp.Scale())
	v.vp.CenterNodes(v.engine.Nodes())
	v.redraw()
}

// NodeAt returns the ID of the node under the given CSS pixel position,
// or "" when the point hits no node.
func (v *View) NodeAt(x, y float64) string {
	if n := v.router.hitTest(v.vp.ToWorld(x, y)); n != nil {
		return n.ID
	}
	return ""
}
