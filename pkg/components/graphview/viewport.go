package graphview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport tracks the canvas logical size, the device pixel ratio of its
// backing store and the zoom scale. Panning moves the nodes themselves,
// so the viewport carries no translation; world coordinates map to CSS
// pixels through the scale alone.
type Viewport struct {
	cfg   Settings
	scale float64
	w, h  float64
	dpr   float64
}

// NewViewport builds a viewport at scale 1 and pixel ratio 1.
func NewViewport(cfg *Settings) *Viewport {
	return &Viewport{cfg: cfg.withDefaults(), scale: 1, dpr: 1}
}

// Scale returns the current zoom scale.
func (v *Viewport) Scale() float64 { return v.scale }

// Size returns the logical (CSS pixel) canvas size.
func (v *Viewport) Size() (w, h float64) { return v.w, v.h }

// DPR returns the device pixel ratio of the backing store.
func (v *Viewport) DPR() float64 { return v.dpr }

// SetSize records the logical size and pixel ratio and returns the
// backing-store dimensions the canvas element must be given so that one
// logical unit spans dpr device pixels.
func (v *Viewport) SetSize(w, h, dpr float64) (pxW, pxH int) {
	if dpr <= 0 {
		dpr = 1
	}
	v.w, v.h, v.dpr = w, h, dpr
	return int(math.Round(w * dpr)), int(math.Round(h * dpr))
}

// ZoomBy adjusts the scale by delta and clamps it to the configured range.
func (v *Viewport) ZoomBy(delta float64) {
	v.scale = clamp(v.scale+delta, v.cfg.ScaleMin, v.cfg.ScaleMax)
}

// Wheel applies one zoom step per wheel event: scrolling up zooms in,
// scrolling down zooms out. Magnitude of the delta is ignored.
func (v *Viewport) Wheel(deltaY float64) {
	switch {
	case deltaY < 0:
		v.ZoomBy(v.cfg.ScaleStep)
	case deltaY > 0:
		v.ZoomBy(-v.cfg.ScaleStep)
	}
}

// Pinch rescales by the ratio of the new finger distance to the previous
// one, clamped to the configured range.
func (v *Viewport) Pinch(prevDist, newDist float64) {
	if prevDist <= 0 {
		return
	}
	v.scale = clamp(v.scale*newDist/prevDist, v.cfg.ScaleMin, v.cfg.ScaleMax)
}

// ToWorld converts a pointer position in CSS pixels to world coordinates.
func (v *Viewport) ToWorld(x, y float64) r2.Vec {
	return r2.Vec{X: x / v.scale, Y: y / v.scale}
}

// Center returns the world point currently at the middle of the canvas.
func (v *Viewport) Center() r2.Vec {
	return r2.Vec{X: v.w / 2 / v.scale, Y: v.h / 2 / v.scale}
}

// VisibleRect returns the world-space rectangle the canvas shows, grown
// by pad on every side.
func (v *Viewport) VisibleRect(pad float64) Rect {
	return Rect{Max: r2.Vec{X: v.w / v.scale, Y: v.h / v.scale}}.Pad(pad)
}

// CenterNodes translates every positioned node so the bounding box of the
// graph is centered in the canvas. Unpositioned nodes are left alone.
func (v *Viewport) CenterNodes(nodes []*Node) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, n := range nodes {
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
	c := v.Center()
	off := r2.Vec{X: c.X - (minX+maxX)/2, Y: c.Y - (minY+maxY)/2}
	for _, n := range nodes {
		if n.Positioned() {
			*n.Pos = r2.Add(*n.Pos, off)
		}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
