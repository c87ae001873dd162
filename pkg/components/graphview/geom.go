package graphview

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	Min, Max r2.Vec
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Pad returns the rectangle grown by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{
		Min: r2.Vec{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: r2.Vec{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// segmentsIntersect reports whether the closed segments p1-p2 and p3-p4
// cross. Parallel and collinear segments report false.
func segmentsIntersect(p1, p2, p3, p4 r2.Vec) bool {
	d1 := r2.Sub(p2, p1)
	d2 := r2.Sub(p4, p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return false
	}
	d3 := r2.Sub(p1, p3)
	t := (d2.X*d3.Y - d2.Y*d3.X) / denom
	u := (d1.X*d3.Y - d1.Y*d3.X) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentIntersectsRect reports whether the segment a-b crosses any of the
// rectangle's four sides. Endpoint containment is checked by the caller;
// a segment fully inside the rectangle crosses no side and reports false.
func SegmentIntersectsRect(a, b r2.Vec, r Rect) bool {
	tl := r.Min
	tr := r2.Vec{X: r.Max.X, Y: r.Min.Y}
	bl := r2.Vec{X: r.Min.X, Y: r.Max.Y}
	br := r.Max
	return segmentsIntersect(a, b, tl, tr) ||
		segmentsIntersect(a, b, tr, br) ||
		segmentsIntersect(a, b, br, bl) ||
		segmentsIntersect(a, b, bl, tl)
}
