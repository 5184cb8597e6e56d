package pline

import "math"

// AABB is an axis-aligned bounding box, used pervasively for coarse
// rejection before the more expensive exact intersection tests.
type AABB struct {
	XMin, YMin, XMax, YMax float64
}

// NewAABBFromPoints returns the bounding box of p0 and p1.
func NewAABBFromPoints(p0, p1 Point) AABB {
	return AABB{
		XMin: min(p0.X, p1.X),
		YMin: min(p0.Y, p1.Y),
		XMax: max(p0.X, p1.X),
		YMax: max(p0.Y, p1.Y),
	}
}

// invertedAABB returns a box that is the identity element for Union: any
// real box unioned with it yields the other box unchanged.
func invertedAABB() AABB {
	return AABB{
		XMin: math.Inf(1), YMin: math.Inf(1),
		XMax: math.Inf(-1), YMax: math.Inf(-1),
	}
}

func (b AABB) Width() float64  { return b.XMax - b.XMin }
func (b AABB) Height() float64 { return b.YMax - b.YMin }

func (b AABB) Center() Point {
	return Point{X: 0.5 * (b.XMin + b.XMax), Y: 0.5 * (b.YMin + b.YMax)}
}

// Contains reports whether pt lies within b (inclusive of the boundary).
func (b AABB) Contains(pt Point) bool {
	return pt.X >= b.XMin && pt.X <= b.XMax && pt.Y >= b.YMin && pt.Y <= b.YMax
}

// Union returns the smallest box enclosing b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		XMin: min(b.XMin, o.XMin),
		YMin: min(b.YMin, o.YMin),
		XMax: max(b.XMax, o.XMax),
		YMax: max(b.YMax, o.YMax),
	}
}

// UnionPoint computes the union of b with a single point.
func (b AABB) UnionPoint(pt Point) AABB {
	return AABB{
		XMin: min(b.XMin, pt.X),
		YMin: min(b.YMin, pt.Y),
		XMax: max(b.XMax, pt.X),
		YMax: max(b.YMax, pt.Y),
	}
}

// Intersects reports whether b and o overlap (including touching at the
// boundary).
func (b AABB) Intersects(o AABB) bool {
	return b.XMin <= o.XMax && b.XMax >= o.XMin && b.YMin <= o.YMax && b.YMax >= o.YMin
}

// Inflate expands b by amt in every direction. Used by
// [Segment.FastApproxAABB] to pad an arc's endpoint box by its sagitta.
func (b AABB) Inflate(amt float64) AABB {
	return AABB{
		XMin: b.XMin - amt, YMin: b.YMin - amt,
		XMax: b.XMax + amt, YMax: b.YMax + amt,
	}
}
