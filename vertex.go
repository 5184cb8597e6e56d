package pline

import "math"

// Vertex is a tuple (X, Y, Bulge). Bulge applies to the segment starting at
// this vertex: zero denotes a line segment to the next vertex, and a
// non-zero value denotes a circular arc with signed sweep
// 4*atan(Bulge) (positive is counter-clockwise).
type Vertex struct {
	X     float64
	Y     float64
	Bulge float64
}

// Vtx returns the vertex (x, y, bulge).
func Vtx(x, y, bulge float64) Vertex {
	return Vertex{X: x, Y: y, Bulge: bulge}
}

// Point returns the vertex's position, discarding the bulge.
func (v Vertex) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// IsFinite reports whether the vertex's coordinates and bulge are all
// finite.
func (v Vertex) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Bulge) && !math.IsInf(v.Bulge, 0)
}

// IsLine reports whether the segment starting at v (to whatever vertex
// follows) is a straight line, i.e. its bulge is (fuzzily) zero.
func (v Vertex) IsLine(eps float64) bool {
	return fuzzyZero(v.Bulge, eps)
}

// IsDegenerateBulge reports whether |v.Bulge| exceeds the magnitude this
// package treats as meaningful: such vertices degenerate to a coincident
// point and should be pruned rather than treated as arcs.
func (v Vertex) IsDegenerateBulge() bool {
	return math.Abs(v.Bulge) > MaxBulgeMagnitude
}

// bulgeSweepAngle returns the signed included arc angle θ corresponding to
// bulge, where bulge = tan(θ/4).
func bulgeSweepAngle(bulge float64) float64 {
	return 4.0 * math.Atan(bulge)
}

// bulgeFromSweepAngle is the inverse of bulgeSweepAngle.
func bulgeFromSweepAngle(theta float64) float64 {
	return math.Tan(theta / 4.0)
}

// ArcRadius returns the radius of the circular arc from v1 to v2 using
// v1.Bulge. The result is always positive. Returns 0 for a line segment
// (bulge fuzzily zero) or degenerate (coincident) endpoints.
func ArcRadius(v1, v2 Vertex, eps float64) float64 {
	if fuzzyZero(v1.Bulge, eps) {
		return 0
	}
	d := v1.Point().Distance(v2.Point())
	if d < eps {
		return 0
	}
	// Chord length d subtends angle theta = 4*atan(bulge); radius relates
	// the chord to the half-angle: d = 2*r*sin(theta/2).
	b := math.Abs(v1.Bulge)
	return d * (b*b + 1) / (4 * b)
}

// ArcCenter returns the center of the circular arc from v1 to v2 using
// v1.Bulge.
func ArcCenter(v1, v2 Vertex, eps float64) Point {
	if fuzzyZero(v1.Bulge, eps) {
		return Point{}
	}
	p1, p2 := v1.Point(), v2.Point()
	mid := p1.Midpoint(p2)
	chord := p2.Sub(p1)
	d := chord.Hypot()
	if d < eps {
		return p1
	}
	b := v1.Bulge
	// center = mid + offset*normal, where normal is the chord's
	// left-normal (unit) and offset = (1/b - b) * (d/4). This is the
	// standard closed form for recovering an arc's center from its bulge;
	// it degenerates to offset=0 (center on the chord midpoint) exactly
	// when |b| = 1, i.e. a semicircle.
	normal := chord.Perp().Normalize()
	offset := (1.0/b - b) * (d / 4.0)
	return mid.Translate(normal.Mul(offset))
}

// ArcSweepAngle returns the signed sweep angle (radians, CCW positive) of
// the arc from v1 to v2 using v1.Bulge.
func ArcSweepAngle(v1 Vertex) float64 {
	return bulgeSweepAngle(v1.Bulge)
}

// ArcStartAngle returns the angle (radians) of v1 as seen from the arc's
// center.
func ArcStartAngle(v1, v2 Vertex, eps float64) float64 {
	c := ArcCenter(v1, v2, eps)
	return v1.Point().Sub(c).Angle()
}

// ArcIsCCW reports whether the arc from v1 sweeps counter-clockwise.
func ArcIsCCW(v1 Vertex) bool {
	return v1.Bulge > 0
}

// pointOnArc returns the point on the circle centered at c with radius r at
// the given angle (radians).
func pointOnArc(c Point, r, angle float64) Point {
	s, cs := math.Sincos(angle)
	return Point{X: c.X + r*cs, Y: c.Y + r*s}
}

// sagitta returns the sagitta (max perpendicular distance from chord to
// arc) of an arc of radius r subtending angle theta.
func sagitta(r, theta float64) float64 {
	return math.Abs(r) * (1 - math.Cos(theta/2))
}
