package pline

import "math"

// Segment is a derived view of two consecutive vertices (V1, V2), using
// V1.Bulge as the segment's bulge. A segment is a line segment when its
// bulge is fuzzily zero, otherwise a circular arc. Segments are never
// stored — they are produced on demand by [Polyline.segmentAt] and
// [Polyline.Segments].
type Segment struct {
	V1, V2 Vertex
	// Index is the index of V1 within the owning polyline's vertex slice.
	Index int
}

// IsLine reports whether s is a straight line segment.
func (s Segment) IsLine(eps float64) bool {
	return s.V1.IsLine(eps)
}

// Center returns the arc's center. Only meaningful when !s.IsLine.
func (s Segment) Center(eps float64) Point {
	return ArcCenter(s.V1, s.V2, eps)
}

// Radius returns the arc's radius. Only meaningful when !s.IsLine.
func (s Segment) Radius(eps float64) float64 {
	return ArcRadius(s.V1, s.V2, eps)
}

// SweepAngle returns the arc's signed sweep angle.
func (s Segment) SweepAngle() float64 {
	return ArcSweepAngle(s.V1)
}

// StartAngle returns the angle of V1 as seen from the arc's center.
func (s Segment) StartAngle(eps float64) float64 {
	return ArcStartAngle(s.V1, s.V2, eps)
}

// PointAt returns the point on the segment at parameter t in [0, 1], t=0
// being V1 and t=1 being V2.
func (s Segment) PointAt(t float64, eps float64) Point {
	if s.IsLine(eps) {
		return s.V1.Point().Lerp(s.V2.Point(), t)
	}
	c := s.Center(eps)
	r := s.Radius(eps)
	theta0 := s.StartAngle(eps)
	sweep := s.SweepAngle()
	return pointOnArc(c, r, theta0+t*sweep)
}

// Length returns the segment's path length.
func (s Segment) Length(eps float64) float64 {
	if s.IsLine(eps) {
		return s.V1.Point().Distance(s.V2.Point())
	}
	return math.Abs(s.Radius(eps) * s.SweepAngle())
}

// AABB returns a tight axis-aligned bounding box for the segment.
func (s Segment) AABB(eps float64) AABB {
	p1, p2 := s.V1.Point(), s.V2.Point()
	box := NewAABBFromPoints(p1, p2)
	if s.IsLine(eps) {
		return box
	}
	c := s.Center(eps)
	r := s.Radius(eps)
	theta0 := s.StartAngle(eps)
	sweep := s.SweepAngle()
	// Expand to include every axis-aligned extreme point (angle 0, pi/2,
	// pi, 3pi/2, i.e. where the arc is tangent to a horizontal or vertical
	// line) that the arc's sweep actually passes over.
	for k := 0; k < 4; k++ {
		angle := float64(k) * math.Pi / 2
		if angleInSweep(angle, theta0, sweep, eps) {
			box = box.UnionPoint(pointOnArc(c, r, angle))
		}
	}
	return box
}

// FastApproxAABB returns a cheap, conservative (possibly loose) bounding box
// for the segment, used when building the spatial index: for arcs this
// expands the endpoint box by the arc's sagitta bound instead of computing
// exact extreme points.
func (s Segment) FastApproxAABB(eps float64) AABB {
	p1, p2 := s.V1.Point(), s.V2.Point()
	box := NewAABBFromPoints(p1, p2)
	if s.IsLine(eps) {
		return box
	}
	r := s.Radius(eps)
	sag := sagitta(r, s.SweepAngle())
	return box.Inflate(sag)
}

// angleInSweep reports whether angle lies within the signed sweep interval
// [theta0, theta0+sweep] (or the reverse if sweep is negative), wrapping
// consistently. The eps tolerance applies past the end of the sweep only;
// an angle just short of theta0 counts as outside.
func angleInSweep(angle, theta0, sweep, eps float64) bool {
	if sweep >= 0 {
		d := normalizeRadians(angle - theta0)
		return d <= sweep+eps
	}
	d := normalizeRadians(theta0 - angle)
	return d <= -sweep+eps
}

// PointOnArcSweep reports whether the point p (assumed to lie on, or within
// eps of, the segment's supporting circle) lies within the arc's signed
// sweep.
func (s Segment) PointOnArcSweep(p Point, eps float64) bool {
	c := s.Center(eps)
	angle := p.Sub(c).Angle()
	theta0 := s.StartAngle(eps)
	return angleInSweep(angle, theta0, s.SweepAngle(), eps)
}

// ParamAtPoint returns t in [0,1] such that s.PointAt(t) ≈ p, for a point p
// known to lie on the segment (on its line, or on its circle within the
// sweep). Used to order intersection points along a segment.
func (s Segment) ParamAtPoint(p Point, eps float64) float64 {
	if s.IsLine(eps) {
		chord := s.V2.Point().Sub(s.V1.Point())
		l2 := chord.Hypot2()
		if l2 < eps*eps {
			return 0
		}
		t := p.Sub(s.V1.Point()).Dot(chord) / l2
		return t
	}
	c := s.Center(eps)
	theta0 := s.StartAngle(eps)
	sweep := s.SweepAngle()
	angle := p.Sub(c).Angle()
	var d float64
	if sweep >= 0 {
		d = normalizeRadians(angle - theta0)
	} else {
		d = -normalizeRadians(theta0 - angle)
	}
	if sweep == 0 {
		return 0
	}
	return d / sweep
}
