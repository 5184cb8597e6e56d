package pline

import "math"

// LineLineIntrKind tags the variant of a line-segment/line-segment
// intersection result.
type LineLineIntrKind int

const (
	LineLineNone LineLineIntrKind = iota
	LineLineTrue
	LineLineFalse
	LineLineCoincident
)

// LineLineResult is the result of intersecting two line segments.
type LineLineResult struct {
	Kind LineLineIntrKind
	// Point is set for Kind == LineLineTrue or LineLineFalse.
	Point Point
	// T, S are the parametric positions of Point on u and v respectively,
	// set for LineLineTrue and LineLineFalse.
	T, S float64
	// T0, T1 bound the overlap interval (parametrized along u), set for
	// LineLineCoincident.
	T0, T1 float64
}

// IntersectLineLine intersects line segments u=(u1,u2) and v=(v1,v2).
func IntersectLineLine(u1, u2, v1, v2 Point, eps float64) LineLineResult {
	du := u2.Sub(u1)
	dv := v2.Sub(v1)
	uIsPoint := du.Hypot2() < eps*eps
	vIsPoint := dv.Hypot2() < eps*eps
	if uIsPoint || vIsPoint {
		return intersectDegenerateLineLine(u1, u2, v1, v2, uIsPoint, vIsPoint, eps)
	}
	d := du.Cross(dv)
	if !fuzzyZero(d, eps) {
		w := v1.Sub(u1)
		t := w.Cross(dv) / d
		s := w.Cross(du) / d
		tc, tOk := clampToUnitInterval(t, eps)
		sc, sOk := clampToUnitInterval(s, eps)
		pt := u1.Translate(du.Mul(t))
		if tOk && sOk {
			return LineLineResult{Kind: LineLineTrue, Point: pt, T: tc, S: sc}
		}
		return LineLineResult{Kind: LineLineFalse, Point: pt, T: t, S: s}
	}

	// Parallel (or degenerate). Check collinearity: (v1-u1) x du == 0.
	w := v1.Sub(u1)
	if !fuzzyZero(w.Cross(du), eps) {
		return LineLineResult{Kind: LineLineNone}
	}

	// Collinear: project v1, v2 onto u's parametrization and intersect
	// with [0, 1]. du is guaranteed non-degenerate here: a point-like u is
	// handled by intersectDegenerateLineLine before this branch is reached.
	l2 := du.Hypot2()
	t0 := v1.Sub(u1).Dot(du) / l2
	t1 := v2.Sub(u1).Dot(du) / l2
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := max(t0, 0)
	hi := min(t1, 1)
	if lo > hi+eps {
		return LineLineResult{Kind: LineLineNone}
	}
	return LineLineResult{Kind: LineLineCoincident, T0: lo, T1: hi}
}

// intersectDegenerateLineLine handles IntersectLineLine when u, v, or both
// collapse to a single point: the cross-product dispatch in
// IntersectLineLine can't distinguish a zero-length segment from one lying
// exactly on the other line (both make every cross product vanish), so
// that case is resolved directly here by testing point-on-segment
// membership instead.
func intersectDegenerateLineLine(u1, u2, v1, v2 Point, uIsPoint, vIsPoint bool, eps float64) LineLineResult {
	if uIsPoint && vIsPoint {
		if u1.Distance(v1) < eps {
			return LineLineResult{Kind: LineLineTrue, Point: u1, T: 0, S: 0}
		}
		return LineLineResult{Kind: LineLineNone}
	}
	if uIsPoint {
		if s, ok := paramOnSegment(u1, v1, v2, eps); ok {
			return LineLineResult{Kind: LineLineTrue, Point: u1, T: 0, S: s}
		}
		return LineLineResult{Kind: LineLineNone}
	}
	// vIsPoint
	if t, ok := paramOnSegment(v1, u1, u2, eps); ok {
		return LineLineResult{Kind: LineLineTrue, Point: v1, T: t, S: 0}
	}
	return LineLineResult{Kind: LineLineNone}
}

// paramOnSegment reports whether p lies on the segment (a, b) within eps,
// returning its parameter along that segment if so.
func paramOnSegment(p, a, b Point, eps float64) (float64, bool) {
	d := b.Sub(a)
	l2 := d.Hypot2()
	if l2 < eps*eps {
		if p.Distance(a) < eps {
			return 0, true
		}
		return 0, false
	}
	w := p.Sub(a)
	// Perpendicular distance from p to the infinite line through a, b must
	// be within eps.
	if math.Abs(w.Cross(d))/math.Sqrt(l2) >= eps {
		return 0, false
	}
	t := w.Dot(d) / l2
	return clampToUnitInterval(t, eps)
}

// LineCircleResult is the result of intersecting an infinite line (through
// p0 in direction d) with a circle. T0/T1 are parameters along p(t) = p0 +
// t*d; the kernel does not clip to [0,1].
type LineCircleResult struct {
	Count  int
	T0, T1 float64
}

// IntersectLineCircle intersects the infinite line through p0 with
// direction d against the circle centered at c with radius r.
func IntersectLineCircle(p0 Point, d Vec2, c Point, r float64, eps float64) LineCircleResult {
	f := p0.Sub(c)
	a := d.Hypot2()
	if a < eps*eps {
		return LineCircleResult{Count: 0}
	}
	b := 2 * f.Dot(d)
	cc := f.Hypot2() - r*r
	disc := b*b - 4*a*cc
	if disc < -eps {
		return LineCircleResult{Count: 0}
	}
	if disc < eps {
		t := -b / (2 * a)
		return LineCircleResult{Count: 1, T0: t, T1: t}
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	return LineCircleResult{Count: 2, T0: t0, T1: t1}
}

// Circle2Circle2IntrKind tags the variant of a circle/circle intersection
// result.
type Circle2Circle2IntrKind int

const (
	CircleCircleNoIntersect Circle2Circle2IntrKind = iota
	CircleCircleOneIntersect
	CircleCircleTwoIntersects
	CircleCircleCoincident
)

// CircleCircleResult is the result of intersecting two circles.
type CircleCircleResult struct {
	Kind           Circle2Circle2IntrKind
	Point1, Point2 Point
}

// IntersectCircleCircle intersects circle 1 (center c1, radius r1) with
// circle 2 (center c2, radius r2).
func IntersectCircleCircle(r1 float64, c1 Point, r2 float64, c2 Point, eps float64) CircleCircleResult {
	dv := c2.Sub(c1)
	dist := dv.Hypot()
	if dist > r1+r2+eps {
		return CircleCircleResult{Kind: CircleCircleNoIntersect}
	}
	if dist < math.Abs(r1-r2)-eps {
		return CircleCircleResult{Kind: CircleCircleNoIntersect}
	}
	if dist < eps {
		if fuzzyEqual(r1, r2, eps) {
			return CircleCircleResult{Kind: CircleCircleCoincident}
		}
		return CircleCircleResult{Kind: CircleCircleNoIntersect}
	}
	if fuzzyEqual(dist, r1+r2, eps) || fuzzyEqual(dist, math.Abs(r1-r2), eps) {
		// External or internal tangency: single point along the line
		// joining the centers.
		t := r1 / dist
		if r1 < r2 && fuzzyEqual(dist, r2-r1, eps) {
			// Circle 1 sits inside circle 2: the tangent point lies on the
			// far side of c1 from c2.
			t = -t
		}
		p := c1.Translate(dv.Mul(t))
		return CircleCircleResult{Kind: CircleCircleOneIntersect, Point1: p}
	}
	// Two intersection points: standard two-circle formula.
	a := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)
	hSq := r1*r1 - a*a
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)
	mid := c1.Translate(dv.Mul(a / dist))
	perp := Vec2{X: -dv.Y, Y: dv.X}.Mul(h / dist)
	return CircleCircleResult{
		Kind:   CircleCircleTwoIntersects,
		Point1: mid.Translate(perp),
		Point2: mid.Translate(perp.Negate()),
	}
}

// SegSegIntrKind tags the variant of a segment/segment (line-or-arc)
// intersection result.
type SegSegIntrKind int

const (
	SegSegNoIntersect SegSegIntrKind = iota
	SegSegTangentIntersect
	SegSegOneIntersect
	SegSegTwoIntersects
	SegSegSegmentOverlap
	SegSegArcOverlap
)

// SegSegResult is the result of intersecting two polyline segments.
type SegSegResult struct {
	Kind           SegSegIntrKind
	Point1, Point2 Point
	// OverlapT0, OverlapT1 parametrize (along segment 1) a SegmentOverlap,
	// or (as angles from segment 1's arc center) an ArcOverlap.
	OverlapT0, OverlapT1 float64
}

// IntersectSegments dispatches to line-line, line-circle, or circle-circle
// intersection based on which of a, b are lines, then filters the raw
// result against each segment's extent (lines) or sweep (arcs).
func IntersectSegments(a, b Segment, eps float64) SegSegResult {
	aIsLine := a.IsLine(eps)
	bIsLine := b.IsLine(eps)
	switch {
	case aIsLine && bIsLine:
		return intersectLineLineSegs(a, b, eps)
	case aIsLine && !bIsLine:
		return intersectLineArcSegs(a, b, eps, false)
	case !aIsLine && bIsLine:
		return intersectLineArcSegs(b, a, eps, true)
	default:
		return intersectArcArcSegs(a, b, eps)
	}
}

func intersectLineLineSegs(a, b Segment, eps float64) SegSegResult {
	r := IntersectLineLine(a.V1.Point(), a.V2.Point(), b.V1.Point(), b.V2.Point(), eps)
	switch r.Kind {
	case LineLineTrue:
		return SegSegResult{Kind: SegSegOneIntersect, Point1: r.Point}
	case LineLineCoincident:
		return SegSegResult{Kind: SegSegSegmentOverlap, OverlapT0: r.T0, OverlapT1: r.T1}
	default:
		return SegSegResult{Kind: SegSegNoIntersect}
	}
}

// intersectLineArcSegs intersects line segment `line` against arc segment
// `arc`. If swapped is true, `arc` was originally the first argument to
// IntersectSegments (so Point1/Point2 order is preserved as given, since
// this kernel doesn't distinguish which segment is "first" beyond result
// point ordering).
func intersectLineArcSegs(line, arc Segment, eps float64, swapped bool) SegSegResult {
	p0 := line.V1.Point()
	d := line.V2.Point().Sub(p0)
	c := arc.Center(eps)
	r := arc.Radius(eps)
	lc := IntersectLineCircle(p0, d, c, r, eps)
	if lc.Count == 0 {
		return SegSegResult{Kind: SegSegNoIntersect}
	}
	var pts []Point
	ts := []float64{lc.T0}
	if lc.Count == 2 {
		ts = append(ts, lc.T1)
	}
	for _, t := range ts {
		if _, ok := clampToUnitInterval(t, eps); !ok {
			continue
		}
		pt := p0.Translate(d.Mul(t))
		if arc.PointOnArcSweep(pt, eps) {
			pts = append(pts, pt)
		}
	}
	return segSegResultFromPoints(pts)
}

func intersectArcArcSegs(a, b Segment, eps float64) SegSegResult {
	ca, ra := a.Center(eps), a.Radius(eps)
	cb, rb := b.Center(eps), b.Radius(eps)
	cc := IntersectCircleCircle(ra, ca, rb, cb, eps)
	switch cc.Kind {
	case CircleCircleNoIntersect:
		return SegSegResult{Kind: SegSegNoIntersect}
	case CircleCircleCoincident:
		return arcOverlapResult(a, b, eps)
	case CircleCircleOneIntersect:
		if a.PointOnArcSweep(cc.Point1, eps) && b.PointOnArcSweep(cc.Point1, eps) {
			return SegSegResult{Kind: SegSegOneIntersect, Point1: cc.Point1}
		}
		return SegSegResult{Kind: SegSegNoIntersect}
	default: // CircleCircleTwoIntersects
		var pts []Point
		for _, p := range [2]Point{cc.Point1, cc.Point2} {
			if a.PointOnArcSweep(p, eps) && b.PointOnArcSweep(p, eps) {
				pts = append(pts, p)
			}
		}
		return segSegResultFromPoints(pts)
	}
}

func segSegResultFromPoints(pts []Point) SegSegResult {
	switch len(pts) {
	case 0:
		return SegSegResult{Kind: SegSegNoIntersect}
	case 1:
		return SegSegResult{Kind: SegSegOneIntersect, Point1: pts[0]}
	default:
		return SegSegResult{Kind: SegSegTwoIntersects, Point1: pts[0], Point2: pts[1]}
	}
}

// arcOverlapResult classifies two arcs sharing a supporting circle:
// normalize both sweeps to the same direction, intersect the sweep
// intervals, and report the overlap endpoints as angles (via
// OverlapT0/OverlapT1, measured from a's center).
func arcOverlapResult(a, b Segment, eps float64) SegSegResult {
	c := a.Center(eps)
	aStart := a.StartAngle(eps)
	aSweep := a.SweepAngle()
	bStart := b.StartAngle(eps)
	bSweep := b.SweepAngle()

	// Normalize both to a CCW-positive representation: [start, start+|sweep|).
	aLo, aHi := normalizeCCWInterval(aStart, aSweep)
	bLo, bHi := normalizeCCWInterval(bStart, bSweep)

	lo, hi, ok := intersectAngularIntervals(aLo, aHi, bLo, bHi)
	if !ok {
		return SegSegResult{Kind: SegSegNoIntersect}
	}
	if fuzzyEqual(lo, hi, eps) {
		p := pointOnArc(c, a.Radius(eps), lo)
		return SegSegResult{Kind: SegSegOneIntersect, Point1: p}
	}
	return SegSegResult{Kind: SegSegArcOverlap, OverlapT0: lo, OverlapT1: hi}
}

// normalizeCCWInterval returns [lo, hi] with hi >= lo describing the same
// arc as (start, sweep) but always traversed in the increasing-angle
// direction (unwrapping start by 2*pi multiples as needed so hi = lo +
// |sweep|).
func normalizeCCWInterval(start, sweep float64) (lo, hi float64) {
	s := normalizeRadians(start)
	if sweep >= 0 {
		return s, s + sweep
	}
	// CW sweep from `start` covering |sweep| radians ending at start+sweep;
	// expressed as an increasing interval it starts at (start+sweep).
	return s + sweep, s
}

// intersectAngularIntervals intersects two angular intervals, accounting
// for 2*pi wraparound by also testing each interval shifted by +-2*pi.
func intersectAngularIntervals(aLo, aHi, bLo, bHi float64) (lo, hi float64, ok bool) {
	const twoPi = 2 * math.Pi
	best := false
	for _, shift := range [3]float64{-twoPi, 0, twoPi} {
		l := max(aLo, bLo+shift)
		h := min(aHi, bHi+shift)
		if l <= h {
			if !best || h-l > hi-lo {
				lo, hi = l, h
				best = true
			}
		}
	}
	return lo, hi, best
}
