package pline

import "math"

// Extents returns the axis-aligned bounding box of p, sweeping each segment
// and, for arcs, expanding by the arc's extreme points.
func (p Polyline) Extents() AABB {
	n := p.NumSegments()
	if n == 0 {
		if len(p.Vertices) == 1 {
			pt := p.Vertices[0].Point()
			return NewAABBFromPoints(pt, pt)
		}
		return AABB{}
	}
	box := invertedAABB()
	for i := 0; i < n; i++ {
		box = box.Union(p.segmentAt(i).AABB(DefaultEpsilon))
	}
	return box
}

// Area returns the signed area of p (positive = counter-clockwise). Open
// polylines return 0.
//
// The computation sums the shoelace (trapezoidal) contribution of each
// segment's chord, plus the signed circular-segment area contributed by
// each arc (0.5*r^2*(theta - sin(theta)), using the arc's signed sweep
// theta — this is an odd function of theta, so it is positive for CCW arcs
// and negative for CW ones without needing a separate sign branch).
func (p Polyline) Area() float64 {
	if !p.Closed {
		return 0
	}
	n := p.NumSegments()
	if n == 0 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		p1, p2 := seg.V1.Point(), seg.V2.Point()
		area += p1.X*p2.Y - p2.X*p1.Y
		if !seg.IsLine(DefaultEpsilon) {
			r := seg.Radius(DefaultEpsilon)
			theta := seg.SweepAngle()
			area += r * r * (theta - math.Sin(theta))
		}
	}
	return 0.5 * area
}

// PathLength returns the sum of segment lengths.
func (p Polyline) PathLength() float64 {
	var total float64
	n := p.NumSegments()
	for i := 0; i < n; i++ {
		total += p.segmentAt(i).Length(DefaultEpsilon)
	}
	return total
}

// WindingNumber returns the signed winding number of p around pt. Open
// polylines return 0.
//
// Implemented as a horizontal ray cast to +x from pt: for each segment we
// find where it crosses the horizontal line y=pt.Y, and accumulate +1 for
// an upward crossing strictly to the right of pt and -1 for a downward one,
// the standard crossing-number winding algorithm, generalized to arcs by
// solving circle/horizontal-line intersection and clipping to the arc's
// sweep.
func (p Polyline) WindingNumber(pt Point) int {
	if !p.Closed {
		return 0
	}
	n := p.NumSegments()
	wn := 0
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		if seg.IsLine(DefaultEpsilon) {
			wn += lineWindingContribution(seg.V1.Point(), seg.V2.Point(), pt)
			continue
		}
		wn += arcWindingContribution(seg, pt)
	}
	return wn
}

func lineWindingContribution(v1, v2, pt Point) int {
	if v1.Y <= pt.Y {
		if v2.Y > pt.Y && isLeft(v1, v2, pt) > 0 {
			return 1
		}
	} else {
		if v2.Y <= pt.Y && isLeft(v1, v2, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns >0 if pt is left of the line v1->v2, 0 if on it, <0 if
// right.
func isLeft(v1, v2, pt Point) float64 {
	return (v2.X-v1.X)*(pt.Y-v1.Y) - (pt.X-v1.X)*(v2.Y-v1.Y)
}

func arcWindingContribution(seg Segment, pt Point) int {
	c := seg.Center(DefaultEpsilon)
	r := seg.Radius(DefaultEpsilon)
	if r <= 0 {
		return 0
	}
	dy := pt.Y - c.Y
	if math.Abs(dy) > r {
		return 0
	}
	sweepSign := 1.0
	if seg.SweepAngle() < 0 {
		sweepSign = -1.0
	}
	theta0 := seg.StartAngle(DefaultEpsilon)
	sweep := seg.SweepAngle()

	total := 0
	base := math.Asin(clamp(dy/r, -1, 1))
	candidates := [2]float64{base, math.Pi - base}
	for _, angle := range candidates {
		angle = normalizeRadians(angle)
		if !angleInSweep(angle, theta0, sweep, DefaultEpsilon) {
			continue
		}
		x := c.X + r*math.Cos(angle)
		if x <= pt.X {
			continue
		}
		// dy/dangle = r*cos(angle); multiplied by the sign of travel
		// along the sweep gives the crossing direction.
		deriv := r * math.Cos(angle) * sweepSign
		if deriv > 0 {
			total++
		} else if deriv < 0 {
			total--
		}
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClosestPoint returns the index of the segment nearest to pt, the closest
// point on that segment, and the distance to it. Returns (-1, Point{},
// +Inf) if p has no segments.
func (p Polyline) ClosestPoint(pt Point) (segmentIndex int, closest Point, distance float64) {
	n := p.NumSegments()
	if n == 0 {
		return -1, Point{}, math.Inf(1)
	}
	segmentIndex = -1
	distance = math.Inf(1)
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		cp := segmentClosestPoint(seg, pt)
		d := cp.Distance(pt)
		if d < distance {
			distance = d
			closest = cp
			segmentIndex = i
		}
	}
	return segmentIndex, closest, distance
}

// segmentClosestPoint returns the closest point to pt on seg.
func segmentClosestPoint(seg Segment, pt Point) Point {
	if seg.IsLine(DefaultEpsilon) {
		p1, p2 := seg.V1.Point(), seg.V2.Point()
		chord := p2.Sub(p1)
		l2 := chord.Hypot2()
		if l2 < DefaultEpsilon*DefaultEpsilon {
			return p1
		}
		t := pt.Sub(p1).Dot(chord) / l2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return p1.Lerp(p2, t)
	}
	c := seg.Center(DefaultEpsilon)
	r := seg.Radius(DefaultEpsilon)
	dir := pt.Sub(c)
	if dir.Hypot2() < DefaultEpsilon*DefaultEpsilon {
		// pt is (near) the center: any point on the circle is equidistant;
		// fall back to the arc's start point.
		return seg.V1.Point()
	}
	angle := dir.Angle()
	if seg.PointOnArcSweep(pointOnArc(c, r, angle), DefaultEpsilon) {
		return pointOnArc(c, r, angle)
	}
	// Outside the sweep: nearest endpoint.
	p1, p2 := seg.V1.Point(), seg.V2.Point()
	if pt.Distance(p1) <= pt.Distance(p2) {
		return p1
	}
	return p2
}
