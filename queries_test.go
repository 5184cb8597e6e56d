package pline

import (
	"math"
	"testing"
)

func unitSquare() Polyline {
	return New(true, Vtx(0, 0, 0), Vtx(1, 0, 0), Vtx(1, 1, 0), Vtx(0, 1, 0))
}

func TestUnitSquare(t *testing.T) {
	p := unitSquare()
	closeEnough(t, p.Area(), 1, 1e-9, "area")
	closeEnough(t, p.PathLength(), 4, 1e-9, "pathLength")
	ext := p.Extents()
	diff(t, AABB{XMin: 0, YMin: 0, XMax: 1, YMax: 1}, ext, approxOpt(1e-9))
	if wn := p.WindingNumber(Pt(0.5, 0.5)); wn != 1 {
		t.Errorf("winding(0.5,0.5) = %d, want 1", wn)
	}
}

func TestUnitCircleViaTwoSemicircles(t *testing.T) {
	// A circle of radius 5 built from two semicircular arcs.
	p := New(true, Vtx(0, 0, 1), Vtx(10, 0, 1))
	closeEnough(t, p.Area(), 25*math.Pi, 1e-6, "area")
	closeEnough(t, p.PathLength(), 10*math.Pi, 1e-6, "pathLength")
	seg := p.segmentAt(0)
	closeEnough(t, seg.Radius(DefaultEpsilon), 5, 1e-9, "radius")
}

func TestFigureEight(t *testing.T) {
	// Two opposite-handed lobes, net area near zero.
	p := New(true, Vtx(0, 0, 1), Vtx(2, 0, 1), Vtx(0, 0, -1), Vtx(-2, 0, -1))
	closeEnough(t, p.Area(), 0, 1e-6, "net area")
}

func TestQuarterArcPathLength(t *testing.T) {
	// A quarter-circle arc of radius 1.
	p := New(false, Vtx(1, 0, -0.4142135624), Vtx(0, -1, 0))
	closeEnough(t, p.PathLength(), math.Pi/2, 1e-6, "pathLength")
}

func TestAreaSignFlipsUnderInversion(t *testing.T) {
	p := unitSquare()
	inv := p.InvertDirection()
	closeEnough(t, inv.Area(), -p.Area(), 1e-9, "inverted area")
}

func TestPathLengthInvariantUnderInversion(t *testing.T) {
	p := unitSquare()
	inv := p.InvertDirection()
	closeEnough(t, inv.PathLength(), p.PathLength(), 1e-9, "inverted pathLength")
}

func TestWindingNumberOutsideExtentsIsZero(t *testing.T) {
	p := unitSquare()
	if wn := p.WindingNumber(Pt(10, 10)); wn != 0 {
		t.Errorf("winding outside extents = %d, want 0", wn)
	}
}

func TestInvertDirectionRoundTrip(t *testing.T) {
	p := New(true, Vtx(0, 0, 0.3), Vtx(2, 0, -0.5), Vtx(2, 2, 0), Vtx(0, 2, 0.1))
	back := p.InvertDirection().InvertDirection()
	diff(t, p.Vertices, back.Vertices, approxOpt(1e-9))
}

func TestScaleRoundTrip(t *testing.T) {
	p := unitSquare()
	a, b := 2.0, 3.0
	lhs := p.Scale(a).Scale(b)
	rhs := p.Scale(a * b)
	diff(t, rhs.Vertices, lhs.Vertices, approxOpt(1e-9))
}

func TestTranslateRoundTrip(t *testing.T) {
	p := unitSquare()
	u := Vec(1, 2)
	v := Vec(3, -4)
	lhs := p.Translate(u).Translate(v)
	rhs := p.Translate(u.Add(v))
	diff(t, rhs.Vertices, lhs.Vertices, approxOpt(1e-9))
}

func TestClosestPointOnLineSegment(t *testing.T) {
	p := unitSquare()
	idx, pt, dist := p.ClosestPoint(Pt(0.5, -1))
	if idx != 0 {
		t.Errorf("segment index = %d, want 0", idx)
	}
	closeEnough(t, pt.Distance(Pt(0.5, 0)), 0, 1e-9, "closest point")
	closeEnough(t, dist, 1, 1e-9, "distance")
}

func TestConvertArcsToLinesConvergesInLength(t *testing.T) {
	p := New(true, Vtx(0, 0, 1), Vtx(10, 0, 1))
	want := p.PathLength()
	loose := p.ConvertArcsToLines(1e-1).PathLength()
	tight := p.ConvertArcsToLines(1e-4).PathLength()
	if math.Abs(tight-want) >= math.Abs(loose-want) {
		t.Errorf("tighter chord error should approach true length more closely: loose=%v tight=%v want=%v", loose, tight, want)
	}
}
