package pline

import (
	"math"
	"testing"
)

func TestArcRadiusAndCenterSemicircle(t *testing.T) {
	// A circle of radius 5 built from two semicircular arcs.
	v1 := Vtx(0, 0, 1)
	v2 := Vtx(10, 0, 1)
	closeEnough(t, ArcRadius(v1, v2, DefaultEpsilon), 5, 1e-9, "radius")
	c := ArcCenter(v1, v2, DefaultEpsilon)
	closeEnough(t, c.X, 5, 1e-9, "center.X")
	closeEnough(t, c.Y, 0, 1e-9, "center.Y")
}

func TestArcRadiusAndCenterQuarterArc(t *testing.T) {
	// A quarter-circle arc of radius 1.
	v1 := Vtx(1, 0, -0.4142135624)
	v2 := Vtx(0, -1, 0)
	closeEnough(t, ArcRadius(v1, v2, DefaultEpsilon), 1, 1e-6, "radius")
	c := ArcCenter(v1, v2, DefaultEpsilon)
	closeEnough(t, c.X, 0, 1e-6, "center.X")
	closeEnough(t, c.Y, 0, 1e-6, "center.Y")
	sweep := ArcSweepAngle(v1)
	closeEnough(t, math.Abs(sweep), math.Pi/2, 1e-6, "sweep magnitude")
}

func TestArcIsCCW(t *testing.T) {
	if !ArcIsCCW(Vtx(0, 0, 0.5)) {
		t.Error("positive bulge should be CCW")
	}
	if ArcIsCCW(Vtx(0, 0, -0.5)) {
		t.Error("negative bulge should not be CCW")
	}
}

func TestVertexIsFinite(t *testing.T) {
	if !Vtx(1, 2, 0.5).IsFinite() {
		t.Error("ordinary vertex should be finite")
	}
	if Vtx(math.NaN(), 2, 0.5).IsFinite() {
		t.Error("NaN X should not be finite")
	}
	if Vtx(1, 2, math.Inf(1)).IsFinite() {
		t.Error("infinite bulge should not be finite")
	}
}

func TestIsDegenerateBulge(t *testing.T) {
	if Vtx(0, 0, 1).IsDegenerateBulge() {
		t.Error("bulge 1 should not be degenerate")
	}
	if !Vtx(0, 0, 1e6).IsDegenerateBulge() {
		t.Error("bulge 1e6 should be degenerate")
	}
}
