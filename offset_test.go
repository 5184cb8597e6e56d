package pline

import "testing"

func TestParallelOffsetZeroDistanceIsIdentity(t *testing.T) {
	p := unitSquare()
	out, err := ParallelOffset(p, 0)
	if err != nil {
		t.Fatalf("ParallelOffset: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	diff(t, p.Vertices, out[0].Vertices, approxOpt(1e-9))
}

func TestParallelOffsetInwardShrinksArea(t *testing.T) {
	// A unit square offset inward by 0.1. Positive d moves a CCW polyline's
	// boundary to the left of travel, which is its interior, so an inward
	// offset is d > 0 here.
	p := unitSquare()
	out, err := ParallelOffset(p, 0.1)
	if err != nil {
		t.Fatalf("ParallelOffset: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected a non-empty offset result")
	}
	area := sumArea(out)
	if area <= 0 || area >= 1 {
		t.Errorf("inward-offset area = %v, want strictly between 0 and 1", area)
	}
}

func TestParallelOffsetOutwardGrowsConvexPolygon(t *testing.T) {
	p := unitSquare()
	small, err := ParallelOffset(p, -0.05)
	if err != nil {
		t.Fatalf("ParallelOffset: %v", err)
	}
	large, err := ParallelOffset(p, -0.2)
	if err != nil {
		t.Fatalf("ParallelOffset: %v", err)
	}
	if len(small) == 0 || len(large) == 0 {
		t.Fatal("expected non-empty offset results")
	}
	smallArea := sumArea(small)
	largeArea := sumArea(large)
	if !(smallArea > 1 && largeArea > smallArea) {
		t.Errorf("expected monotonically growing area: 1 < %v < %v", smallArea, largeArea)
	}
}

func TestParallelOffsetCollapseYieldsEmptyResult(t *testing.T) {
	p := unitSquare()
	// Offsetting a unit square inward by more than half its width should
	// collapse it entirely rather than error.
	out, err := ParallelOffset(p, 5)
	if err != nil {
		t.Fatalf("ParallelOffset: %v", err)
	}
	if sumArea(out) >= 0.01 {
		t.Errorf("expected near-total collapse, got area %v from %d polylines", sumArea(out), len(out))
	}
}
