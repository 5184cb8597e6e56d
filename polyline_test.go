package pline

import (
	"math"
	"testing"
)

func TestNumSegments(t *testing.T) {
	open := New(false, Vtx(0, 0, 0), Vtx(1, 0, 0), Vtx(1, 1, 0))
	if n := open.NumSegments(); n != 2 {
		t.Errorf("open NumSegments = %d, want 2", n)
	}
	closed := New(true, Vtx(0, 0, 0), Vtx(1, 0, 0), Vtx(1, 1, 0))
	if n := closed.NumSegments(); n != 3 {
		t.Errorf("closed NumSegments = %d, want 3", n)
	}
}

func TestValidateRejectsTooFewVertices(t *testing.T) {
	p := New(false, Vtx(0, 0, 0))
	if err := p.validate("test"); err == nil {
		t.Error("expected error for polyline with 1 vertex")
	}
}

func TestValidateRejectsNonFiniteVertex(t *testing.T) {
	p := New(false, Vtx(0, 0, 0), Vtx(math.NaN(), 1, 0))
	if err := p.validate("test"); err == nil {
		t.Error("expected error for polyline with NaN vertex")
	}
}

func TestParallelOffsetRejectsMalformedInput(t *testing.T) {
	p := New(false, Vtx(0, 0, 0))
	if _, err := ParallelOffset(p, 1); err == nil {
		t.Error("expected error for malformed polyline")
	}
}

func TestPruneSingularitiesCollapsesDuplicates(t *testing.T) {
	p := New(false, Vtx(0, 0, 0), Vtx(0, 0, 0), Vtx(1, 0, 0))
	pruned := p.PruneSingularities(DefaultEpsilon)
	if len(pruned.Vertices) != 2 {
		t.Errorf("len(pruned.Vertices) = %d, want 2", len(pruned.Vertices))
	}
}

func TestPruneSingularitiesClosingDuplicate(t *testing.T) {
	p := Polyline{
		Vertices: []Vertex{Vtx(0, 0, 0), Vtx(1, 0, 0), Vtx(1, 1, 0), Vtx(0, 0, 0)},
		Closed:   true,
	}
	pruned := p.PruneSingularities(DefaultEpsilon)
	if len(pruned.Vertices) != 3 {
		t.Errorf("len(pruned.Vertices) = %d, want 3", len(pruned.Vertices))
	}
}

func TestDebugStringIncludesExtents(t *testing.T) {
	p := unitSquare()
	s := p.DebugString()
	if want := "(4, 1, 4, 0, 0, 1, 1)"; s != want {
		t.Errorf("DebugString() = %q, want %q", s, want)
	}
}
