package pline

import "testing"

func square(x0, y0, x1, y1 float64) Polyline {
	return New(true, Vtx(x0, y0, 0), Vtx(x1, y0, 0), Vtx(x1, y1, 0), Vtx(x0, y1, 0))
}

func sumArea(ps []Polyline) float64 {
	var total float64
	for _, p := range ps {
		a := p.Area()
		if a < 0 {
			a = -a
		}
		total += a
	}
	return total
}

func TestCombineSquareIntersect(t *testing.T) {
	// Two 2x2 squares offset by (1,1) overlap in a 1x1 square.
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)
	out, err := CombinePolylines(a, b, CombineIntersect)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	closeEnough(t, sumArea(out), 1, 1e-6, "intersect area")
}

func TestCombineSquareUnion(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)
	out, err := CombinePolylines(a, b, CombineUnion)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	closeEnough(t, sumArea(out), 7, 1e-6, "union area")
}

func TestCombineSquareExclude(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)
	out, err := CombinePolylines(a, b, CombineExclude)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	closeEnough(t, sumArea(out), 3, 1e-6, "exclude area")
}

func TestCombineSelfUnion(t *testing.T) {
	a := square(0, 0, 2, 2)
	out, err := CombinePolylines(a, a, CombineUnion)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	closeEnough(t, sumArea(out), a.Area(), 1e-6, "self-union area")
}

func TestCombineSelfExclude(t *testing.T) {
	a := square(0, 0, 2, 2)
	out, err := CombinePolylines(a, a, CombineExclude)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	if sumArea(out) > 1e-6 {
		t.Errorf("self-exclude area = %v, want ~0", sumArea(out))
	}
}

func TestCombineRejectsOpenInput(t *testing.T) {
	a := New(false, Vtx(0, 0, 0), Vtx(1, 0, 0))
	b := square(0, 0, 1, 1)
	if _, err := CombinePolylines(a, b, CombineUnion); err == nil {
		t.Error("expected error for open input a")
	}
	if _, err := CombinePolylines(b, a, CombineUnion); err == nil {
		t.Error("expected error for open input b")
	}
}

func TestCombineDisjointConservesArea(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(5, 5, 6, 6)
	out, err := CombinePolylines(a, b, CombineUnion)
	if err != nil {
		t.Fatalf("CombinePolylines: %v", err)
	}
	closeEnough(t, sumArea(out), a.Area()+b.Area(), 1e-6, "disjoint union area")
}
