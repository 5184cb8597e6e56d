package pline

import "sort"

// CombineMode selects the Boolean set operation performed by
// CombinePolylines.
type CombineMode int

const (
	CombineUnion CombineMode = iota
	CombineIntersect
	CombineExclude
	CombineXOR
)

// CombinePolylines computes the Boolean combination of two closed
// polylines a and b under mode. Both inputs must be closed; an open input
// is rejected with an [InputError].
func CombinePolylines(a, b Polyline, mode CombineMode) ([]Polyline, error) {
	if err := a.validate("CombinePolylines"); err != nil {
		return nil, err
	}
	if err := b.validate("CombinePolylines"); err != nil {
		return nil, err
	}
	if !a.Closed {
		return nil, &InputError{Op: "CombinePolylines", Reason: "polyline a is not closed"}
	}
	if !b.Closed {
		return nil, &InputError{Op: "CombinePolylines", Reason: "polyline b is not closed"}
	}

	if polylinesCoincide(a, b) {
		return coincidentCombineResult(a, mode), nil
	}

	crossings := findCrossings(a, b)
	aAug := splitAtCrossings(a, crossings, true)
	bAug := splitAtCrossings(b, crossings, false)

	aSlices := slicesOf(aAug)
	bSlices := slicesOf(bAug)

	aClass := classifySlices(aSlices, b)
	bClass := classifySlices(bSlices, a)

	selected := selectSlices(mode, aSlices, aClass, bSlices, bClass)
	return stitchSlices(selected, true), nil
}

// crossing records a crossing point between segment segA of a and segment
// segB of b, with its parametric position along each.
type crossing struct {
	segA, segB int
	tA, tB     float64
	point      Point
}

// findCrossings builds a spatial index for b, and for every segment of a
// queries that index for candidates, invoking the intersection kernel on
// each pair.
func findCrossings(a, b Polyline) []crossing {
	bIndex := BuildSpatialIndex(b, 16)
	na := a.NumSegments()
	var out []crossing
	var buf [64]int
	for i := 0; i < na; i++ {
		segA := a.segmentAt(i)
		box := segA.AABB(DefaultEpsilon)
		cands := bIndex.QueryFast(box, buf[:0])
		for _, j := range cands {
			segB := b.segmentAt(j)
			res := IntersectSegments(segA, segB, DefaultEpsilon)
			addCrossingPoints(&out, segA, segB, i, j, res)
		}
	}
	dedupeCrossings(&out)
	return out
}

func addCrossingPoints(out *[]crossing, segA, segB Segment, i, j int, res SegSegResult) {
	switch res.Kind {
	case SegSegOneIntersect:
		appendCrossing(out, segA, segB, i, j, res.Point1)
	case SegSegTwoIntersects:
		appendCrossing(out, segA, segB, i, j, res.Point1)
		appendCrossing(out, segA, segB, i, j, res.Point2)
	}
}

func appendCrossing(out *[]crossing, segA, segB Segment, i, j int, pt Point) {
	tA := segA.ParamAtPoint(pt, DefaultEpsilon)
	tB := segB.ParamAtPoint(pt, DefaultEpsilon)
	*out = append(*out, crossing{segA: i, segB: j, tA: tA, tB: tB, point: pt})
}

// dedupeCrossings removes near-duplicate crossing points (e.g. a shared
// endpoint reported by two adjacent segment pairs).
func dedupeCrossings(cs *[]crossing) {
	in := *cs
	out := in[:0]
	for _, c := range in {
		dup := false
		for _, k := range out {
			if c.point.Distance(k.point) < DefaultEpsilon*10 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	*cs = out
}

// splitAtCrossings inserts a vertex at every crossing point into the given
// polyline, using each crossing's parametric position along whichever of
// segA/segB belongs to this side.
func splitAtCrossings(p Polyline, crossings []crossing, isA bool) Polyline {
	n := p.NumSegments()
	bySeg := make(map[int][]crossing)
	for _, c := range crossings {
		idx, t := c.segA, c.tA
		if !isA {
			idx, t = c.segB, c.tB
		}
		if t <= DefaultEpsilon || t >= 1-DefaultEpsilon {
			continue
		}
		bySeg[idx] = append(bySeg[idx], crossing{tA: t, point: c.point})
	}
	for idx := range bySeg {
		sort.Slice(bySeg[idx], func(i, j int) bool { return bySeg[idx][i].tA < bySeg[idx][j].tA })
	}

	out := make([]Vertex, 0, n*2)
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		out = append(out, seg.V1)
		prevT := 0.0
		for _, c := range bySeg[i] {
			out[len(out)-1].Bulge = partialSegmentBulge(seg, prevT, c.tA)
			out = append(out, Vtx(c.point.X, c.point.Y, partialSegmentBulge(seg, c.tA, 1.0)))
			prevT = c.tA
		}
	}
	return Polyline{Vertices: out, Closed: true}
}

// slicesOf splits a closed, crossing-augmented polyline into one slice per
// run of vertices, where a "crossing vertex" (one lying on the other
// polyline) would start a new slice. Since splitAtCrossings already
// inserted an explicit vertex at every crossing, and every original vertex
// is also a potential slice boundary, here we treat every vertex as a
// candidate cut and produce per-segment single-segment slices; adjacent
// slices with the same classification are merged by classifySlices'
// caller via stitching, so no information is lost by over-slicing.
func slicesOf(p Polyline) []Polyline {
	n := p.NumSegments()
	slices := make([]Polyline, 0, n)
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		slices = append(slices, Polyline{Vertices: []Vertex{seg.V1, seg.V2}, Closed: false})
	}
	return slices
}

// sliceClass tags a slice's classification against the other polyline.
type sliceClass int

const (
	sliceOutside sliceClass = iota
	sliceInside
	sliceOnBoundary
)

func classifySlices(slices []Polyline, other Polyline) []sliceClass {
	out := make([]sliceClass, len(slices))
	for i, s := range slices {
		out[i] = classifyOneSlice(s, other)
	}
	return out
}

// classifyOneSlice samples a slice's midpoint against other's winding
// number; if the midpoint lands on the boundary, a second probe point is
// tried further along the slice so a single coincidental boundary-grazing
// sample doesn't misclassify the whole slice.
func classifyOneSlice(s Polyline, other Polyline) sliceClass {
	probe := func(t float64) sliceClass {
		pt := s.segmentAt(0).PointAt(t, DefaultEpsilon)
		_, _, dist := other.ClosestPoint(pt)
		if dist < DefaultEpsilon*10 {
			return sliceOnBoundary
		}
		if other.WindingNumber(pt) != 0 {
			return sliceInside
		}
		return sliceOutside
	}
	if c := probe(0.5); c != sliceOnBoundary {
		return c
	}
	if c := probe(0.25); c != sliceOnBoundary {
		return c
	}
	return probe(0.75)
}

// selectSlices picks, for each mode, which classified slices of a and b
// belong in the result, inverting direction where a mode needs a
// boundary traversed the opposite way (e.g. the cut made by subtracting
// b's interior in CombineExclude).
func selectSlices(mode CombineMode, aSlices []Polyline, aClass []sliceClass, bSlices []Polyline, bClass []sliceClass) []Polyline {
	var out []Polyline
	switch mode {
	case CombineUnion:
		out = append(out, filterByClass(aSlices, aClass, sliceOutside)...)
		out = append(out, filterByClass(bSlices, bClass, sliceOutside)...)
	case CombineIntersect:
		out = append(out, filterByClass(aSlices, aClass, sliceInside)...)
		out = append(out, filterByClass(bSlices, bClass, sliceInside)...)
	case CombineExclude:
		out = append(out, filterByClass(aSlices, aClass, sliceOutside)...)
		for _, s := range filterByClass(bSlices, bClass, sliceInside) {
			out = append(out, s.InvertDirection())
		}
	case CombineXOR:
		out = append(out, filterByClass(aSlices, aClass, sliceOutside)...)
		out = append(out, filterByClass(bSlices, bClass, sliceOutside)...)
		for _, s := range filterByClass(aSlices, aClass, sliceInside) {
			out = append(out, s.InvertDirection())
		}
		for _, s := range filterByClass(bSlices, bClass, sliceInside) {
			out = append(out, s.InvertDirection())
		}
	}
	return out
}

func filterByClass(slices []Polyline, class []sliceClass, want sliceClass) []Polyline {
	var out []Polyline
	for i, s := range slices {
		if class[i] == want {
			out = append(out, s)
		}
	}
	return out
}

// polylinesCoincide reports whether a and b trace the same boundary,
// within fuzzy tolerance. Slice classification alone cannot resolve this
// configuration, since every slice would land exactly on the other
// polyline's boundary.
func polylinesCoincide(a, b Polyline) bool {
	na, nb := a.NumSegments(), b.NumSegments()
	if na == 0 || na != nb {
		return false
	}
	for i := 0; i < na; i++ {
		mid := a.segmentAt(i).PointAt(0.5, DefaultEpsilon)
		_, _, dist := b.ClosestPoint(mid)
		if dist >= DefaultEpsilon*100 {
			return false
		}
	}
	for i := 0; i < nb; i++ {
		mid := b.segmentAt(i).PointAt(0.5, DefaultEpsilon)
		_, _, dist := a.ClosestPoint(mid)
		if dist >= DefaultEpsilon*100 {
			return false
		}
	}
	return true
}

// coincidentCombineResult handles two exactly-coincident boundaries
// directly: Union and Intersect reproduce a; Exclude and XOR yield the
// empty set.
func coincidentCombineResult(a Polyline, mode CombineMode) []Polyline {
	switch mode {
	case CombineUnion, CombineIntersect:
		return []Polyline{a.Clone()}
	default:
		return nil
	}
}
