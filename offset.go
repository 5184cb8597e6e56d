package pline

import (
	"math"
	"sort"
)

// ParallelOffset computes the parallel offset of p at signed distance d: a
// positive d moves each segment to its left (in the direction of
// traversal), a negative d to its right. The result is a set of polylines,
// since offsetting a non-convex shape can split it into multiple disjoint
// loops; an offset that collapses the shape entirely yields an empty (not
// error) result.
func ParallelOffset(p Polyline, d float64) ([]Polyline, error) {
	if err := p.validate("ParallelOffset"); err != nil {
		return nil, err
	}
	if fuzzyZero(d, DefaultEpsilon) {
		return []Polyline{p.Clone()}, nil
	}

	raw := rawOffsetSegments(p, d)
	joined := joinRawOffsets(p, raw)
	if len(joined) == 0 {
		return nil, nil
	}

	origIndex := BuildSpatialIndex(p, 16)
	slices := sliceAtSelfIntersections(joined, p.Closed)
	valid := filterValidSlices(slices, p, origIndex, d)
	if len(valid) == 0 {
		return nil, nil
	}
	return stitchSlices(valid, p.Closed), nil
}

// rawSeg is a single isolated offset of one source segment, possibly
// degenerate (radius <= 0 for an arc whose offset direction shrinks it
// past zero).
type rawSeg struct {
	v1, v2     Vertex
	degenerate bool
}

// rawOffsetSegments produces one offset segment per source segment, each
// considered in isolation, ignoring how neighboring offsets will join.
func rawOffsetSegments(p Polyline, d float64) []rawSeg {
	n := p.NumSegments()
	out := make([]rawSeg, n)
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		if seg.IsLine(DefaultEpsilon) {
			p1, p2 := seg.V1.Point(), seg.V2.Point()
			normal := p2.Sub(p1).Perp().Normalize()
			offset := normal.Mul(d)
			np1, np2 := p1.Translate(offset), p2.Translate(offset)
			out[i] = rawSeg{v1: Vtx(np1.X, np1.Y, 0), v2: Vtx(np2.X, np2.Y, 0)}
			continue
		}
		c := seg.Center(DefaultEpsilon)
		r := seg.Radius(DefaultEpsilon)
		ccw := ArcIsCCW(seg.V1)
		// Offsetting to the left of travel shrinks a CCW arc's radius (moving
		// toward its center, which sits to the arc's left) and grows a CW
		// one; the sign flips for negative d.
		var newR float64
		if ccw {
			newR = r - d
		} else {
			newR = r + d
		}
		if newR <= DefaultEpsilon {
			out[i] = rawSeg{degenerate: true}
			continue
		}
		theta0 := seg.StartAngle(DefaultEpsilon)
		sweep := seg.SweepAngle()
		p1 := pointOnArc(c, newR, theta0)
		p2 := pointOnArc(c, newR, theta0+sweep)
		bulge := bulgeFromSweepAngle(sweep)
		out[i] = rawSeg{v1: Vtx(p1.X, p1.Y, bulge), v2: Vtx(p2.X, p2.Y, 0)}
	}
	return out
}

// joinRawOffsets joins each pair of consecutive raw offsets at the original
// polyline's vertices, producing the vertex sequence of the raw offset
// polyline. Degenerate segments (and the joins touching them) are simply
// dropped. Every other join is handled by joinAt, which either adds the
// two offsets' intersection point or bridges them with an arc; no join is
// treated as a collapse.
func joinRawOffsets(p Polyline, raw []rawSeg) []Vertex {
	n := len(raw)
	if n == 0 {
		return nil
	}
	out := make([]Vertex, 0, n*2)

	firstLive := -1
	for i := 0; i < n; i++ {
		if !raw[i].degenerate {
			firstLive = i
			break
		}
	}
	if firstLive < 0 {
		return nil
	}

	appendVertex := func(v Vertex) {
		if len(out) > 0 {
			last := out[len(out)-1]
			if v.Point().Distance(last.Point()) < DefaultEpsilon {
				return
			}
		}
		out = append(out, v)
	}

	count := 0
	idx := firstLive
	appendVertex(raw[idx].v1)
	for count < n {
		cur := raw[idx]
		if cur.degenerate {
			idx = nextIndex(idx, n, p.Closed)
			count++
			if idx == n {
				break
			}
			continue
		}
		appendVertex(cur.v2)

		nextIdx := nextIndex(idx, n, p.Closed)
		if !p.Closed && nextIdx == n {
			break
		}
		nxt := raw[nextIdx]
		if !nxt.degenerate {
			joinAt(p, idx, cur, nxt, appendVertex)
		}
		idx = nextIdx
		count++
	}

	if len(out) < 2 {
		return nil
	}
	if p.Closed {
		if out[0].Point().Distance(out[len(out)-1].Point()) < DefaultEpsilon {
			out[len(out)-2].Bulge = out[len(out)-1].Bulge
			out = out[:len(out)-1]
		}
	}
	return out
}

func nextIndex(i, n int, closed bool) int {
	j := i + 1
	if j == n {
		if closed {
			return 0
		}
		return n
	}
	return j
}

// joinAt bridges the gap between the end of cur and the start of nxt, both
// raw offsets of segments meeting at an original vertex (the join happens
// at the second endpoint of the source segment with index segIdx).
func joinAt(p Polyline, segIdx int, cur, nxt rawSeg, appendVertex func(Vertex)) {
	gap := cur.v2.Point().Distance(nxt.v1.Point())
	if gap < DefaultEpsilon {
		// Endpoints already coincide; nothing to bridge.
		return
	}

	origVertexIdx := segIdx + 1
	if origVertexIdx >= len(p.Vertices) {
		origVertexIdx = 0
	}
	center := p.Vertices[origVertexIdx].Point()

	curSeg := Segment{V1: cur.v1, V2: cur.v2}
	nxtSeg := Segment{V1: nxt.v1, V2: nxt.v2}
	res := IntersectSegments(curSeg, nxtSeg, DefaultEpsilon)
	switch res.Kind {
	case SegSegOneIntersect:
		appendVertex(Vtx(res.Point1.X, res.Point1.Y, 0))
		return
	case SegSegTwoIntersects:
		// Pick whichever candidate is nearer the original vertex: the other
		// is a spurious far-side crossing of the two (generally short) raw
		// offset segments.
		pt := res.Point1
		if res.Point2.Distance(center) < pt.Distance(center) {
			pt = res.Point2
		}
		appendVertex(Vtx(pt.X, pt.Y, 0))
		return
	}

	// No direct intersection: diverging (outer) corner. Bridge with an arc
	// of radius |d| centered at the original vertex, from cur.v2 to
	// nxt.v1, sweeping the short way round.
	a0 := cur.v2.Point().Sub(center).Angle()
	a1 := nxt.v1.Point().Sub(center).Angle()
	sweep := deltaAngle(a0, a1)
	bridgeBulge := bulgeFromSweepAngle(sweep)
	appendVertex(Vtx(cur.v2.X, cur.v2.Y, bridgeBulge))
	appendVertex(nxt.v1)
}

// selfIntersection records a raw-offset self-intersection, per Stage 3.
type selfIntersection struct {
	segIndex int
	t        float64
	point    Point
}

// sliceAtSelfIntersections finds all self-intersections of the raw offset
// polyline and cuts it into open slices at every one.
func sliceAtSelfIntersections(vertices []Vertex, closed bool) []Polyline {
	r := Polyline{Vertices: vertices, Closed: closed}
	n := r.NumSegments()
	if n == 0 {
		return nil
	}
	index := BuildSpatialIndex(r, 16)

	hits := make(map[int][]selfIntersection)
	var buf [64]int
	for i := 0; i < n; i++ {
		segI := r.segmentAt(i)
		box := segI.AABB(DefaultEpsilon)
		cands := index.QueryFast(box, buf[:0])
		for _, j := range cands {
			if j <= i+1 {
				continue
			}
			if closed && i == 0 && j == n-1 {
				continue
			}
			segJ := r.segmentAt(j)
			res := IntersectSegments(segI, segJ, DefaultEpsilon)
			addSelfIntersectionPoints(hits, segI, segJ, i, j, res)
		}
	}

	if len(hits) == 0 {
		return []Polyline{r}
	}
	for i := range hits {
		sort.Slice(hits[i], func(a, b int) bool { return hits[i][a].t < hits[i][b].t })
	}
	return cutAtIntersections(r, hits)
}

func addSelfIntersectionPoints(hits map[int][]selfIntersection, segI, segJ Segment, i, j int, res SegSegResult) {
	switch res.Kind {
	case SegSegOneIntersect:
		addHit(hits, segI, i, res.Point1)
		addHit(hits, segJ, j, res.Point1)
	case SegSegTwoIntersects:
		addHit(hits, segI, i, res.Point1)
		addHit(hits, segJ, j, res.Point1)
		addHit(hits, segI, i, res.Point2)
		addHit(hits, segJ, j, res.Point2)
	}
}

func addHit(hits map[int][]selfIntersection, seg Segment, idx int, pt Point) {
	t := seg.ParamAtPoint(pt, DefaultEpsilon)
	if t <= DefaultEpsilon || t >= 1-DefaultEpsilon {
		return
	}
	hits[idx] = append(hits[idx], selfIntersection{segIndex: idx, t: t, point: pt})
}

// cutAtIntersections walks r and emits one slice per run of vertices
// between consecutive self-intersection points; the original vertices of r
// stay inside the slice that passes through them.
func cutAtIntersections(r Polyline, hits map[int][]selfIntersection) []Polyline {
	n := r.NumSegments()
	var slices []Polyline
	var cur []Vertex

	flush := func() {
		if len(cur) >= 2 {
			slices = append(slices, Polyline{Vertices: append([]Vertex(nil), cur...), Closed: false})
		}
		cur = nil
	}

	for i := 0; i < n; i++ {
		seg := r.segmentAt(i)
		v1 := seg.V1
		cuts := hits[i]
		cur = append(cur, v1)
		prevT := 0.0
		for _, h := range cuts {
			cur[len(cur)-1].Bulge = partialSegmentBulge(seg, prevT, h.t)
			cur = append(cur, Vtx(h.point.X, h.point.Y, 0))
			flush()
			cur = append(cur, Vtx(h.point.X, h.point.Y, 0))
			prevT = h.t
		}
		cur[len(cur)-1].Bulge = partialSegmentBulge(seg, prevT, 1.0)
	}
	end := r.Vertices[len(r.Vertices)-1]
	if r.Closed {
		end = r.Vertices[0]
	}
	cur = append(cur, Vtx(end.X, end.Y, 0))
	flush()
	return slices
}

// partialSegmentBulge returns the bulge describing the portion of seg
// between parameters t0 and t1 (0 <= t0 < t1 <= 1).
func partialSegmentBulge(seg Segment, t0, t1 float64) float64 {
	if seg.IsLine(DefaultEpsilon) {
		return 0
	}
	sweep := seg.SweepAngle()
	return bulgeFromSweepAngle(sweep * (t1 - t0))
}

// filterValidSlices keeps only the slices that survive as a valid offset: a
// slice survives if its midpoint (and, for long slices, additional probe
// points) is at distance >= |d| - eps from every segment of the original
// polyline.
func filterValidSlices(slices []Polyline, original Polyline, origIndex SpatialIndex, d float64) []Polyline {
	absD := math.Abs(d)
	var out []Polyline
	for _, s := range slices {
		if sliceClearsOriginal(s, original, origIndex, absD) {
			out = append(out, s)
		}
	}
	return out
}

func sliceClearsOriginal(s Polyline, original Polyline, origIndex SpatialIndex, absD float64) bool {
	n := s.NumSegments()
	if n == 0 {
		return false
	}
	probes := probePoints(s)
	for _, pt := range probes {
		_, _, dist := closestPointViaIndex(pt, original, origIndex)
		if dist < absD-DefaultEpsilon*10 {
			return false
		}
	}
	return true
}

// probePoints samples a slice's midpoint, plus extra points along longer
// slices, so a single coincidental clearance near the slice midpoint
// doesn't validate an otherwise-invalid long slice.
func probePoints(s Polyline) []Point {
	n := s.NumSegments()
	mid := n / 2
	pts := []Point{s.segmentAt(mid).PointAt(0.5, DefaultEpsilon)}
	if n > 4 {
		pts = append(pts, s.segmentAt(0).PointAt(0.5, DefaultEpsilon))
		pts = append(pts, s.segmentAt(n-1).PointAt(0.5, DefaultEpsilon))
	}
	return pts
}

// closestPointViaIndex finds the closest point on original to pt, using
// origIndex to narrow the candidate segments to those inside one search box
// around pt, whose half-width is the larger side of original's extents. If
// that box finds no segment, every segment is scanned.
func closestPointViaIndex(pt Point, original Polyline, origIndex SpatialIndex) (int, Point, float64) {
	n := original.NumSegments()
	if n == 0 {
		return -1, Point{}, math.Inf(1)
	}
	box := original.Extents()
	radius := math.Max(box.Width(), box.Height())
	if radius <= 0 {
		radius = 1
	}
	query := AABB{XMin: pt.X - radius, YMin: pt.Y - radius, XMax: pt.X + radius, YMax: pt.Y + radius}
	var buf [64]int
	cands := origIndex.QueryFast(query, buf[:0])
	if len(cands) == 0 {
		return original.ClosestPoint(pt)
	}
	best := -1
	var bestPt Point
	bestDist := math.Inf(1)
	for _, idx := range cands {
		seg := original.segmentAt(idx)
		cp := segmentClosestPoint(seg, pt)
		dist := cp.Distance(pt)
		if dist < bestDist {
			bestDist = dist
			bestPt = cp
			best = idx
		}
	}
	return best, bestPt, bestDist
}

// stitchSlices matches surviving slice endpoints within fuzzy tolerance to
// rebuild one or more polylines, preserving traversal direction.
func stitchSlices(slices []Polyline, closed bool) []Polyline {
	used := make([]bool, len(slices))
	var loops []Polyline
	for start := range slices {
		if used[start] {
			continue
		}
		used[start] = true
		if slices[start].Closed {
			loops = append(loops, slices[start].Clone())
			continue
		}
		chain := append([]Vertex(nil), slices[start].Vertices...)
		for {
			tail := chain[len(chain)-1].Point()
			found := -1
			for j := range slices {
				if used[j] {
					continue
				}
				if slices[j].Vertices[0].Point().Distance(tail) < DefaultEpsilon*100 {
					found = j
					break
				}
			}
			if found < 0 {
				break
			}
			used[found] = true
			chain[len(chain)-1].Bulge = slices[found].Vertices[0].Bulge
			chain = append(chain, slices[found].Vertices[1:]...)
		}
		loopClosed := false
		if len(chain) > 2 && chain[0].Point().Distance(chain[len(chain)-1].Point()) < DefaultEpsilon*100 {
			chain[len(chain)-2].Bulge = chain[len(chain)-1].Bulge
			chain = chain[:len(chain)-1]
			loopClosed = true
		}
		loops = append(loops, Polyline{Vertices: chain, Closed: loopClosed})
	}
	return loops
}
