package pline

import (
	flatbush "github.com/bmharper/flatbush-go"
)

// SpatialIndex is a static, bulk-loaded spatial index over a polyline's
// segments, backed by a packed Hilbert R-tree. It is built once from a
// polyline's segments and answers AABB-overlap queries against segment
// indices; it is immutable and safe for concurrent read-only use from
// multiple goroutines.
type SpatialIndex struct {
	fb   *flatbush.Flatbush[float32]
	size int
}

// BuildSpatialIndex bulk-loads a spatial index over p's segments. nodeSize
// controls the R-tree's fanout; values <2 fall back to flatbush's default
// of 16. Each segment's box is the cheap FastApproxAABB rather than the
// tight AABB — a looser box is acceptable because every consumer (offset
// self-intersection discovery, combine crossing discovery) re-verifies
// candidates with exact segment-segment intersection.
func BuildSpatialIndex(p Polyline, nodeSize int) SpatialIndex {
	fb := flatbush.NewFlatbush[float32]()
	if nodeSize >= 2 {
		fb.NodeSize = nodeSize
	}
	n := p.NumSegments()
	fb.Reserve(n)
	for i := 0; i < n; i++ {
		box := p.segmentAt(i).FastApproxAABB(DefaultEpsilon)
		fb.Add(float32(box.XMin), float32(box.YMin), float32(box.XMax), float32(box.YMax))
	}
	fb.Finish()
	return SpatialIndex{fb: fb, size: n}
}

// Len returns the number of segments indexed.
func (si SpatialIndex) Len() int { return si.size }

// Query returns the indices of every segment whose (approximate) bounding
// box overlaps the given box.
func (si SpatialIndex) Query(box AABB) []int {
	if si.fb == nil {
		return nil
	}
	return si.fb.Search(float32(box.XMin), float32(box.YMin), float32(box.XMax), float32(box.YMax))
}

// QueryFast is Query, but appends results onto (and reuses the backing
// array of) a caller-provided slice, avoiding an allocation per query when
// a caller is looping.
func (si SpatialIndex) QueryFast(box AABB, results []int) []int {
	if si.fb == nil {
		return results
	}
	return si.fb.SearchFast(float32(box.XMin), float32(box.YMin), float32(box.XMax), float32(box.YMax), results)
}

// VisitQuery calls visit for every segment index whose box overlaps box,
// stopping early if visit returns false, for callers that want to
// short-circuit once a disqualifying match is found.
func (si SpatialIndex) VisitQuery(box AABB, visit func(segIndex int) bool) {
	if si.fb == nil {
		return
	}
	var buf [32]int
	results := si.fb.SearchFast(float32(box.XMin), float32(box.YMin), float32(box.XMax), float32(box.YMax), buf[:0])
	for _, idx := range results {
		if !visit(idx) {
			return
		}
	}
}
