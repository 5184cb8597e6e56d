package pline

import (
	"fmt"
	"iter"
)

// Polyline is an ordered sequence of vertices, optionally closed. It
// exclusively owns its vertex slice; callers must not retain aliases into
// it across mutating operations.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

// New returns a polyline over the given vertices.
func New(closed bool, vertices ...Vertex) Polyline {
	return Polyline{Vertices: append([]Vertex(nil), vertices...), Closed: closed}
}

// InputError reports a rejected input: fewer than 2 vertices, non-finite
// coordinates, or (for CombinePolylines) a non-closed polyline where a
// closed one is required.
type InputError struct {
	Op     string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("pline: %s: %s", e.Op, e.Reason)
}

// validate checks the invariants required at the boundary of non-trivial
// operations: at least 2 vertices, and every vertex finite.
func (p Polyline) validate(op string) error {
	if len(p.Vertices) < 2 {
		return &InputError{Op: op, Reason: "polyline has fewer than 2 vertices"}
	}
	for i, v := range p.Vertices {
		if !v.IsFinite() {
			return &InputError{Op: op, Reason: fmt.Sprintf("vertex %d has a non-finite coordinate or bulge", i)}
		}
	}
	return nil
}

// NumSegments returns the number of segments in the polyline: len(Vertices)
// for a closed polyline (the last vertex connects back to the first), or
// len(Vertices)-1 for an open one. Returns 0 for polylines with fewer than 2
// vertices.
func (p Polyline) NumSegments() int {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// segmentAt returns the segment starting at vertex i (0-indexed), wrapping
// around to vertex 0 when i is the last vertex of a closed polyline.
func (p Polyline) segmentAt(i int) Segment {
	n := len(p.Vertices)
	j := i + 1
	if j == n {
		j = 0
	}
	return Segment{V1: p.Vertices[i], V2: p.Vertices[j], Index: i}
}

// Segments returns an iterator over the polyline's segments, in order.
func (p Polyline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := p.NumSegments()
		for i := 0; i < n; i++ {
			if !yield(p.segmentAt(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p; the returned polyline's vertex slice is
// independent of p's.
func (p Polyline) Clone() Polyline {
	return Polyline{Vertices: append([]Vertex(nil), p.Vertices...), Closed: p.Closed}
}

// Scale returns a new polyline with every vertex position scaled by factor
// around the origin. Bulges (being scale-invariant angle encodings) are
// unchanged.
func (p Polyline) Scale(factor float64) Polyline {
	out := p.Clone()
	for i := range out.Vertices {
		out.Vertices[i].X *= factor
		out.Vertices[i].Y *= factor
	}
	return out
}

// Translate returns a new polyline with every vertex shifted by offset.
func (p Polyline) Translate(offset Vec2) Polyline {
	out := p.Clone()
	for i := range out.Vertices {
		out.Vertices[i].X += offset.X
		out.Vertices[i].Y += offset.Y
	}
	return out
}

// InvertDirection returns a new polyline that traverses the same shape in
// the opposite direction. Reversing traversal requires shifting which
// vertex owns which bulge (and negating it), since bulge is defined as
// belonging to the segment leaving a vertex.
func (p Polyline) InvertDirection() Polyline {
	n := len(p.Vertices)
	if n == 0 {
		return p.Clone()
	}
	out := Polyline{Vertices: make([]Vertex, n), Closed: p.Closed}
	for k := 0; k < n; k++ {
		src := p.Vertices[n-1-k]
		// new[k]'s bulge describes the reversed segment new[k]->new[k+1],
		// which is the reverse traversal of the original segment
		// old[n-2-k]->old[n-1-k]; that original segment's bulge lived on
		// old[n-2-k] (mod n when closed, to capture the wraparound
		// segment), and reversing direction negates it.
		var bulge float64
		if p.Closed {
			idx := ((n-2-k)%n + n) % n
			bulge = -p.Vertices[idx].Bulge
		} else if k < n-1 {
			bulge = -p.Vertices[n-2-k].Bulge
		}
		out.Vertices[k] = Vertex{X: src.X, Y: src.Y, Bulge: bulge}
	}
	return out
}

// PruneSingularities returns a new polyline with consecutive duplicate
// vertices (within tolerance) removed; consecutive vertices must be
// distinct for the rest of this package's algorithms to behave. A
// collapsed vertex's bulge is dropped along with it. If the polyline
// degenerates to fewer than 2 distinct vertices, an empty polyline is
// returned.
func (p Polyline) PruneSingularities(tolerance float64) Polyline {
	n := len(p.Vertices)
	if n == 0 {
		return Polyline{Closed: p.Closed}
	}
	out := make([]Vertex, 0, n)
	out = append(out, p.Vertices[0])
	for i := 1; i < n; i++ {
		v := p.Vertices[i]
		last := out[len(out)-1]
		if v.Point().Distance(last.Point()) >= tolerance {
			out = append(out, v)
		}
	}
	if p.Closed && len(out) > 1 {
		if out[0].Point().Distance(out[len(out)-1].Point()) < tolerance {
			// Drop the closing duplicate along with its bulge (it
			// described the zero-length edge back to the first vertex);
			// the preceding vertex keeps its own bulge for what is now
			// the implicit closing edge.
			out = out[:len(out)-1]
		}
	}
	if len(out) < 2 {
		return Polyline{Closed: p.Closed}
	}
	return Polyline{Vertices: out, Closed: p.Closed}
}

// ConvertArcsToLines returns a new polyline where every arc segment has
// been replaced by one or more line segments (bulge 0), such that no
// replacement line deviates from the original arc by more than
// maxChordError. Line segments are passed through unchanged.
//
// Each arc's sweep is split into the fewest equal sub-arcs whose sagitta is
// within maxChordError, found by raising the sub-arc count one at a time
// (capped at 2^20+1 sub-arcs).
func (p Polyline) ConvertArcsToLines(maxChordError float64) Polyline {
	if maxChordError <= 0 {
		maxChordError = DefaultEpsilon
	}
	out := make([]Vertex, 0, len(p.Vertices))
	n := p.NumSegments()
	for i := 0; i < n; i++ {
		seg := p.segmentAt(i)
		if seg.IsLine(DefaultEpsilon) {
			out = append(out, seg.V1)
			continue
		}
		r := seg.Radius(DefaultEpsilon)
		sweep := seg.SweepAngle()
		steps := 1
		for sagitta(r, sweep/float64(steps)) > maxChordError {
			steps++
			if steps > 1<<20 {
				break
			}
		}
		for k := 0; k < steps; k++ {
			t := float64(k) / float64(steps)
			pt := seg.PointAt(t, DefaultEpsilon)
			out = append(out, Vertex{X: pt.X, Y: pt.Y, Bulge: 0})
		}
	}
	if !p.Closed && len(p.Vertices) > 0 {
		out = append(out, Vertex{X: p.Vertices[len(p.Vertices)-1].X, Y: p.Vertices[len(p.Vertices)-1].Y, Bulge: 0})
	}
	return Polyline{Vertices: out, Closed: p.Closed}
}

// DebugString formats p's vertex count and its extents/area/path-length
// tuple (size, area, pathLength, xMin, yMin, xMax, yMax) for use in test
// failure messages. It is not part of the operational API.
func (p Polyline) DebugString() string {
	ext := p.Extents()
	return fmt.Sprintf("(%d, %g, %g, %g, %g, %g, %g)",
		len(p.Vertices), p.Area(), p.PathLength(),
		ext.XMin, ext.YMin, ext.XMax, ext.YMax)
}
