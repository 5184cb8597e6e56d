// Package pline implements 2D computational geometry over polylines whose
// vertices carry a bulge: a scalar encoding the circular arc joining a
// vertex to the next one. A bulge of zero denotes a straight line segment;
// a non-zero bulge is tan(θ/4), where θ is the signed included arc angle
// (positive meaning counter-clockwise).
//
// # Polylines and segments
//
// A [Polyline] is an ordered list of [Vertex] values plus a Closed flag. The
// segment between consecutive vertices v_i and v_i+1 is a line when
// v_i.Bulge is zero, and otherwise a circular arc whose center and radius
// are derived from the two endpoints and the bulge (see [ArcCenter] /
// [ArcRadius]). A closed polyline implicitly connects its last vertex back
// to its first using the last vertex's bulge.
//
// # Segment intersection kernel
//
// [IntersectSegments] dispatches line–line, line–arc, and arc–arc
// intersection to the appropriate specialized routine
// ([IntersectLineLine], [IntersectLineCircle], [IntersectCircleCircle]) and
// filters results against each segment's extent (for lines) or sweep (for
// arcs).
//
// # Spatial index
//
// [BuildSpatialIndex] builds a static, immutable packed Hilbert R-tree over
// a polyline's segment bounding boxes, backed by
// [github.com/bmharper/flatbush-go]. [SpatialIndex.Query] and
// [SpatialIndex.QueryFast] return the indices of segments whose boxes
// overlap a query box.
//
// # Primitive queries
//
// [Polyline.Extents], [Polyline.Area], [Polyline.PathLength],
// [Polyline.WindingNumber], and [Polyline.ClosestPoint] compute the core
// geometric properties of a polyline.
//
// # Parallel offset and Boolean combine
//
// [ParallelOffset] inflates or deflates a polyline by a signed distance,
// healing the self-intersections that raw per-segment offsetting produces.
// [CombinePolylines] computes the union, intersection, difference, or
// symmetric difference of two closed polylines. Both are built on top of
// the intersection kernel, the spatial index, and the primitive queries.
//
// # Determinism and concurrency
//
// Every operation in this package is a synchronous, single-threaded,
// side-effect-free function of its inputs and a fuzzy-equality tolerance
// ([DefaultEpsilon] unless overridden). There is no shared mutable state;
// two identical calls with identical inputs produce bit-identical outputs.
package pline
