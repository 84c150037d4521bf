// Package sample turns the longest skeleton path of an island into concrete
// support-point positions.
//
// Overview:
//
//   - Sample locates the search start (a node on the island's outer
//     contour), runs the longest-path search and reshape, and converts the
//     result into points:
//   - short islands (total path length below MaxLengthForOnePoint)
//     collapse to a single point, the path's midpoint by arc length;
//   - long islands start with one point inset from the start leaf along
//     its single incident edge by edge_length / StartDistance.
//   - The returned sequence is finite and non-restartable; deriving further
//     points along long paths belongs to downstream consumers, which also
//     receive the full ExPath for diagnostics.
//   - Midpoint interpolation is linear within the containing edge; curved
//     edges interpolate to the edge's source vertex, consistent with the
//     skeleton builder's placeholder length for curved edges.
//
// Options:
//
//   - WithMaxLengthForOnePoint(v) - below this total path length the island
//     gets exactly one centroid point. Default 0 (never collapse).
//   - WithStartDistance(v)        - divisor of the leaf edge length for the
//     first point's inset. Must be positive; default 2 (half the edge).
//
// Errors:
//
//   - ErrNilGraph          - Sample received a nil skeleton.
//   - ErrBadStartDistance  - StartDistance is zero or negative.
//   - ErrNotLeaf           - OffsetPoint was called for a node that does not
//     have exactly one neighbor; a programmer error, not a runtime
//     condition to recover from.
//   - ErrCenterOutOfPath   - the half length lies beyond the path's end;
//     the recorded path length disagrees with its edges, an internal
//     invariant failure.
//   - skeleton.ErrNoContourNode, longest.ErrEmptyPath propagate unchanged.
package sample
