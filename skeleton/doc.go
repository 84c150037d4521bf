// Package skeleton converts an annotated Voronoi diagram into the island
// skeleton: an undirected, weighted, in-memory graph over the diagram
// vertices that lie inside (or on the contour of) the island.
//
// Overview:
//
//   - Build iterates every diagram edge exactly once (one half of each twin
//     pair), discards secondary, unbounded and outside edges, and keeps an
//     edge only when at least one of its halves points inside the island.
//   - Each retained endpoint vertex becomes a Node, created on first touch.
//     On creation the node computes its distance to the island boundary from
//     the boundary segment of the cell adjacent to the touching half-edge.
//     Which adjacent cell supplies the segment is arbitrary (first edge
//     wins); when candidate cells disagree the stored distance depends on
//     edge enumeration order.
//   - Straight edges get their exact Euclidean length; curved (parabolic)
//     edges get the placeholder CurvedEdgeLength instead of a true arc
//     length. This is a documented compatibility limitation, not a bug.
//   - Neighbor records are symmetric: an edge contributes one Neighbor to
//     each endpoint node, both carrying the same length.
//
// Ownership:
//
//	The Graph exclusively owns its Nodes; node pointers stay valid for the
//	Graph's lifetime and are never relocated. Neighbors hold non-owning
//	references to sibling Nodes and to diagram edges, so the Diagram must
//	outlive the Graph.
//
// Errors:
//
//   - ErrNilDiagram        - Build received a nil diagram.
//   - ErrUnannotatedInput  - a retained edge has an Unknown-category endpoint;
//     the diagram was not fully annotated upstream and no usable skeleton
//     exists. Callers must treat this as "input not usable", never as
//     "island has no skeleton".
//   - ErrSegmentIndex      - a cell references a boundary segment outside the
//     provided segment list.
//   - ErrNoContourNode     - ContourNode found no node on the island contour;
//     every island touches its own contour by construction, so this is an
//     input consistency failure.
//
// Complexity:
//
//   - Build: O(E) over diagram half-edges, O(1) amortized per node lookup.
//   - ContourNode: O(V) over nodes in insertion order.
package skeleton
