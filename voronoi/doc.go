// Package voronoi models the input boundary of the skeleton pipeline: an
// already-built, fully annotated planar Voronoi diagram together with the
// ordered boundary segments that generated it.
//
// Overview:
//
//   - This package does NOT compute Voronoi diagrams. Construction and
//     inside/outside annotation belong to an upstream geometry library; here
//     we model the contract its output must satisfy so the skeleton builder
//     can consume it, and provide the assembly helpers adapters and tests
//     need (NewDiagram, AddVertex, AddCell, AddEdge).
//   - Edges come in twin half-edge pairs, each half carrying its own adjacent
//     Cell and its own EdgeCategory, mirroring the usual half-edge diagram
//     representation.
//   - Vertices carry a VertexCategory: Inside, Outside, OnContour, or
//     Unknown. A diagram handed to the skeleton builder must not expose
//     Unknown on any retained edge; that is a contract violation surfaced by
//     the builder, not repaired here.
//   - Segment is one boundary line segment of the island contour. Cells
//     reference their generating segment by index (Cell.Source), which is how
//     a vertex obtains its distance to the island boundary.
//
// Lifetime:
//
//	Vertices, Edges, and Cells are owned by their Diagram and must outlive
//	any skeleton graph built from it; skeleton nodes and neighbors keep
//	non-owning references into the diagram.
//
// See also:
//
//   - skeleton.Build: converts an annotated Diagram into the island skeleton.
package voronoi
