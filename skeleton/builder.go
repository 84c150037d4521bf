package skeleton

import (
	"github.com/katalvlaran/voroskel/voronoi"
)

// Build converts an annotated Voronoi diagram plus its generating boundary
// segments into the island skeleton.
//
// Contract (see doc.go):
//
//  1. Each undirected diagram edge is processed from its lower-indexed half
//     only, so no edge is inserted twice.
//  2. Secondary and unbounded edges are discarded, as are edges where
//     neither half points inside the island.
//  3. Edges with an Outside endpoint are discarded.
//  4. A retained edge with an Unknown endpoint aborts the build with
//     ErrUnannotatedInput; a partially classified diagram must not yield a
//     partially correct skeleton.
//  5. Both endpoint nodes of a retained edge are created on first touch,
//     computing their boundary distance from the cell of the retaining
//     half-edge (first edge wins; arbitrary among candidate cells).
//  6. A symmetric Neighbor pair is appended to both endpoint nodes.
//
// Complexity: O(E + V) time, O(V + E) space.
func Build(d *voronoi.Diagram, segments []voronoi.Segment) (*Graph, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}

	g := NewGraph()
	for _, edge := range d.Edges() {
		if edge.IsSecondary() || edge.IsInfinite() ||
			// Skip the twin of an already processed half.
			edge.Index() > edge.Twin().Index() ||
			// Keep only edges with at least one half pointing inside.
			(edge.Category != voronoi.EdgePointsInside &&
				edge.Twin().Category != voronoi.EdgePointsInside) {
			continue
		}

		v0, v1 := edge.Vertex0(), edge.Vertex1()
		if v0.Category == voronoi.VertexOutside || v1.Category == voronoi.VertexOutside {
			continue
		}
		if v0.Category == voronoi.VertexUnknown || v1.Category == voronoi.VertexUnknown {
			return nil, ErrUnannotatedInput
		}

		length := CurvedEdgeLength
		if edge.IsLinear() {
			length = v0.Point.DistanceFrom(v1.Point)
		}

		n0, err := g.node(v0, edge, segments)
		if err != nil {
			return nil, err
		}
		n1, err := g.node(v1, edge, segments)
		if err != nil {
			return nil, err
		}

		// Symmetric neighbor pair; each half-edge is oriented away from its
		// owning node.
		n0.Neighbors = append(n0.Neighbors, Neighbor{Node: n1, Length: length, Edge: edge})
		n1.Neighbors = append(n1.Neighbors, Neighbor{Node: n0, Length: length, Edge: edge.Twin()})
	}

	return g, nil
}

// node returns the Node for vertex v, creating it on first touch. Creation
// computes the boundary distance from the segment generating the cell of
// the touching half-edge; which adjacent cell supplies the segment is
// arbitrary among equally valid candidates.
func (g *Graph) node(v *voronoi.Vertex, edge *voronoi.Edge, segments []voronoi.Segment) (*Node, error) {
	if n, ok := g.nodes[v]; ok {
		return n, nil
	}

	source := edge.Cell().Source
	if source < 0 || source >= len(segments) {
		return nil, ErrSegmentIndex
	}

	n := &Node{
		Vertex:           v,
		BoundaryDistance: segments[source].DistanceTo(v.Point),
	}
	g.nodes[v] = n
	g.order = append(g.order, n)

	return n, nil
}
