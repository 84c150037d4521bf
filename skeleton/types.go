// Island skeleton graph types and sentinel errors. See doc.go for the
// package overview.

package skeleton

import (
	"errors"

	"github.com/katalvlaran/voroskel/voronoi"
)

// Sentinel errors for skeleton construction and lookups.
var (
	// ErrNilDiagram indicates Build received a nil diagram.
	ErrNilDiagram = errors.New("skeleton: diagram is nil")

	// ErrUnannotatedInput indicates a retained edge has an endpoint whose
	// vertex category is Unknown; the upstream annotation step did not fully
	// classify the diagram and no skeleton can be trusted.
	ErrUnannotatedInput = errors.New("skeleton: diagram vertex category is unknown")

	// ErrSegmentIndex indicates a cell references a boundary segment index
	// outside the provided segment list.
	ErrSegmentIndex = errors.New("skeleton: cell source index outside boundary segments")

	// ErrNoContourNode indicates no skeleton node lies on the island contour,
	// so the longest-path search has no valid start.
	ErrNoContourNode = errors.New("skeleton: no node on island contour")
)

// CurvedEdgeLength is the placeholder length assigned to curved (parabolic)
// diagram edges. True parabolic arc length is intentionally not computed;
// downstream thresholds are calibrated against this constant.
const CurvedEdgeLength = 1.0

// Neighbor is one skeleton edge as seen from its owning Node: a non-owning
// reference to the node on the other end, the edge length, and the
// underlying diagram half-edge oriented away from the owner.
type Neighbor struct {
	// Node is the neighboring skeleton node. Non-owning; owned by the Graph.
	Node *Node

	// Length is the edge length (Euclidean, or CurvedEdgeLength for curved
	// edges). Equal in both directions.
	Length float64

	// Edge is the diagram half-edge whose Vertex0 is the owning node.
	// Non-owning; owned by the diagram.
	Edge *voronoi.Edge
}

// Node is one Voronoi vertex inside the island. Nodes are owned exclusively
// by their Graph and never move or die before it.
type Node struct {
	// Vertex is the diagram vertex this node represents.
	Vertex *voronoi.Vertex

	// BoundaryDistance is the distance from the vertex to the island
	// boundary, computed once on first touch from the boundary segment of
	// the cell adjacent to the touching edge.
	BoundaryDistance float64

	// Neighbors are the skeleton edges incident to this node, in the order
	// the builder discovered them.
	Neighbors []Neighbor
}

// Degree returns the number of incident skeleton edges.
func (n *Node) Degree() int { return len(n.Neighbors) }

// NeighborTo returns the Neighbor record leading from n to the given node,
// or nil when the two nodes are not adjacent.
func (n *Node) NeighborTo(to *Node) *Neighbor {
	for i := range n.Neighbors {
		if n.Neighbors[i].Node == to {
			return &n.Neighbors[i]
		}
	}

	return nil
}

// Graph is the island skeleton: a read-only (after Build) mapping from
// diagram vertex identity to Node. It is the sole owner of all Nodes.
type Graph struct {
	nodes map[*voronoi.Vertex]*Node
	order []*Node // insertion order, for deterministic iteration
}

// NewGraph creates an empty skeleton graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[*voronoi.Vertex]*Node)}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// NodeOf returns the node representing the given diagram vertex, or nil.
func (g *Graph) NodeOf(v *voronoi.Vertex) *Node { return g.nodes[v] }

// Nodes returns all nodes in the order the builder created them.
func (g *Graph) Nodes() []*Node { return g.order }

// ContourNode returns the first node (in insertion order) whose vertex lies
// on the island's outer contour. Every island is expected to touch its own
// contour; ErrNoContourNode signals inconsistent input, not an empty island.
func (g *Graph) ContourNode() (*Node, error) {
	for _, n := range g.order {
		if n.Vertex.Category == voronoi.VertexOnContour {
			return n, nil
		}
	}

	return nil, ErrNoContourNode
}
