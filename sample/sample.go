package sample

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/voroskel/longest"
	"github.com/katalvlaran/voroskel/skeleton"
	"github.com/katalvlaran/voroskel/voronoi"
)

// interpolation tolerance at the edge endpoints
const ratioEps = 1e-9

// Sample computes support points for one island skeleton.
//
// Steps:
//
//  1. Locate the start node on the island's outer contour; its absence is
//     an input consistency failure (skeleton.ErrNoContourNode).
//  2. Run the longest-path search and reshape.
//  3. Below the single-point threshold, return the path's arc-length
//     midpoint; otherwise return the start leaf's inset point.
//
// The returned ExPath is the raw diagnostic structure backing the points;
// callers that do not need it may ignore it.
func Sample(g *skeleton.Graph, opts ...Option) ([]geom.Coord, *longest.ExPath, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.StartDistance <= 0 {
		return nil, nil, ErrBadStartDistance
	}

	start, err := g.ContourNode()
	if err != nil {
		return nil, nil, fmt.Errorf("sample: locate start: %w", err)
	}

	ex, err := longest.LongestPath(start)
	if err != nil {
		return nil, nil, fmt.Errorf("sample: longest path: %w", err)
	}

	if ex.Length < cfg.MaxLengthForOnePoint {
		center, cerr := CenterOfPath(ex.Nodes, ex.Length)
		if cerr != nil {
			return nil, ex, fmt.Errorf("sample: centroid: %w", cerr)
		}

		return []geom.Coord{center}, ex, nil
	}

	point, err := OffsetPoint(start, cfg.StartDistance)
	if err != nil {
		return nil, ex, fmt.Errorf("sample: start offset: %w", err)
	}

	return []geom.Coord{point}, ex, nil
}

// CenterOfPath returns the midpoint of a node path by arc length: it walks
// the path accumulating per-edge length until half the total is reached,
// then interpolates linearly within that edge. A single-node path yields
// the node's position.
func CenterOfPath(nodes []*skeleton.Node, length float64) (geom.Coord, error) {
	if len(nodes) == 0 {
		return geom.Coord{}, longest.ErrEmptyPath
	}
	if len(nodes) == 1 {
		return nodes[0].Vertex.Point, nil
	}

	half := length / 2
	var walked float64
	for i := 1; i < len(nodes); i++ {
		nb := nodes[i-1].NeighborTo(nodes[i])
		if nb == nil {
			return geom.Coord{}, longest.ErrBrokenPath
		}
		walked += nb.Length
		if walked >= half {
			ratio := 1 - (walked-half)/nb.Length

			return edgePoint(nb.Edge, ratio), nil
		}
	}

	// The half length must land inside the path; reaching the end means the
	// recorded length disagrees with the edges.
	return geom.Coord{}, ErrCenterOutOfPath
}

// edgePoint interpolates along a half-edge, ratio measured from its origin
// vertex. Curved edges fall back to the origin vertex, consistent with the
// builder's placeholder length for curved edges.
func edgePoint(e *voronoi.Edge, ratio float64) geom.Coord {
	v0 := e.Vertex0().Point
	if ratio <= ratioEps {
		return v0
	}
	v1 := e.Vertex1().Point
	if ratio >= 1-ratioEps {
		return v1
	}
	if e.IsCurved() {
		return v0
	}

	return v0.Plus(v1.Minus(v0).Times(ratio))
}

// OffsetPoint returns the first sample point for a long island: the leaf
// node's position inset toward its only neighbor by a distance of
// edge_length / startDistance. Calling it for a node that is not a leaf is
// a contract violation (ErrNotLeaf).
func OffsetPoint(n *skeleton.Node, startDistance float64) (geom.Coord, error) {
	if startDistance <= 0 {
		return geom.Coord{}, ErrBadStartDistance
	}
	if n == nil || n.Degree() != 1 {
		return geom.Coord{}, ErrNotLeaf
	}

	nb := n.Neighbors[0]
	from := n.Vertex.Point
	dir := nb.Node.Vertex.Point.Minus(from).Unit()

	return from.Plus(dir.Times(nb.Length / startDistance)), nil
}
