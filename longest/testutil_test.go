package longest_test

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voroskel/skeleton"
	"github.com/katalvlaran/voroskel/voronoi"
)

// island builds a skeleton from test coordinates and undirected edges and
// returns the nodes indexed like points. Vertices listed in contour are
// annotated as contour vertices; everything else is inside. Edge lengths
// are the Euclidean distances between the endpoints, so tests pick
// coordinates that give integer lengths.
func island(t *testing.T, points []geom.Coord, contour []int, edges [][2]int) []*skeleton.Node {
	t.Helper()

	d := voronoi.NewDiagram()
	cell := d.AddCell(0)

	onContour := make(map[int]bool, len(contour))
	for _, i := range contour {
		onContour[i] = true
	}

	verts := make([]*voronoi.Vertex, len(points))
	for i, p := range points {
		cat := voronoi.VertexInside
		if onContour[i] {
			cat = voronoi.VertexOnContour
		}
		verts[i] = d.AddVertex(p, cat)
	}
	for _, e := range edges {
		d.AddEdge(verts[e[0]], verts[e[1]], cell, cell)
	}

	// The boundary sits far below every test vertex; boundary distances are
	// irrelevant to path-search tests.
	segments := []voronoi.Segment{
		{A: geom.Coord{X: -1000, Y: -1000}, B: geom.Coord{X: 1000, Y: -1000}},
	}

	g, err := skeleton.Build(d, segments)
	require.NoError(t, err)

	nodes := make([]*skeleton.Node, len(points))
	for i, v := range verts {
		nodes[i] = g.NodeOf(v)
	}

	return nodes
}

// bruteforceLongest enumerates every simple path over the component of the
// given nodes and returns the maximum length. Exponential; test graphs stay
// tiny.
func bruteforceLongest(nodes []*skeleton.Node) float64 {
	best := 0.0
	visited := make(map[*skeleton.Node]bool)

	var walk func(n *skeleton.Node, length float64)
	walk = func(n *skeleton.Node, length float64) {
		if length > best {
			best = length
		}
		for _, nb := range n.Neighbors {
			if visited[nb.Node] {
				continue
			}
			visited[nb.Node] = true
			walk(nb.Node, length+nb.Length)
			delete(visited, nb.Node)
		}
	}

	for _, n := range nodes {
		if n == nil {
			continue
		}
		visited[n] = true
		walk(n, 0)
		delete(visited, n)
	}

	return best
}
