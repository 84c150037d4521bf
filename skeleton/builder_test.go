package skeleton_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voroskel/skeleton"
	"github.com/katalvlaran/voroskel/voronoi"
)

// farSegments is a boundary far from every test vertex so boundary
// distances never interfere with the structural assertions.
var farSegments = []voronoi.Segment{
	{A: geom.Coord{X: -1000, Y: -1000}, B: geom.Coord{X: 1000, Y: -1000}},
}

// TestBuild_NilDiagram verifies the nil-input sentinel.
func TestBuild_NilDiagram(t *testing.T) {
	_, err := skeleton.Build(nil, farSegments)
	if !errors.Is(err, skeleton.ErrNilDiagram) {
		t.Fatalf("Build(nil) error = %v; want ErrNilDiagram", err)
	}
}

// TestBuild_SymmetricNeighbors verifies that every inserted edge yields a
// Neighbor record in both directions with identical length.
func TestBuild_SymmetricNeighbors(t *testing.T) {
	d := voronoi.NewDiagram()
	cell := d.AddCell(0)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexOnContour)
	b := d.AddVertex(geom.Coord{X: 3, Y: 0}, voronoi.VertexInside)
	c := d.AddVertex(geom.Coord{X: 3, Y: 4}, voronoi.VertexInside)
	d.AddEdge(a, b, cell, cell)
	d.AddEdge(b, c, cell, cell)

	g, err := skeleton.Build(d, farSegments)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	for _, n := range g.Nodes() {
		for _, nb := range n.Neighbors {
			back := nb.Node.NeighborTo(n)
			require.NotNil(t, back, "missing reverse neighbor")
			require.Equal(t, nb.Length, back.Length, "asymmetric edge length")
		}
	}

	// Euclidean lengths: a-b = 3, b-c = 4.
	require.InDelta(t, 3.0, g.NodeOf(a).NeighborTo(g.NodeOf(b)).Length, 1e-9)
	require.InDelta(t, 4.0, g.NodeOf(b).NeighborTo(g.NodeOf(c)).Length, 1e-9)
}

// TestBuild_DiscardRules verifies that secondary, unbounded, outside, and
// not-inside edges never reach the skeleton, and that each undirected edge
// is inserted exactly once.
func TestBuild_DiscardRules(t *testing.T) {
	d := voronoi.NewDiagram()
	cell := d.AddCell(0)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexOnContour)
	b := d.AddVertex(geom.Coord{X: 1, Y: 0}, voronoi.VertexInside)
	out := d.AddVertex(geom.Coord{X: 9, Y: 9}, voronoi.VertexOutside)

	// Retained.
	d.AddEdge(a, b, cell, cell)
	// Secondary: discarded.
	d.AddEdge(a, b, cell, cell, voronoi.WithSecondary())
	// Unbounded: discarded.
	d.AddEdge(a, nil, cell, cell)
	// Neither half points inside: discarded.
	d.AddEdge(a, b, cell, cell,
		voronoi.WithCategories(voronoi.EdgePointsOutside, voronoi.EdgePointsToContour))
	// Outside endpoint: discarded.
	d.AddEdge(b, out, cell, cell)

	g, err := skeleton.Build(d, farSegments)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	require.Nil(t, g.NodeOf(out))
	require.Equal(t, 1, g.NodeOf(a).Degree(), "undirected edge must be inserted once")
	require.Equal(t, 1, g.NodeOf(b).Degree())
}

// TestBuild_UnknownVertex verifies that a retained edge with an Unknown
// endpoint aborts the build, while Unknown endpoints on discarded edges do
// not (the discard filters run first, as in the upstream annotation model).
func TestBuild_UnknownVertex(t *testing.T) {
	t.Run("RetainedEdgeFails", func(t *testing.T) {
		d := voronoi.NewDiagram()
		cell := d.AddCell(0)
		a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexInside)
		u := d.AddVertex(geom.Coord{X: 1, Y: 0}, voronoi.VertexUnknown)
		d.AddEdge(a, u, cell, cell)

		g, err := skeleton.Build(d, farSegments)
		if !errors.Is(err, skeleton.ErrUnannotatedInput) {
			t.Fatalf("Build error = %v; want ErrUnannotatedInput", err)
		}
		if g != nil {
			t.Fatalf("Build must not return a partial skeleton, got %d nodes", g.Len())
		}
	})

	t.Run("DiscardedEdgeTolerated", func(t *testing.T) {
		d := voronoi.NewDiagram()
		cell := d.AddCell(0)
		u := d.AddVertex(geom.Coord{X: 1, Y: 0}, voronoi.VertexUnknown)
		out := d.AddVertex(geom.Coord{X: 9, Y: 9}, voronoi.VertexOutside)
		d.AddEdge(u, out, cell, cell)

		g, err := skeleton.Build(d, farSegments)
		require.NoError(t, err)
		require.Equal(t, 0, g.Len())
	})
}

// TestBuild_CurvedEdgePlaceholder verifies curved edges get the placeholder
// length instead of a Euclidean one.
func TestBuild_CurvedEdgePlaceholder(t *testing.T) {
	d := voronoi.NewDiagram()
	cell := d.AddCell(0)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexInside)
	b := d.AddVertex(geom.Coord{X: 123, Y: 45}, voronoi.VertexInside)
	d.AddEdge(a, b, cell, cell, voronoi.WithCurved())

	g, err := skeleton.Build(d, farSegments)
	require.NoError(t, err)
	require.Equal(t, skeleton.CurvedEdgeLength, g.NodeOf(a).Neighbors[0].Length)
}

// TestBuild_BoundaryDistance verifies the first-touch boundary distance
// comes from the segment of the touching edge's cell.
func TestBuild_BoundaryDistance(t *testing.T) {
	segments := []voronoi.Segment{
		{A: geom.Coord{X: -10, Y: -2}, B: geom.Coord{X: 10, Y: -2}},
		{A: geom.Coord{X: -10, Y: 7}, B: geom.Coord{X: 10, Y: 7}},
	}

	d := voronoi.NewDiagram()
	below := d.AddCell(0)
	above := d.AddCell(1)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexInside)
	b := d.AddVertex(geom.Coord{X: 0, Y: 3}, voronoi.VertexInside)
	// Both endpoints compute their distance from the cell of the retaining
	// half-edge (first edge wins).
	d.AddEdge(a, b, below, above)

	g, err := skeleton.Build(d, segments)
	require.NoError(t, err)
	require.InDelta(t, 2.0, g.NodeOf(a).BoundaryDistance, 1e-9)
	require.InDelta(t, 5.0, g.NodeOf(b).BoundaryDistance, 1e-9)
}

// TestBuild_SegmentIndex verifies out-of-range cell sources are rejected.
func TestBuild_SegmentIndex(t *testing.T) {
	d := voronoi.NewDiagram()
	cell := d.AddCell(7)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexInside)
	b := d.AddVertex(geom.Coord{X: 1, Y: 0}, voronoi.VertexInside)
	d.AddEdge(a, b, cell, cell)

	_, err := skeleton.Build(d, farSegments)
	if !errors.Is(err, skeleton.ErrSegmentIndex) {
		t.Fatalf("Build error = %v; want ErrSegmentIndex", err)
	}
}

// TestContourNode verifies start lookup and its failure mode.
func TestContourNode(t *testing.T) {
	d := voronoi.NewDiagram()
	cell := d.AddCell(0)
	a := d.AddVertex(geom.Coord{X: 0, Y: 0}, voronoi.VertexInside)
	b := d.AddVertex(geom.Coord{X: 1, Y: 0}, voronoi.VertexOnContour)
	c := d.AddVertex(geom.Coord{X: 2, Y: 0}, voronoi.VertexOnContour)
	d.AddEdge(a, b, cell, cell)
	d.AddEdge(b, c, cell, cell)

	g, err := skeleton.Build(d, farSegments)
	require.NoError(t, err)

	start, err := g.ContourNode()
	require.NoError(t, err)
	require.Same(t, g.NodeOf(b), start, "first contour node in insertion order")

	empty := skeleton.NewGraph()
	_, err = empty.ContourNode()
	if !errors.Is(err, skeleton.ErrNoContourNode) {
		t.Fatalf("ContourNode error = %v; want ErrNoContourNode", err)
	}
}

// TestBuild_BoundaryDistanceIsEuclidean pins the distance metric.
func TestBuild_BoundaryDistanceIsEuclidean(t *testing.T) {
	segments := []voronoi.Segment{
		{A: geom.Coord{X: 0, Y: 0}, B: geom.Coord{X: 4, Y: 0}},
	}

	d := voronoi.NewDiagram()
	cell := d.AddCell(0)
	// Past the segment end: distance is to the endpoint, not the line.
	a := d.AddVertex(geom.Coord{X: 7, Y: 4}, voronoi.VertexInside)
	b := d.AddVertex(geom.Coord{X: 8, Y: 4}, voronoi.VertexInside)
	d.AddEdge(a, b, cell, cell)

	g, err := skeleton.Build(d, segments)
	require.NoError(t, err)
	require.InDelta(t, math.Hypot(3, 4), g.NodeOf(a).BoundaryDistance, 1e-9)
}
