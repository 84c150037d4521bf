package voronoi

import "github.com/jbeda/geom"

// VertexCategory classifies a diagram vertex relative to the island contour.
type VertexCategory uint8

const (
	// VertexUnknown marks a vertex the upstream annotation did not classify.
	// Retaining an edge with an Unknown endpoint is a contract violation.
	VertexUnknown VertexCategory = iota

	// VertexInside marks a vertex strictly inside the island.
	VertexInside

	// VertexOutside marks a vertex strictly outside the island.
	VertexOutside

	// VertexOnContour marks a vertex lying on the island's outer contour.
	// Such a vertex is the canonical start of the longest-path search.
	VertexOnContour
)

// EdgeCategory classifies one directed half-edge relative to the island.
// The categories mirror the upstream annotation: an undirected edge belongs
// to the skeleton when at least one of its two halves points inside.
type EdgeCategory uint8

const (
	// EdgeUnknown marks a half-edge the upstream annotation did not classify.
	EdgeUnknown EdgeCategory = iota

	// EdgePointsInside marks a half-edge directed into the island interior.
	EdgePointsInside

	// EdgePointsToContour marks a half-edge directed at the island contour.
	EdgePointsToContour

	// EdgePointsOutside marks a half-edge leaving the island.
	EdgePointsOutside
)

// Vertex is one Voronoi vertex with its annotated category.
// Vertices are owned by the Diagram; pointer identity is stable for the
// Diagram's lifetime and is used to key skeleton nodes.
type Vertex struct {
	// Point is the vertex position.
	Point geom.Coord

	// Category is the upstream inside/outside annotation.
	Category VertexCategory
}

// Cell is one Voronoi cell. Source indexes the boundary segment that
// generated the cell within the segment list passed alongside the Diagram.
type Cell struct {
	// Source is the index of the generating boundary segment.
	Source int
}

// Edge is one directed half-edge of the diagram. Its twin runs the opposite
// way between the same endpoints and carries the other adjacent cell.
type Edge struct {
	idx       int
	v0, v1    *Vertex
	twin      *Edge
	cell      *Cell
	secondary bool
	curved    bool

	// Category is the upstream annotation of this half.
	Category EdgeCategory
}

// Index returns the half-edge's position in the diagram edge list.
// Twins always occupy adjacent indices; processing only the lower-indexed
// half visits every undirected edge exactly once.
func (e *Edge) Index() int { return e.idx }

// Vertex0 returns the half-edge's origin vertex (nil when unbounded).
func (e *Edge) Vertex0() *Vertex { return e.v0 }

// Vertex1 returns the half-edge's destination vertex (nil when unbounded).
func (e *Edge) Vertex1() *Vertex { return e.v1 }

// Twin returns the opposite half of the same undirected edge.
func (e *Edge) Twin() *Edge { return e.twin }

// Cell returns the cell adjacent to this half.
func (e *Edge) Cell() *Cell { return e.cell }

// IsSecondary reports whether the edge is secondary (splits a cell in two
// around a degenerate input site); secondary edges never join the skeleton.
func (e *Edge) IsSecondary() bool { return e.secondary }

// IsFinite reports whether both endpoints exist.
func (e *Edge) IsFinite() bool { return e.v0 != nil && e.v1 != nil }

// IsInfinite reports whether the edge is unbounded on either end.
func (e *Edge) IsInfinite() bool { return !e.IsFinite() }

// IsLinear reports whether the edge is a straight segment.
func (e *Edge) IsLinear() bool { return !e.curved }

// IsCurved reports whether the edge is a parabolic arc.
func (e *Edge) IsCurved() bool { return e.curved }

// Diagram is an annotated planar Voronoi diagram: vertices, twin half-edge
// pairs, and cells. It owns all three; everything handed out is a stable
// non-owning pointer.
type Diagram struct {
	vertices []*Vertex
	edges    []*Edge
	cells    []*Cell
}

// NewDiagram creates an empty diagram.
func NewDiagram() *Diagram {
	return &Diagram{}
}

// AddVertex appends a vertex with the given position and annotation and
// returns its stable handle.
func (d *Diagram) AddVertex(p geom.Coord, cat VertexCategory) *Vertex {
	v := &Vertex{Point: p, Category: cat}
	d.vertices = append(d.vertices, v)

	return v
}

// AddCell appends a cell generated by boundary segment source.
func (d *Diagram) AddCell(source int) *Cell {
	c := &Cell{Source: source}
	d.cells = append(d.cells, c)

	return c
}

// EdgeOption configures one new half-edge pair.
type EdgeOption func(e, twin *Edge)

// WithCategories annotates the two halves of a new edge.
// cat applies to the v0→v1 half, twinCat to its twin.
func WithCategories(cat, twinCat EdgeCategory) EdgeOption {
	return func(e, twin *Edge) {
		e.Category = cat
		twin.Category = twinCat
	}
}

// WithCurved marks the new edge pair as a parabolic arc.
func WithCurved() EdgeOption {
	return func(e, twin *Edge) {
		e.curved = true
		twin.curved = true
	}
}

// WithSecondary marks the new edge pair as secondary.
func WithSecondary() EdgeOption {
	return func(e, twin *Edge) {
		e.secondary = true
		twin.secondary = true
	}
}

// AddEdge appends a twin half-edge pair v0→v1 / v1→v0 with the given
// adjacent cells and returns both halves. Either vertex may be nil to model
// an unbounded edge. Both halves default to EdgePointsInside, linear and
// primary; use options to override.
func (d *Diagram) AddEdge(v0, v1 *Vertex, cell, twinCell *Cell, opts ...EdgeOption) (*Edge, *Edge) {
	e := &Edge{idx: len(d.edges), v0: v0, v1: v1, cell: cell, Category: EdgePointsInside}
	t := &Edge{idx: len(d.edges) + 1, v0: v1, v1: v0, cell: twinCell, Category: EdgePointsInside}
	e.twin, t.twin = t, e
	d.edges = append(d.edges, e, t)

	for _, opt := range opts {
		opt(e, t)
	}

	return e, t
}

// Vertices returns the diagram vertices in insertion order.
func (d *Diagram) Vertices() []*Vertex { return d.vertices }

// Edges returns all half-edges in insertion order (twins adjacent).
func (d *Diagram) Edges() []*Edge { return d.edges }

// Cells returns the diagram cells in insertion order.
func (d *Diagram) Cells() []*Cell { return d.cells }
