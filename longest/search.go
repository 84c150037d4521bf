package longest

import (
	"github.com/katalvlaran/voroskel/skeleton"
	"github.com/katalvlaran/voroskel/voronoi"
)

// taskKind tags one unit of pending work on the explicit search stack.
type taskKind uint8

const (
	// taskVisit evaluates one neighbor edge: either enters a new node or
	// detects a circle.
	taskVisit taskKind = iota

	// taskLeave folds a fully explored node back into its parent.
	taskLeave
)

// task is one immutable unit of work. Visit tasks carry the node to enter,
// the node it was reached from, the connecting half-edge, and its length;
// leave tasks operate on the top frame.
type task struct {
	kind   taskKind
	node   *skeleton.Node
	from   *skeleton.Node
	edge   *voronoi.Edge
	length float64
}

// frame is the mutable per-node state while the node sits on the path.
type frame struct {
	node *skeleton.Node

	// edgeLength is the length of the edge from the parent node.
	edgeLength float64

	// distance is the walked distance from the search start to this node.
	distance float64

	// branches collects candidate continuations returned by children,
	// allocated on first use.
	branches *Branches
}

func (f *frame) push(p Path) {
	if f.branches == nil {
		f.branches = NewBranches()
	}
	f.branches.Push(p)
}

// searcher is the state of one Search invocation: the result under
// construction, the current path with O(1) membership lookup, the frame
// stack, circle bookkeeping, and the work stack.
type searcher struct {
	ex *ExPath

	path    []*skeleton.Node
	frames  []*frame
	pathIdx map[*skeleton.Node]int
	length  float64

	// membership lists, per node, the circles the node belongs to.
	membership map[*skeleton.Node][]int

	// finished marks circles whose entry node has been left; resolved marks
	// circles already linearized as part of a connected group.
	finished []bool
	resolved []bool

	// blocked holds half-edges consumed by circle detection so the pending
	// twin-direction task does not re-walk the cycle from the other side.
	blocked map[*voronoi.Edge]struct{}

	stack []task
}

// Search explores the skeleton from start and returns the raw extended
// path: one maximal-length walk plus every side branch and circle found on
// the way. The caller is expected to run Reshape afterwards (or use
// LongestPath, which does both).
//
// The start node must lie on the island's outer contour; establishing that
// precondition is the caller's job (see skeleton.Graph.ContourNode).
//
// The exploration is an explicit-stack depth-first walk. Every edge is
// traversed at most once per direction and circles are cut the moment they
// are detected, so the stack strictly shrinks once the graph is exhausted
// and the search always terminates.
func Search(start *skeleton.Node) (*ExPath, error) {
	if start == nil {
		return nil, ErrNilStart
	}

	s := &searcher{
		ex:         newExPath(),
		pathIdx:    make(map[*skeleton.Node]int),
		membership: make(map[*skeleton.Node][]int),
		blocked:    make(map[*voronoi.Edge]struct{}),
	}
	s.stack = append(s.stack, task{kind: taskVisit, node: start})

	for len(s.stack) > 0 {
		t := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		switch t.kind {
		case taskVisit:
			s.visit(t)
		case taskLeave:
			s.leave()
		}
	}

	return s.ex, nil
}

// LongestPath runs Search from start and reshapes the result; the returned
// ExPath carries the final longest path for the whole skeleton.
func LongestPath(start *skeleton.Node) (*ExPath, error) {
	ex, err := Search(start)
	if err != nil {
		return nil, err
	}
	if err = Reshape(ex); err != nil {
		return nil, err
	}

	return ex, nil
}

// visit processes one neighbor edge.
func (s *searcher) visit(t task) {
	// 1) Skip edges consumed by an earlier circle detection.
	if t.edge != nil {
		if _, ok := s.blocked[t.edge]; ok {
			return
		}
	}

	// 2) A node already on the current path closes a circle; the walk does
	//    not continue through this edge.
	if idx, on := s.pathIdx[t.node]; on {
		s.closeCircle(idx, t)

		return
	}

	// 3) Enter the node: extend the path, open a frame, and schedule the
	//    fold-back after all children.
	s.length += t.length
	f := &frame{node: t.node, edgeLength: t.length, distance: s.length}
	s.pathIdx[t.node] = len(s.path)
	s.path = append(s.path, t.node)
	s.frames = append(s.frames, f)
	s.stack = append(s.stack, task{kind: taskLeave})

	// 4) Schedule every neighbor except the arrival node, pushed in reverse
	//    so the first-listed neighbor is explored first.
	nbs := t.node.Neighbors
	for i := len(nbs) - 1; i >= 0; i-- {
		if nbs[i].Node == t.from {
			continue
		}
		s.stack = append(s.stack, task{
			kind:   taskVisit,
			node:   nbs[i].Node,
			from:   t.node,
			edge:   nbs[i].Edge,
			length: nbs[i].Length,
		})
	}
}

// closeCircle extracts the sub-path from the revisited node to the current
// path end as a new Circle, connects it to every circle it shares a node
// with, and consumes the closing edge in both directions.
//
// The recorded length is tentative: it still contains the walked distance
// from the search start to the circle entry, which leave subtracts once the
// traversal unwinds to the entry node.
func (s *searcher) closeCircle(idx int, t task) {
	nodes := make([]*skeleton.Node, len(s.path)-idx)
	copy(nodes, s.path[idx:])

	k := len(s.ex.Circles)
	s.ex.Circles = append(s.ex.Circles, Circle{Nodes: nodes, Length: s.length + t.length})
	s.finished = append(s.finished, false)
	s.resolved = append(s.resolved, false)

	for _, n := range nodes {
		for _, j := range s.membership[n] {
			s.ex.Connected.Connect(j, k)
		}
	}
	for _, n := range nodes {
		s.membership[n] = append(s.membership[n], k)
	}

	s.blocked[t.edge] = struct{}{}
	s.blocked[t.edge.Twin()] = struct{}{}
}

// leave folds the fully explored top node back into its parent:
//
//  1. Circles entered at this node get their true cyclic length and are
//     marked finished.
//  2. A connected circle group whose members are all finished is linearized
//     here; the winning linear path joins this node's candidate branches.
//  3. A node still sitting on an unresolved circle contributes nothing
//     upward; all its candidates become side branches for the resolver.
//  4. Otherwise the longest candidate continues the parent's path and the
//     rest stay behind as this node's side branches. At the search root the
//     longest candidate becomes the main path itself.
func (s *searcher) leave() {
	f := s.frames[len(s.frames)-1]
	n := f.node

	// 1) Correct tentative circle lengths at their entry node.
	for _, k := range s.membership[n] {
		if s.ex.Circles[k].Nodes[0] == n && !s.finished[k] {
			s.ex.Circles[k].Length -= f.distance
			s.finished[k] = true
		}
	}

	// 2) Linearize finished groups entered here.
	for _, k := range s.membership[n] {
		if s.ex.Circles[k].Nodes[0] != n || s.resolved[k] {
			continue
		}
		group := s.ex.Connected.groupOf(k)
		ready := true
		for _, j := range group {
			if !s.finished[j] {
				ready = false

				break
			}
		}
		if !ready {
			continue
		}
		p, ok := s.resolveGroup(n, k, group)
		for _, j := range group {
			s.resolved[j] = true
		}
		if ok {
			f.push(p)
		}
	}

	onUnresolved := false
	for _, k := range s.membership[n] {
		if !s.resolved[k] {
			onUnresolved = true

			break
		}
	}

	// Pop the frame.
	s.frames = s.frames[:len(s.frames)-1]
	s.path = s.path[:len(s.path)-1]
	delete(s.pathIdx, n)
	s.length -= f.edgeLength

	// 3) In-circle nodes defer all their branches to the resolver.
	if onUnresolved {
		s.spill(n, f)

		return
	}

	var cont Path
	if f.branches != nil {
		if top, ok := f.branches.Pop(); ok {
			cont = top
		}
	}

	// 4) Root: the main path starts here.
	if len(s.frames) == 0 {
		s.ex.Nodes = append([]*skeleton.Node{n}, cont.Nodes...)
		s.ex.Length = cont.Length
		s.spill(n, f)

		return
	}

	parent := s.frames[len(s.frames)-1]
	parent.push(Path{
		Nodes:  append([]*skeleton.Node{n}, cont.Nodes...),
		Length: f.edgeLength + cont.Length,
	})
	s.spill(n, f)
}

// spill moves every remaining candidate branch of f into the result's side
// branches under node n.
func (s *searcher) spill(n *skeleton.Node, f *frame) {
	if f.branches == nil {
		return
	}
	for {
		p, ok := f.branches.Pop()
		if !ok {
			return
		}
		s.ex.SideBranches.add(n, p)
	}
}
