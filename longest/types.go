// Search result types: Path, Circle, Branches, ConnectedCircles, and the
// aggregate ExPath. See doc.go for the package overview.

package longest

import (
	"errors"
	"sort"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/voroskel/skeleton"
)

// Sentinel errors for the longest-path search and reshape.
var (
	// ErrNilStart indicates Search received a nil start node.
	ErrNilStart = errors.New("longest: start node is nil")

	// ErrEmptyPath indicates a path with no nodes reached Reshape; the
	// search must always return a non-empty path, so this signals an
	// internal invariant failure.
	ErrEmptyPath = errors.New("longest: path is empty")

	// ErrBrokenPath indicates two consecutive path nodes are not neighbors.
	ErrBrokenPath = errors.New("longest: consecutive path nodes are not adjacent")
)

// Path is an ordered walk over skeleton nodes plus its cumulative length.
// Length always equals the sum of the neighbor lengths between consecutive
// nodes (within floating tolerance); PathLength verifies the invariant.
type Path struct {
	Nodes  []*skeleton.Node
	Length float64
}

// Circle is a cyclic sub-path: its node sequence returns to Nodes[0] via a
// graph edge. Length is tentative at detection (it still includes the walk
// from the search start to the circle entry) and becomes the true cyclic
// length when the traversal unwinds to the entry node.
type Circle struct {
	Nodes  []*skeleton.Node
	Length float64
}

// longestFirst orders side-branch Paths longest first, so the longest
// alternative at a node is retrievable in O(1). One of the two explicit
// comparators in this package; never reuse it for the circle expansion.
func longestFirst(a, b interface{}) int {
	pa, pb := a.(Path), b.(Path)
	switch {
	case pa.Length > pb.Length:
		return -1
	case pa.Length < pb.Length:
		return 1
	default:
		return 0
	}
}

// Branches is a max-priority collection of Paths hanging off one node,
// ordered by length.
type Branches struct {
	q *priorityqueue.Queue
}

// NewBranches creates an empty branch collection.
func NewBranches() *Branches {
	return &Branches{q: priorityqueue.NewWith(longestFirst)}
}

// Push adds a branch.
func (b *Branches) Push(p Path) { b.q.Enqueue(p) }

// Pop removes and returns the longest branch.
func (b *Branches) Pop() (Path, bool) {
	v, ok := b.q.Dequeue()
	if !ok {
		return Path{}, false
	}

	return v.(Path), true
}

// Top returns the longest branch without removing it.
func (b *Branches) Top() (Path, bool) {
	v, ok := b.q.Peek()
	if !ok {
		return Path{}, false
	}

	return v.(Path), true
}

// Len returns the number of stored branches.
func (b *Branches) Len() int { return b.q.Size() }

// SideBranches maps a branch-point node to the alternative sub-paths
// recorded there. Branch paths start at a neighbor of the key node and
// their length includes the edge from the key node to that neighbor.
type SideBranches map[*skeleton.Node]*Branches

// add pushes p under node n, allocating the queue on first use.
func (s SideBranches) add(n *skeleton.Node, p Path) {
	b, ok := s[n]
	if !ok {
		b = NewBranches()
		s[n] = b
	}
	b.Push(p)
}

// ConnectedCircles maps a circle index to the set of other circle indices
// sharing at least one node with it. The relation is kept symmetric and
// transitively closed across every Connect call.
type ConnectedCircles map[int]map[int]struct{}

// Connect records that circles a and b share a node, merging their groups.
// After the call every member of the combined group is connected to every
// other member, in both directions.
func (c ConnectedCircles) Connect(a, b int) {
	if a == b {
		return
	}

	group := map[int]struct{}{a: {}, b: {}}
	for j := range c[a] {
		group[j] = struct{}{}
	}
	for j := range c[b] {
		group[j] = struct{}{}
	}

	for x := range group {
		set := c[x]
		if set == nil {
			set = make(map[int]struct{}, len(group)-1)
			c[x] = set
		}
		for y := range group {
			if y != x {
				set[y] = struct{}{}
			}
		}
	}
}

// Of returns the indices connected to circle i, sorted ascending.
func (c ConnectedCircles) Of(i int) []int {
	set := c[i]
	out := make([]int, 0, len(set))
	for j := range set {
		out = append(out, j)
	}
	sort.Ints(out)

	return out
}

// groupOf returns {i} plus everything connected to i, sorted ascending.
func (c ConnectedCircles) groupOf(i int) []int {
	out := append(c.Of(i), i)
	sort.Ints(out)

	return out
}

// ExPath is the aggregate search result: the main path (embedded), every
// recorded side branch, every discovered circle, and the circle
// connectivity relation. It is created by Search, repaired in place by
// Reshape, and consumed by the sampler.
type ExPath struct {
	Path

	// SideBranches holds the alternative sub-paths per branch-point node.
	SideBranches SideBranches

	// Circles lists the detected circles in discovery order.
	Circles []Circle

	// Connected relates circles that share at least one node.
	Connected ConnectedCircles
}

func newExPath() *ExPath {
	return &ExPath{
		SideBranches: make(SideBranches),
		Connected:    make(ConnectedCircles),
	}
}

// PathLength recomputes the length of a node walk from the neighbor records
// between consecutive nodes. It returns ErrBrokenPath when two consecutive
// nodes are not adjacent in the skeleton.
func PathLength(nodes []*skeleton.Node) (float64, error) {
	var total float64
	for i := 1; i < len(nodes); i++ {
		nb := nodes[i-1].NeighborTo(nodes[i])
		if nb == nil {
			return 0, ErrBrokenPath
		}
		total += nb.Length
	}

	return total, nil
}

// reversedCopy returns a new slice with the nodes in opposite order.
func reversedCopy(nodes []*skeleton.Node) []*skeleton.Node {
	out := make([]*skeleton.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}

	return out
}
