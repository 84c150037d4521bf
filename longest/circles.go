package longest

import (
	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/voroskel/skeleton"
)

// resolveGroup linearizes a finished group of mutually connected circles
// entered at node entry. A lone circle is walked directly; a connected
// group runs the shortest-path-ordered expansion over the union of its
// nodes. The returned path starts at a neighbor of entry and its length is
// measured from entry, so it competes as an ordinary candidate branch.
func (s *searcher) resolveGroup(entry *skeleton.Node, k int, group []int) (Path, bool) {
	if len(group) == 1 {
		return s.ex.resolveCircle(k)
	}

	return s.ex.resolveConnected(entry, group)
}

// resolveCircle walks one circle once and picks the exit node and direction
// that maximize shortest-arc distance from the entry plus the node's
// longest side branch. The winning branch is consumed so the main path and
// the remaining side branches stay disjoint.
//
// A circle whose nodes carry no side branches resolves to the node farthest
// around the circle.
func (ex *ExPath) resolveCircle(k int) (Path, bool) {
	c := ex.Circles[k]
	half := c.Length / 2

	var onCircle float64
	reverse := false

	bestCombined := -1.0
	bestIdx := -1
	bestReverse := false
	bestHasBranch := false

	var prev *skeleton.Node
	for i, n := range c.Nodes {
		if prev != nil {
			onCircle += n.NeighborTo(prev).Length
		}
		prev = n

		// Past the halfway point the other way around is shorter; the flag
		// latches because the walked distance only grows.
		if onCircle > half {
			reverse = true
		}
		arc := onCircle
		if reverse {
			arc = c.Length - onCircle
		}

		var branchLength float64
		hasBranch := false
		if b, ok := ex.SideBranches[n]; ok {
			if top, exists := b.Top(); exists {
				branchLength = top.Length
				hasBranch = true
			}
		}

		if combined := arc + branchLength; combined > bestCombined {
			bestCombined = combined
			bestIdx = i
			bestReverse = reverse
			bestHasBranch = hasBranch
		}
	}
	if bestIdx < 0 {
		return Path{}, false
	}

	// Arc from the entry to the chosen node, walked in the chosen direction.
	var nodes []*skeleton.Node
	if bestReverse {
		nodes = reversedCopy(c.Nodes[bestIdx:])
	} else if bestIdx > 0 {
		nodes = append(nodes, c.Nodes[1:bestIdx+1]...)
	}

	if bestHasBranch {
		exit := c.Nodes[bestIdx]
		top, _ := ex.SideBranches[exit].Pop()
		if ex.SideBranches[exit].Len() == 0 {
			delete(ex.SideBranches, exit)
		}
		nodes = append(nodes, top.Nodes...)
	}
	if len(nodes) == 0 {
		return Path{}, false
	}

	return Path{Nodes: nodes, Length: bestCombined}, true
}

// expansion is one pending path of the connected-circle traversal. seq
// breaks length ties in insertion order to keep the expansion deterministic.
type expansion struct {
	path Path
	seq  int
}

// shortestFirst orders expansions by ascending path length. The second of
// the two explicit comparators in this package; never reuse it for side
// branches.
func shortestFirst(a, b interface{}) int {
	ea, eb := a.(expansion), b.(expansion)
	switch {
	case ea.path.Length < eb.path.Length:
		return -1
	case ea.path.Length > eb.path.Length:
		return 1
	default:
		return ea.seq - eb.seq
	}
}

// resolveConnected linearizes a connected circle group: a Dijkstra-style
// expansion from the entry node, restricted to the union of the group's
// nodes, scores every reached node by walked distance plus its longest side
// branch; the best-scoring walk, extended by that branch, wins.
func (ex *ExPath) resolveConnected(entry *skeleton.Node, group []int) (Path, bool) {
	union := make(map[*skeleton.Node]struct{})
	for _, k := range group {
		for _, n := range ex.Circles[k].Nodes {
			union[n] = struct{}{}
		}
	}

	pq := priorityqueue.NewWith(shortestFirst)
	seq := 0
	pq.Enqueue(expansion{path: Path{Nodes: []*skeleton.Node{entry}}})

	done := make(map[*skeleton.Node]struct{})
	var best Path
	bestCombined := -1.0

	for !pq.Empty() {
		v, _ := pq.Dequeue()
		cur := v.(expansion).path
		n := cur.Nodes[len(cur.Nodes)-1]
		if _, ok := done[n]; ok {
			continue
		}
		done[n] = struct{}{}

		for _, nb := range n.Neighbors {
			if _, in := union[nb.Node]; !in {
				continue
			}
			if _, ok := done[nb.Node]; ok {
				continue
			}

			next := Path{
				Nodes:  append(append(make([]*skeleton.Node, 0, len(cur.Nodes)+1), cur.Nodes...), nb.Node),
				Length: cur.Length + nb.Length,
			}
			seq++
			pq.Enqueue(expansion{path: next, seq: seq})

			combined := next.Length
			if b, ok := ex.SideBranches[nb.Node]; ok {
				if top, exists := b.Top(); exists {
					combined += top.Length
				}
			}
			if combined > bestCombined {
				bestCombined = combined
				best = next
			}
		}
	}

	if len(best.Nodes) <= 1 {
		return Path{}, false
	}

	// Drop the entry; the caller folds the result in as a branch of it.
	best.Nodes = best.Nodes[1:]
	best.Length = bestCombined

	// The winning walk may end on a circle node with a side branch; append
	// and consume it (its length is already part of the combined score).
	last := best.Nodes[len(best.Nodes)-1]
	if b, ok := ex.SideBranches[last]; ok {
		if top, exists := b.Top(); exists {
			b.Pop()
			if b.Len() == 0 {
				delete(ex.SideBranches, last)
			}
			best.Nodes = append(best.Nodes, top.Nodes...)
		}
	}

	return best, true
}
