// Package longest finds one maximal-length path through an island skeleton:
// an undirected weighted graph that is almost a tree but may contain rare
// cycles ("circles") produced by symmetric geometry.
//
// Overview:
//
//   - Search runs a depth-first exploration from a start node using an
//     explicit work-stack of small task values, never native recursion, so
//     stack usage stays bounded on skeletons with tens of thousands of
//     vertices.
//   - At every branch point the longest sub-path explored from that node
//     continues the main path; every other sub-path is recorded in
//     SideBranches keyed by the node, longest retrievable in O(1).
//   - A circle is detected when an edge reaches a node already on the path
//     being built. The sub-path from that node's first occurrence to the
//     current node becomes a Circle; the closing edge is consumed and the
//     walk does not continue through it. Circles sharing at least one node
//     are connected; the ConnectedCircles relation stays symmetric and
//     transitively closed after every merge.
//   - When the walk unwinds back to the entry node of a set of mutually
//     connected circles, the set is linearized: a single circle by walking
//     it once and maximizing shortest-arc distance plus the node's longest
//     side branch, several connected circles by a shortest-path-ordered
//     expansion over the union of their nodes. The winning linear path
//     replaces the circle exploration as an ordinary branch.
//   - Reshape then repairs the initial path by local greedy exchanges: at
//     any node whose longest recorded side branch exceeds the distance
//     walked so far, the walked prefix and the branch trade places. The
//     exchange repeats until no improvement remains; on trees the fixed
//     point is the true longest path.
//
// General-graph longest-path search is NP-hard; this package promises
// optimality only for the near-tree shapes Voronoi skeletons produce, and
// approximates when cycles interleave more densely.
//
// Complexity:
//
//   - Time:  O(V + E) for the traversal plus O(C log C) over side-branch
//     queue operations; circle linearization adds O(U·E_U log U) over the
//     node union U of a connected circle set.
//   - Space: O(V + E) for the path, frames, and recorded branches.
//
// Errors:
//
//   - ErrNilStart   - Search received a nil start node.
//   - ErrEmptyPath  - Reshape received an ExPath with no nodes; every
//     successful search returns at least the start node, so this is an
//     internal invariant failure, surfaced rather than masked.
//   - ErrBrokenPath - consecutive path nodes are not neighbors; path data
//     was corrupted after the search.
package longest
