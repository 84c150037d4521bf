package longest

// Reshape repairs an initial search path by local greedy exchanges, in
// place. Walking the main path and accumulating distance, any node whose
// longest recorded side branch is longer than the walked prefix trades: the
// prefix becomes a side branch of that node (reversed into branch order)
// and the branch, reversed into walking order, becomes the new start of the
// main path. The walk restarts after every exchange and stops at the first
// full pass without one.
//
// A single depth-first pass only finds *a* maximal path, because branch
// lengths are known in full only after the subtree beneath them has been
// explored; this exchange loop is what turns that pass into the longest
// path of an (almost-)tree-shaped weighted graph. Each exchange strictly
// increases the total length, so the loop terminates.
//
// Reshape returns ErrEmptyPath for a path with no nodes and ErrBrokenPath
// when consecutive path nodes are not neighbors; both are internal
// invariant failures of the caller, not recoverable conditions.
func Reshape(ex *ExPath) error {
	if ex == nil || len(ex.Nodes) == 0 {
		return ErrEmptyPath
	}

	for {
		swapped, err := exchangeOnce(ex)
		if err != nil {
			return err
		}
		if !swapped {
			return nil
		}
	}
}

// exchangeOnce walks the main path and performs the first improving
// exchange it finds, reporting whether one happened.
func exchangeOnce(ex *ExPath) (bool, error) {
	var walked float64
	for i, n := range ex.Nodes {
		if i > 0 {
			nb := ex.Nodes[i-1].NeighborTo(n)
			if nb == nil {
				return false, ErrBrokenPath
			}
			walked += nb.Length
		}

		branches, ok := ex.SideBranches[n]
		if !ok {
			continue
		}
		top, ok := branches.Top()
		if !ok || top.Length <= walked {
			continue
		}

		// Exchange: the walked prefix becomes a side branch of n, the
		// longest branch becomes the new start of the main path. At the
		// path start there is no prefix to trade, so nothing is pushed.
		branches.Pop()
		if i > 0 {
			branches.Push(Path{Nodes: reversedCopy(ex.Nodes[:i]), Length: walked})
		}

		ex.Nodes = append(reversedCopy(top.Nodes), ex.Nodes[i:]...)
		ex.Length += top.Length - walked

		return true, nil
	}

	return false, nil
}
