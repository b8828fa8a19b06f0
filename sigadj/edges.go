package sigadj

// Edge is an ordered pair of 0-based node identifiers.
// Sign is carried externally: edges live either in a positive or a
// negative EdgeList, never annotated per edge.
type Edge struct {
	Src int // source node id, 0-based
	Dst int // target node id, 0-based
}

// EdgeList is an ordered sequence of edges. Lists are treated as
// immutable inputs by every function in this package.
type EdgeList []Edge

// MaxNodeID returns the largest node identifier appearing in any of the
// given lists, or -1 when all lists are empty.
// Complexity: O(total edges).
func MaxNodeID(lists ...EdgeList) int {
	maxID := -1
	for _, list := range lists {
		for _, e := range list {
			if e.Src > maxID {
				maxID = e.Src
			}
			if e.Dst > maxID {
				maxID = e.Dst
			}
		}
	}

	return maxID
}

// validateEdges ensures every endpoint in list fits [0, nodeCount).
// Returns ErrNodeOutOfRange on the first violation; nil otherwise.
// Complexity: O(len(list)).
func validateEdges(list EdgeList, nodeCount int) error {
	for _, e := range list {
		if e.Src < 0 || e.Src >= nodeCount {
			return ErrNodeOutOfRange
		}
		if e.Dst < 0 || e.Dst >= nodeCount {
			return ErrNodeOutOfRange
		}
	}

	return nil
}
