package mst

// HasCycle reports whether the undirected edges contain a cycle.
// An edge whose endpoints are already connected closes a cycle; a self-loop
// is a cycle on its own. Weights are ignored.
//
// Complexity: O(E·cost(Union)) worst case, stopping at the first cycle.
func HasCycle(n int, edges []Edge, opts ...Option) (bool, error) {
	u, err := build(n, opts)
	if err != nil {
		return false, err
	}
	if err := checkEdges(u, edges); err != nil {
		return false, err
	}

	for _, e := range edges {
		joined, err := u.Connected(e.From, e.To)
		if err != nil {
			return false, err
		}
		if joined {
			return true, nil
		}
		if err := u.Union(e.From, e.To); err != nil {
			return false, err
		}
	}

	return false, nil
}

// CountComponents returns how many connected components the edges leave
// among n points.
func CountComponents(n int, edges []Edge, opts ...Option) (int, error) {
	u, err := build(n, opts)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		if err := u.Union(e.From, e.To); err != nil {
			return 0, err
		}
	}

	return u.Count(), nil
}
