package uf

import "slices"

// Groups returns the partition of [0, n) induced by u.
//
// Each group lists its points in ascending order, and groups are ordered by
// their smallest point, so the result does not depend on the identifiers a
// particular variant hands out. n must be u's universe size (or smaller, to
// inspect a prefix); a larger n yields ErrIndexOutOfRange.
//
// Complexity: O(n · cost(Find)).
func Groups(u UnionFind, n int) ([][]int, error) {
	slot := make(map[int]int, u.Count()) // group id → position in out
	var out [][]int
	for p := 0; p < n; p++ {
		id, err := u.Find(p)
		if err != nil {
			return nil, err
		}
		i, ok := slot[id]
		if !ok {
			// First sighting: p is the smallest member, which fixes the order.
			i = len(out)
			slot[id] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], p)
	}

	return out, nil
}

// SameGroups reports whether a and b induce the same partition of [0, n).
// Variants may disagree on identifiers; only membership is compared.
func SameGroups(a, b UnionFind, n int) (bool, error) {
	ga, err := Groups(a, n)
	if err != nil {
		return false, err
	}
	gb, err := Groups(b, n)
	if err != nil {
		return false, err
	}
	if len(ga) != len(gb) {
		return false, nil
	}
	for i := range ga {
		if !slices.Equal(ga[i], gb[i]) {
			return false, nil
		}
	}

	return true, nil
}
