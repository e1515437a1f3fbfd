// Package mst provides Kruskal's minimum spanning tree and cycle detection
// over integer points, driven by any uf.UnionFind variant.
package mst

import (
	"sort"

	"github.com/imulab/alg/uf"
)

// Kruskal computes the minimum spanning tree of n points joined by undirected
// weighted edges.
//
// Error Conditions:
//   - ErrInvalidInput       : n <= 0.
//   - uf.ErrIndexOutOfRange : an edge endpoint is outside [0, n).
//   - uf.ErrUnknownVariant  : WithVariant named an unknown variant.
//   - ErrDisconnected       : the edges cannot span all n points.
//
// Steps:
//  1. Build the union-find structure over n points.
//  2. Drop self-loops and stable-sort the rest by ascending weight, so equal
//     weights keep their input order.
//  3. For each edge, if its endpoints are not yet connected, union them and
//     keep the edge.
//  4. Stop once n-1 edges are kept; fewer after the loop means disconnected.
//
// Complexity: O(E log E + E·cost(Union)). Memory: O(N + E).
func Kruskal(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	forest, total, err := grow(n, edges, opts)
	if err != nil {
		return nil, 0, err
	}
	if len(forest) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return forest, total, nil
}

// SpanningForest is Kruskal without the connectivity requirement: it returns
// a minimum spanning forest, its total weight and the number of trees in it.
// Isolated points count as trees of their own.
func SpanningForest(n int, edges []Edge, opts ...Option) ([]Edge, int64, int, error) {
	forest, total, err := grow(n, edges, opts)
	if err != nil {
		return nil, 0, 0, err
	}

	return forest, total, n - len(forest), nil
}

// grow runs the shared Kruskal loop and returns the kept edges.
func grow(n int, edges []Edge, opts []Option) ([]Edge, int64, error) {
	u, err := build(n, opts)
	if err != nil {
		return nil, 0, err
	}

	// Every endpoint is range checked up front; the loop below may stop early.
	if err := checkEdges(u, edges); err != nil {
		return nil, 0, err
	}

	// Self-loops can never join two components.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From != e.To {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	forest := make([]Edge, 0, n-1)
	var total int64
	for _, e := range sorted {
		joined, err := u.Connected(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if joined {
			continue
		}
		if err := u.Union(e.From, e.To); err != nil {
			return nil, 0, err
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == n-1 {
			break
		}
	}

	return forest, total, nil
}

// checkEdges validates both endpoints of every edge against u's universe.
func checkEdges(u uf.UnionFind, edges []Edge) error {
	for _, e := range edges {
		if _, err := u.Find(e.From); err != nil {
			return err
		}
		if _, err := u.Find(e.To); err != nil {
			return err
		}
	}

	return nil
}
