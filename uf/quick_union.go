package uf

// QuickUnion arranges each group as a tree of parent pointers. Two points are
// connected when they reach the same root.
//
// Union only relinks one root, but both Union and Find pay for walking to the
// root. Nothing keeps trees balanced, so unions applied in increasing or
// decreasing order build list-shaped trees and push Find toward O(N).
//
// Complexity:
//   - NewQuickUnion: O(N)
//   - Find:          O(tree height), O(N) worst case
//   - Union:         O(tree height), dominated by the two Find calls
type QuickUnion struct {
	// parent[k] is the parent of point k; roots satisfy parent[k] == k.
	parent []int
	count  int
}

// NewQuickUnion returns a QuickUnion over n single-node trees.
// It panics when n <= 0.
func NewQuickUnion(n int) *QuickUnion {
	mustPositive("QuickUnion", n)

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &QuickUnion{parent: parent, count: n}
}

// Union attaches p's root under q's root. Nothing changes when the roots
// coincide.
func (qu *QuickUnion) Union(p, q int) error {
	if err := checkPair(p, q, len(qu.parent)); err != nil {
		return err
	}

	rootP, rootQ := qu.root(p), qu.root(q)
	if rootP == rootQ {
		return nil
	}
	qu.parent[rootP] = rootQ
	qu.count--

	return nil
}

// Connected reports whether p and q share a root.
func (qu *QuickUnion) Connected(p, q int) (bool, error) {
	if err := checkPair(p, q, len(qu.parent)); err != nil {
		return false, err
	}

	return qu.root(p) == qu.root(q), nil
}

// Find returns the root of p's tree. The forest is left untouched.
func (qu *QuickUnion) Find(p int) (int, error) {
	if err := checkIndex(p, len(qu.parent)); err != nil {
		return 0, err
	}

	return qu.root(p), nil
}

// Count returns the number of trees.
func (qu *QuickUnion) Count() int { return qu.count }

// Len returns the universe size N.
func (qu *QuickUnion) Len() int { return len(qu.parent) }

// root follows parent links from a validated p until it reaches a root.
func (qu *QuickUnion) root(p int) int {
	for p != qu.parent[p] {
		p = qu.parent[p]
	}

	return p
}
