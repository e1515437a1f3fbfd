package uf

// WeightedQuickUnion improves on QuickUnion in two ways:
//
//  1. Weighting: every root records the size of its tree, and Union always
//     hangs the smaller tree under the larger root. Tree height stays
//     within O(log N).
//  2. Path halving: while Find walks toward the root it points each visited
//     node at its grandparent, flattening the tree for later calls.
//
// Together these bring the amortized cost of Union, Find and Connected close
// to O(1) (inverse Ackermann); O(log N) is the worst case per call.
//
// size[r] is meaningful only while r is a root; entries of absorbed roots are
// stale and never read again.
type WeightedQuickUnion struct {
	parent []int
	size   []int
	count  int
}

// NewWeightedQuickUnion returns a WeightedQuickUnion over n single-node trees,
// each of size 1. It panics when n <= 0.
func NewWeightedQuickUnion(n int) *WeightedQuickUnion {
	mustPositive("WeightedQuickUnion", n)

	parent := make([]int, n)
	size := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
		size[i] = 1
	}

	return &WeightedQuickUnion{parent: parent, size: size, count: n}
}

// Union links the roots of p and q by size:
//
//   - size[rootP] <  size[rootQ]: rootP goes under rootQ.
//   - otherwise (larger or equal): rootQ goes under rootP.
//
// The surviving root absorbs the other tree's size.
//
// Complexity: O(log N) worst case, near O(1) amortized.
func (w *WeightedQuickUnion) Union(p, q int) error {
	if err := checkPair(p, q, len(w.parent)); err != nil {
		return err
	}

	rootP, rootQ := w.root(p), w.root(q)
	if rootP == rootQ {
		return nil
	}

	if w.size[rootP] < w.size[rootQ] {
		w.parent[rootP] = rootQ
		w.size[rootQ] += w.size[rootP]
	} else {
		w.parent[rootQ] = rootP
		w.size[rootP] += w.size[rootQ]
	}
	w.count--

	return nil
}

// Connected reports whether p and q share a root.
// Both lookups compress their paths.
func (w *WeightedQuickUnion) Connected(p, q int) (bool, error) {
	if err := checkPair(p, q, len(w.parent)); err != nil {
		return false, err
	}

	return w.root(p) == w.root(q), nil
}

// Find returns the root of p's tree, halving the path on the way.
func (w *WeightedQuickUnion) Find(p int) (int, error) {
	if err := checkIndex(p, len(w.parent)); err != nil {
		return 0, err
	}

	return w.root(p), nil
}

// Count returns the number of trees.
func (w *WeightedQuickUnion) Count() int { return w.count }

// Len returns the universe size N.
func (w *WeightedQuickUnion) Len() int { return len(w.parent) }

// root walks from a validated p to its root. Every step first redirects p to
// its grandparent, then advances.
func (w *WeightedQuickUnion) root(p int) int {
	for p != w.parent[p] {
		w.parent[p] = w.parent[w.parent[p]] // path halving
		p = w.parent[p]
	}

	return p
}
