// Package uf provides disjoint-set (union-find) structures over a fixed
// universe of N points labelled 0..N-1.
//
// 🚀 What is union-find?
//
//	A union-find structure answers dynamic connectivity queries: after any
//	sequence of Union(p, q) calls, Connected(p, q) reports whether p and q
//	ended up in the same group. Groups always form a partition of [0, N).
//	Typical uses:
//	  • Connectivity analysis & cycle detection in undirected graphs
//	  • Kruskal's minimum spanning tree
//	  • Clustering & percolation
//
// ✨ Three variants, one contract:
//
//   - QuickFind         : id-per-point array. Find O(1), Union O(N).
//   - QuickUnion        : parent-pointer forest. Find O(height), Union O(height).
//     Trees can degrade into lists, so both approach O(N).
//   - WeightedQuickUnion: parent forest + per-root size. Smaller trees go
//     under larger roots and Find halves the path as it walks.
//     Amortized cost is near O(1).
//
// All three satisfy UnionFind and can be chosen at run time via New(variant, n).
//
// ⚙️ Usage:
//
//	import "github.com/imulab/alg/uf"
//
//	u := uf.NewWeightedQuickUnion(10)
//	_ = u.Union(4, 3)
//	_ = u.Union(3, 8)
//	ok, _ := u.Connected(4, 8) // true
//	fmt.Println(ok, u.Count()) // true 8
//
// Errors:
//
//	Every point argument is checked against [0, N) before any state is
//	touched. An out-of-range point yields an error matching ErrIndexOutOfRange
//	(use errors.Is). Constructing a structure with N <= 0 is a programming
//	error and panics.
//
// Concurrency:
//
//	Structures are not safe for concurrent use. Find on WeightedQuickUnion
//	mutates the forest, so even read-only callers need external locking.
package uf
