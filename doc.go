// Package alg collects union-find structures and the algorithms built on
// them, from the bare disjoint-set contract to spanning trees, cycle
// detection and grid connectivity.
//
// 🚀 What is in alg?
//
//	A small, dependency-light library with:
//		• uf      : the UnionFind contract and three implementations:
//		             QuickFind, QuickUnion, WeightedQuickUnion
//		• mst     : Kruskal's minimum spanning tree/forest, cycle detection
//		• grid    : island counting and percolation on 2D grids
//		• fixture : loading (p, q) workloads from JSON, TOML or text
//		• render  : drawing a partition with Graphviz
//
// ✨ Why three variants?
//
//   - QuickFind answers Find in O(1) but pays O(N) per Union
//   - QuickUnion makes Union cheap until trees grow tall
//   - WeightedQuickUnion balances by size and halves paths: near O(1) for both
//
// Every client package accepts any variant, so the trade-off can be measured
// on real inputs (see `uf compare`).
//
// Quick ASCII example (after unions 1-0, 2-0, 4-3):
//
//	  0     3
//	 / \    |
//	1   2   4
//
//	go get github.com/imulab/alg/uf
package alg
