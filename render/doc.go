// Package render draws the partition held by a union-find structure as a
// Graphviz diagram.
//
// ToDOT emits one cluster per group, with an arrow from every point to the
// identifier Find reports for it. For QuickUnion and WeightedQuickUnion the
// identifier is the tree root, so the picture shows each group's root; for
// QuickFind it is the shared id.
//
// RenderSVG lays the DOT out in process using [github.com/goccy/go-graphviz],
// which needs neither cgo nor a Graphviz installation.
package render
