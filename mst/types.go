// Package mst defines edge types, options and sentinel errors for the
// union-find clients in this package.
package mst

import (
	"errors"

	"github.com/imulab/alg/uf"
)

// ErrInvalidInput indicates a non-positive point count.
var ErrInvalidInput = errors.New("mst: point count must be positive")

// ErrDisconnected indicates that the edges do not connect all n points, so no
// spanning tree exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Edge is an undirected, weighted edge between points From and To.
type Edge struct {
	From, To int
	Weight   int64
}

// Options configures which union-find variant backs the algorithms.
//
// Fields:
//
//	Variant uf.Variant: structure used to track components.
//
// Every variant yields the same result; only the running time differs.
type Options struct {
	Variant uf.Variant
}

// Option configures Options.
type Option func(*Options)

// WithVariant returns an Option that selects the union-find variant.
func WithVariant(v uf.Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// DefaultOptions returns Options backed by uf.WeightedQuickUnionVariant.
func DefaultOptions() Options {
	return Options{Variant: uf.WeightedQuickUnionVariant}
}

// build resolves opts and constructs the union-find structure over n points.
func build(n int, opts []Option) (uf.UnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidInput
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return uf.New(o.Variant, n)
}
