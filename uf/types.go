// Package uf defines the UnionFind contract, variant selection and sentinel errors.
package uf

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a point argument outside [0, N).
	// Returned wrapped with the offending index; match with errors.Is.
	ErrIndexOutOfRange = errors.New("uf: index out of range")

	// ErrUnknownVariant indicates an unrecognised variant name passed to
	// ParseVariant or New.
	ErrUnknownVariant = errors.New("uf: unknown variant")
)

// UnionFind is a dynamic-connectivity structure over points 0..N-1.
//
// Implementations: *QuickFind, *QuickUnion, *WeightedQuickUnion.
type UnionFind interface {
	// Union merges the groups containing p and q.
	// It is a valid no-op when p and q are already connected.
	Union(p, q int) error

	// Connected reports whether p and q belong to the same group.
	Connected(p, q int) (bool, error)

	// Find returns the identifier of the group containing p.
	// Identifiers are opaque: they are equal for points of the same group
	// but their values may change after a later Union.
	Find(p int) (int, error)

	// Count returns the current number of groups.
	Count() int
}

// Variant names one of the union-find implementations.
type Variant string

const (
	// QuickFindVariant selects QuickFind (O(1) find, O(N) union).
	QuickFindVariant Variant = "quick-find"

	// QuickUnionVariant selects QuickUnion (unbalanced parent forest).
	QuickUnionVariant Variant = "quick-union"

	// WeightedQuickUnionVariant selects WeightedQuickUnion (size-weighted, path halving).
	WeightedQuickUnionVariant Variant = "weighted-quick-union"
)

// Variants returns every supported Variant, from slowest to fastest.
func Variants() []Variant {
	return []Variant{QuickFindVariant, QuickUnionVariant, WeightedQuickUnionVariant}
}

// String implements fmt.Stringer.
func (v Variant) String() string { return string(v) }

// ParseVariant maps a name to its Variant. Short aliases "qf", "qu" and
// "wqu" are accepted as well.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case string(QuickFindVariant), "qf":
		return QuickFindVariant, nil
	case string(QuickUnionVariant), "qu":
		return QuickUnionVariant, nil
	case string(WeightedQuickUnionVariant), "wqu":
		return WeightedQuickUnionVariant, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// New constructs the selected variant over n points.
//
//	– QuickFindVariant          → NewQuickFind(n)
//	– QuickUnionVariant         → NewQuickUnion(n)
//	– WeightedQuickUnionVariant → NewWeightedQuickUnion(n)
//	– anything else             → ErrUnknownVariant
//
// Like the concrete constructors, New panics when n <= 0.
func New(v Variant, n int) (UnionFind, error) {
	switch v {
	case QuickFindVariant:
		return NewQuickFind(n), nil
	case QuickUnionVariant:
		return NewQuickUnion(n), nil
	case WeightedQuickUnionVariant:
		return NewWeightedQuickUnion(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}
