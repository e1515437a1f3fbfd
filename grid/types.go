// Package grid defines options, connectivity modes and sentinel errors for
// grid connectivity analysis.
package grid

import (
	"errors"

	"github.com/imulab/alg/uf"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Variant selects the union-find structure used to join cells.
	Variant uf.Variant
}

// DefaultOptions returns LandThreshold=1 (values ≥1 are land), Conn=Conn4 and
// the weighted quick-union variant.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          Conn4,
		Variant:       uf.WeightedQuickUnionVariant,
	}
}

// Grid is an immutable rectangular grid of integer cells.
// Cells are addressed row-major: index = y*Width() + x.
type Grid struct {
	width, height int
	cells         [][]int
	opts          Options
	offsets       [][2]int
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }
