// Package grid treats a 2D grid of integer cells as a graph of "land" cells
// and answers connectivity questions with union-find:
//
//   - Islands / CountIslands: connected regions of land cells
//   - Percolates: whether land links the top row to the bottom row
//
// Cells with value < LandThreshold are water; cells with value ≥ LandThreshold are land.
package grid

import (
	"github.com/imulab/alg/uf"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	if opts.Variant == "" {
		opts.Variant = uf.WeightedQuickUnionVariant
	}

	// Only forward-looking offsets: each neighbor pair is joined once.
	offsets := [][2]int{{1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{-1, 1})
	}

	return &Grid{width: w, height: h, cells: cells, opts: opts, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Land reports whether (x,y) is an in-bounds land cell.
func (g *Grid) Land(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] >= g.opts.LandThreshold
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// join builds a union-find over the cells plus extra virtual sites and unions
// every pair of adjacent land cells.
// Complexity: O(W·H·d·cost(Union)).
func (g *Grid) join(extra int) (uf.UnionFind, error) {
	u, err := uf.New(g.opts.Variant, g.width*g.height+extra)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Land(x, y) {
				continue
			}
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if !g.Land(nx, ny) {
					continue
				}
				if err := u.Union(g.index(x, y), g.index(nx, ny)); err != nil {
					return nil, err
				}
			}
		}
	}

	return u, nil
}

// Islands returns every connected region of land cells. Each island lists
// its row-major cell indices in ascending order; islands are ordered by
// their first cell.
func (g *Grid) Islands() ([][]int, error) {
	u, err := g.join(0)
	if err != nil {
		return nil, err
	}

	slot := make(map[int]int)
	var out [][]int
	for i := 0; i < g.width*g.height; i++ {
		x, y := g.Coordinate(i)
		if !g.Land(x, y) {
			continue // water
		}
		root, err := u.Find(i)
		if err != nil {
			return nil, err
		}
		k, ok := slot[root]
		if !ok {
			k = len(out)
			slot[root] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out, nil
}

// CountIslands returns the number of land regions.
// Water cells stay singleton groups, so they are subtracted from the count.
func (g *Grid) CountIslands() (int, error) {
	u, err := g.join(0)
	if err != nil {
		return 0, err
	}
	water := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Land(x, y) {
				water++
			}
		}
	}

	return u.Count() - water, nil
}

// Percolates reports whether a path of land cells connects the top row to
// the bottom row. Two virtual sites, one joined to every top-row land cell and
// one to every bottom-row land cell, reduce the question to a single
// Connected call.
func (g *Grid) Percolates() (bool, error) {
	u, err := g.join(2)
	if err != nil {
		return false, err
	}
	top := g.width * g.height
	bottom := top + 1
	for x := 0; x < g.width; x++ {
		if g.Land(x, 0) {
			if err := u.Union(top, g.index(x, 0)); err != nil {
				return false, err
			}
		}
		if g.Land(x, g.height-1) {
			if err := u.Union(bottom, g.index(x, g.height-1)); err != nil {
				return false, err
			}
		}
	}

	return u.Connected(top, bottom)
}
