package grid_test

import (
	"fmt"

	"github.com/imulab/alg/grid"
)

// ExampleGrid_CountIslands counts islands on a small map.
//
//	1 1 0 0
//	0 1 0 1
//	0 0 0 1
//	1 0 0 0
func ExampleGrid_CountIslands() {
	g, err := grid.New([][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := g.CountIslands()
	islands, _ := g.Islands()
	fmt.Println(n, islands)
	// Output: 3 [[0 1 5] [7 11] [12]]
}
