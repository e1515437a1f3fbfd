package mst_test

import (
	"math/rand"

	"github.com/imulab/alg/mst"
)

// randomSimpleEdges draws up to m distinct, loop-free edges over n points with
// weights in [1, 100].
func randomSimpleEdges(seed int64, n, m int) []mst.Edge {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[[2]int]bool, m)
	var out []mst.Edge
	for tries := 0; len(out) < m && tries < 10*m; tries++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		key := [2]int{min(u, v), max(u, v)}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, mst.Edge{From: u, To: v, Weight: int64(1 + r.Intn(100))})
	}

	return out
}
