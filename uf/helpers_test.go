package uf_test

import "math/rand"

// randomPairs draws m pairs over [0, n) from a fixed seed.
func randomPairs(seed int64, n, m int) [][2]int {
	r := rand.New(rand.NewSource(seed))
	out := make([][2]int, m)
	for i := range out {
		out[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	return out
}
