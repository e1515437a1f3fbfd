// Package fixture loads union-find workloads: a point count and an ordered
// list of (p, q) pairs to union.
//
// Three encodings are understood:
//
//	JSON  {"total": 10, "data": [{"p": 4, "q": 3}, ...]}
//	TOML  total = 10
//	      [[data]]
//	      p = 4
//	      q = 3
//	Text  the algs4 tinyUF.txt layout: N on the first line, then one "p q"
//	      pair per line. Blank lines and lines starting with '#' are ignored.
//
// Load picks the decoder from the file extension (.json, .toml, anything
// else is read as text). Apply replays the pairs into any uf.UnionFind.
package fixture
