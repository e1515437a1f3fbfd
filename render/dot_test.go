package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imulab/alg/render"
	"github.com/imulab/alg/uf"
)

func TestToDOT_QuickFind(t *testing.T) {
	u := uf.NewQuickFind(4)
	require.NoError(t, u.Union(0, 2)) // id of {0,2} becomes 2

	dot, err := render.ToDOT(u, 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "digraph UF {"))
	assert.Contains(t, dot, "label=\"4 points, 3 groups\";")
	assert.Contains(t, dot, "subgraph cluster_0 {")
	assert.Contains(t, dot, "label=\"id 2 (size 2)\";")
	assert.Contains(t, dot, "0 -> 2;")
	assert.Contains(t, dot, "2 [fillcolor=lightgrey, penwidth=2];")
	assert.Equal(t, 3, strings.Count(dot, "subgraph cluster_"))
	assert.Equal(t, 1, strings.Count(dot, "->"))
}

func TestToDOT_WeightedRoots(t *testing.T) {
	u := uf.NewWeightedQuickUnion(5)
	require.NoError(t, u.Union(0, 1))
	require.NoError(t, u.Union(2, 1))
	require.NoError(t, u.Union(3, 4))

	dot, err := render.ToDOT(u, 5)
	require.NoError(t, err)
	assert.Contains(t, dot, "1 -> 0;")
	assert.Contains(t, dot, "2 -> 0;")
	assert.Contains(t, dot, "4 -> 3;")
	assert.Equal(t, 2, strings.Count(dot, "subgraph cluster_"))
}

func TestToDOT_OutOfRange(t *testing.T) {
	_, err := render.ToDOT(uf.NewQuickUnion(2), 3)
	assert.ErrorIs(t, err, uf.ErrIndexOutOfRange)
}

func TestRenderSVG(t *testing.T) {
	u := uf.NewWeightedQuickUnion(3)
	require.NoError(t, u.Union(0, 1))
	dot, err := render.ToDOT(u, 3)
	require.NoError(t, err)

	svg, err := render.RenderSVG(dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

// TestToDOT_PrefixLabel counts only the groups that are drawn.
func TestToDOT_PrefixLabel(t *testing.T) {
	u := uf.NewQuickUnion(5)
	require.NoError(t, u.Union(3, 4))

	dot, err := render.ToDOT(u, 2)
	require.NoError(t, err)
	assert.Contains(t, dot, "label=\"2 points, 2 groups\";")
	assert.Equal(t, 2, strings.Count(dot, "subgraph cluster_"))
}
