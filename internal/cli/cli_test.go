package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imulab/alg/uf"
)

var tinyJSON = filepath.Join("..", "..", "fixture", "testdata", "tinyUF.json")

// execute runs the root command with args and returns stdout and log output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestRun_AllVariants(t *testing.T) {
	for _, v := range uf.Variants() {
		out, logs, err := execute(t, "", "run", "--variant", string(v), tinyJSON)
		require.NoError(t, err, v)
		assert.Equal(t, "2 components\n0 1 2 5 6 7\n3 4 8 9\n", out, v)
		assert.Contains(t, logs, "Applied pairs")
	}
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, "4\n0 1\n2 3\n1 2\n", "run", "--variant", "qf", "-")
	require.NoError(t, err)
	assert.Equal(t, "1 components\n0 1 2 3\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "", "run", "--variant", "bogus", tinyJSON)
	assert.ErrorIs(t, err, uf.ErrUnknownVariant)

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, _, err = execute(t, "", "run")
	assert.Error(t, err, "fixture argument is required")
}

func TestConnected(t *testing.T) {
	out, _, err := execute(t, "", "connected", tinyJSON, "0", "7")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute(t, "", "connected", "--variant", "qu", tinyJSON, "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, _, err = execute(t, "", "connected", tinyJSON, "4", "10")
	assert.ErrorIs(t, err, uf.ErrIndexOutOfRange)

	_, _, err = execute(t, "", "connected", tinyJSON, "x", "1")
	assert.Error(t, err)
}

func TestRender_DOT(t *testing.T) {
	out, _, err := execute(t, "", "render", tinyJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph UF {"))
	assert.Equal(t, 2, strings.Count(out, "subgraph cluster_"))
}

func TestRender_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.dot")
	out, logs, err := execute(t, "", "render", "-o", path, tinyJSON)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Wrote diagram")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "10 points, 2 groups")
}

func TestRender_BadFormat(t *testing.T) {
	_, _, err := execute(t, "", "render", "--format", "png", tinyJSON)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, logs, err := execute(t, "", "compare", tinyJSON)
	require.NoError(t, err)
	for _, v := range uf.Variants() {
		assert.Contains(t, out, string(v))
	}
	assert.Equal(t, 3, strings.Count(out, "2 components"))
	assert.Contains(t, logs, "All variants agree")
}

func TestVariants(t *testing.T) {
	out, _, err := execute(t, "", "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "quick-find")
	assert.Contains(t, out, "find=O(1)")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c := New(&buf, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestCancelledContext checks that replaying commands give up on a cancelled
// context instead of finishing the workload.
func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, args := range [][]string{
		{"run", tinyJSON},
		{"connected", tinyJSON, "0", "1"},
		{"compare", tinyJSON},
	} {
		var out, logs bytes.Buffer
		root := New(&logs, log.DebugLevel).RootCommand()
		root.SetArgs(args)
		root.SetOut(&out)
		root.SetErr(&logs)

		err := root.ExecuteContext(ctx)
		require.ErrorIs(t, err, context.Canceled, args[0])
		assert.Empty(t, out.String(), args[0])
	}
}
