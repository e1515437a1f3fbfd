// Package cli implements the uf command-line interface.
//
// The commands load a union-find workload (see package fixture), replay it
// through one or all variants and report the resulting partition:
//
//   - run:       apply a fixture and print the count and groups
//   - connected: answer a single connectivity query
//   - render:    draw the partition as DOT or SVG
//   - compare:   run every variant, check they agree and time them
//   - variants:  list variants with their documented costs
//
// All commands support --verbose (-v) for debug-level logging and
// --variant to pick the structure.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/imulab/alg/fixture"
	"github.com/imulab/alg/uf"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// variant is bound to the persistent --variant flag.
	variant string
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "uf",
		Short:        "uf replays union-find workloads",
		Long:         `uf loads a point count and a list of pairs, unions them with a chosen union-find variant and reports the resulting groups.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.variant, "variant", string(uf.WeightedQuickUnionVariant),
		"union-find variant: quick-find (qf), quick-union (qu), weighted-quick-union (wqu)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.connectedCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.variantsCommand())

	return root
}

// selectedVariant parses the --variant flag.
func (c *CLI) selectedVariant() (uf.Variant, error) {
	return uf.ParseVariant(c.variant)
}

// loadFixture reads path, or the text layout from stdin when path is "-".
func (c *CLI) loadFixture(cmd *cobra.Command, path string) (*fixture.Fixture, error) {
	var (
		f   *fixture.Fixture
		err error
	)
	if path == "-" {
		f, err = fixture.DecodeText(cmd.InOrStdin())
	} else {
		f, err = fixture.Load(path)
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Loaded fixture", "source", path, "points", f.Total, "pairs", len(f.Pairs))

	return f, nil
}

// build loads path and replays it through the selected variant.
func (c *CLI) build(cmd *cobra.Command, path string) (*fixture.Fixture, uf.UnionFind, error) {
	v, err := c.selectedVariant()
	if err != nil {
		return nil, nil, err
	}
	f, err := c.loadFixture(cmd, path)
	if err != nil {
		return nil, nil, err
	}

	prog := newProgress(c.Logger)
	u, err := f.BuildContext(cmd.Context(), v)
	if err != nil {
		return nil, nil, err
	}
	prog.done("Applied pairs", "variant", v, "groups", u.Count())

	return f, u, nil
}

// writeFile writes data to path, or to w when path is empty.
func writeFile(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
