package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/imulab/alg/render"
	"github.com/imulab/alg/uf"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <fixture>",
		Short: "Apply a fixture and print the resulting groups",
		Long:  "Apply a fixture (.json, .toml, or text; '-' reads text from stdin) and print the group count followed by one group per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, u, err := c.build(cmd, args[0])
			if err != nil {
				return err
			}
			groups, err := uf.Groups(u, f.Total)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d components\n", u.Count())
			for _, g := range groups {
				fmt.Fprintln(out, joinInts(g))
			}
			return nil
		},
	}
}

func (c *CLI) connectedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connected <fixture> <p> <q>",
		Short: "Report whether two points end up in the same group",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid point %q: %w", args[1], err)
			}
			q, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid point %q: %w", args[2], err)
			}

			_, u, err := c.build(cmd, args[0])
			if err != nil {
				return err
			}
			ok, err := u.Connected(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render <fixture>",
		Short: "Draw the resulting groups as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			f, u, err := c.build(cmd, args[0])
			if err != nil {
				return err
			}
			dot, err := render.ToDOT(u, f.Total)
			if err != nil {
				return err
			}

			data := []byte(dot)
			if format == formatSVG {
				prog := newProgress(c.Logger)
				if data, err = render.RenderSVG(dot); err != nil {
					return err
				}
				prog.done("Rendered SVG", "bytes", len(data))
			}
			if err := writeFile(cmd.OutOrStdout(), output, data); err != nil {
				return err
			}
			if output != "" {
				c.Logger.Info("Wrote diagram", "path", output, "format", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")

	return cmd
}

func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <fixture>",
		Short: "Run every variant on a fixture and check they agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.loadFixture(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var first uf.UnionFind
			for _, v := range uf.Variants() {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				start := time.Now()
				u, err := f.BuildContext(cmd.Context(), v)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				fmt.Fprintf(out, "%-22s %d components  %s\n", v, u.Count(), elapsed.Round(time.Microsecond))
				if first == nil {
					first = u
					continue
				}
				same, err := uf.SameGroups(first, u, f.Total)
				if err != nil {
					return err
				}
				if !same {
					return fmt.Errorf("%s disagrees with %s", v, uf.Variants()[0])
				}
			}
			c.Logger.Info("All variants agree", "points", f.Total, "pairs", len(f.Pairs))
			return nil
		},
	}
}

func (c *CLI) variantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List union-find variants and their costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range uf.Variants() {
				cost, _ := uf.Complexity(v)
				fmt.Fprintf(out, "%-22s init=%s union=%s find=%s process=%s\n",
					v, cost.Init, cost.Union, cost.Find, cost.Process)
			}
			return nil
		},
	}
}

// joinInts formats a group as space-separated points.
func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
