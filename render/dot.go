package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/imulab/alg/uf"
)

// ToDOT converts the first n points of u into Graphviz DOT.
// Groups become clusters labelled with their identifier and size; every
// non-identifier point gets an edge to its identifier.
func ToDOT(u uf.UnionFind, n int) (string, error) {
	groups, err := uf.Groups(u, n)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph UF {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	fmt.Fprintf(&buf, "  label=\"%d points, %d groups\";\n", n, len(groups))
	buf.WriteString("\n")

	for i, g := range groups {
		id, err := u.Find(g[0])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=\"id %d (size %d)\";\n", id, len(g))
		for _, p := range g {
			if p == id {
				fmt.Fprintf(&buf, "    %d [fillcolor=lightgrey, penwidth=2];\n", p)
			} else {
				fmt.Fprintf(&buf, "    %d;\n", p)
			}
		}
		for _, p := range g {
			if p != id {
				fmt.Fprintf(&buf, "    %d -> %d;\n", p, id)
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
