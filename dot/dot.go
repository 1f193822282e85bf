// SPDX-License-Identifier: MIT

// Package dot exports a word graph as Graphviz DOT text.
//
// The package only produces text; rendering it to an image is left to
// whoever owns the file (for example `dot -Tpng graph.dot`).
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Triple is one edge of the export.
type Triple struct {
	Source string
	Target string
	Weight int64
}

// Triples lists every edge of g in enumeration order: sources in vertex
// insertion order, targets in discovery order. A nil graph yields none.
func Triples(g *core.Graph) []Triple {
	if g == nil {
		return []Triple{}
	}
	edges := g.Edges()
	out := make([]Triple, len(edges))
	for i, e := range edges {
		out[i] = Triple{Source: e.From, Target: e.To, Weight: e.Weight}
	}

	return out
}

type config struct {
	name      string
	rankdir   string
	nodeAttrs string
}

// Option adjusts the emitted header.
type Option func(*config)

// WithName sets the graph identifier. Default "G".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithRankDir sets the layout direction (LR, TB, RL, BT). Default "LR".
func WithRankDir(dir string) Option {
	return func(c *config) {
		if dir != "" {
			c.rankdir = dir
		}
	}
}

// Write streams the DOT document for g to w.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	cfg := config{
		name:      "G",
		rankdir:   "LR",
		nodeAttrs: "shape=circle, style=filled, fillcolor=lightblue",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", cfg.name)
	fmt.Fprintf(bw, "  rankdir=%s;\n", cfg.rankdir)
	fmt.Fprintf(bw, "  node [%s];\n", cfg.nodeAttrs)
	for _, t := range Triples(g) {
		fmt.Fprintf(bw, "  %q -> %q [label=\"%d\", weight=%d];\n", t.Source, t.Target, t.Weight, t.Weight)
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

// Render returns the DOT document for g as a string.
func Render(g *core.Graph, opts ...Option) string {
	var sb strings.Builder
	_ = Write(&sb, g, opts...) // strings.Builder never fails

	return sb.String()
}
