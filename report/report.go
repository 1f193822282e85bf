// Package report renders analysis results as the plain-text blocks shown to
// users of the command-line tool.
//
// Engines already render their own one-line outcomes (bridge.Result,
// dijkstra.Result, ...); this package covers the multi-line listings that
// combine several results or add headers.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/walk"
)

// EmptyGraphMessage is shown by Graph when nothing has been loaded.
const EmptyGraphMessage = "No graph to display. Please load a file first."

// Loaded is the one-line summary after a successful load.
func Loaded(g *core.Graph) string {
	return fmt.Sprintf("Graph created with %d nodes.", g.VertexCount())
}

// Graph lists nodes in insertion order and edges sorted alphabetically by
// their rendered line.
func Graph(g *core.Graph) string {
	if g.IsEmpty() {
		return EmptyGraphMessage
	}
	words := g.Vertices()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Directed Graph (%d nodes):\n\n", len(words))
	sb.WriteString("Nodes: ")
	sb.WriteString(strings.Join(words, ", "))
	sb.WriteString("\n\nEdges:\n")

	edges := g.Edges()
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = fmt.Sprintf("%s -> %s (weight: %d)", e.From, e.To, e.Weight)
	}
	sort.Strings(lines)
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// PageRank renders a single word's score, or the not-found line when ok is false.
func PageRank(word string, score float64, ok bool) string {
	if !ok {
		return fmt.Sprintf("Word '%s' not found in the graph.", word)
	}
	return fmt.Sprintf("PageRank of '%s' is: %.4f", word, score)
}

// PageRankTable renders one "word: score" line per entry, in the given order.
func PageRankTable(scores []pagerank.Score) string {
	var sb strings.Builder
	for _, s := range scores {
		fmt.Fprintf(&sb, "%s: %.4f\n", s.Word, s.Score)
	}
	return sb.String()
}

// AllPaths numbers every path from w1 to w2, one per line.
func AllPaths(w1, w2 string, paths [][]string) string {
	if len(paths) == 0 {
		return fmt.Sprintf("No path found from '%s' to '%s'", w1, w2)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "All shortest paths from '%s' to '%s':\n\n", w1, w2)
	for i, p := range paths {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.Join(p, " -> "))
	}
	return sb.String()
}

// ShortestFrom renders a single-source shortest-path tree, each path followed
// by a blank line.
func ShortestFrom(t dijkstra.Tree) string {
	switch t.Kind {
	case dijkstra.NoGraph:
		return dijkstra.NoGraphMessage
	case dijkstra.SourceMissing:
		return fmt.Sprintf("Word '%s' not found in the graph.", t.Source)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Shortest paths from '%s' to all other words:\n\n", t.Source)
	for _, p := range t.Paths {
		sb.WriteString(p.String())
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Generated shows the input next to its augmented form.
func Generated(input, output string) string {
	return "Original text: " + input + "\n\nGenerated text: " + output
}

// Walk renders a random walk.
func Walk(r walk.Result) string {
	return "Random Walk Result:\n" + r.String()
}
