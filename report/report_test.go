package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/report"
	"github.com/katalvlaran/wordgraph/walk"
)

func build(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := builder.Build(context.Background(), text)
	require.NoError(t, err)

	return g
}

func TestGraph(t *testing.T) {
	g := build(t, "b a c a b a")
	want := "Directed Graph (3 nodes):\n\n" +
		"Nodes: b, a, c\n\n" +
		"Edges:\n" +
		"a -> b (weight: 1)\n" +
		"a -> c (weight: 1)\n" +
		"b -> a (weight: 2)\n" +
		"c -> a (weight: 1)\n"
	assert.Equal(t, want, report.Graph(g))
	assert.Equal(t, report.EmptyGraphMessage, report.Graph(core.NewGraph()))
	assert.Equal(t, report.EmptyGraphMessage, report.Graph(nil))
}

func TestLoaded(t *testing.T) {
	assert.Equal(t, "Graph created with 3 nodes.", report.Loaded(build(t, "x y z")))
}

func TestPageRank(t *testing.T) {
	assert.Equal(t, "PageRank of 'the' is: 0.1235", report.PageRank("the", 0.12346, true))
	assert.Equal(t, "Word 'zz' not found in the graph.", report.PageRank("zz", 0, false))
	assert.Equal(t, "a: 0.7500\nb: 0.2500\n", report.PageRankTable([]pagerank.Score{
		{Word: "a", Score: 0.75},
		{Word: "b", Score: 0.25},
	}))
}

func TestAllPaths(t *testing.T) {
	assert.Equal(t,
		"All shortest paths from 'a' to 'd':\n\n1. a -> b -> d\n2. a -> c -> d\n",
		report.AllPaths("a", "d", [][]string{{"a", "b", "d"}, {"a", "c", "d"}}))
	assert.Equal(t, "No path found from 'd' to 'a'", report.AllPaths("d", "a", nil))
}

func TestShortestFrom(t *testing.T) {
	g := build(t, "a b c")
	assert.Equal(t,
		"Shortest paths from 'b' to all other words:\n\n"+
			"Path from \"b\" to \"c\": b -> c\nPath length: 1\n\n",
		report.ShortestFrom(dijkstra.FromSource(g, "b")))
	assert.Equal(t, "Word 'q' not found in the graph.", report.ShortestFrom(dijkstra.FromSource(g, "q")))
	assert.Equal(t, dijkstra.NoGraphMessage, report.ShortestFrom(dijkstra.FromSource(nil, "q")))
}

func TestGeneratedAndWalk(t *testing.T) {
	assert.Equal(t, "Original text: a b\n\nGenerated text: a x b", report.Generated("a b", "a x b"))
	assert.Equal(t, "Random Walk Result:\nhello",
		report.Walk(walk.Random(build(t, "hello"), walk.WithSeed(1))))
}
