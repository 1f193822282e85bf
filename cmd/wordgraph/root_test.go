package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/augment"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/dot"
	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/report"
	"github.com/katalvlaran/wordgraph/walk"
)

const scientistText = "The scientist carefully analyzed the data, wrote a detailed report, " +
	"and shared the report with the team, but the team requested more data, " +
	"so the scientist analyzed it again."

// fixture writes scientistText to a temp file and returns its path and graph.
func fixture(t *testing.T) (string, *core.Graph) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(scientistText), 0o644))

	g, err := builder.Build(context.Background(), scientistText)
	require.NoError(t, err)

	return path, g
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestShow(t *testing.T) {
	file, g := fixture(t)
	out, logs, err := run(t, "-f", file, "show")
	require.NoError(t, err)

	assert.Equal(t, report.Graph(g)+"\n", out)
	assert.Contains(t, out, "the -> scientist (weight: 2)")
	assert.Contains(t, logs, "Graph created with")
}

func TestShow_NoFile(t *testing.T) {
	out, _, err := run(t, "show")
	require.NoError(t, err)
	assert.Equal(t, report.EmptyGraphMessage+"\n", out)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, _, err := run(t, "-f", filepath.Join(t.TempDir(), "nope.txt"), "show")
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrSourceUnavailable)
}

func TestBridge(t *testing.T) {
	file, g := fixture(t)

	cases := [][2]string{
		{"analyzed", "data"},
		{"Scientist", "ANALYZED"},
		{"the", "team"},
		{"banana", "data"},
	}
	for _, c := range cases {
		out, _, err := run(t, "-f", file, "bridge", c[0], c[1])
		require.NoError(t, err)
		assert.Equal(t, bridge.Find(g, c[0], c[1]).String()+"\n", out, c)
	}

	out, _, err := run(t, "bridge", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, bridge.NoGraphMessage+"\n", out)

	_, _, err = run(t, "-f", file, "bridge", "only-one")
	assert.Error(t, err)
}

func TestGenerate_Seeded(t *testing.T) {
	file, g := fixture(t)
	out, _, err := run(t, "-f", file, "--seed", "11", "generate", "Scientist", "analyzed", "data")
	require.NoError(t, err)

	input := "Scientist analyzed data"
	want := augment.Generate(g, input, augment.WithSeed(11)).String()
	assert.Equal(t, report.Generated(input, want)+"\n", out)
	assert.Equal(t, "Original text: Scientist analyzed data\n\nGenerated text: scientist carefully analyzed the data\n", out)
}

func TestPath(t *testing.T) {
	file, g := fixture(t)

	out, _, err := run(t, "-f", file, "path", "scientist", "team")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.ShortestPath(g, "scientist", "team").String()+"\n", out)

	out, _, err = run(t, "-f", file, "path", "scientist")
	require.NoError(t, err)
	assert.Equal(t, report.ShortestFrom(dijkstra.FromSource(g, "scientist"))+"\n", out)
	assert.True(t, strings.HasPrefix(out, "Shortest paths from 'scientist' to all other words:"))
}

func TestAllPaths(t *testing.T) {
	file, _ := fixture(t)

	out, _, err := run(t, "-f", file, "allpaths", "The", "data")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "All shortest paths from 'the' to 'data':\n\n1. the -> data\n"), out)

	out, _, err = run(t, "-f", file, "allpaths", "again", "the")
	require.NoError(t, err)
	assert.Equal(t, "No path found from 'again' to 'the'\n", out)
}

func TestPageRank(t *testing.T) {
	file, _ := fixture(t)

	out, _, err := run(t, "-f", file, "pagerank", "the")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PageRank of 'the' is: 0."), out)
	assert.Contains(t, out, "\n\nPageRank values of all words (sorted):\nthe: ")

	out, _, err = run(t, "-f", file, "pagerank", "banana")
	require.NoError(t, err)
	assert.Equal(t, "Word 'banana' not found in the graph.\n", out, "no score table for a missing word")

	out, _, err = run(t, "-f", file, "pagerank")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "PageRank values of all words (sorted):", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "the: "))
}

func TestPageRank_InvalidDampingRejected(t *testing.T) {
	file, _ := fixture(t)
	_, _, err := run(t, "-f", file, "--damping", "2", "pagerank")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestWalk_WritesFile(t *testing.T) {
	file, g := fixture(t)
	walkFile := filepath.Join(t.TempDir(), "walk.txt")

	out, _, err := run(t, "-f", file, "--seed", "7", "--walk-file", walkFile, "walk")
	require.NoError(t, err)

	want := walk.Random(g, walk.WithSeed(7))
	assert.Equal(t, report.Walk(want)+"\n", out)

	saved, err := os.ReadFile(walkFile)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(saved))
}

func TestWalk_NoGraphWritesNothing(t *testing.T) {
	walkFile := filepath.Join(t.TempDir(), "walk.txt")
	out, _, err := run(t, "--walk-file", walkFile, "walk")
	require.NoError(t, err)
	assert.Contains(t, out, bridge.NoGraphMessage)

	_, err = os.Stat(walkFile)
	assert.True(t, os.IsNotExist(err))
}

func TestDot(t *testing.T) {
	file, g := fixture(t)
	dotFile := filepath.Join(t.TempDir(), "graph.dot")

	out, _, err := run(t, "-f", file, "--dot-file", dotFile, "dot")
	require.NoError(t, err)
	assert.Equal(t, "DOT graph written to "+dotFile+"\n", out)

	saved, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.Equal(t, dot.Render(g), string(saved))
	assert.True(t, strings.HasPrefix(string(saved), "digraph G {\n  rankdir=LR;\n"), string(saved))

	out, _, err = run(t, "-f", file, "dot", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, dot.Render(g), out)
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))

	out, _, err = run(t, "-f", file, "dot", "--stdout", "--name", "Story")
	require.NoError(t, err)
	assert.Equal(t, dot.Render(g, dot.WithName("Story")), out)
}

func TestConfigFileAndJSONLogs(t *testing.T) {
	file, _ := fixture(t)
	cfgPath := filepath.Join(t.TempDir(), "wordgraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n  format: json\n"), 0o644))

	cmd := newRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", cfgPath, "-f", file, "show"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, stderr.String(), `"msg":"Graph created with`)
	assert.Contains(t, stderr.String(), `"level":"debug"`, "builder summary is logged at debug")
}
