// File: path.go
// Role: Word-level shortest-path queries (ShortestPath, FromSource) and their
//       user-facing rendering.
// Determinism:
//   - FromSource lists targets in vertex insertion order.

package dijkstra

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Kind classifies a ShortestPath outcome.
type Kind int

const (
	NoGraph Kind = iota
	SourceMissing
	TargetMissing
	NoPath
	Found
)

// NoGraphMessage is the rendering of a NoGraph result.
const NoGraphMessage = "No graph exists. Please load a file first."

// Result is one shortest-path answer. Path and Length are set only for Found.
type Result struct {
	Kind   Kind
	From   string
	To     string
	Path   []string
	Length int64
}

// String renders r as shown to a user.
func (r Result) String() string {
	switch r.Kind {
	case NoGraph:
		return NoGraphMessage
	case SourceMissing:
		return fmt.Sprintf("Word \"%s\" is not in the graph!", r.From)
	case TargetMissing:
		return fmt.Sprintf("Word \"%s\" is not in the graph!", r.To)
	case NoPath:
		return fmt.Sprintf("No path from \"%s\" to \"%s\"!", r.From, r.To)
	}

	return fmt.Sprintf("Path from \"%s\" to \"%s\": %s\nPath length: %d",
		r.From, r.To, strings.Join(r.Path, " -> "), r.Length)
}

// ShortestPath finds the minimum-total-weight path from word1 to word2.
//
// Implementation:
//   - Stage 1: lowercase and trim both words.
//   - Stage 2: classify NoGraph, SourceMissing, TargetMissing in that order.
//   - Stage 3: word1 == word2 is Found with the one-word path and length 0.
//   - Stage 4: run Dijkstra with word2 as early-stop target and walk prev back.
//
// opts may carry WithMaxDistance or WithContext; Source and Target are set here.
func ShortestPath(g *core.Graph, word1, word2 string, opts ...Option) Result {
	r := Result{From: tokenize.Word(word1), To: tokenize.Word(word2)}
	switch {
	case g.IsEmpty():
		r.Kind = NoGraph
		return r
	case !g.HasVertex(r.From):
		r.Kind = SourceMissing
		return r
	case !g.HasVertex(r.To):
		r.Kind = TargetMissing
		return r
	case r.From == r.To:
		r.Kind = Found
		r.Path = []string{r.From}
		return r
	}

	all := append(append([]Option{}, opts...), Source(r.From), WithTarget(r.To), WithReturnPath())
	dist, prev, err := Dijkstra(g, all...)
	if err != nil || dist[r.To] == math.MaxInt64 {
		r.Kind = NoPath
		return r
	}

	r.Kind = Found
	r.Path = walkBack(prev, r.From, r.To)
	r.Length = dist[r.To]

	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	logx.Logger(cfg.Ctx).WithFields(logrus.Fields{
		"from":   r.From,
		"to":     r.To,
		"hops":   len(r.Path) - 1,
		"length": r.Length,
	}).Debug("shortest path found")

	return r
}

// walkBack rebuilds from→…→to from the predecessor map.
func walkBack(prev map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Tree is the single-source answer: the shortest path from Source to every
// other reachable word.
type Tree struct {
	Kind   Kind // NoGraph, SourceMissing or Found
	Source string
	Paths  []Result // Found results only, in vertex insertion order
}

// FromSource computes shortest paths from word to every other word in one
// Dijkstra run. Unreachable words are omitted. Each Path equals what
// ShortestPath(g, word, target) would report.
func FromSource(g *core.Graph, word string, opts ...Option) Tree {
	t := Tree{Source: tokenize.Word(word)}
	switch {
	case g.IsEmpty():
		t.Kind = NoGraph
		return t
	case !g.HasVertex(t.Source):
		t.Kind = SourceMissing
		return t
	}

	all := append(append([]Option{}, opts...), Source(t.Source), WithReturnPath())
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		t.Kind = SourceMissing
		return t
	}

	t.Kind = Found
	for _, v := range g.Vertices() {
		if v == t.Source || dist[v] == math.MaxInt64 {
			continue
		}
		t.Paths = append(t.Paths, Result{
			Kind:   Found,
			From:   t.Source,
			To:     v,
			Path:   walkBack(prev, t.Source, v),
			Length: dist[v],
		})
	}

	return t
}
