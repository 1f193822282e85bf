// Package pagerank ranks the words of a word graph by weighted PageRank.
//
// Each word starts at 1/N. On every iteration
//
//	new(n) = (1-d)/N + d * Σ_{s→n} rank(s) * w(s,n) / outDeg(s)
//
// where outDeg(s) is the summed weight of s's outgoing edges. Words without
// outgoing edges pass nothing on; their mass is not redistributed, so the
// vector is divided by its sum once iteration ends. Iteration stops when the
// summed absolute change drops below Epsilon, or after MaxIterations.
//
// Every call recomputes from scratch; nothing is cached between calls.
package pagerank

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/tokenize"
)

var tracer = otel.Tracer("wordgraph.pagerank")

// Result is the full score vector of one computation.
type Result struct {
	// Scores maps word to normalized score. Scores sum to 1 (within rounding).
	Scores map[string]float64

	// Iterations is the number of iterations performed.
	Iterations int

	// Converged reports whether Delta fell below Epsilon before MaxIterations.
	Converged bool

	// Delta is the summed absolute change of the last iteration.
	Delta float64
}

// Score is one entry of a ranking.
type Score struct {
	Word  string
	Score float64
}

// Compute runs PageRank over every word of g. A nil or empty graph yields an
// empty, converged result.
//
// Complexity: O(k × (V + E)) for k iterations; O(V + E) memory.
func Compute(g *core.Graph, opts ...Option) *Result {
	o := resolve(opts)
	ctx, span := tracer.Start(o.Ctx, "pagerank.Compute",
		trace.WithAttributes(
			attribute.Float64("damping_factor", o.DampingFactor),
			attribute.Int("max_iterations", o.MaxIterations),
			attribute.Float64("epsilon", o.Epsilon),
		))
	defer span.End()

	if g.IsEmpty() {
		span.AddEvent("empty_graph")
		return &Result{Scores: map[string]float64{}, Converged: true}
	}

	words := g.Vertices()
	incoming := g.Incoming()
	n := float64(len(words))
	d := o.DampingFactor
	span.SetAttributes(attribute.Int("node_count", len(words)))

	outDeg := make(map[string]float64, len(words))
	for _, w := range words {
		outDeg[w] = float64(g.OutDegree(w))
	}

	scores := make(map[string]float64, len(words))
	next := make(map[string]float64, len(words))
	for _, w := range words {
		scores[w] = 1 / n
	}

	res := &Result{}
	base := (1 - d) / n
	for res.Iterations < o.MaxIterations {
		res.Iterations++
		var delta float64
		for _, w := range words {
			var sum float64
			for _, e := range incoming[w] {
				// Sources of an edge always have outDeg ≥ its weight > 0.
				sum += scores[e.From] * float64(e.Weight) / outDeg[e.From]
			}
			next[w] = base + d*sum
			delta += math.Abs(next[w] - scores[w])
		}
		scores, next = next, scores
		res.Delta = delta
		if delta < o.Epsilon {
			res.Converged = true
			break
		}
	}

	var total float64
	for _, w := range words {
		total += scores[w]
	}
	if total > 0 {
		for _, w := range words {
			scores[w] /= total
		}
	}
	res.Scores = scores

	span.SetAttributes(
		attribute.Int("iterations", res.Iterations),
		attribute.Bool("converged", res.Converged),
		attribute.Float64("delta", res.Delta),
	)
	logx.Logger(ctx).WithFields(logrus.Fields{
		"nodes":      len(words),
		"iterations": res.Iterations,
		"converged":  res.Converged,
		"delta":      res.Delta,
	}).Debug("pagerank computed")

	return res
}

// Rank returns the normalized PageRank of word (lowercased and trimmed).
// ok is false when the graph is empty or the word is not in it.
func Rank(g *core.Graph, word string, opts ...Option) (score float64, ok bool) {
	word = tokenize.Word(word)
	if g.IsEmpty() || !g.HasVertex(word) {
		return 0, false
	}

	return Compute(g, opts...).Scores[word], true
}

// Ranked returns every word with its score, highest first; ties sort by word.
func Ranked(g *core.Graph, opts ...Option) []Score {
	return Sorted(Compute(g, opts...).Scores)
}

// Sorted orders a score map highest first, breaking ties by word.
func Sorted(scores map[string]float64) []Score {
	out := make([]Score, 0, len(scores))
	for w, s := range scores {
		out = append(out, Score{Word: w, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})

	return out
}
