// File: walk.go
// Role: Weighted random walk over a word graph.
// Determinism:
//   - Given the same *rand.Rand state, the walk is reproducible: the start is
//     drawn from Vertices() and candidates are laid out in discovery order.
// Concurrency:
//   - Read-only over the graph; each call owns its random source.

// Package walk performs a randomized traversal of a word graph that ends at a
// sink or at the first repeated edge.
package walk

import (
	"context"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/internal/rng"
)

var tracer = otel.Tracer("wordgraph.walk")

// Stop tells why a walk ended.
type Stop int

const (
	// NoGraph: the graph was empty, nothing was walked.
	NoGraph Stop = iota
	// StopSink: the current word has no outgoing edges.
	StopSink
	// StopRepeatedEdge: the drawn edge had already been traversed.
	StopRepeatedEdge
	// StopUnreadable: the current word's successors could not be read.
	StopUnreadable
)

func (s Stop) String() string {
	switch s {
	case NoGraph:
		return "no-graph"
	case StopSink:
		return "sink"
	case StopRepeatedEdge:
		return "repeated-edge"
	case StopUnreadable:
		return "unreadable"
	}
	return "unknown"
}

// Result is the visited word sequence and the reason the walk stopped.
// Len(Path) ≤ |E| + 1 since every appended word consumes a fresh edge.
type Result struct {
	Stop Stop
	Path []string
}

// String joins the path with single spaces; NoGraph renders the no-graph message.
func (r Result) String() string {
	if r.Stop == NoGraph {
		return bridge.NoGraphMessage
	}
	return strings.Join(r.Path, " ")
}

type config struct {
	rnd *rand.Rand
	ctx context.Context
}

// Option configures Random.
type Option func(*config)

// WithRand makes Random draw from r. r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rnd = r }
}

// WithSeed makes Random reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rnd = rng.FromSeed(seed) }
}

// WithContext sets the parent context for tracing and logging.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// edgeKey identifies a traversed edge.
type edgeKey struct{ from, to string }

// Random walks g from a uniformly chosen start word.
//
// Implementation:
//   - Stage 1: pick start uniformly from Vertices().
//   - Stage 2: at a sink, stop.
//   - Stage 3: lay out each neighbor weight times, pick one uniformly
//     (so a neighbor is chosen with probability weight/outDegree).
//   - Stage 4: an edge already walked ends the walk without appending; otherwise
//     mark it, move, and append.
//
// Complexity: O(Σ outDeg) per step for the candidate layout; O(E) steps at most.
func Random(g *core.Graph, opts ...Option) Result {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g.IsEmpty() {
		return Result{Stop: NoGraph}
	}
	rnd := rng.Or(cfg.rnd)

	ctx, span := tracer.Start(cfg.ctx, "walk.Random")
	defer span.End()

	words := g.Vertices()
	cur := words[rnd.Intn(len(words))]
	res := Result{Path: []string{cur}}
	seen := make(map[edgeKey]struct{})
	var cands []string
	for {
		var err error
		cands, err = candidates(g, cur, cands[:0])
		if err != nil {
			span.RecordError(err)
			logx.Logger(ctx).WithError(err).WithField("word", cur).Warn("random walk stopped")
			res.Stop = StopUnreadable
			break
		}
		if len(cands) == 0 {
			res.Stop = StopSink
			break
		}
		next := cands[rnd.Intn(len(cands))]

		k := edgeKey{cur, next}
		if _, dup := seen[k]; dup {
			res.Stop = StopRepeatedEdge
			break
		}
		seen[k] = struct{}{}
		cur = next
		res.Path = append(res.Path, cur)
	}

	span.SetAttributes(
		attribute.Int("steps", len(res.Path)-1),
		attribute.String("stop", res.Stop.String()),
	)
	logx.Logger(ctx).WithFields(logrus.Fields{
		"start": res.Path[0],
		"steps": len(res.Path) - 1,
		"stop":  res.Stop.String(),
	}).Debug("random walk finished")

	return res
}

// candidates appends every successor of cur to buf, each repeated by its edge
// weight, in discovery order.
func candidates(g *core.Graph, cur string, buf []string) ([]string, error) {
	nbs, err := g.Neighbors(cur)
	if err != nil {
		return buf, err
	}
	for _, e := range nbs {
		for i := int64(0); i < e.Weight; i++ {
			buf = append(buf, e.To)
		}
	}

	return buf, nil
}
