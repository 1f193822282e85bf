// Package augment rewrites a sentence by slipping bridge words from the
// current word graph between adjacent input words.
//
// For every adjacent pair (cur, next) of the normalized input, the bridge
// words from cur to next are looked up; when there is at least one, a single
// one is chosen uniformly at random and inserted. The input words themselves
// are never dropped or reordered.
package augment

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/rng"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Kind classifies a Generate outcome.
type Kind int

const (
	// NoGraph: nothing has been loaded.
	NoGraph Kind = iota
	// Unchanged: the input has at most one word and is returned verbatim.
	Unchanged
	// Generated: the input was re-emitted, possibly with insertions.
	Generated
)

// Insertion records one bridge word placed into the output.
type Insertion struct {
	// Position is the index of the inserted word in Result.Words.
	Position int
	// Bridge is the chosen word.
	Bridge string
	// Candidates are all bridge words that could have been chosen, in discovery order.
	Candidates []string
}

// Result is the outcome of Generate.
type Result struct {
	Kind     Kind
	Input    string
	Words    []string // output words; nil unless Kind == Generated
	Inserted []Insertion
}

// String renders the generated text, the original input for Unchanged, or the
// no-graph message.
func (r Result) String() string {
	switch r.Kind {
	case NoGraph:
		return bridge.NoGraphMessage
	case Unchanged:
		return r.Input
	}

	return strings.Join(r.Words, " ")
}

type config struct {
	rnd *rand.Rand
}

// Option configures Generate.
type Option func(*config)

// WithRand makes Generate draw from r. r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rnd = r }
}

// WithSeed makes Generate reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rnd = rng.FromSeed(seed) }
}

// Generate inserts bridge words into input. The graph is only read.
//
// Implementation:
//   - Stage 1: empty graph ⇒ NoGraph.
//   - Stage 2: tokenize; at most one token ⇒ Unchanged with the raw input.
//   - Stage 3: emit t[0]; for each pair, optionally one random bridge, then t[i+1].
//
// Complexity: O(Σ deg(t[i])) time.
func Generate(g *core.Graph, input string, opts ...Option) Result {
	r := Result{Input: input}
	if g.IsEmpty() {
		r.Kind = NoGraph
		return r
	}
	tokens := tokenize.Tokens(input)
	if len(tokens) <= 1 {
		r.Kind = Unchanged
		return r
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	rnd := rng.Or(cfg.rnd)

	r.Kind = Generated
	r.Words = make([]string, 0, 2*len(tokens)-1)
	r.Words = append(r.Words, tokens[0])
	for i := 0; i+1 < len(tokens); i++ {
		cands := bridge.Words(g, tokens[i], tokens[i+1])
		if len(cands) > 0 {
			b := cands[rnd.Intn(len(cands))]
			r.Inserted = append(r.Inserted, Insertion{
				Position:   len(r.Words),
				Bridge:     b,
				Candidates: cands,
			})
			r.Words = append(r.Words, b)
		}
		r.Words = append(r.Words, tokens[i+1])
	}

	return r
}
