// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Build always returns a fresh, sealed core.Graph; it never merges into an
//     existing one. Replacing the "current" graph is the caller's (or store's) job.
//   - Determinism: the same text yields identical vertex and edge order.
//   - Safety: never panic; only ErrSourceUnavailable / ErrConstructFailed escape.

package builder

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/tokenize"
)

var tracer = otel.Tracer("wordgraph.builder")

// Build normalizes text and returns the sealed word graph for it.
//
// Steps:
//  1. tokens := tokenize.Tokens(text).
//  2. For i in [0, n-2]: AddEdge(tokens[i], tokens[i+1]).
//  3. Register tokens[n-1] so a final word with no successor is still a vertex.
//  4. Seal.
//
// Zero tokens ⇒ empty graph; one token ⇒ one isolated vertex.
//
// Complexity: O(len(text)) time, O(V+E) space.
func Build(ctx context.Context, text string, opts ...BuilderOption) (*core.Graph, error) {
	return FromTokens(ctx, tokenize.Tokens(text), opts...)
}

// FromTokens builds the graph from an already-normalized token sequence.
// Tokens are used verbatim; empty tokens are skipped.
func FromTokens(ctx context.Context, tokens []string, opts ...BuilderOption) (*core.Graph, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newBuilderConfig(opts...)
	log := cfg.logger
	if log == nil {
		log = logx.Logger(ctx)
	}

	ctx, span := tracer.Start(ctx, "builder.Build",
		trace.WithAttributes(attribute.Int("token_count", len(tokens))))
	defer span.End()

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			words = append(words, tok)
		}
	}

	g := core.NewGraph(core.WithCapacity(len(words) / 2))
	for i := 0; i+1 < len(words); i++ {
		if i%cfg.checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				span.AddEvent("cancelled")
				return nil, fmt.Errorf("%w: after %d tokens: %v", ErrConstructFailed, i, err)
			}
		}
		if _, err := g.AddEdge(words[i], words[i+1]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConstructFailed, err)
		}
	}
	if n := len(words); n > 0 {
		if err := g.AddVertex(words[n-1]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConstructFailed, err)
		}
	}
	g.Seal()

	stats := g.Stats()
	span.SetAttributes(
		attribute.Int("node_count", stats.VertexCount),
		attribute.Int("edge_count", stats.EdgeCount),
	)
	log.WithFields(logrus.Fields{
		"tokens": len(words),
		"nodes":  stats.VertexCount,
		"edges":  stats.EdgeCount,
	}).Debug("word graph built")

	return g, nil
}

// FromReader reads the whole source from r and builds its graph.
// A nil reader or any read error is reported as ErrSourceUnavailable.
func FromReader(ctx context.Context, r io.Reader, opts ...BuilderOption) (*core.Graph, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrSourceUnavailable)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return Build(ctx, string(data), opts...)
}
