// Package builder turns raw text into a sealed core.Graph.
//
// It is the only producer of graphs in this module; every analysis package
// (bridge, augment, dijkstra, bfs, pagerank, walk, dot) only reads what
// builder returns.
//
// The package offers:
//
//   - Build(ctx, text, opts...)       — normalize text with package tokenize and build.
//   - FromTokens(ctx, tokens, opts...) — build from an existing token sequence.
//   - FromReader(ctx, r, opts...)     — read everything from r first; read failures
//     are wrapped in ErrSourceUnavailable.
//   - BuilderOption values: WithLogger, WithCheckEvery.
//
// Guarantees:
//
//   - Every token becomes a vertex, including the final one.
//   - Edge weights count adjacent occurrences; no zero weights, no parallel edges.
//   - Returned graphs are sealed; a reload builds a new graph instead of mutating.
//   - A debug summary (tokens, nodes, edges) is logged through logrus and the
//     build is wrapped in an OpenTelemetry span.
package builder
