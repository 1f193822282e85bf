// Package wordgraph turns a text into a directed, weighted graph of adjacent
// words and answers questions about it.
//
// 🚀 What is wordgraph?
//
//	Every pair of consecutive words "a b" in the text becomes an edge a→b;
//	repeating the pair raises the edge weight by one. On top of that graph:
//		• Bridge words: B such that a→B→b
//		• Text augmentation: insert a random bridge between adjacent words
//		• Shortest paths: weighted (Dijkstra) and all fewest-hop paths (BFS)
//		• PageRank: weighted word importance
//		• Random walks: weight-proportional, stop on a sink or a repeated edge
//		• DOT export for Graphviz
//
// ✨ Guarantees
//
//   - Deterministic – vertices and edges keep first-seen order everywhere
//   - Immutable after load – a built graph is sealed, so readers need no locks
//   - Reproducible – every randomized operation accepts a seed
//
// Packages:
//
//	core/      — Graph, Vertex, Edge; insertion-ordered, sealable
//	tokenize/  — text → lowercase ASCII-letter words
//	builder/   — text, tokens or io.Reader → sealed *core.Graph
//	store/     — holds the current graph, replaced wholesale on each load
//	bridge/    — bridge word queries
//	augment/   — bridge-word insertion into new text
//	dijkstra/  — weighted shortest path, single-source trees
//	bfs/       — breadth-first traversal, all shortest paths by hop count
//	pagerank/  — weighted PageRank
//	walk/      — random walk
//	dot/       — Graphviz export
//	report/    — plain-text rendering for the command line
//	cmd/wordgraph — the command-line tool
//
// Quick example:
//
//	"the cat sat on the mat"
//
//	the ──▶ cat ──▶ sat ──▶ on
//	 ▲                       │
//	 └───────────────────────┘
//	the ──▶ mat
//
//	go install github.com/katalvlaran/wordgraph/cmd/wordgraph@latest
package wordgraph
