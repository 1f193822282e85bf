// Package dijkstra provides weighted shortest paths over a word graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source word to all
//     reachable words in O((V + E) log V), using a binary heap with lazy decrease-key.
//   - ShortestPath answers a two-word query and classifies every failure as a
//     Result Kind (NoGraph, SourceMissing, TargetMissing, NoPath) instead of an error.
//   - FromSource lists the shortest path from one word to every other reachable word.
//
// Semantics:
//
//   - The cost of a path is the sum of its edge weights (co-occurrence counts).
//     Frequent transitions are therefore "longer", not shorter.
//   - When several paths share the minimum cost, the one whose last hop was
//     relaxed first wins; an equal-cost alternative never replaces it.
//   - The query words are lowercased and trimmed before lookup.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, word1, word2 string, opts ...Option) Result
//	func FromSource(g *core.Graph, word string, opts ...Option) Tree
//
// Example:
//
//	r := dijkstra.ShortestPath(g, "a", "d")
//	fmt.Println(r)
//	// Path from "a" to "d": a -> b -> d
//	// Path length: 2
package dijkstra
