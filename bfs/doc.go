// Package bfs provides breadth-first search over a word graph, returning
// hop distances, parent links, visit order, and every minimum-hop path.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → first predecessor in the BFS tree
//   - Parents: map from vertex → all predecessors one level up
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// All shortest paths
//
//	AllShortestPaths(g, w1, w2) ignores weights entirely, unlike the
//	dijkstra package: a path's length is its number of hops. Each path is
//	rebuilt by walking back from w2 through every recorded predecessor.
//
// Determinism
//
//	Neighbors come back in first-discovery order, and BFS enqueues them in that
//	order, so the visit sequence and the order of enumerated paths are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Traversal: O(V + E) time, O(V + E) memory (Parents may hold one entry per edge).
//   - Enumeration: proportional to the number of paths times their length.
//
// Usage
//
//	paths := bfs.AllShortestPaths(g, "a", "d")
//	for i, p := range paths {
//		fmt.Printf("%d. %s\n", i+1, strings.Join(p, " -> "))
//	}
package bfs
