// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: lifecycle flag, sizes and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int   // number of distinct words
	EdgeCount   int   // number of distinct ordered pairs
	TotalWeight int64 // sum of all edge weights (= adjacent token pairs in the source)
	SelfLoops   int   // edges with From == To
	Sinks       int   // vertices with no outgoing edge
	Sealed      bool  // whether the graph is frozen
}

// Seal freezes the graph. After Seal every mutating method returns
// ErrGraphSealed; queries are unaffected. Sealing twice is a no-op.
//
// Complexity: O(1). Acquires the write lock.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sealed
}

// IsEmpty reports whether the graph has no vertices. A nil graph is empty.
//
// Complexity: O(1).
func (g *Graph) IsEmpty() bool {
	if g == nil {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order) == 0
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct directed edges (not the total weight).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Stats produces a deterministic, read-only snapshot of sizes and shape counters.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Walk vertices in insertion order, summing weights and classifying sinks and loops.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
		Sealed:      g.sealed,
	}
	var id, to string
	for _, id = range g.order {
		if len(g.targets[id]) == 0 {
			stats.Sinks++
			continue
		}
		for _, to = range g.targets[id] {
			stats.TotalWeight += g.adjacency[id][to]
			if to == id {
				stats.SelfLoops++
			}
		}
	}

	return &stats
}
