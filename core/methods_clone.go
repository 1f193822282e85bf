// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones preserve vertex insertion order and edge discovery order exactly.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unsealed graph.

package core

// Clone returns a deep, unsealed copy of g. Mutating the clone never affects g,
// which is how a caller derives a new graph from a sealed one.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.order)))
	var id, to string
	for _, id = range g.order {
		clone.addVertexLocked(id)
	}
	for _, id = range g.order {
		if n := len(g.targets[id]); n > 0 {
			clone.targets[id] = make([]string, n)
			copy(clone.targets[id], g.targets[id])
		}
		for _, to = range g.targets[id] {
			clone.adjacency[id][to] = g.adjacency[id][to]
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
