// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges.
// Determinism:
//   - Edges() groups by source in vertex insertion order, then by target discovery order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge records one more occurrence of "to immediately follows from".
//
// Steps:
//  1. Validate IDs.
//  2. Lock, reject sealed graphs.
//  3. Ensure both endpoints exist (from first, so insertion order follows the text).
//  4. If the pair is new, append to from's discovery list and count it; then increment.
//
// Returns the weight of the edge after the increment.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrGraphSealed: the graph has been sealed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (int64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return 0, ErrGraphSealed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	bucket := g.adjacency[from]
	if _, exists := bucket[to]; !exists {
		g.targets[from] = append(g.targets[from], to)
		g.edgeCount++
	}
	bucket[to]++

	return bucket[to], nil
}

// HasEdge reports whether the directed edge from→to exists.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// A missing edge reports (0, false); stored edges are never zero.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns every edge of the graph.
//
// Order: sources in vertex insertion order; for each source, targets in
// first-discovery order. Each Edge is a value copy.
//
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var from, to string
	for _, from = range g.order {
		for _, to = range g.targets[from] {
			out = append(out, Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}

	return out
}
