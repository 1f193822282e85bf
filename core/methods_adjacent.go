// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/NeighborIDs/OutDegree.
// Determinism:
//   - All results follow first-discovery order of the out-edges.

package core

// Neighbors returns the outgoing edges of id in discovery order.
//
// Errors:
//   - ErrEmptyVertexID: id == "".
//   - ErrVertexNotFound: id is not a vertex.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	tos := g.targets[id]
	out := make([]Edge, len(tos))
	for i, to := range tos {
		out[i] = Edge{From: id, To: to, Weight: g.adjacency[id][to]}
	}

	return out, nil
}

// NeighborIDs returns the out-neighbors of id in discovery order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(g.targets[id]))
	copy(out, g.targets[id])

	return out, nil
}

// OutDegree returns the weighted out-degree of id: the sum of the weights of
// its outgoing edges. Unknown vertices and sinks report 0.
//
// Complexity: O(deg(id)).
func (g *Graph) OutDegree(id string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for _, w := range g.adjacency[id] {
		sum += w
	}

	return sum
}

// Incoming returns, for every vertex with at least one predecessor, its
// incoming edges. Each slice follows Edges() order.
//
// Complexity: O(V+E).
func (g *Graph) Incoming() map[string][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	in := make(map[string][]Edge, len(g.order))
	for _, from := range g.order {
		for _, to := range g.targets[from] {
			in[to] = append(in[to], Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}

	return in
}
