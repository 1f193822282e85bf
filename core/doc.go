// Package core provides the thread-safe in-memory word graph that every
// analysis package in this module reads.
//
// The Graph G = (V,E) is a directed, weighted simple graph keyed by word:
//
//   - V holds every normalized word seen in the source text, including the
//     last token even when nothing follows it (a sink).
//   - An edge u→v with weight w means "v immediately followed u exactly w times".
//   - Weights are strictly positive; a missing pair is simply absent.
//   - Repeated adjacency increments the existing weight (no parallel edges).
//   - Self-loops are allowed ("very very" yields very→very).
//
// Storage uses nested maps for O(1) membership plus two order-keeping slices:
//
//	adjacency[from][to] = weight
//	order               = vertex IDs, first-insertion order
//	targets[from]       = out-neighbors, first-discovery order
//
// Why the order slices?
//
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() never depend on
//     Go map order, so bridge-word listings, BFS predecessor lists and seeded
//     random walks are reproducible run to run.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddEdge("the", "cat")   // auto-adds both vertices, weight 1
//	g.AddEdge("the", "cat")   // weight 2
//	g.AddVertex("end")        // isolated sink
//	g.Seal()                  // from now on AddEdge/AddVertex → ErrGraphSealed
//
// Core Methods:
//
//	AddVertex(id string) error                  // O(1)
//	AddEdge(from, to string) (int64, error)     // O(1), returns new weight
//	HasVertex(id) bool / HasEdge(from,to) bool  // O(1)
//	Weight(from,to) (int64, bool)               // O(1)
//	Vertices() []string                         // O(V), insertion order
//	Neighbors(id) ([]Edge, error)               // O(deg)
//	NeighborIDs(id) ([]string, error)           // O(deg)
//	OutDegree(id) int64                         // O(deg), weighted
//	Edges() []Edge                              // O(V+E)
//	Stats() *GraphStats                         // O(V+E)
//	Clone() *Graph                              // O(V+E)
//
// Concurrency: one sync.RWMutex. Builders write, then Seal; afterwards the
// graph is read-only and safe for any number of concurrent readers.
package core
