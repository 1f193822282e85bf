// Package dijkstra implements Dijkstra's shortest-path algorithm on word graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst case in the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Word-graph weights are positive by construction, so no negative-weight scan is needed.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop as soon as the optional Target is popped.
//   - Relaxation uses strict "<": an equal-cost alternative never replaces a predecessor.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordgraph/core"
)

var tracer = otel.Tracer("wordgraph.dijkstra")

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable
//     or not finalized before an early stop).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; "" for the source
//     and for unreached vertices.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound, checked in that order.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	_, span := tracer.Start(cfg.Ctx, "dijkstra.Dijkstra",
		trace.WithAttributes(
			attribute.String("source", cfg.Source),
			attribute.String("target", cfg.Target),
			attribute.Int("node_count", g.VertexCount()),
		))
	defer span.End()

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	span.SetAttributes(attribute.Int("finalized", r.finalized))

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *core.Graph       // The input graph; read-only within Dijkstra.
	options   Options           // Configuration options.
	dist      map[string]int64  // Maps vertex ID → current best distance from Source.
	prev      map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited   map[string]bool   // Tracks if a vertex's distance is finalized.
	pq        nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	finalized int
}

// init sets dist=+∞ everywhere except the source, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// outgoing edges, until the heap drains, MaxDistance is exceeded, or Target
// is finalized.
func (r *runner) process() error {
	cfg := r.options
	var u string
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// Stale entry.
		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}

		r.visited[u] = true
		r.finalized++
		if cfg.Target != "" && u == cfg.Target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every out-neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var newDist int64
	for _, e := range neighbors {
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; ties keep the first-found predecessor.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
