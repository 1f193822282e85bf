// Package core defines the central word Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying word graphs.
//
// A single sync.RWMutex guards the vertex catalog, the adjacency buckets and
// the sealed flag, so any number of readers may query a graph concurrently
// while a builder is the only writer.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrGraphSealed    - mutation attempted after Seal().
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrGraphSealed indicates a mutation was attempted on a sealed graph.
	ErrGraphSealed = errors.New("core: graph is sealed")
)

// Vertex represents a word in the graph.
//
// Index is the position at which the word was first registered; it is
// stable for the lifetime of the graph and drives every enumeration order.
type Vertex struct {
	// ID is the normalized word.
	ID string

	// Index is the zero-based first-insertion position.
	Index int
}

// Edge represents the directed adjacency From→To.
//
// Weight counts how many times To immediately followed From in the source
// text. Edges stored in a Graph always have Weight ≥ 1.
type Edge struct {
	// From is the source word.
	From string

	// To is the word that followed From.
	To string

	// Weight is the co-occurrence count.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for roughly n distinct words.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory word adjacency graph.
//
// It is always directed and weighted, permits self-loops, and never holds
// parallel edges: a repeated adjacency increments the existing weight.
//
// order keeps vertex IDs in first-insertion order; targets[from] keeps the
// out-neighbors of from in first-discovery order. Both orders are what every
// algorithm in this module iterates over, which makes all outputs reproducible.
type Graph struct {
	mu sync.RWMutex // guards everything below

	sealed   bool // set once by Seal; mutations are rejected afterwards
	capacity int  // construction-time size hint

	// Storage
	order     []string                    // vertex IDs in insertion order
	vertices  map[string]*Vertex          // vertex ID → Vertex
	adjacency map[string]map[string]int64 // adjacency[from][to] = weight
	targets   map[string][]string         // targets[from] = to-IDs in discovery order
	edgeCount int                         // number of distinct (from,to) pairs
}

// NewGraph creates an empty, unsealed Graph.
// Complexity: O(1) plus the optional capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.order = make([]string, 0, g.capacity)
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.adjacency = make(map[string]map[string]int64, g.capacity)
	g.targets = make(map[string][]string, g.capacity)

	return g
}
