// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on word graphs.
//
// Edge weights in a word graph are co-occurrence counts (always ≥ 1), so the
// "shortest" path is the one whose summed counts are smallest.
//
// Options:
//
//	– Source:      starting word (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond are skipped.
//	– Target:      optional word whose extraction from the queue ends the search.
//	– Context:     parent context for tracing and logging.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID.
// Target      – if non-empty, the search stops as soon as Target is finalized.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
type Options struct {
	Source      string          // The ID of the source vertex
	Target      string          // Optional early-stop vertex
	ReturnPath  bool            // Whether to return the predecessor map
	MaxDistance int64           // Maximum distance to explore
	Ctx         context.Context // Parent context for spans and logging
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called for Dijkstra.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget stops the search once target has been popped from the queue:
// its distance is final at that point and nothing after it can change it.
// Distances of vertices not yet finalized are left as found so far.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithContext sets the parent context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options for the given source with no target,
// no path map, no distance cap and a background context.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}
