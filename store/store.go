// Package store owns the "current" word graph of an application and replaces
// it wholesale on every load.
//
// Readers call Current and keep the *core.Graph they got for as long as they
// need it; a concurrent Load never mutates that graph, it only publishes a new
// one. Each load is therefore an atomic swap from the readers' point of view.
package store

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
)

// Store publishes one sealed graph at a time.
type Store struct {
	current atomic.Pointer[core.Graph]
	loadMu  sync.Mutex // serializes builds; readers never take it
	loads   atomic.Int64
	opts    []builder.BuilderOption
}

// New returns a Store holding an empty sealed graph. opts are passed to every build.
func New(opts ...builder.BuilderOption) *Store {
	s := &Store{opts: opts}
	empty := core.NewGraph()
	empty.Seal()
	s.current.Store(empty)

	return s
}

// Current returns the graph published by the last successful load. Never nil.
func (s *Store) Current() *core.Graph {
	return s.current.Load()
}

// Loads reports how many loads have succeeded.
func (s *Store) Loads() int64 {
	return s.loads.Load()
}

// Load builds a graph from text and publishes it. On error the previously
// published graph stays current.
func (s *Store) Load(ctx context.Context, text string) (*core.Graph, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	g, err := builder.Build(ctx, text, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}
	s.publish(g)

	return g, nil
}

// LoadReader is Load for a streamed source. Read failures surface as
// builder.ErrSourceUnavailable and leave the current graph untouched.
func (s *Store) LoadReader(ctx context.Context, r io.Reader) (*core.Graph, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	g, err := builder.FromReader(ctx, r, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}
	s.publish(g)

	return g, nil
}

func (s *Store) publish(g *core.Graph) {
	s.current.Store(g)
	s.loads.Add(1)
}
