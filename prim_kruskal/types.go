// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/disjointset"
	"github.com/katalvlaran/lvmaze/minpq"
)

// ErrDisconnected indicates that the graph has no spanning tree.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownVertex indicates an edge endpoint or root missing from AllVertices.
var ErrUnknownVertex = errors.New("prim_kruskal: vertex not in graph")

// ErrUnknownMethod indicates an unrecognised algorithm name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root with a priority queue).
const MethodPrim = "prim"

// MinimumSpanningTree is the immutable outcome of an MST search.
type MinimumSpanningTree[E core.Weighted] struct {
	edges []E
	err   error
}

func success[E core.Weighted](edges []E) MinimumSpanningTree[E] {
	if edges == nil {
		edges = []E{}
	}

	return MinimumSpanningTree[E]{edges: edges}
}

func failure[E core.Weighted](err error) MinimumSpanningTree[E] {
	return MinimumSpanningTree[E]{err: err}
}

// Exists reports whether a spanning tree was found.
func (t MinimumSpanningTree[E]) Exists() bool { return t.err == nil }

// Edges returns a copy of the tree's edges, or nil on failure.
func (t MinimumSpanningTree[E]) Edges() []E { return slices.Clone(t.edges) }

// Len returns the number of edges in the tree.
func (t MinimumSpanningTree[E]) Len() int { return len(t.edges) }

// TotalWeight sums the tree's edge weights (0 on failure).
func (t MinimumSpanningTree[E]) TotalWeight() float64 { return core.TotalWeight(t.edges) }

// Err returns why no tree exists, or nil.
func (t MinimumSpanningTree[E]) Err() error { return t.err }

// Options configures the MST finders.
//
// Root         - start vertex for Prim; ignored by Kruskal.
// DisjointSets - union-find factory for Kruskal.
// Queue        - priority queue factory for Prim.
type Options[V comparable] struct {
	Root         V
	HasRoot      bool
	DisjointSets disjointset.Factory[V]
	Queue        minpq.Factory[V]
}

// Option configures Options.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns a Forest union-find and an ArrayHeap queue, no root.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		DisjointSets: disjointset.ForestFactory[V](),
		Queue:        minpq.ArrayHeapFactory[V](),
	}
}

// WithRoot sets the vertex Prim grows from.
func WithRoot[V comparable](root V) Option[V] {
	return func(o *Options[V]) {
		o.Root = root
		o.HasRoot = true
	}
}

// WithDisjointSets replaces Kruskal's union-find. Panics on nil.
func WithDisjointSets[V comparable](f disjointset.Factory[V]) Option[V] {
	if f == nil {
		panic("prim_kruskal: WithDisjointSets(nil)")
	}

	return func(o *Options[V]) { o.DisjointSets = f }
}

// WithQueueFactory replaces Prim's priority queue. Panics on nil.
func WithQueueFactory[V comparable](f minpq.Factory[V]) Option[V] {
	if f == nil {
		panic("prim_kruskal: WithQueueFactory(nil)")
	}

	return func(o *Options[V]) { o.Queue = f }
}

func buildOptions[V comparable](opts []Option[V]) Options[V] {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Finder computes a minimum spanning tree.
type Finder[V comparable, E core.WeightedEdge[V]] interface {
	FindMinimumSpanningTree(g core.Graph[V, E]) MinimumSpanningTree[E]
}

// KruskalFinder runs Kruskal with fixed options.
type KruskalFinder[V comparable, E core.WeightedEdge[V]] struct {
	opts []Option[V]
}

// NewKruskalFinder returns a Finder backed by Kruskal.
func NewKruskalFinder[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) KruskalFinder[V, E] {
	return KruskalFinder[V, E]{opts: opts}
}

// FindMinimumSpanningTree implements Finder.
func (f KruskalFinder[V, E]) FindMinimumSpanningTree(g core.Graph[V, E]) MinimumSpanningTree[E] {
	return Kruskal(g, f.opts...)
}

// PrimFinder runs Prim with fixed options.
type PrimFinder[V comparable, E core.WeightedEdge[V]] struct {
	opts []Option[V]
}

// NewPrimFinder returns a Finder backed by Prim.
func NewPrimFinder[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) PrimFinder[V, E] {
	return PrimFinder[V, E]{opts: opts}
}

// FindMinimumSpanningTree implements Finder.
func (f PrimFinder[V, E]) FindMinimumSpanningTree(g core.Graph[V, E]) MinimumSpanningTree[E] {
	return Prim(g, f.opts...)
}

// NewFinder returns the Finder for method (MethodKruskal or MethodPrim).
func NewFinder[V comparable, E core.WeightedEdge[V]](method string, opts ...Option[V]) (Finder[V, E], error) {
	switch method {
	case MethodKruskal:
		return NewKruskalFinder[V, E](opts...), nil
	case MethodPrim:
		return NewPrimFinder[V, E](opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Compute runs the algorithm named by method on g.
//
// The returned error reports only an unknown method; a missing tree is
// reported through the result.
func Compute[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], method string, opts ...Option[V]) (MinimumSpanningTree[E], error) {
	f, err := NewFinder[V, E](method, opts...)
	if err != nil {
		return failure[E](err), err
	}

	return f.FindMinimumSpanningTree(g), nil
}
