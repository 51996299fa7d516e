// SPDX-License-Identifier: MIT
package dijkstra

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/minpq"
)

// ErrUnreachable indicates that no path leads from start to end.
var ErrUnreachable = errors.New("dijkstra: end vertex unreachable")

// ShortestPathTree maps each reached vertex to the edge entering it on its
// cheapest known path. The start vertex has no entry.
type ShortestPathTree[V comparable, E core.WeightedEdge[V]] map[V]E

// IncomingEdge returns the tree edge entering v.
func (t ShortestPathTree[V, E]) IncomingEdge(v V) (E, bool) {
	e, ok := t[v]
	return e, ok
}

// PathTo walks incoming edges back from end to start.
//
// start == end yields StatusSingleVertex; a missing incoming edge on the way
// back yields StatusFailure with ErrUnreachable.
func (t ShortestPathTree[V, E]) PathTo(start, end V) ShortestPath[V, E] {
	if start == end {
		return ShortestPath[V, E]{status: StatusSingleVertex, start: start}
	}

	var edges []E
	for cur := end; cur != start; {
		e, ok := t[cur]
		if !ok || len(edges) > len(t) {
			return ShortestPath[V, E]{
				status: StatusFailure,
				start:  start,
				err:    fmt.Errorf("%w: %v from %v", ErrUnreachable, end, start),
			}
		}
		edges = append(edges, e)
		cur = e.From()
	}
	slices.Reverse(edges)

	return ShortestPath[V, E]{status: StatusSuccess, start: start, edges: edges}
}

// Status tags a ShortestPath outcome.
type Status int

const (
	// StatusFailure means end is unreachable from start.
	StatusFailure Status = iota
	// StatusSuccess means a path of one or more edges was found.
	StatusSuccess
	// StatusSingleVertex means start == end; the path is empty.
	StatusSingleVertex
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSingleVertex:
		return "single-vertex"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ShortestPath is the immutable result of a path query.
type ShortestPath[V comparable, E core.WeightedEdge[V]] struct {
	status Status
	start  V
	edges  []E
	err    error
}

// Status returns the outcome tag.
func (p ShortestPath[V, E]) Status() Status { return p.status }

// Exists reports whether a path (possibly empty) exists.
func (p ShortestPath[V, E]) Exists() bool { return p.status != StatusFailure }

// Edges returns the path edges in start→end order.
func (p ShortestPath[V, E]) Edges() []E { return slices.Clone(p.edges) }

// Vertices returns start followed by the head of each edge; nil on failure.
func (p ShortestPath[V, E]) Vertices() []V {
	if p.status == StatusFailure {
		return nil
	}
	vs := make([]V, 0, len(p.edges)+1)
	vs = append(vs, p.start)
	for _, e := range p.edges {
		vs = append(vs, e.To())
	}

	return vs
}

// TotalWeight sums the path's edge weights.
func (p ShortestPath[V, E]) TotalWeight() float64 { return core.TotalWeight(p.edges) }

// Err returns ErrUnreachable (wrapped) on failure, nil otherwise.
func (p ShortestPath[V, E]) Err() error { return p.err }

// Options configures a search.
//
// Queue - factory for the vertex priority queue (default: minpq.ArrayHeap).
type Options[V comparable] struct {
	Queue minpq.Factory[V]
}

// Option configures Options.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns an ArrayHeap-backed configuration.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Queue: minpq.ArrayHeapFactory[V]()}
}

// WithQueueFactory sets the queue factory. Panics on nil.
func WithQueueFactory[V comparable](f minpq.Factory[V]) Option[V] {
	if f == nil {
		panic("dijkstra: WithQueueFactory(nil)")
	}

	return func(o *Options[V]) { o.Queue = f }
}

// WithQueue selects a queue implementation by kind. Panics on an unknown kind.
func WithQueue[V comparable](kind minpq.Kind) Option[V] {
	f, err := minpq.FactoryFor[V](kind)
	if err != nil {
		panic(fmt.Sprintf("dijkstra: WithQueue(%q): %v", kind, err))
	}

	return WithQueueFactory(f)
}

// Finder answers shortest-path queries with fixed options.
type Finder[V comparable, E core.WeightedEdge[V]] interface {
	FindShortestPathTree(g core.Graph[V, E], start, end V) (ShortestPathTree[V, E], error)
	FindShortestPath(g core.Graph[V, E], start, end V) ShortestPath[V, E]
}

// DijkstraFinder is the Finder backed by this package.
type DijkstraFinder[V comparable, E core.WeightedEdge[V]] struct {
	opts []Option[V]
}

// NewFinder returns a DijkstraFinder applying opts to every query.
func NewFinder[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) DijkstraFinder[V, E] {
	return DijkstraFinder[V, E]{opts: opts}
}

// FindShortestPathTree implements Finder.
func (f DijkstraFinder[V, E]) FindShortestPathTree(g core.Graph[V, E], start, end V) (ShortestPathTree[V, E], error) {
	return ShortestPathTreeFrom(g, start, end, f.opts...)
}

// FindShortestPath implements Finder.
func (f DijkstraFinder[V, E]) FindShortestPath(g core.Graph[V, E], start, end V) ShortestPath[V, E] {
	return FindShortestPath(g, start, end, f.opts...)
}
