// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behaviour. An invalid Option is recorded and
// surfaced as ErrOptionViolation when BFS runs.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks of one search.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor V) bool

	err error
}

// DefaultOptions returns background context, no limit, no filter, no hooks.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnVisit:        func(V, int) error { return nil },
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback. nil is ignored.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0:  visit nothing deeper than d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false. nil is ignored.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
//   - Start:  the source vertex.
//   - Order:  vertices in visit sequence.
//   - Depth:  vertex → hops from Start.
//   - Parent: vertex → predecessor in the BFS tree (Start has none).
type Result[V comparable] struct {
	Start  V
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the Start→dest path.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []V{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// Farthest returns the last visited vertex, which lies at maximum depth,
// and its depth.
func (r *Result[V]) Farthest() (V, int) {
	if len(r.Order) == 0 {
		return r.Start, 0
	}
	last := r.Order[len(r.Order)-1]
	return last, r.Depth[last]
}
