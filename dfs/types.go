// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmaze/core"
)

// ErrStartVertexNotFound indicates that the start vertex does not exist in
// the graph.
var ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

// Option configures optional behavior of DFS traversal.
type Option[V comparable, E core.WeightedEdge[V]] func(*Options[V, E])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V comparable, E core.WeightedEdge[V]] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(v V) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits the search to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→nbr.
	// Return false to skip it.
	FilterNeighbor func(curr, nbr V) bool

	// NeighborOrder, if non-nil, may reorder a vertex's outgoing edges in
	// place before they are explored.
	NeighborOrder func(edges []E)

	// FullTraversal restarts the search from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit, no
// filter, natural neighbour order and single-source traversal.
func DefaultOptions[V comparable, E core.WeightedEdge[V]]() Options[V, E] {
	return Options[V, E]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context. Passing nil has no effect.
func WithContext[V comparable, E core.WeightedEdge[V]](ctx context.Context) Option[V, E] {
	return func(o *Options[V, E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[V comparable, E core.WeightedEdge[V]](fn func(v V) error) Option[V, E] {
	return func(o *Options[V, E]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[V comparable, E core.WeightedEdge[V]](fn func(v V) error) Option[V, E] {
	return func(o *Options[V, E]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit. Negative means no limit.
func WithMaxDepth[V comparable, E core.WeightedEdge[V]](limit int) Option[V, E] {
	return func(o *Options[V, E]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips the edge curr→nbr whenever fn returns false.
// Skipped edges are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[V comparable, E core.WeightedEdge[V]](fn func(curr, nbr V) bool) Option[V, E] {
	return func(o *Options[V, E]) { o.FilterNeighbor = fn }
}

// WithNeighborOrder lets fn reorder each vertex's outgoing edges in place
// before they are explored.
func WithNeighborOrder[V comparable, E core.WeightedEdge[V]](fn func(edges []E)) Option[V, E] {
	return func(o *Options[V, E]) { o.NeighborOrder = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal[V comparable, E core.WeightedEdge[V]]() Option[V, E] {
	return func(o *Options[V, E]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable, E core.WeightedEdge[V]] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its tree depth below its root.
	Depth map[V]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[V]V

	// Via maps each vertex to the edge it was discovered through.
	// Roots do not appear.
	Via map[V]E

	// Visited flags which vertices were reached.
	Visited map[V]bool

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int

	tree []E
}

// TreeEdges returns the discovering edge of every non-root vertex in
// discovery order.
func (r *Result[V, E]) TreeEdges() []E {
	return r.tree
}
