// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: AdjacencyList, the Graph implementation used by the maze carver and tests.
// Determinism:
//   - AllVertices() and AllEdges() return insertion order.
//   - OutgoingEdgesFrom(v) returns edges in the order they were attached to v.
// Concurrency:
//   - Not safe for concurrent mutation; queries return copies.

package core

import (
	"fmt"
	"math"
	"slices"
)

// AdjacencyList is an in-memory Graph with vertices of type V and edges
// carrying a payload of type D.
//
// vertices keeps insertion order, index gives O(1) membership, edges is the
// catalog (each undirected edge once) and outgoing holds per-vertex adjacency
// (undirected edges appear in both endpoint lists, mirrored for the far end).
type AdjacencyList[V comparable, D any] struct {
	directed   bool
	allowLoops bool

	vertices []V
	index    map[V]int
	edges    []Edge[V, D]
	outgoing map[V][]Edge[V, D]
}

// NewAdjacencyList creates an empty graph.
// By default the graph is undirected and rejects self-loops.
// Complexity: O(len(opts)).
func NewAdjacencyList[V comparable, D any](opts ...GraphOption) *AdjacencyList[V, D] {
	var cfg graphOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AdjacencyList[V, D]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		index:      make(map[V]int),
		outgoing:   make(map[V][]Edge[V, D]),
	}
}

// Directed reports whether edges are one-way.
func (g *AdjacencyList[V, D]) Directed() bool { return g.directed }

// AddVertex inserts v if absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *AdjacencyList[V, D]) AddVertex(v V) {
	if _, ok := g.index[v]; ok {
		return
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
}

// HasVertex reports whether v was added.
// Complexity: O(1).
func (g *AdjacencyList[V, D]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// AddEdge creates an edge from→to with the given weight and payload.
// Missing endpoints are added first. For undirected graphs the mirror
// (Reversed) edge is appended to to's outgoing list.
//
// Errors:
//   - ErrBadWeight if weight is NaN.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *AdjacencyList[V, D]) AddEdge(from, to V, weight float64, data D) (Edge[V, D], error) {
	if math.IsNaN(weight) {
		return Edge[V, D]{}, fmt.Errorf("%w: %v->%v", ErrBadWeight, from, to)
	}
	if from == to && !g.allowLoops {
		return Edge[V, D]{}, fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.AddVertex(from)
	g.AddVertex(to)

	e := NewEdge(from, to, weight, data)
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], e)
	if !g.directed && from != to {
		g.outgoing[to] = append(g.outgoing[to], e.Reversed())
	}

	return e, nil
}

// AllVertices returns every vertex in insertion order.
// Complexity: O(V).
func (g *AdjacencyList[V, D]) AllVertices() []V {
	return slices.Clone(g.vertices)
}

// AllEdges returns every edge once, in insertion order.
// Complexity: O(E).
func (g *AdjacencyList[V, D]) AllEdges() []Edge[V, D] {
	return slices.Clone(g.edges)
}

// OutgoingEdgesFrom returns the edges leaving v. Unknown vertices have none.
// Complexity: O(deg(v)).
func (g *AdjacencyList[V, D]) OutgoingEdgesFrom(v V) []Edge[V, D] {
	return slices.Clone(g.outgoing[v])
}

// Degree returns the number of outgoing edges of v (incident edges for
// undirected graphs), or ErrVertexNotFound.
func (g *AdjacencyList[V, D]) Degree(v V) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return len(g.outgoing[v]), nil
}

// VertexCount returns |V|.
func (g *AdjacencyList[V, D]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *AdjacencyList[V, D]) EdgeCount() int { return len(g.edges) }

var _ Graph[string, Edge[string, struct{}]] = (*AdjacencyList[string, struct{}])(nil)
