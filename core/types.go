// SPDX-License-Identifier: MIT
// Package core declares the Graph and WeightedEdge capabilities, the Edge value
// type, graph options and sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Weighted is anything carrying a numeric weight.
type Weighted interface {
	Weight() float64
}

// WeightedEdge is the edge capability read by the algorithms: two endpoints
// and a weight. For undirected graphs From/To give the orientation in which
// the edge was reached.
type WeightedEdge[V comparable] interface {
	Weighted
	From() V
	To() V
}

// Graph is the read-only view the algorithms consume.
//
// AllEdges reports every edge once, even for undirected graphs.
// OutgoingEdgesFrom reports, for undirected graphs, both the stored edges
// leaving v and the mirrored copies of the ones entering it.
type Graph[V comparable, E WeightedEdge[V]] interface {
	AllVertices() []V
	AllEdges() []E
	OutgoingEdgesFrom(v V) []E
}

// Edge is a value-type weighted edge carrying an arbitrary payload D
// (for example the wall it stands for in a maze).
type Edge[V comparable, D any] struct {
	from   V
	to     V
	weight float64
	data   D
}

// NewEdge returns an edge from→to with the given weight and payload.
func NewEdge[V comparable, D any](from, to V, weight float64, data D) Edge[V, D] {
	return Edge[V, D]{from: from, to: to, weight: weight, data: data}
}

// From returns the source endpoint.
func (e Edge[V, D]) From() V { return e.from }

// To returns the destination endpoint.
func (e Edge[V, D]) To() V { return e.to }

// Weight returns the edge weight.
func (e Edge[V, D]) Weight() float64 { return e.weight }

// Data returns the payload attached at construction.
func (e Edge[V, D]) Data() D { return e.data }

// Reversed returns the same edge with its endpoints swapped. Weight and payload
// are kept, so a mirror still refers to the same underlying connection.
func (e Edge[V, D]) Reversed() Edge[V, D] {
	return Edge[V, D]{from: e.to, to: e.from, weight: e.weight, data: e.data}
}

// String renders the edge as "from->to(weight)".
func (e Edge[V, D]) String() string {
	return fmt.Sprintf("%v->%v(%g)", e.from, e.to, e.weight)
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight[E Weighted](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}

// graphOptions holds construction-time flags of an AdjacencyList.
type graphOptions struct {
	directed   bool // edges are one-way
	allowLoops bool // permit from == to
}

// GraphOption configures an AdjacencyList before creation.
type GraphOption func(o *graphOptions)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}
