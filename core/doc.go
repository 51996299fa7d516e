// SPDX-License-Identifier: MIT
// Package core defines the graph capability consumed by every algorithm in
// lvmaze, together with a small adjacency-list implementation of it.
//
// The algorithms never mutate their input. They see a graph only through the
// read-only Graph interface:
//
//	AllVertices() []V              // every vertex, exactly once
//	AllEdges() []E                 // every edge, exactly once (undirected edges are not duplicated)
//	OutgoingEdgesFrom(v V) []E     // edges leaving v; for undirected graphs this includes mirrors
//
// and edges only through WeightedEdge:
//
//	From() V, To() V, Weight() float64
//
// Any type that provides these methods can be handed to prim_kruskal or
// dijkstra. AdjacencyList is the implementation shipped here:
//
//   - Generic over the vertex type V (any comparable value) and an edge payload D.
//   - Directed or undirected (WithDirected); undirected edges are stored once in
//     the edge catalog and mirrored (Reversed) in the outgoing lists.
//   - Self-loops are rejected unless WithLoops is given (ErrLoopNotAllowed).
//   - NaN weights are rejected (ErrBadWeight); negative and infinite weights are
//     accepted, algorithms document their own preconditions.
//   - Deterministic iteration: vertices and edges are reported in insertion order.
//
// Errors:
//
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrBadWeight      - NaN edge weight.
//	ErrVertexNotFound - query on a vertex that was never added.
//
// AdjacencyList is not safe for concurrent mutation. Once built it may be read
// from several goroutines, since every query copies out of the internal storage.
package core
