// SPDX-License-Identifier: MIT
// Package prim_kruskal computes minimum spanning trees of undirected weighted
// graphs seen through core.Graph.
//
// What & Why
//
//   - A minimum spanning tree (MST) of a connected undirected graph G = (V, E)
//     is a subset T ⊆ E of |V|−1 edges connecting every vertex with the least
//     possible total weight.
//   - A maze is a spanning tree of the room-adjacency graph: carving random
//     weights and taking the MST yields a perfect maze (see package maze).
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) MinimumSpanningTree[E]
//
//   - Strategy: stable-sort all edges by weight, then walk them cheapest first,
//     keeping an edge iff its endpoints lie in different disjoint sets and
//     merging those sets. Ties keep the order of g.AllEdges().
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Prim(g, opts...) MinimumSpanningTree[E]
//
//   - Strategy: grow one tree from a root vertex. An extrinsic minpq.MinPQ holds
//     every discovered vertex keyed by the cheapest edge reaching it from the
//     tree; a cheaper edge lowers the key with ChangePriority.
//
//   - Complexity: O(E log V) time, O(V) space.
//
// Both finders return the same total weight on any graph; when several MSTs
// exist they may choose different edges.
//
// Result
//
// A MinimumSpanningTree is either a success carrying its edges or a failure
// carrying an error. A graph with fewer than two vertices always succeeds with
// no edges. A disconnected graph fails with ErrDisconnected; there is no
// partial forest. An edge whose endpoint is not in g.AllVertices() is a broken
// graph and fails with ErrUnknownVertex.
//
// Options
//
//   - WithRoot(v):          start vertex for Prim (default: first vertex).
//   - WithDisjointSets(f):  union-find used by Kruskal (default: disjointset.Forest).
//   - WithQueueFactory(f):  priority queue used by Prim (default: minpq.ArrayHeap).
//
// Edges must have non-NaN weights; negative weights are fine.
package prim_kruskal
