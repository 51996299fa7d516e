// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) explores as far as possible along each branch
//     before backtracking, from one root or, with WithFullTraversal, from
//     every unvisited vertex in insertion order (a DFS forest).
//   - The walk keeps an explicit stack instead of recursing, so very deep
//     trees such as long maze corridors do not grow the goroutine stack.
//   - Result.Via records the edge that discovered each vertex. The Via edges
//     of a single-root search form a spanning tree of the root's component,
//     which is what a recursive-backtracker maze carves.
//
// Options:
//
//   - WithContext(ctx)           cancellation, checked once per stack step.
//   - WithOnVisit(fn)            pre-order hook; error aborts.
//   - WithOnExit(fn)             post-order hook; error aborts.
//   - WithMaxDepth(limit)        never descend below limit (0 = root only).
//   - WithFilterNeighbor(fn)     skip curr→nbr when fn returns false.
//   - WithNeighborOrder(fn)      reorder a vertex's edges in place before
//     they are explored (for example a random shuffle).
//   - WithFullTraversal()        cover every component.
//
// Errors:
//
//   - ErrStartVertexNotFound  start is not a vertex of g (single-root mode).
//   - context.Canceled        the context was cancelled.
//   - hook errors             wrapped from OnVisit or OnExit; Order is cleared.
//
// Complexity: Time O(V+E) plus hooks, Memory O(V).
package dfs
