// SPDX-License-Identifier: MIT
// Package dijkstra finds single-source shortest paths in graphs with
// non-negative edge weights, seen through core.Graph.
//
// The search keeps three maps and one queue:
//
//   - dist:     best known distance of every discovered vertex (+Inf until improved);
//   - settled:  vertices whose distance is final;
//   - edgeTo:   the edge reaching each vertex on its best known path;
//   - a minpq.MinPQ of discovered, unsettled vertices keyed by dist.
//
// A vertex joins the queue at +Inf the first time an edge reaches it and is
// lowered with ChangePriority, so each vertex is queued at most once
// (eager decrease-key, unlike a lazy heap that re-pushes duplicates).
// The search stops as soon as the end vertex is settled; when the queue runs
// dry first, the tree covers every vertex reachable from start.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with either queue implementation.
//   - Space: O(V).
//
// Results:
//
//	ShortestPathTree - vertex → incoming edge; start has no entry.
//	ShortestPath     - Success (edges start→end), SingleVertex (start == end)
//	                   or Failure (ErrUnreachable).
//
// Preconditions:
//
//   - Edge weights must be non-negative; this is not checked.
//   - For undirected graphs, OutgoingEdgesFrom(u) must orient every edge away
//     from u (core.AdjacencyList does).
//
// Example:
//
//	sp := dijkstra.FindShortestPath[string, core.Edge[string, struct{}]](g, "A", "C")
//	if !sp.Exists() {
//	    return sp.Err()
//	}
//	fmt.Println(sp.Vertices(), sp.TotalWeight())
package dijkstra
