// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/minpq"
)

// ShortestPathTreeFrom runs Dijkstra from start until end is settled or no
// reachable vertex is left.
//
// Steps:
//  1. start == end → empty tree.
//  2. Seed the queue with start at distance 0.
//  3. Remove the closest vertex u and settle it; stop if u == end.
//  4. Relax every edge u→v into an unsettled v (queueing v at +Inf on first
//     sight); a strictly smaller candidate distance replaces v's distance,
//     incoming edge and queue priority.
//
// The error is non-nil only when the queue rejects a distance, which happens
// when an edge weight is NaN.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func ShortestPathTreeFrom[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], start, end V, opts ...Option[V]) (ShortestPathTree[V, E], error) {
	tree := make(ShortestPathTree[V, E])
	// 1. Nothing to search.
	if start == end {
		return tree, nil
	}

	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[V, E]{
		g:       g,
		end:     end,
		dist:    make(map[V]float64),
		settled: make(map[V]bool),
		edgeTo:  tree,
		pq:      cfg.Queue(),
	}
	if err := r.init(start); err != nil {
		return tree, err
	}
	if err := r.process(); err != nil {
		return tree, err
	}

	return tree, nil
}

// FindShortestPath runs ShortestPathTreeFrom and extracts the start→end path.
func FindShortestPath[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], start, end V, opts ...Option[V]) ShortestPath[V, E] {
	tree, err := ShortestPathTreeFrom(g, start, end, opts...)
	if err != nil {
		return ShortestPath[V, E]{status: StatusFailure, start: start, err: err}
	}

	return tree.PathTo(start, end)
}

// runner holds the mutable state of one search.
type runner[V comparable, E core.WeightedEdge[V]] struct {
	g       core.Graph[V, E]       // read-only input
	end     V                      // stop once settled
	dist    map[V]float64          // discovered vertex → best known distance
	settled map[V]bool             // final distances
	edgeTo  ShortestPathTree[V, E] // discovered vertex → best incoming edge
	pq      minpq.MinPQ[V]         // discovered, unsettled vertices
}

// init queues the source at distance zero.
func (r *runner[V, E]) init(start V) error {
	r.dist[start] = 0
	if err := r.pq.Add(start, 0); err != nil {
		return fmt.Errorf("dijkstra: seed %v: %w", start, err)
	}

	return nil
}

// process settles vertices in distance order until end or exhaustion.
func (r *runner[V, E]) process() error {
	for !r.pq.IsEmpty() {
		u, err := r.pq.RemoveMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		r.settled[u] = true
		if u == r.end {
			return nil
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances of u's unsettled neighbours. Assumes dist[u] is final.
func (r *runner[V, E]) relax(u V) error {
	du := r.dist[u]
	for _, e := range r.g.OutgoingEdgesFrom(u) {
		v := e.To()
		if r.settled[v] {
			continue
		}

		// First sight: queue at +Inf so later decreases are ChangePriority calls.
		if _, seen := r.dist[v]; !seen {
			r.dist[v] = math.Inf(1)
			if err := r.pq.Add(v, math.Inf(1)); err != nil {
				return fmt.Errorf("dijkstra: discover %v: %w", v, err)
			}
		}

		candidate := du + e.Weight()
		if math.IsNaN(candidate) {
			return fmt.Errorf("dijkstra: edge %v→%v: %w", u, v, minpq.ErrBadPriority)
		}
		if candidate >= r.dist[v] {
			continue
		}
		r.dist[v] = candidate
		r.edgeTo[v] = e
		if err := r.pq.ChangePriority(v, candidate); err != nil {
			return fmt.Errorf("dijkstra: relax %v: %w", v, err)
		}
	}

	return nil
}
