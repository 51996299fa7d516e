// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Prim computes a minimum spanning tree of the undirected graph g by growing
// a tree from the root vertex (WithRoot, default the first vertex).
//
// Steps:
//  1. No vertices → success with no edges (or ErrUnknownVertex if edges exist).
//  2. Validate the root and seed the queue with it at priority 0.
//  3. Repeatedly remove the cheapest vertex u, add it to the tree together with
//     the edge that reached it, then for every edge u→v with v outside the tree:
//     queue v at the edge weight, or lower v's priority if the edge is cheaper.
//  4. Fewer than |V|−1 tree edges → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], opts ...Option[V]) MinimumSpanningTree[E] {
	cfg := buildOptions(opts)

	// 1. Trivial graphs.
	vertices := g.AllVertices()
	if len(vertices) == 0 {
		if len(g.AllEdges()) > 0 {
			return failure[E](fmt.Errorf("%w: edges without vertices", ErrUnknownVertex))
		}
		return success[E](nil)
	}
	known := make(map[V]struct{}, len(vertices))
	for _, v := range vertices {
		known[v] = struct{}{}
	}

	// 2. Root.
	root := vertices[0]
	if cfg.HasRoot {
		if _, ok := known[cfg.Root]; !ok {
			return failure[E](fmt.Errorf("%w: root %v", ErrUnknownVertex, cfg.Root))
		}
		root = cfg.Root
	}

	pq := cfg.Queue()
	if err := pq.Add(root, 0); err != nil {
		return failure[E](fmt.Errorf("prim_kruskal: %w", err))
	}
	best := make(map[V]E, len(vertices))    // cheapest known edge into each queued vertex
	inTree := make(map[V]bool, len(vertices)) // settled vertices
	tree := make([]E, 0, len(vertices)-1)

	// 3. Grow.
	for !pq.IsEmpty() {
		u, err := pq.RemoveMin()
		if err != nil {
			return failure[E](fmt.Errorf("prim_kruskal: %w", err))
		}
		inTree[u] = true
		if e, ok := best[u]; ok {
			tree = append(tree, e)
			delete(best, u)
		}

		for _, e := range g.OutgoingEdgesFrom(u) {
			v := e.To()
			if _, ok := known[v]; !ok {
				return failure[E](fmt.Errorf("%w: edge %v-%v", ErrUnknownVertex, u, v))
			}
			if inTree[v] {
				continue
			}
			w := e.Weight()
			if !pq.Contains(v) {
				if err = pq.Add(v, w); err != nil {
					return failure[E](fmt.Errorf("prim_kruskal: %w", err))
				}
				best[v] = e
				continue
			}
			if w < best[v].Weight() {
				if err = pq.ChangePriority(v, w); err != nil {
					return failure[E](fmt.Errorf("prim_kruskal: %w", err))
				}
				best[v] = e
			}
		}
	}

	// 4. Spanning check.
	if want := len(vertices) - 1; len(tree) != want {
		return failure[E](fmt.Errorf("%w: %d of %d tree edges found", ErrDisconnected, len(tree), want))
	}

	return success(tree)
}
