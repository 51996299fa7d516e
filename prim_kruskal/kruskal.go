// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvmaze/core"
)

// Kruskal computes a minimum spanning tree of the undirected graph g.
//
// Steps:
//  1. No vertices and no edges → success with no edges.
//  2. Copy g.AllEdges() and stable-sort by ascending weight (ties keep input order).
//  3. Make one singleton set per vertex.
//  4. Walk every sorted edge: keep it iff its endpoints have different
//     roots, and union them. Edges past a complete tree are still walked so
//     an endpoint missing from the vertex set is always reported.
//  5. Fewer than |V|−1 edges kept → ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], opts ...Option[V]) MinimumSpanningTree[E] {
	cfg := buildOptions(opts)

	// 1. Trivial graphs.
	vertices := g.AllVertices()
	edges := slices.Clone(g.AllEdges())
	if len(vertices) == 0 && len(edges) == 0 {
		return success[E](nil)
	}

	// 2. Stable sort keeps tie-breaking deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	// 3. One set per vertex.
	sets := cfg.DisjointSets(len(vertices))
	for _, v := range vertices {
		if err := sets.MakeSet(v); err != nil {
			return failure[E](fmt.Errorf("prim_kruskal: vertex %v listed twice: %w", v, err))
		}
	}

	// 4. Cheapest edge joining two components wins.
	want := len(vertices) - 1
	tree := make([]E, 0, max(want, 0))
	for _, e := range edges {
		merged, err := sets.Union(e.From(), e.To())
		if err != nil {
			return failure[E](fmt.Errorf("%w: edge %v-%v: %w", ErrUnknownVertex, e.From(), e.To(), err))
		}
		if merged {
			tree = append(tree, e)
		}
	}

	// 5. A spanning tree has exactly |V|−1 edges.
	if len(tree) != want {
		return failure[E](fmt.Errorf("%w: %d of %d tree edges found", ErrDisconnected, len(tree), want))
	}

	return success(tree)
}
