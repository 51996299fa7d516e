// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/minpq"
)

// gridGraph returns an n×n 4-neighbour grid with unit weights.
func gridGraph(n int) *core.AdjacencyList[int, struct{}] {
	g := core.NewAdjacencyList[int, struct{}]()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := y*n + x
			g.AddVertex(id)
			if x+1 < n {
				_, _ = g.AddEdge(id, id+1, 1, struct{}{})
			}
			if y+1 < n {
				_, _ = g.AddEdge(id, id+n, 1, struct{}{})
			}
		}
	}

	return g
}

func benchmarkCorner(b *testing.B, kind minpq.Kind) {
	const n = 100
	g := gridGraph(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.FindShortestPath[int, iedge](g, 0, n*n-1, dijkstra.WithQueue[int](kind))
	}
}

func BenchmarkDijkstra_ArrayHeap(b *testing.B) { benchmarkCorner(b, minpq.KindArrayHeap) }
func BenchmarkDijkstra_TreeMap(b *testing.B)   { benchmarkCorner(b, minpq.KindTreeMap) }
