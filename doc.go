// SPDX-License-Identifier: MIT
// Package lvmaze carves and solves grid mazes on top of a small set of
// generic graph building blocks.
//
// Packages, leaves first:
//
//	core/          generic weighted Graph interface and AdjacencyList
//	minpq/         indexed min-priority queues: ArrayHeap and TreeMap
//	disjointset/   union-find forest with path compression and union by size
//	prim_kruskal/  minimum spanning trees (Kruskal, Prim)
//	dijkstra/      single-source shortest-path trees and paths
//	bfs/, dfs/     unweighted traversals with hooks and limits
//	gridgraph/     rooms, walls and region labelling of a rectangular grid
//	maze/          carvers, the Maze value, solving and text rendering
//	cmd/mazegen/   command-line front end (cobra, viper, zap)
//
// Quick start:
//
//	grid, _ := gridgraph.NewGrid(20, 10)
//	m, _ := maze.Carve(grid, maze.NewKruskalCarver(maze.WithSeed(1)))
//	route := m.Solve(gridgraph.Room{}, gridgraph.Room{X: 19, Y: 9})
//	_ = m.Render(os.Stdout, route.Vertices())
package lvmaze
