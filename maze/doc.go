// SPDX-License-Identifier: MIT
// Package maze carves perfect mazes out of a gridgraph.Grid and solves them.
//
// Carving works on walls, not rooms. A Carver receives every wall of the grid
// and picks which ones to knock down. KruskalCarver gives each wall a uniform
// random weight in [0, 1), builds the weighted room graph and keeps the walls
// whose edges form its minimum spanning tree. A spanning tree over the rooms
// is exactly a perfect maze: every room is reachable and the path between
// any two rooms is unique.
//
// BacktrackCarver reaches the same kind of tree by a randomized depth-first
// walk, which yields long corridors instead of many short branches.
//
// The carver's randomness comes from a single *rand.Rand. Seeding it (WithSeed)
// makes carving reproducible: the same seed and the same walls, in the same
// order, always yield the same removed walls.
//
// A carved Maze records removed walls in a bitset keyed by wall ID and offers:
//
//   - IsOpen / RemovedWalls / RemainingWalls
//   - PassageGraph: unit-weight graph over open walls
//   - Solve: shortest route between two rooms (package dijkstra)
//   - Regions / IsPerfect: connectivity checks
//   - Distances / LongestRoute: BFS step counts and the maze diameter
//   - Render: ASCII drawing with an optional highlighted path
package maze
