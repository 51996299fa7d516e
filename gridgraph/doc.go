// SPDX-License-Identifier: MIT
// Package gridgraph models a rectangular grid of rooms separated by walls,
// the raw material of a maze.
//
//   - Rooms are addressed by (X, Y) with 0 ≤ X < Width, 0 ≤ Y < Height and
//     indexed row-major: Index(r) = r.Y*Width + r.X.
//   - Every pair of orthogonally adjacent rooms is separated by one Wall.
//     Walls are numbered densely: for each room in row-major order, its east
//     wall (if any) then its south wall (if any). A W×H grid therefore has
//     (W−1)·H + W·(H−1) walls.
//   - NewWallGraph turns rooms and walls into an undirected core.AdjacencyList
//     whose edges carry their Wall as payload, with weights chosen by the
//     caller (random for carving, unit for distance).
//   - Regions groups rooms into the areas connected through open walls.
//
// A Grid is immutable and safe for concurrent reads.
package gridgraph
