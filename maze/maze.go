// SPDX-License-Identifier: MIT
package maze

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrForeignWall indicates a carver returned a wall the grid does not have.
var ErrForeignWall = errors.New("maze: wall does not belong to grid")

// Maze is a grid plus the set of removed walls. It is immutable.
type Maze struct {
	grid    *gridgraph.Grid
	removed *bitset.BitSet // wall ID → removed
}

// Carve asks carver for the walls to remove from every wall of grid.
func Carve(grid *gridgraph.Grid, carver Carver) (*Maze, error) {
	walls, err := carver.ChooseWallsToRemove(grid.Walls())
	if err != nil {
		return nil, err
	}

	m := &Maze{grid: grid, removed: bitset.New(uint(grid.WallCount()))}
	for _, w := range walls {
		if !grid.Contains(w) {
			return nil, fmt.Errorf("%w: %v", ErrForeignWall, w)
		}
		m.removed.Set(uint(w.ID))
	}

	return m, nil
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *gridgraph.Grid { return m.grid }

// IsOpen reports whether w has been removed.
func (m *Maze) IsOpen(w gridgraph.Wall) bool {
	return m.grid.Contains(w) && m.removed.Test(uint(w.ID))
}

// RemovedCount returns the number of removed walls.
func (m *Maze) RemovedCount() int { return int(m.removed.Count()) }

// RemovedWalls returns the removed walls ordered by ID.
func (m *Maze) RemovedWalls() []gridgraph.Wall {
	out := make([]gridgraph.Wall, 0, m.removed.Count())
	for i, ok := m.removed.NextSet(0); ok; i, ok = m.removed.NextSet(i + 1) {
		w, _ := m.grid.Wall(int(i))
		out = append(out, w)
	}

	return out
}

// RemainingWalls returns the walls still standing, ordered by ID.
func (m *Maze) RemainingWalls() []gridgraph.Wall {
	out := make([]gridgraph.Wall, 0, m.grid.WallCount()-m.RemovedCount())
	for _, w := range m.grid.Walls() {
		if !m.removed.Test(uint(w.ID)) {
			out = append(out, w)
		}
	}

	return out
}

// PassageGraph returns the unit-weight graph of open passages over all rooms.
func (m *Maze) PassageGraph() *core.AdjacencyList[gridgraph.Room, gridgraph.Wall] {
	// Removed walls come from the grid: never loops, weight never NaN.
	graph, err := gridgraph.NewWallGraph(m.grid.Rooms(), m.RemovedWalls(), func(gridgraph.Wall) float64 { return 1 })
	if err != nil {
		panic(fmt.Sprintf("maze: passage graph: %v", err))
	}

	return graph
}

// Solve finds the shortest route from one room to another through open walls.
func (m *Maze) Solve(from, to gridgraph.Room, opts ...dijkstra.Option[gridgraph.Room]) dijkstra.ShortestPath[gridgraph.Room, Passage] {
	return dijkstra.FindShortestPath[gridgraph.Room, Passage](m.PassageGraph(), from, to, opts...)
}

// Regions groups rooms connected through open walls.
func (m *Maze) Regions() [][]gridgraph.Room {
	return m.grid.Regions(m.IsOpen)
}

// IsPerfect reports whether every room is reachable from every other along
// exactly one path: one region and rooms−1 open walls.
func (m *Maze) IsPerfect() bool {
	return m.RemovedCount() == m.grid.RoomCount()-1 && len(m.Regions()) == 1
}

// Distances returns the number of steps from one room to every room
// reachable from it.
func (m *Maze) Distances(from gridgraph.Room) (map[gridgraph.Room]int, error) {
	res, err := bfs.BFS[gridgraph.Room, Passage](m.PassageGraph(), from)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	return res.Depth, nil
}

// LongestRoute returns the longest shortest route in the maze. Two BFS
// passes find it exactly when the maze is perfect (a tree); otherwise the
// result is a lower bound. The route starts in the room farthest from the
// top-left corner.
func (m *Maze) LongestRoute() ([]gridgraph.Room, error) {
	graph := m.PassageGraph()
	first, err := bfs.BFS[gridgraph.Room, Passage](graph, gridgraph.Room{})
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	start, _ := first.Farthest()

	second, err := bfs.BFS[gridgraph.Room, Passage](graph, start)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	end, _ := second.Farthest()

	return second.PathTo(end)
}
