// SPDX-License-Identifier: MIT
// Package maze_test covers carving determinism, maze shape and solving.
package maze_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/minpq"
	"github.com/katalvlaran/lvmaze/prim_kruskal"
)

func mustGrid(t *testing.T, w, h int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(w, h)
	require.NoError(t, err)

	return g
}

func wallIDs(walls []gridgraph.Wall) []int {
	ids := make([]int, 0, len(walls))
	for _, w := range walls {
		ids = append(ids, w.ID)
	}

	return ids
}

func TestKruskalCarver_SeedDeterminism(t *testing.T) {
	grid := mustGrid(t, 12, 9)

	first, err := maze.NewKruskalCarver(maze.WithSeed(42)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)
	second, err := maze.NewKruskalCarver(maze.WithSeed(42)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := maze.NewKruskalCarver(maze.WithSeed(43)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)
	assert.NotEqual(t, wallIDs(first), wallIDs(other))
}

func TestKruskalCarver_SortedAndSpanning(t *testing.T) {
	grid := mustGrid(t, 7, 5)
	removed, err := maze.NewKruskalCarver(maze.WithSeed(1)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)

	assert.Len(t, removed, grid.RoomCount()-1)
	assert.IsIncreasing(t, wallIDs(removed))
}

func TestKruskalCarver_PrimFinderAgrees(t *testing.T) {
	grid := mustGrid(t, 10, 10)
	prim := prim_kruskal.NewPrimFinder[gridgraph.Room, maze.Passage](
		prim_kruskal.WithQueueFactory(minpq.TreeMapFactory[gridgraph.Room]()),
	)

	// Random [0,1) weights are distinct with overwhelming probability, so the
	// MST is unique and both finders pick the same walls.
	byKruskal, err := maze.NewKruskalCarver(maze.WithSeed(7)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)
	byPrim, err := maze.NewKruskalCarver(maze.WithSeed(7), maze.WithFinder(prim)).ChooseWallsToRemove(grid.Walls())
	require.NoError(t, err)
	assert.Equal(t, byKruskal, byPrim)
}

func TestKruskalCarver_Disconnected(t *testing.T) {
	// Two walls that share no room: {(0,0),(1,0)} and {(0,2),(1,2)}.
	grid := mustGrid(t, 2, 3)
	var walls []gridgraph.Wall
	for _, w := range grid.Walls() {
		if w.Vertical() && w.Room1.Y != 1 {
			walls = append(walls, w)
		}
	}
	require.Len(t, walls, 2)

	observed, logs := observer.New(zap.WarnLevel)
	c := maze.NewKruskalCarver(maze.WithSeed(1), maze.WithLogger(zap.New(observed)))
	_, err := c.ChooseWallsToRemove(walls)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Equal(t, 1, logs.FilterMessage("no spanning tree over walls").Len())
}

func TestKruskalCarver_NoWalls(t *testing.T) {
	removed, err := maze.NewKruskalCarver().ChooseWallsToRemove(nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCarve_PerfectMaze(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 8}, {8, 1}, {5, 5}, {16, 9}} {
		grid := mustGrid(t, size[0], size[1])
		m, err := maze.Carve(grid, maze.NewKruskalCarver(maze.WithRand(rand.New(rand.NewSource(int64(size[0]*100+size[1]))))))
		require.NoError(t, err)

		assert.Equal(t, grid.RoomCount()-1, m.RemovedCount(), "size %v", size)
		assert.Len(t, m.Regions(), 1, "every room reachable, size %v", size)
		assert.True(t, m.IsPerfect())
		assert.Len(t, m.RemainingWalls(), grid.WallCount()-m.RemovedCount())

		for _, w := range m.RemovedWalls() {
			assert.True(t, m.IsOpen(w))
		}
		for _, w := range m.RemainingWalls() {
			assert.False(t, m.IsOpen(w))
		}
	}
}

func TestCarve_SolveEveryRoom(t *testing.T) {
	grid := mustGrid(t, 9, 6)
	m, err := maze.Carve(grid, maze.NewKruskalCarver(maze.WithSeed(5)))
	require.NoError(t, err)

	entrance := gridgraph.Room{X: 0, Y: 0}
	for _, r := range grid.Rooms() {
		sp := m.Solve(entrance, r, dijkstra.WithQueue[gridgraph.Room](minpq.KindTreeMap))
		require.True(t, sp.Exists(), "room %v", r)

		// Every step crosses an open wall between neighbours.
		for _, e := range sp.Edges() {
			assert.True(t, m.IsOpen(e.Data()))
		}
		assert.Equal(t, float64(len(sp.Edges())), sp.TotalWeight())
	}
}

// stubCarver returns a fixed wall list.
type stubCarver []gridgraph.Wall

func (s stubCarver) ChooseWallsToRemove([]gridgraph.Wall) ([]gridgraph.Wall, error) {
	return s, nil
}

func TestCarve_ForeignWall(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	bogus := gridgraph.Wall{ID: 0, Room1: gridgraph.Room{X: 5, Y: 5}, Room2: gridgraph.Room{X: 6, Y: 5}}

	_, err := maze.Carve(grid, stubCarver{bogus})
	assert.ErrorIs(t, err, maze.ErrForeignWall)
}

func TestMaze_NotPerfect(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	m, err := maze.Carve(grid, stubCarver(grid.Walls()))
	require.NoError(t, err)
	assert.Len(t, m.Regions(), 1)
	assert.False(t, m.IsPerfect(), "a loop of four open walls")

	closed, err := maze.Carve(grid, stubCarver(nil))
	require.NoError(t, err)
	assert.Len(t, closed.Regions(), 4)
	assert.False(t, closed.Solve(gridgraph.Room{}, gridgraph.Room{X: 1, Y: 1}).Exists())
}

// combCarver opens the whole top row and every south wall of it.
func combCarver(grid *gridgraph.Grid) stubCarver {
	var walls []gridgraph.Wall
	for _, w := range grid.Walls() {
		if w.Room1.Y == 0 {
			walls = append(walls, w)
		}
	}

	return walls
}

func TestMaze_RenderGolden(t *testing.T) {
	grid := mustGrid(t, 3, 2)
	m, err := maze.Carve(grid, combCarver(grid))
	require.NoError(t, err)
	require.True(t, m.IsPerfect())

	sp := m.Solve(gridgraph.Room{X: 0, Y: 1}, gridgraph.Room{X: 2, Y: 1})
	require.True(t, sp.Exists())
	assert.Equal(t, 4.0, sp.TotalWeight())

	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf, sp.Vertices()))

	g := goldie.New(t)
	g.Assert(t, "comb_3x2", buf.Bytes())
}

func TestMaze_DistancesMatchSolve(t *testing.T) {
	grid := mustGrid(t, 7, 5)
	m, err := maze.Carve(grid, maze.NewKruskalCarver(maze.WithSeed(11)))
	require.NoError(t, err)

	entrance := gridgraph.Room{X: 3, Y: 2}
	dist, err := m.Distances(entrance)
	require.NoError(t, err)
	require.Len(t, dist, grid.RoomCount())
	for _, r := range grid.Rooms() {
		sp := m.Solve(entrance, r)
		require.True(t, sp.Exists())
		assert.Equal(t, sp.TotalWeight(), float64(dist[r]), "room %v", r)
	}

	_, err = m.Distances(gridgraph.Room{X: 9, Y: 9})
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestMaze_LongestRoute(t *testing.T) {
	grid := mustGrid(t, 3, 2)
	m, err := maze.Carve(grid, combCarver(grid))
	require.NoError(t, err)

	route, err := m.LongestRoute()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Room{{X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}, route)
}

func TestMaze_LongestRouteIsDiameter(t *testing.T) {
	grid := mustGrid(t, 6, 4)
	m, err := maze.Carve(grid, maze.NewKruskalCarver(maze.WithSeed(3)))
	require.NoError(t, err)

	route, err := m.LongestRoute()
	require.NoError(t, err)

	longest := 0
	for _, r := range grid.Rooms() {
		dist, err := m.Distances(r)
		require.NoError(t, err)
		for _, d := range dist {
			longest = max(longest, d)
		}
	}
	assert.Len(t, route, longest+1)
}
