// SPDX-License-Identifier: MIT
package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

func TestBacktrackCarver_PerfectAndDeterministic(t *testing.T) {
	grid := mustGrid(t, 11, 7)

	first, err := maze.Carve(grid, maze.NewBacktrackCarver(maze.WithSeed(9)))
	require.NoError(t, err)
	second, err := maze.Carve(grid, maze.NewBacktrackCarver(maze.WithSeed(9)))
	require.NoError(t, err)

	assert.True(t, first.IsPerfect())
	assert.Equal(t, first.RemovedWalls(), second.RemovedWalls())
	assert.IsIncreasing(t, wallIDs(first.RemovedWalls()))

	other, err := maze.Carve(grid, maze.NewBacktrackCarver(maze.WithSeed(10)))
	require.NoError(t, err)
	assert.True(t, other.IsPerfect())
	assert.NotEqual(t, wallIDs(first.RemovedWalls()), wallIDs(other.RemovedWalls()))
}

func TestBacktrackCarver_Unreachable(t *testing.T) {
	grid := mustGrid(t, 2, 3)
	var walls []gridgraph.Wall
	for _, w := range grid.Walls() {
		if w.Vertical() && w.Room1.Y != 1 {
			walls = append(walls, w)
		}
	}

	observed, logs := observer.New(zap.WarnLevel)
	_, err := maze.NewBacktrackCarver(maze.WithSeed(1), maze.WithLogger(zap.New(observed))).ChooseWallsToRemove(walls)
	assert.ErrorIs(t, err, maze.ErrUnreachableRooms)
	assert.Equal(t, 1, logs.FilterMessage("walk did not reach every room").Len())
}

func TestBacktrackCarver_NoWalls(t *testing.T) {
	removed, err := maze.NewBacktrackCarver().ChooseWallsToRemove(nil)
	require.NoError(t, err)
	assert.Empty(t, removed)

	m, err := maze.Carve(mustGrid(t, 1, 1), maze.NewBacktrackCarver())
	require.NoError(t, err)
	assert.True(t, m.IsPerfect())
}
