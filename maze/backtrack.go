// SPDX-License-Identifier: MIT
package maze

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrUnreachableRooms is returned by BacktrackCarver when the walls leave
// some rooms unreachable from the first one.
var ErrUnreachableRooms = errors.New("maze: walls do not connect every room")

// BacktrackCarver carves with a randomized depth-first walk (the recursive
// backtracker): it tunnels from room to room in random order, backing up
// only at dead ends. Its mazes have long winding corridors and few short
// dead ends, unlike the uniformly branchy mazes of KruskalCarver.
type BacktrackCarver struct {
	carverConfig
}

// NewBacktrackCarver returns a carver seeded from the clock unless WithSeed
// or WithRand is given. WithFinder has no effect on it.
func NewBacktrackCarver(opts ...CarverOption) *BacktrackCarver {
	return &BacktrackCarver{carverConfig: buildCarverConfig(opts)}
}

// ChooseWallsToRemove walks the room graph from the first wall's first room,
// shuffling each room's walls, and returns the walls the walk tunnelled
// through ordered by ID. If some room mentioned by the walls is never
// reached the error wraps ErrUnreachableRooms.
func (c *BacktrackCarver) ChooseWallsToRemove(walls []gridgraph.Wall) ([]gridgraph.Wall, error) {
	if len(walls) == 0 {
		return []gridgraph.Wall{}, nil
	}

	graph, err := gridgraph.NewWallGraph(nil, walls, func(gridgraph.Wall) float64 { return 1 })
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	shuffle := dfs.WithNeighborOrder[gridgraph.Room, Passage](func(edges []Passage) {
		c.rand.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	})
	res, err := dfs.DFS[gridgraph.Room, Passage](graph, walls[0].Room1, shuffle)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	tree := res.TreeEdges()
	if len(tree) != graph.VertexCount()-1 {
		c.logger.Warn("walk did not reach every room",
			zap.Int("rooms", graph.VertexCount()),
			zap.Int("reached", len(res.Visited)))
		return nil, fmt.Errorf("%w: reached %d of %d rooms", ErrUnreachableRooms, len(res.Visited), graph.VertexCount())
	}

	removed := make([]gridgraph.Wall, 0, len(tree))
	for _, e := range tree {
		removed = append(removed, e.Data())
	}
	sortWalls(removed)

	longest := 0
	for _, d := range res.Depth {
		longest = max(longest, d)
	}
	c.logger.Debug("chose walls to remove",
		zap.Int("walls", len(walls)),
		zap.Int("removed", len(removed)),
		zap.Int("deepestRoom", longest))

	return removed, nil
}

var _ Carver = (*BacktrackCarver)(nil)
