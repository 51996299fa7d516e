// SPDX-License-Identifier: MIT
package maze

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/prim_kruskal"
)

// Passage is an edge of the room graph carrying the wall it crosses.
type Passage = core.Edge[gridgraph.Room, gridgraph.Wall]

// Carver chooses which walls to remove to turn a grid into a maze.
type Carver interface {
	ChooseWallsToRemove(walls []gridgraph.Wall) ([]gridgraph.Wall, error)
}

// carverConfig holds the settings shared by every carver.
type carverConfig struct {
	rand   *rand.Rand
	finder prim_kruskal.Finder[gridgraph.Room, Passage]
	logger *zap.Logger
}

// CarverOption configures a carver.
type CarverOption func(*carverConfig)

// WithSeed makes carving deterministic.
func WithSeed(seed int64) CarverOption {
	return func(c *carverConfig) { c.rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) CarverOption {
	if r == nil {
		panic("maze: WithRand(nil)")
	}

	return func(c *carverConfig) { c.rand = r }
}

// WithFinder replaces the spanning-tree finder of a KruskalCarver
// (default Kruskal). Other carvers ignore it. Panics on nil.
func WithFinder(f prim_kruskal.Finder[gridgraph.Room, Passage]) CarverOption {
	if f == nil {
		panic("maze: WithFinder(nil)")
	}

	return func(c *carverConfig) { c.finder = f }
}

// WithLogger sets the logger (default zap.NewNop). Panics on nil.
func WithLogger(l *zap.Logger) CarverOption {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}

	return func(c *carverConfig) { c.logger = l }
}

func buildCarverConfig(opts []CarverOption) carverConfig {
	c := carverConfig{
		finder: prim_kruskal.NewKruskalFinder[gridgraph.Room, Passage](),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// sortWalls orders walls by ID.
func sortWalls(walls []gridgraph.Wall) {
	slices.SortFunc(walls, func(a, b gridgraph.Wall) int { return cmp.Compare(a.ID, b.ID) })
}

// KruskalCarver removes the walls of a minimum spanning tree over randomly
// weighted walls.
type KruskalCarver struct {
	carverConfig
}

// NewKruskalCarver returns a carver seeded from the clock unless WithSeed or
// WithRand is given.
func NewKruskalCarver(opts ...CarverOption) *KruskalCarver {
	return &KruskalCarver{carverConfig: buildCarverConfig(opts)}
}

// ChooseWallsToRemove draws one weight per wall in input order, finds the
// minimum spanning tree of the resulting room graph and returns the walls of
// its edges ordered by ID.
//
// Rooms are taken from the walls themselves. If the walls do not connect
// every room they mention, the error wraps prim_kruskal.ErrDisconnected.
func (c *KruskalCarver) ChooseWallsToRemove(walls []gridgraph.Wall) ([]gridgraph.Wall, error) {
	graph, err := gridgraph.NewWallGraph(nil, walls, func(gridgraph.Wall) float64 {
		return c.rand.Float64()
	})
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	mst := c.finder.FindMinimumSpanningTree(graph)
	if !mst.Exists() {
		c.logger.Warn("no spanning tree over walls",
			zap.Int("walls", len(walls)),
			zap.Int("rooms", graph.VertexCount()),
			zap.Error(mst.Err()))
		return nil, fmt.Errorf("maze: %w", mst.Err())
	}

	removed := make([]gridgraph.Wall, 0, mst.Len())
	for _, e := range mst.Edges() {
		removed = append(removed, e.Data())
	}
	sortWalls(removed)

	c.logger.Debug("chose walls to remove",
		zap.Int("walls", len(walls)),
		zap.Int("removed", len(removed)),
		zap.Float64("treeWeight", mst.TotalWeight()))

	return removed, nil
}

var _ Carver = (*KruskalCarver)(nil)
