// SPDX-License-Identifier: MIT
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/disjointset"
)

// Regions partitions the rooms into areas connected through walls for which
// open reports true. Regions are ordered by their first room in row-major
// order, and rooms within a region are row-major too.
//
// Time:   O(W·H + |walls|·α(W·H)).
// Memory: O(W·H).
func (g *Grid) Regions(open func(Wall) bool) [][]Room {
	// Every room index gets a set exactly once and every wall joins two
	// in-bounds rooms, so the forest never reports duplicate or unknown items.
	sets := disjointset.NewForest[int](g.RoomCount())
	for i := 0; i < g.RoomCount(); i++ {
		must(sets.MakeSet(i))
	}
	for _, w := range g.walls {
		if open(w) {
			_, err := sets.Union(w.Room1.Y*g.width+w.Room1.X, w.Room2.Y*g.width+w.Room2.X)
			must(err)
		}
	}

	order := make(map[int]int) // root slot → region position
	var regions [][]Room
	for i, r := range g.Rooms() {
		root, err := sets.FindSet(i)
		must(err)
		pos, ok := order[root]
		if !ok {
			pos = len(regions)
			order[root] = pos
			regions = append(regions, nil)
		}
		regions[pos] = append(regions[pos], r)
	}

	return regions
}

// must panics on an error that a broken grid invariant would cause.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("gridgraph: regions: %v", err))
	}
}
