// SPDX-License-Identifier: MIT
package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
)

// NewGrid builds a width×height grid and numbers its walls.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}

	n := width * height
	g := &Grid{
		width:  width,
		height: height,
		walls:  make([]Wall, 0, (width-1)*height+width*(height-1)),
		east:   make([]int, n),
		south:  make([]int, n),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			g.east[i], g.south[i] = -1, -1
			here := Room{X: x, Y: y}
			if x+1 < width {
				g.east[i] = len(g.walls)
				g.walls = append(g.walls, Wall{ID: len(g.walls), Room1: here, Room2: Room{X: x + 1, Y: y}})
			}
			if y+1 < height {
				g.south[i] = len(g.walls)
				g.walls = append(g.walls, Wall{ID: len(g.walls), Room1: here, Room2: Room{X: x, Y: y + 1}})
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// RoomCount returns Width×Height.
func (g *Grid) RoomCount() int { return g.width * g.height }

// WallCount returns the number of interior walls.
func (g *Grid) WallCount() int { return len(g.walls) }

// InBounds reports whether r lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r Room) bool {
	return r.X >= 0 && r.X < g.width && r.Y >= 0 && r.Y < g.height
}

// Index returns the row-major index of r.
func (g *Grid) Index(r Room) (int, error) {
	if !g.InBounds(r) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, r, g.width, g.height)
	}

	return r.Y*g.width + r.X, nil
}

// RoomAt is the inverse of Index.
func (g *Grid) RoomAt(idx int) (Room, error) {
	if idx < 0 || idx >= g.RoomCount() {
		return Room{}, fmt.Errorf("%w: index %d in %dx%d", ErrOutOfBounds, idx, g.width, g.height)
	}

	return Room{X: idx % g.width, Y: idx / g.width}, nil
}

// Rooms returns every room in row-major order.
func (g *Grid) Rooms() []Room {
	rooms := make([]Room, 0, g.RoomCount())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			rooms = append(rooms, Room{X: x, Y: y})
		}
	}

	return rooms
}

// Walls returns every wall ordered by ID.
func (g *Grid) Walls() []Wall { return slices.Clone(g.walls) }

// Wall returns the wall with the given ID.
func (g *Grid) Wall(id int) (Wall, bool) {
	if id < 0 || id >= len(g.walls) {
		return Wall{}, false
	}

	return g.walls[id], true
}

// WallBetween returns the wall separating a and b, in either order.
func (g *Grid) WallBetween(a, b Room) (Wall, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return Wall{}, fmt.Errorf("%w: %v or %v", ErrOutOfBounds, a, b)
	}
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		a, b = b, a
	}
	i := a.Y*g.width + a.X
	switch {
	case b.Y == a.Y && b.X == a.X+1:
		return g.walls[g.east[i]], nil
	case b.X == a.X && b.Y == a.Y+1:
		return g.walls[g.south[i]], nil
	default:
		return Wall{}, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
}

// Neighbours returns the in-bounds rooms orthogonally adjacent to r (N, E, S, W).
func (g *Grid) Neighbours(r Room) []Room {
	out := make([]Room, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		if n := (Room{X: r.X + d[0], Y: r.Y + d[1]}); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Contains reports whether w is one of g's walls (same ID and rooms).
func (g *Grid) Contains(w Wall) bool {
	got, ok := g.Wall(w.ID)
	return ok && got == w
}

// AdjacencyGraph returns the full room graph with unit weights.
func (g *Grid) AdjacencyGraph() *core.AdjacencyList[Room, Wall] {
	// Grid walls join two distinct rooms and the weight is constant.
	graph, err := NewWallGraph(g.Rooms(), g.walls, func(Wall) float64 { return 1 })
	if err != nil {
		panic(fmt.Sprintf("gridgraph: adjacency graph: %v", err))
	}

	return graph
}

// NewWallGraph builds an undirected graph over rooms with one edge per wall,
// weighted by weight and carrying the wall as payload. weight is called once
// per wall, in slice order. Rooms appearing only in walls are added as well.
func NewWallGraph(rooms []Room, walls []Wall, weight func(Wall) float64) (*core.AdjacencyList[Room, Wall], error) {
	graph := core.NewAdjacencyList[Room, Wall]()
	for _, r := range rooms {
		graph.AddVertex(r)
	}
	for _, w := range walls {
		if _, err := graph.AddEdge(w.Room1, w.Room2, weight(w), w); err != nil {
			return nil, fmt.Errorf("gridgraph: wall %v: %w", w, err)
		}
	}

	return graph, nil
}
