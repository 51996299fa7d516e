// SPDX-License-Identifier: MIT
package gridgraph

import "fmt"

// Room is one grid cell.
type Room struct {
	X, Y int
}

// String renders the room as "(x,y)".
func (r Room) String() string { return fmt.Sprintf("(%d,%d)", r.X, r.Y) }

// Wall separates two orthogonally adjacent rooms. Room1 is the west or north
// room, Room2 the east or south one.
type Wall struct {
	ID    int
	Room1 Room
	Room2 Room
}

// String renders the wall as "#id(x1,y1)|(x2,y2)".
func (w Wall) String() string { return fmt.Sprintf("#%d%v|%v", w.ID, w.Room1, w.Room2) }

// Vertical reports whether the wall stands between east-west neighbours.
func (w Wall) Vertical() bool { return w.Room1.Y == w.Room2.Y }

// Grid is a Width×Height arrangement of rooms.
type Grid struct {
	width, height int
	walls         []Wall
	east, south   []int // room index → wall ID, -1 on the border
}

// neighbourOffsets lists the orthogonal moves: N, E, S, W.
var neighbourOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
