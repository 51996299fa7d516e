// SPDX-License-Identifier: MIT
package maze

import (
	"bufio"
	"io"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Render draws the maze as ASCII art. Rooms listed in path are marked "*".
//
//	+---+---+
//	| *   * |
//	+---+   +
//	|     * |
//	+---+---+
func (m *Maze) Render(w io.Writer, path []gridgraph.Room) error {
	onPath := make(map[gridgraph.Room]bool, len(path))
	for _, r := range path {
		onPath[r] = true
	}

	bw := bufio.NewWriter(w)
	width, height := m.grid.Width(), m.grid.Height()

	bw.WriteString("+")
	for x := 0; x < width; x++ {
		bw.WriteString("---+")
	}
	bw.WriteString("\n")

	for y := 0; y < height; y++ {
		// Room bodies and east walls.
		bw.WriteString("|")
		for x := 0; x < width; x++ {
			here := gridgraph.Room{X: x, Y: y}
			if onPath[here] {
				bw.WriteString(" * ")
			} else {
				bw.WriteString("   ")
			}
			if x+1 < width && m.open(here, gridgraph.Room{X: x + 1, Y: y}) {
				bw.WriteString(" ")
			} else {
				bw.WriteString("|")
			}
		}
		bw.WriteString("\n")

		// South walls.
		bw.WriteString("+")
		for x := 0; x < width; x++ {
			if y+1 < height && m.open(gridgraph.Room{X: x, Y: y}, gridgraph.Room{X: x, Y: y + 1}) {
				bw.WriteString("   +")
			} else {
				bw.WriteString("---+")
			}
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func (m *Maze) open(a, b gridgraph.Room) bool {
	wall, err := m.grid.WallBetween(a, b)
	return err == nil && m.removed.Test(uint(wall.ID))
}
