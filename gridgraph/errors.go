// SPDX-License-Identifier: MIT
package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a room or index outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: room out of bounds")
	// ErrNotAdjacent indicates two rooms that share no wall.
	ErrNotAdjacent = errors.New("gridgraph: rooms are not adjacent")
)
