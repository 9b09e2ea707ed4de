// Package tetris implements the falling-block game engine.
package tetris

import "termtris/types"

// Offset is a cell position relative to a piece's pivot. Positive DY points down
// on the board.
type Offset struct {
	DX, DY int
}

// Kinds lists the seven piece kinds in table order.
var Kinds = [7]types.Cell{types.Z, types.S, types.I, types.T, types.O, types.L, types.J}

var shapeTable = [types.NumCells][4]Offset{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},    // Empty
	{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}}, // Z
	{{0, -1}, {0, 0}, {1, 0}, {1, 1}},   // S
	{{0, -1}, {0, 0}, {0, 1}, {0, 2}},   // I
	{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},   // T
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},    // O
	{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}, // L
	{{1, -1}, {0, -1}, {0, 0}, {0, 1}},  // J
}

// Offsets returns the four offsets of the given kind. Empty and unknown kinds
// get the no-shape geometry.
func Offsets(kind types.Cell) [4]Offset {
	if !kind.Valid() {
		return shapeTable[types.Empty]
	}
	return shapeTable[kind]
}
