package tetris

import (
	"errors"
	"fmt"
	"strings"

	"termtris/engine"
	"termtris/types"
)

const (
	Width  = engine.BoardWidth
	Height = engine.BoardHeight
)

// ErrOutOfBounds is matched by every OutOfBoundsError.
var ErrOutOfBounds = errors.New("position out of bounds")

// OutOfBoundsError reports an access outside the grid.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of bounds %dx%d", e.X, e.Y, Width, Height)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Board is the grid of locked cells, indexed [y][x] with row 0 at the bottom.
// The zero value is an empty board.
type Board struct {
	cells [Height][Width]types.Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds returns true if (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (b *Board) CellAt(x, y int) (types.Cell, error) {
	if !InBounds(x, y) {
		return types.Empty, &OutOfBoundsError{X: x, Y: y}
	}
	return b.cells[y][x], nil
}

func (b *Board) SetCell(x, y int, c types.Cell) error {
	if !InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	if !c.Valid() {
		return fmt.Errorf("invalid cell value %d at (%d, %d)", int(c), x, y)
	}
	b.cells[y][x] = c
	return nil
}

// IsFree returns true if (x, y) is on the grid and empty.
func (b *Board) IsFree(x, y int) bool {
	return InBounds(x, y) && b.cells[y][x] == types.Empty
}

// IsRowFull returns true if every cell in row y is occupied.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, c := range b.cells[y] {
		if c == types.Empty {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every full row, shifting the rows above it down
// and emptying the top. Returns the number of rows removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for y := 0; y < Height; {
		if !b.IsRowFull(y) {
			y++
			continue
		}
		cleared++
		// The row shifted into y is checked again on the next pass.
		copy(b.cells[y:Height-1], b.cells[y+1:Height])
		b.cells[Height-1] = [Width]types.Cell{}
	}
	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Height][Width]types.Cell{}
}

// Snapshot returns a copy of the grid indexed [y][x].
func (b *Board) Snapshot() [][]types.Cell {
	grid := make([][]types.Cell, Height)
	for y := range grid {
		grid[y] = make([]types.Cell, Width)
		copy(grid[y], b.cells[y][:])
	}
	return grid
}

// String renders the board top row first, one letter per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for y := Height - 1; y >= 0; y-- {
		for _, c := range b.cells[y] {
			sb.WriteString(c.String())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
