package tetris

import (
	"fmt"
	"strconv"
	"strings"
)

// Display coordinate system:
// - Columns: A-J (left to right)
// - Rows: 1-22 (from bottom of board)
// - Example: A1 is the bottom left corner, J22 the top right
//
// Board coordinate system:
// - X: 0-9 (left to right)
// - Y: 0-21 (bottom to top)
//
// Screen rows count from the top, so ScreenRow inverts Y.

// PosToDisplay converts board coordinates to display notation.
// (0, 0) -> A1, (3, 4) -> D5, (9, 21) -> J22
func PosToDisplay(x, y int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(x), y+1)
}

// DisplayToPos converts display notation back to board coordinates.
func DisplayToPos(vertex string) (int, int, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))
	if len(vertex) < 2 {
		return 0, 0, fmt.Errorf("invalid position: %q", vertex)
	}

	x := int(vertex[0] - 'A')
	if vertex[0] < 'A' || x >= Width {
		return 0, 0, fmt.Errorf("invalid column in position: %q", vertex)
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in position: %q", vertex)
	}
	y := row - 1
	if y < 0 || y >= Height {
		return 0, 0, fmt.Errorf("position out of bounds: %q", vertex)
	}

	return x, y, nil
}

// ScreenRow converts a board y to a row counted from the top of the grid.
func ScreenRow(y int) int {
	return Height - 1 - y
}
