// Package types contains shared data structures for termtris.
package types

import (
	"encoding/json"
	"fmt"
)

// Cell is the content of a single board square: empty or one of the seven piece kinds.
type Cell int

const (
	Empty Cell = iota
	Z
	S
	I
	T
	O
	L
	J
)

// NumCells is the number of distinct cell values, Empty included.
const NumCells = 8

var cellLetters = [NumCells]string{".", "Z", "S", "I", "T", "O", "L", "J"}

// RGB is a display color.
type RGB struct {
	R, G, B uint8
}

var cellColors = [NumCells]RGB{
	{0, 0, 0},
	{204, 102, 102},
	{102, 204, 102},
	{102, 102, 204},
	{204, 204, 102},
	{204, 102, 204},
	{102, 204, 204},
	{218, 170, 0},
}

// Valid returns true if c is one of the eight known values.
func (c Cell) Valid() bool {
	return c >= Empty && c <= J
}

// Color returns the fixed display color for the cell kind.
// Unknown values are treated as Empty.
func (c Cell) Color() RGB {
	if !c.Valid() {
		return cellColors[Empty]
	}
	return cellColors[c]
}

// String returns the single letter for the kind, "." for Empty.
func (c Cell) String() string {
	if !c.Valid() {
		return "?"
	}
	return cellLetters[c]
}

// MarshalJSON encodes a cell as its letter.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a cell from its letter.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCell(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCell is the inverse of Cell.String. Both "." and " " parse as Empty.
func ParseCell(s string) (Cell, error) {
	if s == " " {
		return Empty, nil
	}
	for i, letter := range cellLetters {
		if letter == s {
			return Cell(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell %q", s)
}

// RunState is the coarse game state gating which commands are accepted.
type RunState int

const (
	NotStarted RunState = iota
	Running
	Paused
	GameOver
)

func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// CellPos is an absolute board position with the kind occupying it.
// Y counts from the bottom row.
type CellPos struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Kind Cell `json:"kind"`
}

// LockInfo describes a piece written into the board. Anchor.Kind is the
// locked kind; it is Empty before the first lock of a game.
type LockInfo struct {
	Anchor  CellPos `json:"anchor"`
	Cleared int     `json:"cleared"`
}

// GameState is a read-only snapshot of the engine for the presentation layer.
// Board is indexed as Board[y][x], row 0 at the bottom.
type GameState struct {
	GameID       string    `json:"game_id"`
	State        RunState  `json:"state"`
	LinesCleared int       `json:"lines_cleared"`
	Board        [][]Cell  `json:"board"`
	Active       []CellPos `json:"active"`
	Anchor       CellPos   `json:"anchor"`
	Piece        Cell      `json:"piece"`
	Status       string    `json:"status"`
	LastLock     LockInfo  `json:"last_lock"`
}

// Finished returns true if the game is over.
func (g *GameState) Finished() bool {
	return g.State == GameOver
}

// Height returns the board height.
func (g *GameState) Height() int {
	return len(g.Board)
}

// Width returns the board width.
func (g *GameState) Width() int {
	if g.Height() == 0 {
		return 0
	}
	return len(g.Board[0])
}

// CellAt returns what should be drawn at (x, y): the active piece if it covers
// the square, otherwise the locked cell. Out of range positions are Empty.
func (g *GameState) CellAt(x, y int) Cell {
	for _, p := range g.Active {
		if p.X == x && p.Y == y {
			return p.Kind
		}
	}
	if y < 0 || y >= g.Height() || x < 0 || x >= g.Width() {
		return Empty
	}
	return g.Board[y][x]
}

// IsActive returns true if the active piece covers (x, y).
func (g *GameState) IsActive(x, y int) bool {
	for _, p := range g.Active {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
