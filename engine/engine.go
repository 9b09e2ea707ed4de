// Package engine defines the interface for game engines.
package engine

import "termtris/types"

// Board dimensions. They are fixed for every game.
const (
	BoardWidth  = 10
	BoardHeight = 22
)

// Direction is a horizontal move.
type Direction int

const (
	Left Direction = iota
	Right
)

// Delta returns the x change for the direction.
func (d Direction) Delta() int {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Rotation is a quarter turn.
type Rotation int

const (
	CW Rotation = iota
	CCW
)

func (r Rotation) String() string {
	if r == CW {
		return "cw"
	}
	return "ccw"
}

// GameEngine defines the command and query surface the front end drives.
// Commands return true if they changed the engine state; commands that are not
// accepted in the current run state are ignored and return false.
type GameEngine interface {
	// Start resets the board and score and spawns the first piece.
	Start() bool

	// Restart is Start, accepted in every state including game over.
	Restart() bool

	// Tick moves the active piece one row down, locking it if it cannot move.
	// The front end calls it at a fixed cadence.
	Tick() bool

	// Move shifts the active piece one column.
	Move(dir Direction) bool

	// Rotate turns the active piece in place. There is no wall kick.
	Rotate(rot Rotation) bool

	// SoftDrop is one Tick on demand.
	SoftDrop() bool

	// HardDrop drops the active piece as far as it goes and locks it.
	HardDrop() bool

	// TogglePause switches between running and paused.
	TogglePause() bool

	// GridSnapshot returns a copy of the locked cells indexed [y][x], row 0 at the bottom.
	GridSnapshot() [][]types.Cell

	// ActivePieceCells returns the active piece cells, empty unless running.
	ActivePieceCells() []types.CellPos

	// LinesCleared returns the score.
	LinesCleared() int

	// RunState returns the current run state.
	RunState() types.RunState

	// StatusText returns the status bar string.
	StatusText() string

	// GameState returns a full snapshot.
	GameState() *types.GameState

	// OnLock registers a callback invoked after every lock sequence.
	OnLock(func(cleared int, state *types.GameState))

	// OnGameEnd registers a callback invoked when the game is over.
	OnGameEnd(func(linesCleared int))
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Seed        int64 // 0 picks a time based seed
	SpawnOffset int   // added to BoardWidth/2 for the spawn column, 0 or 1
	Level       int   // speed level 1-10, used by the scheduler
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Seed:        0,
		SpawnOffset: 0,
		Level:       1,
	}
}
