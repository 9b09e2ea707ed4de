package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtris/engine"
	"termtris/types"
)

func newTestEngine(kinds ...types.Cell) *Engine {
	return NewEngine(engine.DefaultConfig(), WithSource(NewSequenceSource(kinds...)))
}

func TestEngineNotStarted(t *testing.T) {
	e := newTestEngine(types.I)

	assert.Equal(t, types.NotStarted, e.RunState())
	assert.Empty(t, e.ActivePieceCells())
	assert.Equal(t, "0", e.StatusText())
	assert.False(t, e.Tick())
	assert.False(t, e.Move(engine.Left))
	assert.False(t, e.Rotate(engine.CW))
	assert.False(t, e.SoftDrop())
	assert.False(t, e.HardDrop())
	assert.False(t, e.TogglePause())
	assert.Equal(t, types.NotStarted, e.RunState())
}

func TestStartSpawnsAtTop(t *testing.T) {
	tests := []struct {
		kind   types.Cell
		offset int
		want   []types.CellPos
	}{
		{types.I, 0, []types.CellPos{{X: 5, Y: 21, Kind: types.I}, {X: 5, Y: 20, Kind: types.I}, {X: 5, Y: 19, Kind: types.I}, {X: 5, Y: 18, Kind: types.I}}},
		{types.T, 0, []types.CellPos{{X: 4, Y: 21, Kind: types.T}, {X: 5, Y: 21, Kind: types.T}, {X: 6, Y: 21, Kind: types.T}, {X: 5, Y: 20, Kind: types.T}}},
		{types.O, 1, []types.CellPos{{X: 6, Y: 21, Kind: types.O}, {X: 7, Y: 21, Kind: types.O}, {X: 6, Y: 20, Kind: types.O}, {X: 7, Y: 20, Kind: types.O}}},
	}
	for _, tt := range tests {
		cfg := engine.DefaultConfig()
		cfg.SpawnOffset = tt.offset
		e := NewEngine(cfg, WithSource(NewSequenceSource(tt.kind)))

		require.True(t, e.Start())
		assert.Equal(t, types.Running, e.RunState())
		assert.Equal(t, tt.want, e.ActivePieceCells(), "spawn of %s", tt.kind)
		assert.NotEmpty(t, e.GameID())
	}
}

func TestTickMovesDown(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()

	require.True(t, e.Tick())
	assert.Equal(t, 19, e.y)
	assert.Equal(t, types.CellPos{X: 5, Y: 20, Kind: types.I}, e.ActivePieceCells()[0])

	require.True(t, e.SoftDrop())
	assert.Equal(t, 18, e.y)
}

func TestMoveStopsAtWall(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()

	for i := 0; i < 5; i++ {
		require.True(t, e.Move(engine.Left), "move %d", i)
	}
	assert.False(t, e.Move(engine.Left))
	assert.Equal(t, 0, e.x)

	for i := 0; i < Width-1; i++ {
		require.True(t, e.Move(engine.Right), "move %d", i)
	}
	assert.False(t, e.Move(engine.Right))
	assert.Equal(t, Width-1, e.x)
}

func TestRotateRejectedAtWall(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	for e.Move(engine.Left) {
	}

	before := e.GameState()
	assert.False(t, e.Rotate(engine.CW))
	assert.Equal(t, before, e.GameState())

	// CCW puts the cells at x-2..x+1, also off the board.
	assert.False(t, e.Rotate(engine.CCW))
	assert.Equal(t, before, e.GameState())

	e.Move(engine.Right)
	require.True(t, e.Rotate(engine.CW))
	assert.Equal(t, NewPiece(types.I).RotateCW(), e.piece)
}

func TestTryMoveRejectionLeavesStateUnchanged(t *testing.T) {
	e := newTestEngine(types.T)
	e.Start()
	require.NoError(t, e.board.SetCell(5, 10, types.Z))

	candidates := []struct {
		name  string
		piece Piece
		x, y  int
	}{
		{"left of board", e.piece, -1, e.y},
		{"right of board", e.piece, Width, e.y},
		{"above board", e.piece, e.x, Height},
		{"below board", e.piece, e.x, 0},
		{"occupied cell", e.piece, 5, 10},
		{"rotated into floor", e.piece.RotateCW(), e.x, 0},
	}
	for _, c := range candidates {
		before := e.GameState()
		assert.False(t, e.tryMove(c.piece, c.x, c.y), c.name)
		assert.Equal(t, before, e.GameState(), c.name)
	}
}

func TestHardDropIPieceOnEmptyBoard(t *testing.T) {
	e := newTestEngine(types.I, types.T)
	e.Start()

	locks := 0
	e.OnLock(func(cleared int, state *types.GameState) {
		locks++
		assert.Equal(t, 0, cleared)
	})

	require.True(t, e.HardDrop())
	assert.Equal(t, 1, locks)

	for y := 0; y < 4; y++ {
		c, err := e.board.CellAt(5, y)
		require.NoError(t, err)
		assert.Equal(t, types.I, c, "row %d", y)
	}
	c, _ := e.board.CellAt(5, 4)
	assert.Equal(t, types.Empty, c)
	assert.Equal(t, 0, e.LinesCleared())
	assert.Equal(t, types.LockInfo{Anchor: types.CellPos{X: 5, Y: 2, Kind: types.I}}, e.GameState().LastLock)

	// The next piece has spawned.
	assert.Equal(t, types.T, e.piece.Kind())
	assert.Equal(t, types.Running, e.RunState())
}

func TestHardDropRestsOnObstruction(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	require.NoError(t, e.board.SetCell(5, 10, types.Z))

	require.True(t, e.HardDrop())

	grid := e.GridSnapshot()
	for y := 11; y <= 14; y++ {
		assert.Equal(t, types.I, grid[y][5], "row %d", y)
	}
	assert.Equal(t, types.Z, grid[10][5])
	assert.Equal(t, types.Empty, grid[15][5])
	for y := 0; y < 10; y++ {
		assert.Equal(t, types.Empty, grid[y][5], "row %d", y)
	}
}

func TestLockCompletesRow(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		require.NoError(t, e.board.SetCell(x, 0, types.S))
	}

	var cleared []int
	e.OnLock(func(n int, state *types.GameState) {
		cleared = append(cleared, n)
		assert.Equal(t, 1, state.LinesCleared)
	})

	// Horizontal I covering columns 3..6.
	require.True(t, e.Rotate(engine.CW))
	require.True(t, e.Move(engine.Left))
	require.True(t, e.HardDrop())

	assert.Equal(t, []int{1}, cleared)
	assert.Equal(t, 1, e.LinesCleared())
	assert.Equal(t, "1", e.StatusText())
	grid := e.GridSnapshot()
	for x := 0; x < Width; x++ {
		assert.Equal(t, types.Empty, grid[0][x], "column %d", x)
	}
}

func TestLockCompletesColumnThreeWithVerticalPiece(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	for x := 0; x < Width; x++ {
		if x != 3 {
			require.NoError(t, e.board.SetCell(x, 0, types.L))
		}
	}

	require.True(t, e.Move(engine.Left))
	require.True(t, e.Move(engine.Left))
	require.True(t, e.HardDrop())

	assert.Equal(t, 1, e.LinesCleared())
	grid := e.GridSnapshot()
	// The remaining three I cells fall one row.
	for y := 0; y < 3; y++ {
		assert.Equal(t, types.I, grid[y][3], "row %d", y)
	}
	assert.Equal(t, types.Empty, grid[0][0])
	assert.Equal(t, types.Empty, grid[3][3])
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	for y := 0; y < 18; y++ {
		require.NoError(t, e.board.SetCell(5, y, types.J))
	}

	ended := 0
	score := -1
	e.OnGameEnd(func(lines int) {
		ended++
		score = lines
	})

	// The piece cannot move down, locks at the top and the next spawn collides.
	require.True(t, e.Tick())
	assert.Equal(t, types.GameOver, e.RunState())
	assert.Equal(t, 1, ended)
	assert.Equal(t, 0, score)
	assert.Equal(t, "Game over. Score: 0", e.StatusText())
	assert.Empty(t, e.ActivePieceCells())

	before := e.GameState()
	assert.False(t, e.Tick())
	assert.False(t, e.Move(engine.Left))
	assert.False(t, e.Move(engine.Right))
	assert.False(t, e.Rotate(engine.CCW))
	assert.False(t, e.SoftDrop())
	assert.False(t, e.HardDrop())
	assert.False(t, e.TogglePause())
	assert.Equal(t, before, e.GameState())
	assert.Equal(t, 1, ended)
}

func TestRestartAfterGameOver(t *testing.T) {
	e := newTestEngine(types.I)
	e.Start()
	for y := 0; y < 18; y++ {
		require.NoError(t, e.board.SetCell(5, y, types.J))
	}
	e.lines = 7
	e.Tick()
	require.Equal(t, types.GameOver, e.RunState())
	assert.Equal(t, "Game over. Score: 7", e.StatusText())
	oldID := e.GameID()

	require.True(t, e.Restart())
	assert.Equal(t, types.Running, e.RunState())
	assert.Equal(t, 0, e.LinesCleared())
	assert.Equal(t, types.LockInfo{}, e.GameState().LastLock)
	assert.NotEqual(t, oldID, e.GameID())
	for _, row := range e.GridSnapshot() {
		for _, c := range row {
			assert.Equal(t, types.Empty, c)
		}
	}
	assert.Len(t, e.ActivePieceCells(), 4)
}

func TestPauseGatesCommands(t *testing.T) {
	e := newTestEngine(types.T)
	e.Start()

	require.True(t, e.TogglePause())
	assert.Equal(t, types.Paused, e.RunState())
	assert.Equal(t, "PAUSED", e.StatusText())
	assert.Empty(t, e.ActivePieceCells())

	before := e.GameState()
	assert.False(t, e.Tick())
	assert.False(t, e.Move(engine.Right))
	assert.False(t, e.Rotate(engine.CW))
	assert.False(t, e.SoftDrop())
	assert.False(t, e.HardDrop())
	assert.Equal(t, before, e.GameState())

	require.True(t, e.TogglePause())
	assert.Equal(t, types.Running, e.RunState())
	assert.Equal(t, "0", e.StatusText())
	assert.Len(t, e.ActivePieceCells(), 4)
}

func TestGameStateSnapshot(t *testing.T) {
	e := newTestEngine(types.L)
	e.Start()

	state := e.GameState()
	assert.Equal(t, e.GameID(), state.GameID)
	assert.Equal(t, types.L, state.Piece)
	assert.Equal(t, types.CellPos{X: 5, Y: 20, Kind: types.L}, state.Anchor)
	assert.Equal(t, Width, state.Width())
	assert.Equal(t, Height, state.Height())
	assert.Equal(t, types.L, state.CellAt(5, 21))
	assert.Equal(t, types.Empty, state.CellAt(0, 0))

	// Mutating the snapshot does not reach the engine.
	state.Board[0][0] = types.Z
	assert.Equal(t, types.Empty, e.GridSnapshot()[0][0])
}

func TestRandomSourceOnlyPieceKinds(t *testing.T) {
	s := NewRandomSource(1)
	seen := map[types.Cell]int{}
	for i := 0; i < 700; i++ {
		k := s.Next()
		require.NotEqual(t, types.Empty, k)
		require.True(t, k.Valid())
		seen[k]++
	}
	assert.Len(t, seen, 7)
}

func TestRandomSourceSeedIsDeterministic(t *testing.T) {
	a, b := NewRandomSource(42), NewRandomSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceSource(t *testing.T) {
	s := NewSequenceSource(types.S, types.Empty, types.Z)
	assert.Equal(t, []types.Cell{types.S, types.Z, types.S, types.Z}, []types.Cell{s.Next(), s.Next(), s.Next(), s.Next()})

	fallback := NewSequenceSource()
	assert.Equal(t, types.I, fallback.Next())
}
