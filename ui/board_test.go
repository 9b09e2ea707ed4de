package ui

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtris/config"
	"termtris/engine"
	"termtris/engine/tetris"
	"termtris/types"
)

func newTestBoard(t *testing.T) (*BoardView, *tview.TextView) {
	t.Helper()
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	b := NewBoardView(&cfg, hint)
	e := tetris.NewEngine(engine.DefaultConfig(), tetris.WithSource(tetris.NewSequenceSource(types.I)))
	b.ConnectEngine(e, 3)
	return b, hint
}

func drawBoard(t *testing.T, b *BoardView) []string {
	t.Helper()
	w, h := b.Size()
	screen := newTestScreen(t, w, h)
	b.Box.SetRect(0, 0, w, h)
	b.Box.Draw(screen)
	return screenLines(screen)
}

func runeAt(lines []string, x, y int) rune {
	return []rune(lines[y])[x]
}

func TestCellOrigin(t *testing.T) {
	x, y := CellOrigin(0, 0, 0, 0)
	assert.Equal(t, gridLeft, x)
	assert.Equal(t, engine.BoardHeight-1, y)

	x, y = CellOrigin(2, 1, 9, engine.BoardHeight-1)
	assert.Equal(t, 2+gridLeft+18, x)
	assert.Equal(t, 1, y)
}

func TestBoardViewBeforeStart(t *testing.T) {
	b, _ := newTestBoard(t)
	assert.False(t, b.Tick())
	assert.False(t, b.IsFinished())

	lines := drawBoard(t, b)
	assert.Contains(t, lines[engine.BoardHeight/2-1], "PRESS R")
	assert.Equal(t, '│', runeAt(lines, gridLeft-1, 0))
	assert.Equal(t, '└', runeAt(lines, gridLeft-1, engine.BoardHeight))
}

func TestBoardViewDrawsActivePiece(t *testing.T) {
	b, hint := newTestBoard(t)
	require.True(t, b.Start())

	lines := drawBoard(t, b)
	for y := 18; y <= 21; y++ {
		x, sy := CellOrigin(0, 0, 5, y)
		assert.Equal(t, '█', runeAt(lines, x, sy), "row %d", y)
		assert.Equal(t, '█', runeAt(lines, x+1, sy), "row %d", y)
	}
	x, sy := CellOrigin(0, 0, 0, 0)
	assert.Equal(t, '·', runeAt(lines, x, sy))

	// Coordinates: row 1 at the bottom, columns A-J below the floor.
	assert.Equal(t, " 1", string([]rune(lines[engine.BoardHeight-1])[:2]))
	assert.Equal(t, "22", string([]rune(lines[0])[:2]))
	assert.Equal(t, 'A', runeAt(lines, gridLeft, engine.BoardHeight+1))
	assert.Equal(t, 'J', runeAt(lines, gridLeft+18, engine.BoardHeight+1))

	assert.Contains(t, hint.GetText(false), "Lines: 0")
}

func TestBoardViewHardDropRecordsLock(t *testing.T) {
	b, _ := newTestBoard(t)
	hint := tview.NewTextView()
	layout := CreateGameLayout(b, hint)
	require.NotNil(t, layout)
	b.Start()

	require.True(t, b.HardDrop())
	require.Len(t, b.History(), 1)
	assert.Equal(t, LockEntry{
		Kind:   types.I,
		Anchor: types.CellPos{X: 5, Y: 2, Kind: types.I},
	}, b.History()[0])

	text := b.infoPanel.Text()
	assert.Contains(t, text, "Locks")
	assert.Contains(t, text, "F3")
	assert.Contains(t, text, "Level:[-:-:-] 3")

	lines := drawBoard(t, b)
	x, sy := CellOrigin(0, 0, 5, 0)
	assert.Equal(t, '█', runeAt(lines, x, sy))
}

func TestBoardViewPause(t *testing.T) {
	b, hint := newTestBoard(t)
	b.Start()
	require.True(t, b.TogglePause())

	lines := drawBoard(t, b)
	assert.Contains(t, lines[engine.BoardHeight/2-1], "PAUSED")
	x, sy := CellOrigin(0, 0, 5, 21)
	assert.Equal(t, '·', runeAt(lines, x, sy), "active piece hidden while paused")
	assert.Contains(t, hint.GetText(false), "PAUSED")

	assert.False(t, b.Move(engine.Left))
	require.True(t, b.TogglePause())
}

func TestBoardViewGameOver(t *testing.T) {
	b, hint := newTestBoard(t)
	final := -1
	b.OnGameEnd(func(lines int) { final = lines })
	b.Start()

	// Vertical I pieces stacked in one column reach the spawn area after five drops.
	for i := 0; i < 5; i++ {
		require.True(t, b.HardDrop(), "drop %d", i)
	}
	assert.True(t, b.IsFinished())
	assert.Equal(t, 0, final)
	assert.Len(t, b.History(), 5)

	lines := drawBoard(t, b)
	assert.Contains(t, lines[engine.BoardHeight/2-1], "GAME OVER")
	assert.Contains(t, hint.GetText(false), "Game over. Score: 0")
	assert.False(t, b.HardDrop())

	require.True(t, b.Restart())
	assert.False(t, b.IsFinished())
	assert.Empty(t, b.History())
}

func TestFocusLayout(t *testing.T) {
	b, hint := newTestBoard(t)
	frame := CreateGameLayout(b, hint)
	require.NotNil(t, b.infoPanel)

	assert.True(t, b.ToggleFocusMode())
	BuildFocusLayout(frame, b)
	assert.Nil(t, b.infoPanel)
	assert.Contains(t, hint.GetText(false), "f to toggle")

	b.SetFocusMode(false)
	RebuildNormalLayout(frame, b, hint)
	assert.False(t, b.IsFocusMode())
	assert.NotNil(t, b.infoPanel)
}
