package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/engine"
	"termtris/types"
)

// Screen layout of the board: two columns of row numbers, a space and the left
// wall come before the first cell. Each cell is two characters wide.
const (
	gridLeft   = 4
	cellWidth  = 2
	maxHistory = 64
)

// LockEntry records one locked piece.
type LockEntry struct {
	Kind    types.Cell
	Anchor  types.CellPos
	Cleared int
	Lines   int
}

// BoardView draws the playfield and forwards player commands to the engine.
type BoardView struct {
	Box       *tview.Box
	State     *types.GameState
	hint      *tview.TextView
	cfg       *config.Config
	eng       engine.GameEngine
	styles    boardStyles
	infoPanel *GameInfoPanel
	focusMode bool
	level     int
	history   []LockEntry
	onGameEnd func(linesCleared int)
}

type boardStyles struct {
	pieces [types.NumCells]tcell.Style
	empty  tcell.Style
	border tcell.Style
	coord  tcell.Style
	banner tcell.Style
}

// NewBoardView creates an empty board view. hint receives the status and key help.
func NewBoardView(c *config.Config, hint *tview.TextView) *BoardView {
	b := &BoardView{
		Box:   tview.NewBox(),
		State: &types.GameState{},
		hint:  hint,
		level: config.MinLevel,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	return b
}

// SetConfig applies the theme colors and symbols.
func (b *BoardView) SetConfig(c *config.Config) {
	bg := tcell.PaletteColor(c.Theme.Colors.Background)
	for i, col := range c.Theme.Colors.Pieces {
		b.styles.pieces[i] = tcell.StyleDefault.Foreground(tcell.PaletteColor(col)).Background(bg)
	}
	b.styles.empty = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.Grid)).Background(bg)
	b.styles.border = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.Border))
	b.styles.coord = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.Grid))
	b.styles.banner = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.Banner)).Background(bg).Bold(true)
	b.cfg = c
}

// Size returns the screen size of the board including coordinates.
func (b *BoardView) Size() (width, height int) {
	return gridLeft + engine.BoardWidth*cellWidth + 1, engine.BoardHeight + 2
}

// CellOrigin returns the screen position of the left character of board cell
// (x, y) for a board drawn at (left, top).
func CellOrigin(left, top, x, y int) (int, int) {
	return left + gridLeft + x*cellWidth, top + engine.BoardHeight - 1 - y
}

func (b *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	state := b.State
	if state == nil || state.Width() == 0 {
		state = emptyState()
	}
	symbols := b.cfg.Theme.Symbols

	for by := 0; by < state.Height(); by++ {
		for bx := 0; bx < state.Width(); bx++ {
			sx, sy := CellOrigin(x, y, bx, by)
			cell := state.CellAt(bx, by)
			if cell == types.Empty {
				r := ' '
				if b.cfg.Theme.DrawGrid {
					r = symbols.Empty
				}
				screen.SetContent(sx, sy, r, nil, b.styles.empty)
				screen.SetContent(sx+1, sy, ' ', nil, b.styles.empty)
				continue
			}
			style := b.styles.pieces[cell]
			if state.IsActive(bx, by) {
				style = style.Bold(true)
			}
			screen.SetContent(sx, sy, symbols.Block, nil, style)
			screen.SetContent(sx+1, sy, symbols.Block, nil, style)
		}
	}

	b.drawWalls(screen, x, y)
	if b.cfg.Theme.ShowCoords {
		b.drawCoordinates(screen, x, y)
	}
	b.drawBanner(screen, x, y, state)

	w, h := b.Size()
	return x, y, w, h
}

func emptyState() *types.GameState {
	board := make([][]types.Cell, engine.BoardHeight)
	for i := range board {
		board[i] = make([]types.Cell, engine.BoardWidth)
	}
	return &types.GameState{Board: board}
}

func (b *BoardView) drawWalls(screen tcell.Screen, x, y int) {
	left := x + gridLeft - 1
	right := x + gridLeft + engine.BoardWidth*cellWidth
	bottom := y + engine.BoardHeight
	for row := y; row < bottom; row++ {
		screen.SetContent(left, row, '│', nil, b.styles.border)
		screen.SetContent(right, row, '│', nil, b.styles.border)
	}
	screen.SetContent(left, bottom, '└', nil, b.styles.border)
	for col := left + 1; col < right; col++ {
		screen.SetContent(col, bottom, '─', nil, b.styles.border)
	}
	screen.SetContent(right, bottom, '┘', nil, b.styles.border)
}

// drawCoordinates labels rows 1-22 from the bottom and columns A-J.
func (b *BoardView) drawCoordinates(screen tcell.Screen, x, y int) {
	for by := 0; by < engine.BoardHeight; by++ {
		_, sy := CellOrigin(x, y, 0, by)
		drawText(screen, x, sy, fmt.Sprintf("%2d", by+1), b.styles.coord)
	}
	for bx := 0; bx < engine.BoardWidth; bx++ {
		sx, _ := CellOrigin(x, y, bx, 0)
		screen.SetContent(sx, y+engine.BoardHeight+1, 'A'+rune(bx), nil, b.styles.coord)
	}
}

func (b *BoardView) drawBanner(screen tcell.Screen, x, y int, state *types.GameState) {
	var text string
	switch state.State {
	case types.NotStarted:
		text = "PRESS R"
	case types.Paused:
		text = "PAUSED"
	case types.GameOver:
		text = "GAME OVER"
	default:
		return
	}
	text = " " + text + " "
	inner := engine.BoardWidth * cellWidth
	col := x + gridLeft + (inner-len(text))/2
	drawText(screen, col, y+engine.BoardHeight/2-1, text, b.styles.banner)
}

// ConnectEngine attaches the board to an engine. The engine callbacks run on
// the caller's goroutine, inside whichever command triggered them.
func (b *BoardView) ConnectEngine(e engine.GameEngine, level int) {
	b.eng = e
	b.level = level
	b.history = nil

	e.OnLock(func(cleared int, state *types.GameState) {
		b.history = append(b.history, LockEntry{
			Kind:    state.LastLock.Anchor.Kind,
			Anchor:  state.LastLock.Anchor,
			Cleared: cleared,
			Lines:   state.LinesCleared,
		})
		if len(b.history) > maxHistory {
			b.history = b.history[len(b.history)-maxHistory:]
		}
		b.State = state
		b.refresh()
	})

	e.OnGameEnd(func(linesCleared int) {
		b.State = e.GameState()
		b.refresh()
		if b.onGameEnd != nil {
			b.onGameEnd(linesCleared)
		}
	})

	b.State = e.GameState()
	b.refresh()
}

// OnGameEnd registers a hook that runs after the board has shown the final state.
func (b *BoardView) OnGameEnd(callback func(linesCleared int)) {
	b.onGameEnd = callback
}

// History returns the recorded locks, oldest first.
func (b *BoardView) History() []LockEntry {
	return b.history
}

// Level returns the speed level shown on the panel.
func (b *BoardView) Level() int {
	return b.level
}

func (b *BoardView) run(cmd func(engine.GameEngine) bool) bool {
	if b.eng == nil {
		return false
	}
	changed := cmd(b.eng)
	if changed {
		b.State = b.eng.GameState()
		b.refresh()
	}
	return changed
}

// Start starts a game on the connected engine.
func (b *BoardView) Start() bool {
	b.history = nil
	return b.run(engine.GameEngine.Start)
}

// Restart starts over from any state.
func (b *BoardView) Restart() bool {
	b.history = nil
	return b.run(engine.GameEngine.Restart)
}

func (b *BoardView) Tick() bool {
	return b.run(engine.GameEngine.Tick)
}

func (b *BoardView) Move(dir engine.Direction) bool {
	return b.run(func(e engine.GameEngine) bool { return e.Move(dir) })
}

func (b *BoardView) Rotate(rot engine.Rotation) bool {
	return b.run(func(e engine.GameEngine) bool { return e.Rotate(rot) })
}

func (b *BoardView) SoftDrop() bool {
	return b.run(engine.GameEngine.SoftDrop)
}

func (b *BoardView) HardDrop() bool {
	return b.run(engine.GameEngine.HardDrop)
}

func (b *BoardView) TogglePause() bool {
	return b.run(engine.GameEngine.TogglePause)
}

// IsFinished returns true if the game is over.
func (b *BoardView) IsFinished() bool {
	return b.State != nil && b.State.Finished()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardView) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refresh()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *BoardView) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refresh()
}

// IsFocusMode returns true if focus mode is enabled.
func (b *BoardView) IsFocusMode() bool {
	return b.focusMode
}

func (b *BoardView) refresh() {
	if b.infoPanel != nil {
		b.infoPanel.SetState(b.State, b.level, b.history)
	}
	if b.hint == nil {
		return
	}

	if b.focusMode {
		b.hint.SetText("  " + b.status() + "   f to toggle")
		return
	}

	controls := "  ←→/hl move  ↑k z ccw  ↓j x cw  d drop  ␣ hard drop\n" +
		"  p pause  r restart  f focus  q menu"
	if b.State.Finished() {
		controls = "  r play again   q return to menu"
	}
	b.hint.SetText(fmt.Sprintf("  %s\n%s", b.status(), controls))
}

func (b *BoardView) status() string {
	switch b.State.State {
	case types.NotStarted:
		return "Ready"
	case types.Running:
		return "Lines: " + b.State.Status
	}
	return b.State.Status
}
