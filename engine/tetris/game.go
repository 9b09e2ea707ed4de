package tetris

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termtris/engine"
	"termtris/types"
)

// Engine implements engine.GameEngine. It is not safe for concurrent use: the
// caller must serialize every command and query.
type Engine struct {
	config engine.GameConfig
	source PieceSource
	log    *zap.Logger

	board  *Board
	piece  Piece
	x, y   int
	lines  int
	state  types.RunState
	gameID string
	last   types.LockInfo

	lockCallback func(cleared int, state *types.GameState)
	endCallback  func(linesCleared int)
}

var _ engine.GameEngine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets where spawned piece kinds come from.
func WithSource(source PieceSource) Option {
	return func(e *Engine) {
		e.source = source
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log == nil {
			log = zap.NewNop()
		}
		e.log = log
	}
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(cfg engine.GameConfig, opts ...Option) *Engine {
	e := &Engine{
		config: cfg,
		log:    zap.NewNop(),
		board:  NewBoard(),
		piece:  NoPiece(),
		state:  types.NotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewRandomSource(cfg.Seed)
	}
	return e
}

// Start resets the board and score and spawns the first piece. If the first
// piece does not fit the game is over immediately.
func (e *Engine) Start() bool {
	e.board.Reset()
	e.lines = 0
	e.last = types.LockInfo{}
	e.piece = NoPiece()
	e.gameID = uuid.NewString()
	e.state = types.Running

	e.log.Info("game started",
		zap.String("game_id", e.gameID),
		zap.Int64("seed", e.config.Seed),
		zap.Int("spawn_x", e.spawnX()),
	)

	if !e.spawn() {
		e.endGame()
	}
	return true
}

// Restart starts a new game from any state.
func (e *Engine) Restart() bool {
	e.log.Info("restart requested", zap.String("game_id", e.gameID), zap.Stringer("state", e.state))
	return e.Start()
}

// Tick moves the active piece down one row or locks it.
func (e *Engine) Tick() bool {
	if !e.accepts("tick") {
		return false
	}
	return e.oneLineDown()
}

// Move shifts the active piece one column left or right.
func (e *Engine) Move(dir engine.Direction) bool {
	if !e.accepts("move") {
		return false
	}
	return e.tryMove(e.piece, e.x+dir.Delta(), e.y)
}

// Rotate turns the active piece about its anchor. A rotation that does not fit
// is rejected.
func (e *Engine) Rotate(rot engine.Rotation) bool {
	if !e.accepts("rotate") {
		return false
	}
	candidate := e.piece.RotateCW()
	if rot == engine.CCW {
		candidate = e.piece.RotateCCW()
	}
	return e.tryMove(candidate, e.x, e.y)
}

// SoftDrop runs one tick without waiting for the timer.
func (e *Engine) SoftDrop() bool {
	if !e.accepts("soft drop") {
		return false
	}
	return e.oneLineDown()
}

// HardDrop lowers the active piece until it rests and locks it.
func (e *Engine) HardDrop() bool {
	if !e.accepts("hard drop") {
		return false
	}
	for e.tryMove(e.piece, e.x, e.y-1) {
	}
	e.lock()
	return true
}

// TogglePause switches between Running and Paused.
func (e *Engine) TogglePause() bool {
	switch e.state {
	case types.Running:
		e.state = types.Paused
	case types.Paused:
		e.state = types.Running
	default:
		e.log.Debug("pause ignored", zap.Stringer("state", e.state))
		return false
	}
	e.log.Info("pause toggled", zap.String("game_id", e.gameID), zap.Stringer("state", e.state))
	return true
}

func (e *Engine) GridSnapshot() [][]types.Cell {
	return e.board.Snapshot()
}

// ActivePieceCells returns the active piece's cells while running, otherwise nothing.
func (e *Engine) ActivePieceCells() []types.CellPos {
	if e.state != types.Running || e.piece.IsEmpty() {
		return nil
	}
	cells := e.piece.Cells(e.x, e.y)
	return cells[:]
}

func (e *Engine) LinesCleared() int {
	return e.lines
}

func (e *Engine) RunState() types.RunState {
	return e.state
}

// GameID returns the id of the current game, empty before the first start.
func (e *Engine) GameID() string {
	return e.gameID
}

// StatusText returns the line count, "PAUSED", or the game over message.
func (e *Engine) StatusText() string {
	switch e.state {
	case types.Paused:
		return "PAUSED"
	case types.GameOver:
		return fmt.Sprintf("Game over. Score: %d", e.lines)
	}
	return strconv.Itoa(e.lines)
}

// GameState returns a snapshot of the whole engine.
func (e *Engine) GameState() *types.GameState {
	return &types.GameState{
		GameID:       e.gameID,
		State:        e.state,
		LinesCleared: e.lines,
		Board:        e.board.Snapshot(),
		Active:       e.ActivePieceCells(),
		Anchor:       types.CellPos{X: e.x, Y: e.y, Kind: e.piece.Kind()},
		Piece:        e.piece.Kind(),
		Status:       e.StatusText(),
		LastLock:     e.last,
	}
}

// OnLock registers a callback for when a piece is locked into the board.
func (e *Engine) OnLock(callback func(cleared int, state *types.GameState)) {
	e.lockCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(linesCleared int)) {
	e.endCallback = callback
}

// accepts reports whether movement commands are allowed right now.
func (e *Engine) accepts(command string) bool {
	if e.state == types.Running {
		return true
	}
	e.log.Debug("command ignored", zap.String("command", command), zap.Stringer("state", e.state))
	return false
}

func (e *Engine) oneLineDown() bool {
	if !e.tryMove(e.piece, e.x, e.y-1) {
		e.lock()
	}
	return true
}

// tryMove places candidate at (nx, ny) if all of its cells are on the grid
// and free. Nothing changes when it returns false.
func (e *Engine) tryMove(candidate Piece, nx, ny int) bool {
	for _, c := range candidate.Cells(nx, ny) {
		if !e.board.IsFree(c.X, c.Y) {
			return false
		}
	}
	e.piece, e.x, e.y = candidate, nx, ny
	return true
}

// lock writes the active piece into the board, clears full rows and spawns
// the next piece.
func (e *Engine) lock() {
	kind := e.piece.Kind()
	for _, c := range e.piece.Cells(e.x, e.y) {
		if err := e.board.SetCell(c.X, c.Y, kind); err != nil {
			e.log.Error("lock outside board", zap.String("game_id", e.gameID), zap.Error(err))
		}
	}

	cleared := e.board.ClearCompletedRows()
	e.lines += cleared
	e.last = types.LockInfo{
		Anchor:  types.CellPos{X: e.x, Y: e.y, Kind: kind},
		Cleared: cleared,
	}
	e.log.Info("piece locked",
		zap.String("game_id", e.gameID),
		zap.Stringer("kind", kind),
		zap.String("anchor", PosToDisplay(e.x, e.y)),
		zap.Int("cleared", cleared),
		zap.Int("lines", e.lines),
	)

	e.piece = NoPiece()
	over := !e.spawn()
	if over {
		e.state = types.GameOver
	}

	if e.lockCallback != nil {
		e.lockCallback(cleared, e.GameState())
	}
	if over {
		e.endGame()
	}
}

func (e *Engine) spawnX() int {
	return Width/2 + e.config.SpawnOffset
}

// spawn places a new piece with its top cell on the top row. Returns false if
// it collides.
func (e *Engine) spawn() bool {
	p := NewPiece(e.source.Next())
	x := e.spawnX()
	y := Height - 1 + p.MinY()
	if !e.tryMove(p, x, y) {
		e.log.Info("spawn blocked",
			zap.String("game_id", e.gameID),
			zap.Stringer("kind", p.Kind()),
			zap.String("anchor", PosToDisplay(x, y)),
		)
		return false
	}
	e.log.Debug("piece spawned", zap.Stringer("kind", p.Kind()), zap.String("anchor", PosToDisplay(x, y)))
	return true
}

// endGame enters GameOver and notifies the end callback.
func (e *Engine) endGame() {
	e.state = types.GameOver
	e.piece = NoPiece()
	e.log.Info("game over", zap.String("game_id", e.gameID), zap.Int("lines", e.lines))
	e.log.Debug("final board\n" + e.board.String())
	if e.endCallback != nil {
		e.endCallback(e.lines)
	}
}
