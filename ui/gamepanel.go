package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termtris/config"
	"termtris/engine/tetris"
	"termtris/types"
)

const panelVisibleLocks = 12

// GameInfoPanel displays game information and lock history alongside the board.
type GameInfoPanel struct {
	box     *tview.TextView
	state   *types.GameState
	level   int
	history []LockEntry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		level: config.MinLevel,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with the current game.
func (p *GameInfoPanel) SetState(state *types.GameState, level int, history []LockEntry) {
	p.state = state
	p.level = level
	p.history = history
	p.refresh()
}

// Text returns the panel contents including color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(false)
}

// kindTag returns a color tag for a piece kind.
func kindTag(kind types.Cell) string {
	c := kind.Color()
	return fmt.Sprintf("[#%02x%02x%02x]", c.R, c.G, c.B)
}

func (p *GameInfoPanel) refresh() {
	if p.state == nil {
		p.box.SetText("")
		return
	}

	var text strings.Builder

	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&text, "[white]Lines:[-:-:-] %d\n", p.state.LinesCleared)
	fmt.Fprintf(&text, "[white]Level:[-:-:-] %d [dimgray](%dms)[-]\n", p.level, config.LevelInterval(p.level).Milliseconds())
	fmt.Fprintf(&text, "[white]State:[-:-:-] %s\n", p.state.State)

	if p.state.State == types.Running && p.state.Piece != types.Empty {
		anchor := p.state.Anchor
		fmt.Fprintf(&text, "[white]Piece:[-:-:-] %s%s[-] at %s\n",
			kindTag(p.state.Piece), p.state.Piece, tetris.PosToDisplay(anchor.X, anchor.Y))
	}
	if id := p.state.GameID; len(id) >= 8 {
		fmt.Fprintf(&text, "[dimgray]game %s[-]\n", id[:8])
	}

	if len(p.history) == 0 {
		p.box.SetText(text.String())
		return
	}

	text.WriteString("\n[white::b]Locks[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	start := 0
	if len(p.history) > panelVisibleLocks {
		start = len(p.history) - panelVisibleLocks
	}
	for i := start; i < len(p.history); i++ {
		l := p.history[i]
		marker := " "
		if i == len(p.history)-1 {
			marker = "[white]>[-]"
		}
		cleared := ""
		if l.Cleared > 0 {
			cleared = fmt.Sprintf(" [yellow]+%d[-]", l.Cleared)
		}
		fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s%s[-] %s%s\n",
			marker, i+1, kindTag(l.Kind), l.Kind, tetris.PosToDisplay(l.Anchor.X, l.Anchor.Y), cleared)
	}
	if start > 0 {
		fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
	}

	p.box.SetText(text.String())
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardView, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardView, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	board.refresh()

	boardWidth, _ := board.Size()
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, boardWidth+2, 0, true)
	boardRow.AddItem(infoPanel.Box(), 0, 1, false)

	// Board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardView) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth, boardHeight := board.Size()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
