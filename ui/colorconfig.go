package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/engine/tetris"
	"termtris/types"
)

// ColorConfigUI edits the color of each piece kind and the well background,
// with a live preview of all seven pieces.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	save      func(*config.Config) error
	onDone    func(error)

	// Working copy, written to cfg on confirm.
	pieces     [types.NumCells]int
	background int
	// target is an index into tetris.Kinds, or len(tetris.Kinds) for the background.
	target     int
	// populating suppresses list change events while the list is rebuilt.
	populating bool
}

// Palette offered for pieces and background.
var paletteColors = []struct {
	code int
	name string
}{
	{167, "Brick"},
	{203, "Coral"},
	{196, "Red"},
	{77, "Leaf"},
	{114, "Sage"},
	{46, "Green"},
	{62, "Slate Blue"},
	{69, "Cornflower"},
	{33, "Azure"},
	{185, "Khaki"},
	{226, "Yellow"},
	{170, "Orchid"},
	{201, "Magenta"},
	{80, "Turquoise"},
	{51, "Cyan"},
	{178, "Amber"},
	{214, "Orange"},
	{255, "White"},
	{245, "Gray"},
	{238, "Charcoal"},
	{236, "Graphite"},
	{234, "Coal"},
	{232, "Black"},
	{17, "Navy"},
}

// NewColorConfig creates the color screen. save persists the config and
// onDone runs after a save attempt with its result.
func NewColorConfig(cfg *config.Config, save func(*config.Config) error, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:        cfg,
		save:       save,
		onDone:     onDone,
		pieces:     cfg.Theme.Colors.Pieces,
		background: cfg.Theme.Colors.Background,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.pick(index)
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.pick(index)
		cc.Apply()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) targetName() string {
	if cc.target == len(tetris.Kinds) {
		return "Background"
	}
	return tetris.Kinds[cc.target].String() + " piece"
}

func (cc *ColorConfigUI) targetColor() int {
	if cc.target == len(tetris.Kinds) {
		return cc.background
	}
	return cc.pieces[tetris.Kinds[cc.target]]
}

// pick sets the target's working color from a list index.
func (cc *ColorConfigUI) pick(index int) {
	if cc.populating || index < 0 || index >= len(paletteColors) {
		return
	}
	code := paletteColors[index].code
	if cc.target == len(tetris.Kinds) {
		cc.background = code
	} else {
		cc.pieces[tetris.Kinds[cc.target]] = code
	}
}

func (cc *ColorConfigUI) populateColorList() {
	cc.populating = true
	defer func() { cc.populating = false }()

	cc.colorList.Clear()
	cc.colorList.SetTitle(fmt.Sprintf(" %s (Tab: next) ", cc.targetName()))
	current := cc.targetColor()
	for i, c := range paletteColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
		}
	}
}

// Apply writes the working colors to the config and saves it.
func (cc *ColorConfigUI) Apply() {
	cc.cfg.Theme.Colors.Pieces = cc.pieces
	cc.cfg.Theme.Colors.Background = cc.background
	var err error
	if cc.save != nil {
		err = cc.save(cc.cfg)
	}
	if cc.onDone != nil {
		cc.onDone(err)
	}
}

// Colors returns the working piece colors and background.
func (cc *ColorConfigUI) Colors() ([types.NumCells]int, int) {
	return cc.pieces, cc.background
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}
	bg := tcell.StyleDefault.Background(tcell.PaletteColor(cc.background))
	block := cc.cfg.Theme.Symbols.Block

	// A small well, 18 cells wide and 8 high, with the pieces side by side in
	// two rows. Preview y counts down from the top like the screen.
	wellW, wellH := min(18, (width-4)/2), 8
	left, top := x+2, y+1
	for row := 0; row < wellH; row++ {
		for col := 0; col < wellW*2; col++ {
			screen.SetContent(left+col, top+row, ' ', nil, bg)
		}
	}

	for i, kind := range tetris.Kinds {
		ax := 1 + (i%4)*4
		ay := 2 + (i/4)*4
		style := bg.Foreground(tcell.PaletteColor(cc.pieces[kind]))
		if cc.target == i {
			style = style.Bold(true)
		}
		for _, c := range tetris.NewPiece(kind).Cells(ax, ay) {
			// Cells counts y upward; flip it for the screen.
			sy := top + (wellH - 1 - c.Y)
			sx := left + c.X*2
			if c.X < 0 || c.X >= wellW || sy < top || sy >= top+wellH {
				continue
			}
			screen.SetContent(sx, sy, block, nil, style)
			screen.SetContent(sx+1, sy, block, nil, style)
		}
	}

	info := fmt.Sprintf("Editing: %s  color %d", cc.targetName(), cc.targetColor())
	drawText(screen, left, top+wellH+1, info, tcell.StyleDefault)
	drawText(screen, left, top+wellH+2, "Enter: save   Tab: next   Esc: back", tcell.StyleDefault.Foreground(MenuColors.Hint))

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// NextTarget moves to the next piece kind, then the background, then wraps.
func (cc *ColorConfigUI) NextTarget() {
	cc.target = (cc.target + 1) % (len(tetris.Kinds) + 1)
	cc.populateColorList()
}
