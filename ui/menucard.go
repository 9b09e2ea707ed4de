package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a styled card container with rounded borders, a title and an
// optional subtitle.
type MenuCard struct {
	*tview.Box
	title    string
	subtitle string
	focused  bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title, subtitle string) *MenuCard {
	return &MenuCard{
		Box:      tview.NewBox(),
		title:    title,
		subtitle: subtitle,
	}
}

// Draw renders the card frame. Content rows start at ContentTop.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}

	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := styleOn(borderColor)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.title == "" {
		return
	}

	// Title with a small S tetromino in front: ▗▟▘ T E R M T R I S
	titleStyle := styleOn(MenuColors.Title).Bold(true)
	accentStyle := styleOn(MenuColors.TitleAccent)
	titleLen := len([]rune(c.title)) + 4
	titleX := x + (width-titleLen)/2
	titleY := y + 2
	col := drawText(screen, titleX, titleY, "▗▟▘", accentStyle)
	drawText(screen, col+1, titleY, c.title, titleStyle)

	divY := y + 4
	if c.subtitle != "" {
		subLen := len([]rune(c.subtitle))
		drawText(screen, x+(width-subLen)/2, y+3, c.subtitle, styleOn(MenuColors.Hint))
		divY = y + 5
	}
	c.DrawDivider(screen, divY)
}

// ContentTop returns the first row below the title divider.
func (c *MenuCard) ContentTop() int {
	_, y, _, _ := c.GetInnerRect()
	if c.title == "" {
		return y + 1
	}
	if c.subtitle != "" {
		return y + 6
	}
	return y + 5
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := styleOn(borderColor)

	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
