package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for menus and panels.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	BorderFocus tcell.Color // Brighter blue for focused borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Accent for the block decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Bright blue for selected items
	Unselected  tcell.Color // Dim gray for unselected items
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
	InputBG     tcell.Color // Text input background
	Danger      tcell.Color // Game over banner
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	CardBG:      tcell.PaletteColor(236),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(178),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(109),
	Unselected:  tcell.PaletteColor(245),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
	InputBG:     tcell.PaletteColor(238),
	Danger:      tcell.PaletteColor(167),
}

// styleOn returns a style with fg on the card background.
func styleOn(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG)
}

// drawText writes s starting at (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
