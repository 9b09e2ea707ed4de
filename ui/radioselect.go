package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption is a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		r.SetSelected(r.selected - 1)
		return true
	case tcell.KeyDown:
		r.SetSelected(r.selected + 1)
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			r.SetSelected(r.selected - 1)
			return true
		case 'j':
			r.SetSelected(r.selected + 1)
			return true
		}
	}
	return false
}

// Draw renders the group and returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	labelStyle := styleOn(MenuColors.Label)
	accentStyle := styleOn(MenuColors.TitleAccent)
	selectedStyle := styleOn(MenuColors.Selected)
	unselectedStyle := styleOn(MenuColors.Unselected)
	hintStyle := styleOn(MenuColors.Hint)

	row := y
	screen.SetContent(x, row, '◈', nil, accentStyle)
	drawText(screen, x+2, row, r.label, labelStyle)
	row++

	for i, opt := range r.options {
		col := x + 2
		if r.focused && i == r.selected {
			screen.SetContent(col, row, '▸', nil, selectedStyle)
		}
		col += 2

		style := unselectedStyle
		bullet := '○'
		if i == r.selected {
			bullet = '●'
			style = selectedStyle
		}
		screen.SetContent(col, row, bullet, nil, style)
		col = drawText(screen, col+2, row, opt.Label, style)

		if opt.Description != "" && col+1 < x+width {
			drawText(screen, col+1, row, opt.Description, hintStyle)
		}
		row++
	}
	return row - y
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index. Out of range indexes are ignored.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}
