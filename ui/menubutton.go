package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button component. A button with a hotkey also fires
// when that letter is typed.
type MenuButton struct {
	label    string
	hotkey   rune
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, hotkey rune, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		hotkey:   unicode.ToLower(hotkey),
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Hotkey returns the button's letter, or 0.
func (b *MenuButton) Hotkey() rune {
	return b.hotkey
}

// Press runs the button action.
func (b *MenuButton) Press() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEnter:
		b.Press()
		return true
	case tcell.KeyRune:
		if b.hotkey != 0 && unicode.ToLower(event.Rune()) == b.hotkey {
			b.Press()
			return true
		}
	}
	return false
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button at the given position and returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, label, style)
		return width
	}

	bracketStyle := styleOn(MenuColors.Border)
	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := x + 1
	for _, ch := range label {
		style := styleOn(MenuColors.Hint)
		if b.hotkey != 0 && unicode.ToLower(ch) == b.hotkey {
			style = style.Underline(true)
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	screen.SetContent(col, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
