package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

const seedFieldWidth = 12

// SeedInput is a numeric field for the random seed. An empty field or 0 means
// a time-based seed.
type SeedInput struct {
	label    string
	value    int64
	text     string
	focused  bool
	cursor   int
	onChange func(int64)
}

// NewSeedInput creates a new seed input field.
func NewSeedInput(label string, initial int64, onChange func(int64)) *SeedInput {
	s := &SeedInput{label: label, onChange: onChange}
	s.setText(initial)
	return s
}

func (s *SeedInput) setText(v int64) {
	s.value = v
	s.text = ""
	if v != 0 {
		s.text = strconv.FormatInt(v, 10)
	}
	s.cursor = len(s.text)
}

// SetFocused sets the focus state.
func (s *SeedInput) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *SeedInput) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
		return true
	case tcell.KeyRight:
		if s.cursor < len(s.text) {
			s.cursor++
		}
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.cursor = 0
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.cursor = len(s.text)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursor > 0 {
			s.text = s.text[:s.cursor-1] + s.text[s.cursor:]
			s.cursor--
			s.updateValue()
		}
		return true
	case tcell.KeyDelete:
		if s.cursor < len(s.text) {
			s.text = s.text[:s.cursor] + s.text[s.cursor+1:]
			s.updateValue()
		}
		return true
	case tcell.KeyRune:
		ch := event.Rune()
		if ch < '0' || ch > '9' || len(s.text) >= seedFieldWidth {
			return false
		}
		s.text = s.text[:s.cursor] + string(ch) + s.text[s.cursor:]
		s.cursor++
		s.updateValue()
		return true
	}
	return false
}

func (s *SeedInput) updateValue() {
	v := int64(0)
	if s.text != "" {
		parsed, err := strconv.ParseInt(s.text, 10, 64)
		if err != nil {
			return
		}
		v = parsed
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Draw renders the field and returns the number of rows used.
func (s *SeedInput) Draw(screen tcell.Screen, x, y, width int) int {
	labelStyle := styleOn(MenuColors.Label)
	accentStyle := styleOn(MenuColors.TitleAccent)
	selectedStyle := styleOn(MenuColors.Selected)
	inputStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.InputBG)
	cursorStyle := tcell.StyleDefault.Foreground(MenuColors.CardBG).Background(MenuColors.Selected)

	col := x
	if s.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	}
	col += 2

	screen.SetContent(col, y, '◈', nil, accentStyle)
	col = drawText(screen, col+2, y, s.label, labelStyle) + 3

	screen.SetContent(col, y, '[', nil, labelStyle)
	col++
	screen.SetContent(col, y, ' ', nil, inputStyle)
	col++

	start := col
	for i, ch := range s.text {
		style := inputStyle
		if s.focused && i == s.cursor {
			style = cursorStyle
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	if s.focused && s.cursor >= len(s.text) {
		screen.SetContent(col, y, ' ', nil, cursorStyle)
		col++
	}
	if s.text == "" && !s.focused {
		col = drawText(screen, col, y, "random", tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.InputBG))
	}
	for col < start+seedFieldWidth+1 {
		screen.SetContent(col, y, ' ', nil, inputStyle)
		col++
	}
	screen.SetContent(col, y, ']', nil, labelStyle)
	return 1
}

// Value returns the current seed.
func (s *SeedInput) Value() int64 {
	return s.value
}

// SetValue sets the seed.
func (s *SeedInput) SetValue(v int64) {
	s.setText(v)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
