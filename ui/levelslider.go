package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a horizontal slider for picking the starting level. Next to
// the value it shows how long a piece waits between rows at that level.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	interval func(int) time.Duration
	onChange func(int)
}

// NewLevelSlider creates a new level slider. interval may be nil.
func NewLevelSlider(label string, min, max, initial int, interval func(int) time.Duration, onChange func(int)) *LevelSlider {
	return &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    clamp(initial, min, max),
		interval: interval,
		onChange: onChange,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// SetFocused sets the focus state.
func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.step(-1)
		return true
	case tcell.KeyRight:
		s.step(1)
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h', '-':
			s.step(-1)
			return true
		case 'l', '+':
			s.step(1)
			return true
		}
	}
	return false
}

func (s *LevelSlider) step(delta int) {
	next := clamp(s.value+delta, s.min, s.max)
	if next == s.value {
		return
	}
	s.value = next
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Draw renders the slider and returns the number of rows used.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	labelStyle := styleOn(MenuColors.Label)
	accentStyle := styleOn(MenuColors.TitleAccent)
	selectedStyle := styleOn(MenuColors.Selected)
	unselectedStyle := styleOn(MenuColors.Unselected)

	col := x
	if s.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	}
	col += 2

	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2
	col = drawText(screen, col, y, s.label, labelStyle) + 3

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	filled := s.value - s.min + 1
	for i := 0; i < s.max-s.min+1; i++ {
		if i < filled {
			screen.SetContent(col, y, '█', nil, selectedStyle)
		} else {
			screen.SetContent(col, y, '░', nil, unselectedStyle)
		}
		col++
	}
	col++

	col = drawText(screen, col, y, fmt.Sprintf("%2d", s.value), labelStyle) + 1
	screen.SetContent(col, y, '▶', nil, arrowStyle)
	col += 2

	if s.interval != nil && col < x+width {
		drawText(screen, col, y, fmt.Sprintf("%dms", s.interval(s.value).Milliseconds()), styleOn(MenuColors.Hint))
	}
	return 1
}

// Value returns the current slider value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the slider value. Values out of range are ignored.
func (s *LevelSlider) SetValue(v int) {
	if v < s.min || v > s.max {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
