// Package ui provides terminal UI components for termtris.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/engine"
)

// menuControl is a focusable row on the setup card.
type menuControl interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
	Draw(screen tcell.Screen, x, y, width int) int
}

// SetupMenu is the new game screen: starting level, spawn column and seed,
// followed by the Start, Colors and Quit buttons.
type SetupMenu struct {
	*MenuCard

	level   *LevelSlider
	spawn   *RadioSelect
	seed    *SeedInput
	buttons []*MenuButton

	// focus indexes the controls first and then the buttons.
	focus int

	onStart  func(engine.GameConfig)
	onColors func()
	onQuit   func()
}

var spawnOptions = []RadioOption{
	{Label: "Center", Description: "column F"},
	{Label: "Right of center", Description: "column G"},
}

// NewSetupMenu creates the setup screen with defaults taken from settings.
func NewSetupMenu(settings config.GameSettings, interval func(int) time.Duration,
	onStart func(engine.GameConfig), onColors func(), onQuit func()) *SetupMenu {
	m := &SetupMenu{
		MenuCard: NewMenuCard("T E R M T R I S", "new game"),
		onStart:  onStart,
		onColors: onColors,
		onQuit:   onQuit,
	}
	m.level = NewLevelSlider("Level", config.MinLevel, config.MaxLevel, settings.Level, interval, nil)
	m.spawn = NewRadioSelect("Spawn column", spawnOptions, settings.SpawnOffset, nil)
	m.seed = NewSeedInput("Seed", settings.Seed, nil)
	m.buttons = []*MenuButton{
		NewMenuButton("Start", 's', true, m.start),
		NewMenuButton("Colors", 'c', false, func() {
			if m.onColors != nil {
				m.onColors()
			}
		}),
		NewMenuButton("Quit", 'q', false, func() {
			if m.onQuit != nil {
				m.onQuit()
			}
		}),
	}
	m.SetFocused(true)
	m.setFocus(0)
	return m
}

func (m *SetupMenu) controls() []menuControl {
	return []menuControl{m.level, m.spawn, m.seed}
}

func (m *SetupMenu) focusCount() int {
	return len(m.controls()) + len(m.buttons)
}

func (m *SetupMenu) setFocus(i int) {
	n := m.focusCount()
	m.focus = ((i % n) + n) % n
	for j, c := range m.controls() {
		c.SetFocused(j == m.focus)
	}
	for j, b := range m.buttons {
		b.SetFocused(len(m.controls())+j == m.focus)
	}
}

// Focused returns the index of the focused row.
func (m *SetupMenu) Focused() int {
	return m.focus
}

// GameConfig returns the settings currently shown on the card.
func (m *SetupMenu) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Seed:        m.seed.Value(),
		SpawnOffset: m.spawn.Selected(),
		Level:       m.level.Value(),
	}
}

func (m *SetupMenu) start() {
	if m.onStart != nil {
		m.onStart(m.GameConfig())
	}
}

// HandleKey routes a key to the focused control, then to the buttons'
// hotkeys. Returns true if the key was used.
func (m *SetupMenu) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		m.setFocus(m.focus + 1)
		return true
	case tcell.KeyBacktab:
		m.setFocus(m.focus - 1)
		return true
	case tcell.KeyEscape:
		if m.onQuit != nil {
			m.onQuit()
		}
		return true
	}

	controls := m.controls()
	if m.focus < len(controls) {
		if controls[m.focus].HandleKey(event) {
			return true
		}
		switch event.Key() {
		case tcell.KeyEnter:
			m.start()
			return true
		case tcell.KeyUp:
			m.setFocus(m.focus - 1)
			return true
		case tcell.KeyDown:
			m.setFocus(m.focus + 1)
			return true
		}
	} else {
		idx := m.focus - len(controls)
		switch event.Key() {
		case tcell.KeyEnter:
			m.buttons[idx].Press()
			return true
		case tcell.KeyLeft:
			m.setFocus(m.focus - 1)
			return true
		case tcell.KeyRight:
			if idx < len(m.buttons)-1 {
				m.setFocus(m.focus + 1)
			}
			return true
		case tcell.KeyUp:
			m.setFocus(len(controls) - 1)
			return true
		}
	}

	if event.Key() == tcell.KeyRune {
		for _, b := range m.buttons {
			if b.HandleKey(event) {
				return true
			}
		}
	}
	return false
}

// InputHandler implements tview.Primitive.
func (m *SetupMenu) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		m.HandleKey(event)
	})
}

// Draw renders the card and its rows.
func (m *SetupMenu) Draw(screen tcell.Screen) {
	m.MenuCard.Draw(screen)

	x, y, width, height := m.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}
	left := x + 3
	inner := width - 6
	row := m.ContentTop() + 1

	row += m.level.Draw(screen, left, row, inner) + 1
	row += m.spawn.Draw(screen, left+2, row, inner-2) + 1
	row += m.seed.Draw(screen, left, row, inner) + 1

	m.DrawDivider(screen, row)
	row += 2

	total := 0
	for _, b := range m.buttons {
		total += b.Width() + 2
	}
	col := x + (width-total+2)/2
	for _, b := range m.buttons {
		col += b.Draw(screen, col, row) + 2
	}

	hint := "Tab: next  ←/→: change  Enter: start"
	if hy := y + height - 2; hy > row {
		drawText(screen, x+(width-len([]rune(hint)))/2, hy, hint, styleOn(MenuColors.Hint))
	}
}

// CenteredSetupLayout centers the menu in a fixed size box.
func CenteredSetupLayout(m *SetupMenu) *tview.Flex {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(m, 22, 0, true).
			AddItem(nil, 0, 1, false), 56, 0, true).
		AddItem(nil, 0, 1, false)
}
