package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"termtris/config"
)

func TestLevelSlider(t *testing.T) {
	var changes []int
	s := NewLevelSlider("Level", 1, 10, 1, config.LevelInterval, func(v int) {
		changes = append(changes, v)
	})

	assert.True(t, s.HandleKey(key(tcell.KeyLeft)))
	assert.Equal(t, 1, s.Value(), "stays at minimum")
	assert.Empty(t, changes)

	assert.True(t, s.HandleKey(key(tcell.KeyRight)))
	assert.True(t, s.HandleKey(runeKey('l')))
	assert.True(t, s.HandleKey(runeKey('h')))
	assert.Equal(t, 2, s.Value())
	assert.Equal(t, []int{2, 3, 2}, changes)

	assert.False(t, s.HandleKey(runeKey('q')))

	s.SetValue(11)
	assert.Equal(t, 2, s.Value())
	s.SetValue(10)
	assert.Equal(t, 10, s.Value())

	screen := newTestScreen(t, 60, 3)
	s.Draw(screen, 0, 0, 60)
	assert.True(t, screenContains(screen, "Level"))
	assert.True(t, screenContains(screen, "75ms"))
}

func TestLevelSliderClampsInitial(t *testing.T) {
	assert.Equal(t, 10, NewLevelSlider("Level", 1, 10, 40, nil, nil).Value())
	assert.Equal(t, 1, NewLevelSlider("Level", 1, 10, -2, nil, nil).Value())
}

func TestRadioSelect(t *testing.T) {
	var changes []int
	r := NewRadioSelect("Spawn", spawnOptions, 0, func(i int) { changes = append(changes, i) })

	assert.True(t, r.HandleKey(key(tcell.KeyUp)))
	assert.Equal(t, 0, r.Selected())
	assert.True(t, r.HandleKey(key(tcell.KeyDown)))
	assert.True(t, r.HandleKey(runeKey('j')))
	assert.Equal(t, 1, r.Selected())
	assert.True(t, r.HandleKey(runeKey('k')))
	assert.Equal(t, 0, r.Selected())
	assert.Equal(t, []int{1, 0}, changes)

	assert.Equal(t, 0, NewRadioSelect("Spawn", spawnOptions, 5, nil).Selected())

	screen := newTestScreen(t, 50, 4)
	rows := r.Draw(screen, 0, 0, 50)
	assert.Equal(t, 3, rows)
	assert.True(t, screenContains(screen, "● Center"))
	assert.True(t, screenContains(screen, "○ Right of center"))
}

func TestSeedInput(t *testing.T) {
	var last int64 = -1
	s := NewSeedInput("Seed", 0, func(v int64) { last = v })
	assert.Equal(t, int64(0), s.Value())

	for _, r := range "1234" {
		assert.True(t, s.HandleKey(runeKey(r)))
	}
	assert.Equal(t, int64(1234), s.Value())
	assert.Equal(t, int64(1234), last)

	assert.False(t, s.HandleKey(runeKey('x')), "letters are not consumed")
	assert.Equal(t, int64(1234), s.Value())

	s.HandleKey(key(tcell.KeyLeft))
	s.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, int64(124), s.Value())

	s.HandleKey(key(tcell.KeyHome))
	s.HandleKey(key(tcell.KeyDelete))
	assert.Equal(t, int64(24), s.Value())

	s.HandleKey(key(tcell.KeyEnd))
	s.HandleKey(key(tcell.KeyBackspace2))
	s.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, int64(0), s.Value(), "empty means random")

	s.SetValue(77)
	assert.Equal(t, int64(77), s.Value())
	assert.Equal(t, int64(77), last)
}

func TestSeedInputLengthLimit(t *testing.T) {
	s := NewSeedInput("Seed", 0, nil)
	for i := 0; i < seedFieldWidth; i++ {
		assert.True(t, s.HandleKey(runeKey('9')))
	}
	assert.False(t, s.HandleKey(runeKey('9')))
	assert.Equal(t, int64(999999999999), s.Value())
}

func TestMenuButton(t *testing.T) {
	pressed := 0
	b := NewMenuButton("Quit", 'Q', false, func() { pressed++ })

	assert.Equal(t, 'q', b.Hotkey())
	assert.True(t, b.HandleKey(key(tcell.KeyEnter)))
	assert.True(t, b.HandleKey(runeKey('Q')))
	assert.False(t, b.HandleKey(runeKey('x')))
	assert.Equal(t, 2, pressed)
	assert.Equal(t, 6, b.Width())

	primary := NewMenuButton("Start", 's', true, nil)
	assert.Equal(t, 9, primary.Width())
	primary.Press()
}

func TestLevelIntervalShownInMilliseconds(t *testing.T) {
	s := NewLevelSlider("Level", 1, 10, 3, func(int) time.Duration { return 1500 * time.Microsecond }, nil)
	screen := newTestScreen(t, 60, 1)
	s.Draw(screen, 0, 0, 60)
	assert.True(t, screenContains(screen, "1ms"))
}
