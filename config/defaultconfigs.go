package config

import "time"

// Speed levels offered by the setup screen.
const (
	MinLevel = 1
	MaxLevel = 10
)

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawGrid:   true,
		ShowCoords: true,
		Colors: ConfigColors{
			// Empty, Z, S, I, T, O, L, J
			Pieces:     [8]int{235, 167, 77, 62, 185, 170, 80, 178},
			Background: 234,
			Grid:       238,
			Border:     60,
			Banner:     109,
		},
		Symbols: ConfigSymbols{
			Block: '█',
			Empty: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			Level:       MinLevel,
			SpawnOffset: 0,
			Seed:        0,
		},
		Log: LogConfig{
			Path:  "",
			Level: "info",
		},
	}
}

// LevelInterval returns the tick interval for a speed level. Level 1 is 300ms
// and every level is 25ms faster. Out of range levels are clamped.
func LevelInterval(level int) time.Duration {
	level = max(MinLevel, min(MaxLevel, level))
	return time.Duration(300-(level-1)*25) * time.Millisecond
}
