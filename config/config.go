package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"termtris/engine"
	"termtris/types"
)

var (
	cfgFile = "termtris/config.json"
	logFile = "termtris/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds 256-color palette indices. Pieces is indexed by cell kind;
// index 0 is the empty cell.
type ConfigColors struct {
	Pieces     [types.NumCells]int `json:"pieces"`
	Background int                 `json:"background"`
	Grid       int                 `json:"grid"`
	Border     int                 `json:"border"`
	Banner     int                 `json:"banner"`
}

type ConfigSymbols struct {
	Block rune `json:"block"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawGrid   bool          `json:"draw_grid"`
	ShowCoords bool          `json:"show_coords"`
	Colors     ConfigColors  `json:"colors"`
	Symbols    ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults offered on the setup screen.
type GameSettings struct {
	Level       int   `json:"level"`
	SpawnOffset int   `json:"spawn_offset"`
	Seed        int64 `json:"seed"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs
// always go to a file.
type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the config file if there is one, on top of the defaults.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads a config from an explicit path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Block, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := append([]int{}, c.Theme.Colors.Pieces[:]...)
	colors = append(colors, c.Theme.Colors.Background, c.Theme.Colors.Grid, c.Theme.Colors.Border, c.Theme.Colors.Banner)
	for _, col := range colors {
		if col < 0 || col > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is not a 256-color palette index", col)}
		}
	}
	if c.Game.Level < MinLevel || c.Game.Level > MaxLevel {
		return &InvalidConfig{fmt.Sprintf("level must be between %d and %d, got %d", MinLevel, MaxLevel, c.Game.Level)}
	}
	if c.Game.SpawnOffset != 0 && c.Game.SpawnOffset != 1 {
		return &InvalidConfig{fmt.Sprintf("spawn_offset must be 0 or 1, got %d", c.Game.SpawnOffset)}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// GameConfig converts the game settings for the engine.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Seed:        c.Game.Seed,
		SpawnOffset: c.Game.SpawnOffset,
		Level:       c.Game.Level,
	}
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogPath returns the configured log file, or the default in the XDG state directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}
