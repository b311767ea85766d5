// Package config holds the game settings, loaded from a JSON file and then
// overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"sudokubattle/pkg/engine/logging"
	"sudokubattle/pkg/game/puzzle"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of user settings.
type Config struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	TPS         int    `json:"tps"`
	ResourceDir string `json:"resourceDir"`
	Locale      string `json:"locale"`
	LogLevel    string `json:"logLevel"`
	LogFile     string `json:"logFile"`
	Difficulty  string `json:"difficulty"`
	// Seed for puzzle generation; 0 picks one from the clock.
	Seed  int64 `json:"seed"`
	Muted bool  `json:"muted"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Title:       "Sudoku RPG",
		Width:       800,
		Height:      600,
		TPS:         60,
		ResourceDir: "resources",
		Locale:      "en_GB",
		LogLevel:    "info",
		LogFile:     logging.DefaultFile,
		Difficulty:  puzzle.Medium.String(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.ResourceDir == "":
		return fmt.Errorf("%w: empty resource directory", ErrInvalid)
	case !logging.ValidLevel(c.LogLevel):
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if _, err := puzzle.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// PuzzleDifficulty returns the parsed difficulty, Medium if unparsable.
func (c *Config) PuzzleDifficulty() puzzle.Difficulty {
	d, _ := puzzle.ParseDifficulty(c.Difficulty)
	return d
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the active config.
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active config.
func SetCurrent(c *Config) {
	currentMu.Lock()
	current = c
	currentMu.Unlock()
}
