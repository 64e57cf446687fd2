// Package config provides YAML-based configuration loading for the 2048
// board, spawn policy and campaign levels.
package config

import (
	"errors"
	"fmt"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Endless SpawnConfig   `yaml:"endless"`
	Target  int           `yaml:"target"` // Winning tile for a free game
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the board dimensions and the opening position.
type BoardConfig struct {
	Size       int `yaml:"size"`
	StartTiles int `yaml:"start_tiles"` // Tiles spawned on a fresh board
}

// SpawnConfig defines the random tile spawn policy.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance of a 4 instead of a 2 (0.0-1.0)
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	Name            string  `yaml:"name"`
	Target          int     `yaml:"target"`
	FourProbability float64 `yaml:"four_probability"`
}

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	var errs []error

	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board.size must be at least 2, got %d", c.Board.Size))
	}
	if c.Board.StartTiles < 0 || c.Board.StartTiles > c.Board.Size*c.Board.Size {
		errs = append(errs, fmt.Errorf("board.start_tiles %d does not fit a %dx%d board",
			c.Board.StartTiles, c.Board.Size, c.Board.Size))
	}
	if err := checkProbability("spawn.four_probability", c.Spawn.FourProbability); err != nil {
		errs = append(errs, err)
	}
	if err := checkProbability("endless.four_probability", c.Endless.FourProbability); err != nil {
		errs = append(errs, err)
	}
	if !isPowerOfTwo(c.Target) {
		errs = append(errs, fmt.Errorf("target must be a power of two >= 2, got %d", c.Target))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("levels must list at least one campaign level"))
	}
	for i, lvl := range c.Levels {
		if !isPowerOfTwo(lvl.Target) {
			errs = append(errs, fmt.Errorf("levels[%d].target must be a power of two >= 2, got %d", i, lvl.Target))
		}
		if i > 0 && lvl.Target <= c.Levels[i-1].Target {
			errs = append(errs, fmt.Errorf("levels[%d].target must be above levels[%d].target (%d), got %d", i, i-1, c.Levels[i-1].Target, lvl.Target))
		}
		if err := checkProbability(fmt.Sprintf("levels[%d].four_probability", i), lvl.FourProbability); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid 2048 config: %w", errors.Join(errs...))
	}
	return nil
}

func checkProbability(field string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %g", field, p)
	}
	return nil
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// FourScaleForPreset returns the multiplier applied to every spawn-4 probability.
// More 4s means fewer free cells, so hard spawns them more often.
func FourScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// ParseDifficultyPreset validates a preset name. The empty string means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}
