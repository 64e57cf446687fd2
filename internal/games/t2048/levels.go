// Package t2048 implements the 2048 sliding-tile puzzle: the tile, grid and
// tilt rules in State, and a Game that drives a State with random spawns,
// campaign levels and rendering for the platform.
package t2048

import (
	"sync"

	"github.com/vovakirdan/tilt2048/internal/config"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

var (
	cfgMu     sync.RWMutex
	activeCfg = config.DefaultT2048Config()
)

// Configure replaces the configuration used by games created afterwards.
// The CLI calls it once after loading the YAML config.
func Configure(cfg config.T2048Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
	return nil
}

// currentConfig returns a copy of the active configuration.
func currentConfig() config.T2048Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	cfg := activeCfg
	cfg.Levels = append([]config.LevelConfig(nil), activeCfg.Levels...)
	return cfg
}

// Levels returns the configured campaign levels in play order.
func Levels() []Level {
	cfg := currentConfig()
	levels := make([]Level, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lc.Name,
			Target: lc.Target,
			Spawn4: lc.FourProbability,
		}
	}
	return levels
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return len(activeCfg.Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	levels := Levels()
	if index < 0 || index >= len(levels) {
		return nil
	}
	return &levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	levels := Levels()
	targets := make([]int, len(levels))
	for i, lvl := range levels {
		targets[i] = lvl.Target
	}
	return targets
}
