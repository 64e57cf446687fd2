package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
// It mirrors defaults/t2048.yaml and is used if the embedded file cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:       4,
			StartTiles: 2,
		},
		Spawn:   SpawnConfig{FourProbability: 0.10},
		Endless: SpawnConfig{FourProbability: 0.10},
		Target:  2048,
		Levels: []LevelConfig{
			{Name: "Warm-up", Target: 128, FourProbability: 0.10},
			{Name: "Getting Started", Target: 256, FourProbability: 0.10},
			{Name: "Building Momentum", Target: 512, FourProbability: 0.10},
			{Name: "The Climb", Target: 1024, FourProbability: 0.10},
			{Name: "Classic 2048", Target: 2048, FourProbability: 0.10},
			{Name: "Beyond Limits", Target: 4096, FourProbability: 0.12},
			{Name: "Master Class", Target: 8192, FourProbability: 0.15},
			{Name: "Expert Challenge", Target: 16384, FourProbability: 0.18},
			{Name: "Grandmaster", Target: 32768, FourProbability: 0.20},
			{Name: "Ultimate Champion", Target: 65536, FourProbability: 0.25},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
