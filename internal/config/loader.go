package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "t2048.yaml"

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.tilt2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseT2048(data)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseT2048(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseT2048(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseT2048(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseT2048 decodes YAML on top of the built-in defaults and validates the
// result, so a file only needs the keys it changes.
func ParseT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilt2048", "configs", filename)
}

// ApplyT2048Preset scales every spawn-4 probability by the preset's factor.
// The fixed preset leaves the config untouched.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}
	scale := FourScaleForPreset(preset)
	cfg.Spawn.FourProbability = clampProbability(cfg.Spawn.FourProbability * scale)
	cfg.Endless.FourProbability = clampProbability(cfg.Endless.FourProbability * scale)
	for i := range cfg.Levels {
		cfg.Levels[i].FourProbability = clampProbability(cfg.Levels[i].FourProbability * scale)
	}
}

func clampProbability(p float64) float64 {
	return min(max(p, 0), 1)
}
