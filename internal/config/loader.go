package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockStack loads Block Stack configuration.
// Search order: customPath -> ~/.gamehub/configs/blockstack.yaml -> ./configs/blockstack.yaml -> embedded default
func LoadBlockStack(customPath string) (BlockStackConfig, error) {
	return load("blockstack", customPath, DefaultBlockStackConfig)
}

// LoadMazeChase loads Maze Chase configuration.
// Search order: customPath -> ~/.gamehub/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	return load("mazechase", customPath, DefaultMazeChaseConfig)
}

// load resolves a game's YAML config. An explicit path must exist and parse;
// the user and local locations are best-effort and skipped when unreadable.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	var embedded T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &embedded); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamehub", "configs", filename)
}

// ApplyBlockStackPreset adjusts the starting drop speed for a preset.
// Level progression and the interval floor are unchanged.
func ApplyBlockStackPreset(cfg *BlockStackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseDropMS += cfg.Timing.BaseDropMS / 4
	case DifficultyHard:
		cfg.Timing.BaseDropMS = max(cfg.Timing.MinDropMS, cfg.Timing.BaseDropMS*7/10)
	}
}

// ApplyMazeChasePreset adjusts lives and power mode length for a preset.
func ApplyMazeChasePreset(cfg *MazeChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.PowerDuration = cfg.Gameplay.PowerDuration * 3 / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.PowerDuration = max(1, cfg.Gameplay.PowerDuration*3/5)
	}
}
