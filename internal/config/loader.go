package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it changes.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		path, err := ExpandPath(customPath)
		if err != nil {
			return BreakoutConfig{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		return parseBreakout(data, path)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakout(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if cfg, err := parseBreakout(data, "configs/breakout.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakout(defaultBreakoutYAML, "embedded default")
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakout decodes YAML over the hardcoded defaults and validates the result.
func parseBreakout(data []byte, source string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// ApplyBreakoutPreset adjusts paddle and ball parameters for a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.3
		cfg.Ball.Speed *= 0.8
	case DifficultyHard:
		cfg.Paddle.Width *= 0.75
		cfg.Paddle.Step *= 1.3
		cfg.Ball.Speed *= 1.3
	}
	if cfg.Paddle.Width > cfg.Arena.Width {
		cfg.Paddle.Width = cfg.Arena.Width
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
