package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// loadGame resolves the breakout config and difficulty from the global flags.
func loadGame() (config.BreakoutConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, preset, nil
}

// openEventLog opens the session event log named by --log.
// An empty path discards events.
func openEventLog() (*zap.SugaredLogger, func(), error) {
	if flagLogPath == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}
	opts := logging.DefaultFileOptions()
	opts.Path = flagLogPath
	return logging.NewEventLogger(opts)
}
