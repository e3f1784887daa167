package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration: a 10x4 grid on a
// 1425x780 arena with a 230-wide paddle and a radius-12 ball at speed 5.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:  1425,
			Height: 780,
		},
		Paddle: BreakoutPaddle{
			Width:        230,
			Height:       20,
			BottomOffset: 40,
			Step:         7,
		},
		Ball: BreakoutBall{
			Radius:      12,
			Speed:       5,
			MinAngle:    45,
			MaxAngle:    135,
			LaunchGap:   20,
			PaddleReaim: 5,
		},
		Bricks: BreakoutBricks{
			Columns:    10,
			Rows:       4,
			Width:      135,
			Height:     50,
			Padding:    7,
			OffsetTop:  120,
			OffsetLeft: 5,
		},
		Timing: BreakoutTiming{
			TickIntervalMs: 10,
			KeyFirstHoldMs: 600,
			KeyHoldMs:      150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
