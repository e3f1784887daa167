// Package config provides YAML-based configuration loading for the breakout
// session: arena size, paddle, ball, brick grid and tick timing.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BreakoutConfig contains all tunable parameters of a session.
// Lengths are in arena units, scaled to terminal cells when drawn.
type BreakoutConfig struct {
	Arena  BreakoutArena  `yaml:"arena"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Timing BreakoutTiming `yaml:"timing"`
}

// BreakoutArena is the playfield size.
type BreakoutArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines the paddle geometry and movement.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Paddle top = arena height - offset
	Step         float64 `yaml:"step"`          // Distance moved per tick while a direction is held
}

// BreakoutBall defines the ball and its launch.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Launch speed per tick
	MinAngle    float64 `yaml:"min_angle"`    // Degrees from the positive x-axis
	MaxAngle    float64 `yaml:"max_angle"`    // Degrees from the positive x-axis
	LaunchGap   float64 `yaml:"launch_gap"`   // Extra clearance above the paddle at launch
	PaddleReaim float64 `yaml:"paddle_reaim"` // Horizontal speed at the paddle's edge
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutTiming defines the tick cadence and input handling.
type BreakoutTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
	KeyFirstHoldMs int `yaml:"key_first_hold_ms"` // How long a fresh press holds, covering the keyboard repeat delay
	KeyHoldMs      int `yaml:"key_hold_ms"`       // How long a key stays pressed after its last repeat
}

// PaddleY returns the y-coordinate of the paddle's top edge.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Arena.Height - c.Paddle.BottomOffset
}

// TotalBricks returns the number of bricks in the grid.
func (c BreakoutConfig) TotalBricks() int {
	return c.Bricks.Columns * c.Bricks.Rows
}

// KeyHoldTicks converts the key hold window into ticks (at least one).
func (c BreakoutConfig) KeyHoldTicks() int {
	return c.msToTicks(c.Timing.KeyHoldMs)
}

// KeyFirstHoldTicks converts the first-press hold window into ticks. It is
// never shorter than KeyHoldTicks.
func (c BreakoutConfig) KeyFirstHoldTicks() int {
	return max(c.msToTicks(c.Timing.KeyFirstHoldMs), c.KeyHoldTicks())
}

func (c BreakoutConfig) msToTicks(ms int) int {
	if c.Timing.TickIntervalMs <= 0 {
		return 1
	}
	return max(ms/c.Timing.TickIntervalMs, 1)
}

// Validate checks that the configuration describes a playable session.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Width <= c.Arena.Width, "paddle width %v exceeds arena width %v", c.Paddle.Width, c.Arena.Width)
	check(c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Arena.Height, "paddle bottom_offset %v outside arena", c.Paddle.BottomOffset)
	check(c.Paddle.Step > 0, "paddle step must be positive, got %v", c.Paddle.Step)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.MinAngle < c.Ball.MaxAngle, "ball angle range [%v, %v] is empty", c.Ball.MinAngle, c.Ball.MaxAngle)
	check(c.Ball.MinAngle > 0 && c.Ball.MaxAngle < 180, "ball angle range [%v, %v] must stay within (0, 180)", c.Ball.MinAngle, c.Ball.MaxAngle)
	check(c.Bricks.Columns > 0 && c.Bricks.Rows > 0, "brick grid must be positive, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(c.Timing.TickIntervalMs > 0, "tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMs)
	check(c.Timing.KeyHoldMs > 0, "key_hold_ms must be positive, got %d", c.Timing.KeyHoldMs)
	check(c.Timing.KeyFirstHoldMs >= c.Timing.KeyHoldMs, "key_first_hold_ms %d is shorter than key_hold_ms %d", c.Timing.KeyFirstHoldMs, c.Timing.KeyHoldMs)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// GameID returns the storage key for results played at this preset.
// Normal keeps the plain "breakout" key.
func (p DifficultyPreset) GameID() string {
	if p == "" || p == DifficultyNormal {
		return "breakout"
	}
	return "breakout_" + string(p)
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}
