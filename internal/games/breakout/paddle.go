package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's paddle. X is the left edge; everything else is fixed
// for the life of a session.
type Paddle struct {
	X      float64
	Y      float64 // Top edge
	Width  float64
	Height float64
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// PaddleController moves the paddle from latched direction input.
type PaddleController struct {
	paddle      Paddle
	step        float64
	arenaWidth  float64
	movingLeft  bool
	movingRight bool
}

// NewPaddleController centers a paddle in the arena.
func NewPaddleController(cfg config.BreakoutConfig) PaddleController {
	return PaddleController{
		paddle: Paddle{
			X:      (cfg.Arena.Width - cfg.Paddle.Width) / 2,
			Y:      cfg.PaddleY(),
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		step:       cfg.Paddle.Step,
		arenaWidth: cfg.Arena.Width,
	}
}

// Paddle returns the current paddle.
func (pc *PaddleController) Paddle() Paddle {
	return pc.paddle
}

// SetMovingLeft latches the left direction.
func (pc *PaddleController) SetMovingLeft(pressed bool) {
	pc.movingLeft = pressed
}

// SetMovingRight latches the right direction.
func (pc *PaddleController) SetMovingRight(pressed bool) {
	pc.movingRight = pressed
}

// Moving reports the latched directions.
func (pc *PaddleController) Moving() (left, right bool) {
	return pc.movingLeft, pc.movingRight
}

// Apply moves the paddle one step in the latched direction and keeps it
// inside the arena. Right takes priority when both are latched.
func (pc *PaddleController) Apply() {
	switch {
	case pc.movingRight:
		pc.paddle.X += pc.step
	case pc.movingLeft:
		pc.paddle.X -= pc.step
	default:
		return
	}
	pc.paddle.X = core.ClampF(pc.paddle.X, 0, pc.arenaWidth-pc.paddle.Width)
}
