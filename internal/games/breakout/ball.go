package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// maxLaunchSamples bounds how often a non-finite launch angle is re-drawn.
const maxLaunchSamples = 8

// Ball is the ball state in arena units. (X, Y) is the center and
// (DX, DY) the displacement applied per tick.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Launch places a ball above the paddle's center line and gives it speed
// cfg.Ball.Speed at an angle drawn uniformly from [MinAngle, MaxAngle]
// degrees, measured from the positive x-axis. The ball always leaves upward.
func Launch(cfg config.BreakoutConfig, rng *rand.Rand) Ball {
	theta := launchAngle(cfg.Ball.MinAngle, cfg.Ball.MaxAngle, rng.Float64)
	speed := cfg.Ball.Speed

	return Ball{
		X:      cfg.Arena.Width / 2,
		Y:      cfg.PaddleY() - cfg.Paddle.Height - cfg.Ball.LaunchGap,
		DX:     math.Cos(theta) * speed,
		DY:     -math.Sin(theta) * speed,
		Radius: cfg.Ball.Radius,
	}
}

// launchAngle samples an angle in radians. Non-finite samples are re-drawn
// a few times before falling back to the middle of the range.
func launchAngle(minDeg, maxDeg float64, sample func() float64) float64 {
	lo := minDeg * math.Pi / 180
	hi := maxDeg * math.Pi / 180
	for range maxLaunchSamples {
		theta := lo + sample()*(hi-lo)
		if !math.IsNaN(theta) && !math.IsInf(theta, 0) {
			return theta
		}
	}
	return (lo + hi) / 2
}

// Integrate applies one tick of displacement.
func (b *Ball) Integrate() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// WallBounce reflects the ball off the side and top walls if its pending
// displacement would carry it past them. Only signs change, never magnitudes.
func (b *Ball) WallBounce(arena config.BreakoutArena) bool {
	bounced := false
	if b.X+b.DX > arena.Width-b.Radius || b.X+b.DX < b.Radius {
		b.BounceX()
		bounced = true
	}
	if b.Y+b.DY < b.Radius {
		b.BounceY()
		bounced = true
	}
	return bounced
}

// CrossesBottom reports whether the next step reaches the bottom edge.
func (b *Ball) CrossesBottom(arena config.BreakoutArena) bool {
	return b.Y+b.DY >= arena.Height-b.Radius
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}
