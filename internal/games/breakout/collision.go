package breakout

import "math"

// Side tells which velocity component a brick hit reflected.
type Side int

const (
	SideVertical   Side = iota // Hit the top or bottom face, DY flipped
	SideHorizontal             // Hit the left or right face, DX flipped
)

func (s Side) String() string {
	if s == SideHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// BrickHit records one brick destroyed during a collision pass.
type BrickHit struct {
	Column, Row int
	Side        Side
}

// CollisionEngine resolves ball contact with bricks and the paddle.
type CollisionEngine struct {
	Reaim float64 // Horizontal speed given to a ball hitting the paddle's edge
}

// Bricks tests the ball against every alive brick in column-major order.
// Each overlapping brick is destroyed, adds one point and reflects the ball.
// The face is decided by where the ball was before its last step: if it was
// entirely to the left or right of the brick, the hit is on a side face.
func (e CollisionEngine) Bricks(ball *Ball, grid *Grid, score *Score) []BrickHit {
	var hits []BrickHit
	r := ball.Radius

	grid.Each(func(col, row int, b Brick) {
		if !b.Alive() {
			return
		}
		bounds := grid.Bounds(col, row)
		if !ball.Bounds().Overlaps(bounds) {
			return
		}

		side := SideVertical
		if ball.X+r-ball.DX <= bounds.X || ball.X-r-ball.DX >= bounds.Right() {
			side = SideHorizontal
			ball.BounceX()
		} else {
			ball.BounceY()
		}

		grid.Destroy(col, row)
		score.Add(1)
		hits = append(hits, BrickHit{Column: col, Row: row, Side: side})
	})
	return hits
}

// Paddle re-aims the ball when its center is over the paddle and its bottom
// has passed the paddle's top. The new horizontal speed is proportional to
// the offset from the paddle's center; the ball always leaves upward.
func (e CollisionEngine) Paddle(ball *Ball, p Paddle) bool {
	if ball.Y+ball.Radius <= p.Y || ball.X <= p.X || ball.X >= p.Right() {
		return false
	}

	rel := (ball.X - p.CenterX()) / (p.Width / 2)
	ball.DX = rel * e.Reaim
	ball.DY = -math.Abs(ball.DY)
	ball.Y = p.Y - ball.Radius
	return true
}
