package breakout

import "math"

// Snapshot contains the simulation state of a session for determinism
// testing and screenshots. Uses primitive types only for stable output.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Best    int
	Seed    int64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	PaddleX float64

	// Brick states, column-major (col*rows + row), true = alive
	Bricks []bool
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	bricks := make([]bool, 0, s.grid.Size())
	s.grid.Each(func(_, _ int, b Brick) {
		bricks = append(bricks, b.Alive())
	})

	return Snapshot{
		Tick:    s.ticks,
		Phase:   s.phase,
		Score:   s.score.Current,
		Best:    s.score.Best,
		Seed:    s.seed,
		BallX:   s.ball.X,
		BallY:   s.ball.Y,
		BallDX:  s.ball.DX,
		BallDY:  s.ball.DY,
		PaddleX: s.paddle.Paddle().X,
		Bricks:  bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Best)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Seed)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, alive := range snap.Bricks {
		h *= 31
		if alive {
			h++
		}
	}
	return h
}
