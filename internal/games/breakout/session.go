package breakout

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Phase is the state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon           // Every brick destroyed
	PhaseLost          // Ball reached the bottom edge
)

// String returns the phase name used in logs and the results table.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Renderer draws a frame. Calls arrive in tick order between ClearFrame
// calls; the session never reads anything back.
type Renderer interface {
	ClearFrame()
	DrawBall(b Ball)
	DrawBricks(g *Grid)
	DrawPaddle(p Paddle)
	DrawScores(current, best int)
	DrawTerminalMessage(phase Phase, score int)
}

// TimerHandle identifies a repeating schedule.
type TimerHandle int

// Scheduler invokes a callback at a fixed cadence until cancelled.
type Scheduler interface {
	ScheduleRepeating(fn func(), interval time.Duration) TimerHandle
	Cancel(h TimerHandle)
}

// Options configures a new session.
type Options struct {
	Config   config.BreakoutConfig
	Renderer Renderer
	Store    BestScoreStore
	Seed     int64 // Launch RNG seed, 0 = time based
	Logger   *zap.SugaredLogger
}

// Session is one game from launch to a terminal phase. All simulation state
// lives here; restarting means building a new Session.
type Session struct {
	cfg      config.BreakoutConfig
	geom     Geometry
	renderer Renderer
	store    BestScoreStore
	log      *zap.SugaredLogger
	seed     int64

	grid    *Grid
	ball    Ball
	paddle  PaddleController
	collide CollisionEngine
	score   Score
	phase   Phase
	ticks   uint64

	sched     Scheduler
	handle    TimerHandle
	scheduled bool
}

// NewSession builds a session in the Playing phase with a freshly launched
// ball. The best score is read from the store for display.
func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:      opts.Config,
		geom:     GeometryFromConfig(opts.Config.Bricks),
		renderer: opts.Renderer,
		store:    opts.Store,
		log:      opts.Logger,
		seed:     seed,
		grid:     NewGrid(opts.Config.Bricks.Columns, opts.Config.Bricks.Rows),
		paddle:   NewPaddleController(opts.Config),
		collide:  CollisionEngine{Reaim: opts.Config.Ball.PaddleReaim},
		phase:    PhasePlaying,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.store == nil {
		s.store = nopStore{}
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits
	s.ball = Launch(opts.Config, rng)
	s.grid.Layout(s.geom)
	s.score.Best = s.store.BestScore()
	return s
}

// Start registers Tick with the scheduler at the configured cadence.
func (s *Session) Start(sched Scheduler) TimerHandle {
	interval := time.Duration(s.cfg.Timing.TickIntervalMs) * time.Millisecond
	s.sched = sched
	s.handle = sched.ScheduleRepeating(s.Tick, interval)
	s.scheduled = true
	s.log.Infow("session started",
		"seed", s.seed,
		"bricks", s.grid.Size(),
		"best", s.score.Best,
		"interval", interval,
	)
	return s.handle
}

// Tick advances the simulation by one frame:
// render, brick pass, walls, bottom edge, paddle hit, paddle input, move.
// Ticks after a terminal phase do nothing.
func (s *Session) Tick() {
	if s.phase.Terminal() {
		return
	}
	s.ticks++

	s.drawFrame()

	for _, hit := range s.collide.Bricks(&s.ball, s.grid, &s.score) {
		s.log.Debugw("brick destroyed", "col", hit.Column, "row", hit.Row, "side", hit.Side.String())
	}
	if s.score.Current == s.grid.Size() {
		s.finish(PhaseWon)
		return
	}
	s.renderer.DrawScores(s.score.Current, s.score.Best)

	if s.ball.WallBounce(s.cfg.Arena) {
		s.log.Debugw("wall bounce", "x", s.ball.X, "y", s.ball.Y)
	}
	if s.ball.CrossesBottom(s.cfg.Arena) {
		s.finish(PhaseLost)
		return
	}

	s.collide.Paddle(&s.ball, s.paddle.Paddle())
	s.paddle.Apply()
	s.ball.Integrate()
}

// drawFrame renders the ball, the laid-out bricks and the paddle.
func (s *Session) drawFrame() {
	s.renderer.ClearFrame()
	s.renderer.DrawBall(s.ball)
	s.grid.Layout(s.geom)
	s.renderer.DrawBricks(s.grid)
	s.renderer.DrawPaddle(s.paddle.Paddle())
}

// finish enters a terminal phase: clear, message, best score, stop ticking.
func (s *Session) finish(phase Phase) {
	s.phase = phase
	s.renderer.ClearFrame()
	s.renderer.DrawTerminalMessage(phase, s.score.Current)

	if s.score.Commit(s.store) {
		s.log.Infow("best score updated", "best", s.score.Best)
	}
	if s.scheduled {
		s.sched.Cancel(s.handle)
		s.scheduled = false
	}

	s.log.Infow("session finished",
		"outcome", phase.String(),
		"score", s.score.Current,
		"best", s.score.Best,
		"ticks", s.ticks,
	)
}

// Repaint redraws the current state without advancing it.
// Frontends call this after the drawing surface changed size.
func (s *Session) Repaint() {
	if s.phase.Terminal() {
		s.renderer.ClearFrame()
		s.renderer.DrawTerminalMessage(s.phase, s.score.Current)
		return
	}
	s.drawFrame()
	s.renderer.DrawScores(s.score.Current, s.score.Best)
}

// SetMovingLeft latches the left direction.
func (s *Session) SetMovingLeft(pressed bool) {
	s.paddle.SetMovingLeft(pressed)
}

// SetMovingRight latches the right direction.
func (s *Session) SetMovingRight(pressed bool) {
	s.paddle.SetMovingRight(pressed)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current and best score.
func (s *Session) Score() Score {
	return s.score
}

// Ball returns the ball state.
func (s *Session) Ball() Ball {
	return s.ball
}

// Paddle returns the paddle state.
func (s *Session) Paddle() Paddle {
	return s.paddle.Paddle()
}

// Grid returns the brick grid. Callers must not modify it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Ticks returns how many frames have been simulated.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Seed returns the effective launch seed.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}

type nopRenderer struct{}

func (nopRenderer) ClearFrame() {}
func (nopRenderer) DrawBall(Ball) {}
func (nopRenderer) DrawBricks(*Grid) {}
func (nopRenderer) DrawPaddle(Paddle) {}
func (nopRenderer) DrawScores(int, int) {}
func (nopRenderer) DrawTerminalMessage(Phase, int) {}
