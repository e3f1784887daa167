package term

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/canvas"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures a tcell game.
type Options struct {
	Config config.BreakoutConfig
	Store  *storage.Store // Optional
	GameID string
	Seed   int64 // First session's launch seed, 0 = time based
	Logger *zap.SugaredLogger
}

// App owns a tcell screen and one breakout session at a time.
type App struct {
	opts     Options
	screen   tcell.Screen
	frame    *core.Screen
	renderer *canvas.ScreenRenderer
	sched    *LoopScheduler
	session  *breakout.Session
	latch    *core.HoldLatch
	best     breakout.BestScoreStore
	log      *zap.SugaredLogger

	resultSaved bool
}

// New creates an app drawing to an initialized screen.
func New(screen tcell.Screen, opts Options) *App {
	if opts.GameID == "" {
		opts.GameID = config.DifficultyNormal.GameID()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var best breakout.BestScoreStore = &storage.MemoryBestScore{}
	if opts.Store != nil {
		best = storage.NewBestScoreKeeper(opts.Store, opts.GameID, log)
	}

	w, h := screen.Size()
	frame := core.NewScreen(w, h)
	a := &App{
		opts:     opts,
		screen:   screen,
		frame:    frame,
		renderer: canvas.NewScreenRenderer(frame, opts.Config.Arena),
		sched:    NewLoopScheduler(),
		latch:    core.NewHoldLatch(opts.Config.KeyFirstHoldTicks(), opts.Config.KeyHoldTicks()),
		best:     best,
		log:      log,
	}
	a.startSession(opts.Seed)
	return a
}

// Run opens the terminal, plays until the user quits and restores it.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.HideCursor()
	return New(screen, opts).Loop()
}

func (a *App) startSession(seed int64) {
	a.session = breakout.NewSession(breakout.Options{
		Config:   a.opts.Config,
		Renderer: a.renderer,
		Store:    a.best,
		Seed:     seed,
		Logger:   a.log.With("game", a.opts.GameID),
	})
	a.latch.Reset()
	a.resultSaved = false
	a.session.Start(a.sched)
	a.session.Repaint()
}

// Loop multiplexes terminal events and ticks until a quit key is pressed.
func (a *App) Loop() error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	defer a.sched.Stop()

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-a.sched.C():
			a.Tick()
		}
	}
}

// HandleEvent applies one terminal event. Returns true to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action := ActionFor(ev); action {
		case core.ActionQuit:
			return true
		case core.ActionRestart:
			if a.session.Phase().Terminal() {
				a.startSession(0)
				a.draw()
			}
		case core.ActionLeft, core.ActionRight:
			if !a.session.Phase().Terminal() {
				a.latch.Press(action, a.session)
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.frame.Resize(w, h)
		a.session.Repaint()
		a.screen.Sync()
		a.draw()
	}
	return false
}

// Tick advances the session by one scheduled frame and redraws.
// Paused while the terminal is too small for the arena.
func (a *App) Tick() {
	if canvas.TooSmall(a.frame) {
		a.draw()
		return
	}

	a.latch.Step(a.session)
	a.sched.Fire()

	if a.session.Phase().Terminal() && !a.resultSaved {
		a.resultSaved = true
		if a.opts.Store != nil {
			if _, err := a.opts.Store.SaveResult(storage.ResultOf(a.opts.GameID, a.session)); err != nil {
				a.log.Errorw("save result", "game", a.opts.GameID, "error", err)
			}
		}
	}
	a.draw()
}

// draw copies the frame buffer to the terminal.
func (a *App) draw() {
	src := a.frame
	if canvas.TooSmall(a.frame) {
		src = core.NewScreen(a.frame.Width(), a.frame.Height())
		canvas.DrawTooSmall(src)
	}
	Blit(a.screen, src)
	a.screen.Show()
}

// Session returns the running session.
func (a *App) Session() *breakout.Session {
	return a.session
}
