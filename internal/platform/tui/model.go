package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/canvas"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.BreakoutConfig
	Store   *storage.Store // Optional; results are kept in memory without it
	GameID  string         // Storage key for results and the best score
	Seed    int64          // First session's launch seed, 0 = time based
	Runtime core.RuntimeConfig
	Logger  *zap.SugaredLogger

	// AllowScreenshots enables ctrl+s. Screenshots are written to the local
	// home directory, so remote sessions leave this off.
	AllowScreenshots bool
}

// Model is the Bubble Tea model for a breakout game. Each restart replaces
// the session; the screen, scheduler and best score carry over.
type Model struct {
	opts     Options
	best     breakout.BestScoreStore
	screen   *core.Screen
	renderer *canvas.ScreenRenderer
	sched    *TeaScheduler
	session  *breakout.Session
	latch    *core.HoldLatch
	keys     KeyMap
	log      *zap.SugaredLogger

	quitting    bool
	resultSaved bool // Whether the result has been saved for the current session
}

// NewModel creates a model with a session ready to start.
func NewModel(opts Options) Model {
	if opts.GameID == "" {
		opts.GameID = config.DifficultyNormal.GameID()
	}
	if opts.Runtime.ScreenW == 0 || opts.Runtime.ScreenH == 0 {
		opts.Runtime = core.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var best breakout.BestScoreStore = &storage.MemoryBestScore{}
	if opts.Store != nil {
		best = storage.NewBestScoreKeeper(opts.Store, opts.GameID, log)
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	m := Model{
		opts:     opts,
		best:     best,
		screen:   screen,
		renderer: canvas.NewScreenRenderer(screen, opts.Config.Arena),
		sched:    NewTeaScheduler(),
		latch:    core.NewHoldLatch(opts.Config.KeyFirstHoldTicks(), opts.Config.KeyHoldTicks()),
		keys:     DefaultKeyMap(),
		log:      log,
	}
	m.startSession(opts.Seed)
	return m
}

// startSession builds a fresh session and registers its tick.
func (m *Model) startSession(seed int64) {
	m.session = breakout.NewSession(breakout.Options{
		Config:   m.opts.Config,
		Renderer: m.renderer,
		Store:    m.best,
		Seed:     seed,
		Logger:   m.log.With("game", m.opts.GameID),
	})
	m.latch.Reset()
	m.resultSaved = false
	m.session.Start(m.sched)
	m.session.Repaint()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.sched.Pending()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		if m.opts.AllowScreenshots {
			m.saveScreenshot()
		}

	case core.ActionRestart:
		if m.session.Phase().Terminal() {
			m.startSession(0)
			return m, m.sched.Pending()
		}

	case core.ActionLeft, core.ActionRight:
		if !m.session.Phase().Terminal() {
			m.latch.Press(action, m.session)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The arena is scaled, so the session carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Repaint()
	return m, nil
}

// handleTick advances the session when its schedule is due.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Paused while the terminal cannot show the arena
	if canvas.TooSmall(m.screen) {
		return m, m.sched.Hold(msg.Handle)
	}

	m.latch.Step(m.session)
	cmd := m.sched.Fire(msg.Handle)

	if m.session.Phase().Terminal() && !m.resultSaved {
		m.saveResult()
	}
	return m, cmd
}

// saveResult appends the finished session to the results history (once).
func (m *Model) saveResult() {
	m.resultSaved = true
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.ResultOf(m.opts.GameID, m.session))
	if err != nil {
		m.log.Errorw("save result", "game", m.opts.GameID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warnw("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warnw("screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warnw("screenshot", "path", path, "error", err)
		return
	}
	m.log.Infow("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if canvas.TooSmall(m.screen) {
		notice := core.NewScreen(m.screen.Width(), m.screen.Height())
		canvas.DrawTooSmall(notice)
		return RenderScreen(notice)
	}
	return RenderScreen(m.screen)
}

// Session returns the running session.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Screen returns the frame buffer.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
