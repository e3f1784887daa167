package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func newTestRenderer() (*ScreenRenderer, config.BreakoutConfig) {
	cfg := config.DefaultBreakoutConfig()
	return NewScreenRenderer(core.NewScreen(80, 24), cfg.Arena), cfg
}

func TestDrawBricksColorsByRow(t *testing.T) {
	r, cfg := newTestRenderer()
	g := breakout.NewGrid(cfg.Bricks.Columns, cfg.Bricks.Rows)
	g.Layout(breakout.GeometryFromConfig(cfg.Bricks))

	r.DrawBricks(g)

	tests := []struct {
		x, y  int
		glyph rune
		color core.Color
	}{
		{0, 3, '█', core.ColorRed},    // col 0, row 0
		{0, 5, '▓', core.ColorOrange}, // col 0, row 1
		{8, 3, '▓', core.ColorRed},    // col 1, row 0
	}
	for _, tc := range tests {
		cell := r.Screen().GetCell(tc.x, tc.y)
		if cell.Rune != tc.glyph || cell.Color != tc.color {
			t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v", tc.x, tc.y, cell.Rune, cell.Color, tc.glyph, tc.color)
		}
	}

	// Destroyed bricks disappear
	g.Destroy(0, 0)
	r.ClearFrame()
	r.DrawBricks(g)
	if got := r.Screen().GetCell(0, 3).Rune; got != ' ' {
		t.Errorf("destroyed brick still drawn: %q", got)
	}
}

func TestRowColor(t *testing.T) {
	want := []core.Color{core.ColorRed, core.ColorOrange, core.ColorGreen, core.ColorYellow, core.ColorRed}
	for row, c := range want {
		if RowColor(row) != c {
			t.Errorf("RowColor(%d) = %v, expected %v", row, RowColor(row), c)
		}
	}
}

func TestDrawBallAndPaddle(t *testing.T) {
	r, cfg := newTestRenderer()
	s := breakout.NewSession(breakout.Options{Config: cfg, Seed: 1})

	r.DrawBall(s.Ball())
	r.DrawPaddle(s.Paddle())

	if cell := r.Screen().GetCell(40, 21); cell.Rune != BallChar || cell.Color != core.ColorLightGray {
		t.Errorf("ball cell = %q/%v", cell.Rune, cell.Color)
	}
	if cell := r.Screen().GetCell(40, 22); cell.Rune != PaddleChar || cell.Color != core.ColorRed {
		t.Errorf("paddle cell = %q/%v", cell.Rune, cell.Color)
	}
	if got := strings.Count(r.Screen().Row(22), string(PaddleChar)); got != 13 {
		t.Errorf("paddle spans %d cells, expected 13", got)
	}
}

func TestDrawBallClampedToScreen(t *testing.T) {
	r, _ := newTestRenderer()
	r.DrawBall(breakout.Ball{X: 1425, Y: 780, Radius: 12})
	if r.Screen().GetCell(79, 23).Rune != BallChar {
		t.Error("ball on the far edge should stay visible")
	}
}

func TestDrawScores(t *testing.T) {
	r, _ := newTestRenderer()
	r.DrawScores(7, 31)
	if got := r.Screen().Row(0); !strings.HasPrefix(got, " Score: 7 Best: 31") {
		t.Errorf("score line = %q", got)
	}
}

func TestDrawTerminalMessage(t *testing.T) {
	tests := []struct {
		phase breakout.Phase
		title string
		color core.Color
	}{
		{breakout.PhaseWon, "WINNER", core.ColorGold},
		{breakout.PhaseLost, "GAME OVER", core.ColorRed},
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			r, _ := newTestRenderer()
			r.DrawTerminalMessage(tc.phase, 40)

			screen := r.Screen()
			if !strings.Contains(screen.Row(10), tc.title) {
				t.Errorf("row 10 = %q, expected %q", screen.Row(10), tc.title)
			}
			if !strings.Contains(screen.Row(11), "Score: 40") {
				t.Errorf("row 11 = %q", screen.Row(11))
			}
			x := strings.Index(screen.Row(10), tc.title)
			if c := screen.GetCell(len([]rune(screen.Row(10)[:x])), 10).Color; c != tc.color {
				t.Errorf("title color = %v, expected %v", c, tc.color)
			}
		})
	}
}

func TestSessionDrawsThroughRenderer(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	screen := core.NewScreen(80, 24)
	s := breakout.NewSession(breakout.Options{
		Config:   cfg,
		Renderer: NewScreenRenderer(screen, cfg.Arena),
		Seed:     3,
	})
	s.Tick()

	if !strings.HasPrefix(screen.Row(0), " Score: 0 Best: 0") {
		t.Errorf("score line = %q", screen.Row(0))
	}
	if screen.GetCell(0, 3).Color != core.ColorRed {
		t.Error("first brick row should be drawn")
	}
}

func TestTooSmall(t *testing.T) {
	if TooSmall(core.NewScreen(80, 24)) {
		t.Error("80x24 should be playable")
	}
	small := core.NewScreen(30, 10)
	if !TooSmall(small) {
		t.Error("30x10 should be too small")
	}
	DrawTooSmall(small)
	if !strings.Contains(small.String(), "Terminal too small") {
		t.Error("too-small notice missing")
	}
}
