// Package canvas draws a breakout session into a core.Screen. Arena
// coordinates are scaled onto the screen's cell grid, so the same session
// renders at any terminal size. Both the Bubble Tea and tcell frontends
// display the resulting screen.
package canvas

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
)

// BrickGlyphs alternate in a checkerboard so neighbours stay distinct when
// the padding between them rounds away.
var BrickGlyphs = [2]rune{'█', '▓'}

// Minimum terminal size for a playable frame.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// rowColors cycles by brick row.
var rowColors = [4]core.Color{core.ColorRed, core.ColorOrange, core.ColorGreen, core.ColorYellow}

// RowColor returns the color of bricks in the given row.
func RowColor(row int) core.Color {
	return rowColors[row%len(rowColors)]
}

// ScreenRenderer implements breakout.Renderer on a core.Screen.
type ScreenRenderer struct {
	screen *core.Screen
	arena  config.BreakoutArena
}

// NewScreenRenderer draws an arena of the given size into screen.
func NewScreenRenderer(screen *core.Screen, arena config.BreakoutArena) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, arena: arena}
}

// Screen returns the target screen.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// cellX maps an arena x-coordinate to a screen column.
func (r *ScreenRenderer) cellX(x float64) int {
	return int(x * float64(r.screen.Width()) / r.arena.Width)
}

// cellY maps an arena y-coordinate to a screen row.
func (r *ScreenRenderer) cellY(y float64) int {
	return int(y * float64(r.screen.Height()) / r.arena.Height)
}

// cellRect maps an arena box to a screen rectangle at least one cell large.
func (r *ScreenRenderer) cellRect(b core.Box) core.Rect {
	x0, y0 := r.cellX(b.X), r.cellY(b.Y)
	x1, y1 := r.cellX(b.Right()), r.cellY(b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// ClearFrame blanks the screen.
func (r *ScreenRenderer) ClearFrame() {
	r.screen.Clear()
}

// DrawBall draws the ball as a single cell at its center.
func (r *ScreenRenderer) DrawBall(b breakout.Ball) {
	x := core.Clamp(r.cellX(b.X), 0, r.screen.Width()-1)
	y := core.Clamp(r.cellY(b.Y), 0, r.screen.Height()-1)
	r.screen.SetColored(x, y, BallChar, core.ColorLightGray)
}

// DrawBricks draws every alive brick, colored by row.
func (r *ScreenRenderer) DrawBricks(g *breakout.Grid) {
	g.Each(func(col, row int, b breakout.Brick) {
		if !b.Alive() {
			return
		}
		glyph := BrickGlyphs[(col+row)%2]
		r.screen.DrawRect(r.cellRect(g.Bounds(col, row)), glyph, RowColor(row))
	})
}

// DrawPaddle draws the paddle.
func (r *ScreenRenderer) DrawPaddle(p breakout.Paddle) {
	rect := r.cellRect(core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height})
	r.screen.DrawRect(rect, PaddleChar, core.ColorRed)
}

// DrawScores writes the score line in the top-left corner.
func (r *ScreenRenderer) DrawScores(current, best int) {
	r.screen.DrawTextColored(1, 0, ScoreLine(current, best), core.ColorWhite)
}

// DrawTerminalMessage draws the end-of-session box in the middle of the screen.
func (r *ScreenRenderer) DrawTerminalMessage(phase breakout.Phase, score int) {
	title, color := "GAME OVER", core.ColorRed
	if phase == breakout.PhaseWon {
		title, color = "WINNER", core.ColorGold
	}
	scoreText := fmt.Sprintf("Score: %d", score)
	hint := "r restart  q quit"

	w := core.Max(len(hint), len(title)) + 6
	h := 7
	box := core.NewRect((r.screen.Width()-w)/2, (r.screen.Height()-h)/2, w, h)
	r.screen.DrawBox(box, core.ColorGray)

	r.screen.DrawTextCentered(box.Y+2, title, color)
	r.screen.DrawTextCentered(box.Y+3, scoreText, core.ColorWhite)
	r.screen.DrawTextCentered(box.Y+5, hint, core.ColorGray)
}

// ScoreLine formats the running score display.
func ScoreLine(current, best int) string {
	return fmt.Sprintf("Score: %d Best: %d", current, best)
}

// DrawTooSmall fills the screen with a resize request.
func DrawTooSmall(s *core.Screen) {
	s.Clear()
	y := s.Height() / 2
	s.DrawTextCentered(y-1, "Terminal too small", core.ColorYellow)
	s.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", MinScreenW, MinScreenH, s.Width(), s.Height()), core.ColorDefault)
}

// TooSmall reports whether the screen cannot fit a playable frame.
func TooSmall(s *core.Screen) bool {
	return s.Width() < MinScreenW || s.Height() < MinScreenH
}

var _ breakout.Renderer = (*ScreenRenderer)(nil)
