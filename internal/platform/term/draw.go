package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	style := tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
	if c == core.ColorGold {
		style = style.Bold(true)
	}
	return style
}

// Blit writes every cell of src to the screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
}

// ActionFor maps a key event to a game action: arrows, a/d and h/l steer,
// r restarts, q, Esc and Ctrl+C quit.
func ActionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case 'r', 'R':
			return core.ActionRestart
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
