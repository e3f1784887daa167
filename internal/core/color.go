package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorOrange
	ColorGold
	ColorGray
	ColorLightGray
)

// ANSI returns the 256-color palette index for the color, or -1 for the
// terminal's default foreground.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorWhite:
		return 15
	case ColorBrightRed:
		return 9
	case ColorOrange:
		return 208
	case ColorGold:
		return 220
	case ColorGray:
		return 240
	case ColorLightGray:
		return 253
	default:
		return -1
	}
}
