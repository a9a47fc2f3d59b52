package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Dim returns a darker variant used for fading elements.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow, ColorOrange:
		return ColorYellow
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite, ColorWhite:
		return ColorGray
	default:
		return c
	}
}
