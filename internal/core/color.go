package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightGreen
)
