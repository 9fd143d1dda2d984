package core

// Color is a foreground color for a screen cell.
// The platform maps it to ANSI colors.
type Color uint8

// Colors used by the game.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorGreen
	ColorBrightGreen
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorRed
)
