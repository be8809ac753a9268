package core

// Color is a foreground colour for a screen cell. The platform layer maps
// it to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDim
	ColorBrightWhite
	ColorBrightRed
	ColorBrightGreen
)
