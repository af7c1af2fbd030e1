package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The platform maps each to a terminal style.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
	ColorMaroon
	ColorTeal
)

// String returns the color name, mostly for test failure output.
func (c Color) String() string {
	names := [...]string{
		"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright-red", "bright-green", "bright-yellow", "bright-blue",
		"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
		"navy", "maroon", "teal",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
