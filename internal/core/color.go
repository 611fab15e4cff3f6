package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for maze elements.
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
	ColorOpen    // light steel blue, uncovered floor
	ColorCovered // sea green, visited floor
	colorFixedCount
)

// hueColors approximates the wheel of 60% saturated hues in 30 degree steps.
var hueColors = [...]string{
	"174", // 0 red
	"180", // 30 orange
	"186", // 60 yellow
	"150", // 90 chartreuse
	"114", // 120 green
	"115", // 150 spring
	"116", // 180 cyan
	"110", // 210 azure
	"104", // 240 blue
	"140", // 270 violet
	"176", // 300 magenta
	"175", // 330 rose
}

// ColorHue returns a color for a hue in degrees. Any integer is accepted
// and wrapped onto the wheel.
func ColorHue(deg int) Color {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return colorFixedCount + Color(deg/30)
}

// HueCode returns the ANSI 256 code of a hue color and whether c is one.
func HueCode(c Color) (string, bool) {
	if c < colorFixedCount {
		return "", false
	}
	i := int(c - colorFixedCount)
	if i >= len(hueColors) {
		return "", false
	}
	return hueColors[i], true
}
