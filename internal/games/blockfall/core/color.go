package core

import "strings"

// Color is a block color. Drawing is left to the platform; the engine only
// carries the value.
type Color uint8

const (
	ColorBlack Color = iota
	ColorYellow
	ColorBlue
	ColorPurple
	ColorOrange
	ColorGreen
	ColorRed
	ColorSkyBlue
	ColorWhite
	ColorLightGray
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorSkyBlue:
		return "skyblue"
	case ColorWhite:
		return "white"
	case ColorLightGray:
		return "lightgray"
	default:
		return "unknown"
	}
}

// ParseColor converts a string to a Color.
// Returns ColorBlack and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return ColorBlack, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "purple":
		return ColorPurple, true
	case "orange":
		return ColorOrange, true
	case "green":
		return ColorGreen, true
	case "red":
		return ColorRed, true
	case "skyblue", "sky_blue", "cyan":
		return ColorSkyBlue, true
	case "white":
		return ColorWhite, true
	case "lightgray", "lightgrey", "light_gray":
		return ColorLightGray, true
	default:
		return ColorBlack, false
	}
}
