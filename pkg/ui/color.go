package ui

import "strconv"

// Color is one of the 8 basic ANSI colors, optionally in the bright variant.
type Color struct {
	code   int
	bright bool
}

// Basic colors.
var (
	Black   = Color{0, false}
	Red     = Color{1, false}
	Green   = Color{2, false}
	Yellow  = Color{3, false}
	Blue    = Color{4, false}
	Magenta = Color{5, false}
	Cyan    = Color{6, false}
	White   = Color{7, false}

	BrightBlack = Color{0, true}
)

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

func (c Color) String() string {
	if c.bright {
		return "bright-" + colorNames[c.code]
	}
	return colorNames[c.code]
}

func (c Color) fgSGR() string {
	if c.bright {
		return strconv.Itoa(90 + c.code)
	}
	return strconv.Itoa(30 + c.code)
}
