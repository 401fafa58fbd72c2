package core

import (
	"fmt"
	"image/color"
)

// Color is a foreground color for a screen cell in the form lipgloss
// accepts: an ANSI 256-color code ("6") or a hex RGB value ("#06b6d4").
// The platform downsamples it to whatever the terminal supports.
type Color string

// Predefined colors for interface text.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorBlue        Color = "4"
	ColorMagenta     Color = "5"
	ColorCyan        Color = "6"
	ColorWhite       Color = "7"
	ColorBrightCyan  Color = "14"
	ColorBrightWhite Color = "15"
	ColorGray        Color = "245"
	ColorDarkGray    Color = "238"
)

// Hex returns c as a hex RGB color. Alpha is ignored; nil gives ColorDefault.
func Hex(c color.Color) Color {
	if c == nil {
		return ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
