package pong

import "image/color"

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is a 2D drawing target sized to the playfield.
// Coordinates are playfield units; implementations scale as needed.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, c color.Color)
}

// Palette holds the colors used by Render.
type Palette struct {
	Background color.Color
	Paddle     color.Color
	Ball       color.Color
	Net        color.Color
}

// DefaultPalette returns the classic dark arcade colors.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Paddle:     color.RGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
		Ball:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Net:        color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff},
	}
}

// Net stroke parameters.
const (
	NetWidth = 4
	NetDash  = 10
	NetGap   = 10
)
