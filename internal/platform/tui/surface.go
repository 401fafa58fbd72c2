package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/pong-arcade/internal/core"
	"github.com/vovakirdan/pong-arcade/internal/pong"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// cellSurface draws playfield geometry onto a region of a Screen.
type cellSurface struct {
	screen *core.Screen
	vp     core.Viewport
}

var _ pong.Surface = (*cellSurface)(nil)

func newCellSurface(screen *core.Screen, vp core.Viewport) *cellSurface {
	return &cellSurface{screen: screen, vp: vp}
}

// Clear blanks the playfield rows. The background color is left to the
// terminal.
func (s *cellSurface) Clear(color.Color) {
	for y := 0; y < s.vp.Rows; y++ {
		for x := 0; x < s.vp.Cols; x++ {
			s.screen.Set(x, y+s.vp.OriginY, ' ')
		}
	}
}

// FillRect fills every cell the rectangle touches.
func (s *cellSurface) FillRect(x, y, w, h float64, c color.Color) {
	col := core.Hex(c)
	x0, x1 := core.CellSpan(x, w, s.vp.ScaleX(), s.vp.Cols)
	y0, y1 := core.CellSpan(y, h, s.vp.ScaleY(), s.vp.Rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetColored(cx, cy+s.vp.OriginY, PaddleChar, col)
		}
	}
}

// FillCircle marks the cells whose centers fall inside the circle, or the
// single cell holding the center when the circle is smaller than a cell.
func (s *cellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	col := core.Hex(c)
	drawn := false
	x0, x1 := core.CellSpan(cx-r, 2*r, s.vp.ScaleX(), s.vp.Cols)
	y0, y1 := core.CellSpan(cy-r, 2*r, s.vp.ScaleY(), s.vp.Rows)
	for row := y0; row < y1; row++ {
		for colX := x0; colX < x1; colX++ {
			px := (float64(colX) + 0.5) / s.vp.ScaleX()
			py := (float64(row) + 0.5) / s.vp.ScaleY()
			if math.Hypot(px-cx, py-cy) <= r {
				s.screen.SetColored(colX, row+s.vp.OriginY, BallChar, col)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := s.vp.ToCell(cx, cy)
		s.screen.SetColored(x, y, BallChar, col)
	}
}

// StrokeDashedLine samples the line once per cell along its major axis and
// draws the cells that land on a dash. When the dash pattern is finer than
// two cells it degrades to alternating cells so gaps stay visible.
func (s *cellSurface) StrokeDashedLine(x0, y0, x1, y1, _ float64, dash []float64, c color.Color) {
	col := core.Hex(c)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	cells := math.Max(math.Abs(dx)*s.vp.ScaleX(), math.Abs(dy)*s.vp.ScaleY())
	steps := int(math.Ceil(cells - 1e-9))
	if steps < 1 {
		steps = 1
	}
	step := length / float64(steps)

	period := 0.0
	for _, d := range dash {
		period += d
	}
	coarse := period > 0 && period/step < 2

	glyph := NetChar
	if math.Abs(dx) > math.Abs(dy) {
		glyph = '─'
	}

	for i := 0; i < steps; i++ {
		along := (float64(i) + 0.5) * step
		var on bool
		switch {
		case period <= 0:
			on = true
		case coarse:
			on = i%2 == 0
		default:
			on = dashOn(dash, math.Mod(along, period))
		}
		if !on {
			continue
		}
		t := along / length
		x, y := s.vp.ToCell(x0+dx*t, y0+dy*t)
		// Lines sit underneath anything already drawn
		if s.screen.Get(x, y) != ' ' {
			continue
		}
		s.screen.SetColored(x, y, glyph, col)
	}
}

// dashOn reports whether offset (within one period) falls on a drawn segment.
// Even entries of dash are drawn, odd entries are gaps.
func dashOn(dash []float64, offset float64) bool {
	for i, d := range dash {
		if offset < d {
			return i%2 == 0
		}
		offset -= d
	}
	return false
}
