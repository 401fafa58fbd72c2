package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/pong-arcade/internal/core"
	"github.com/vovakirdan/pong-arcade/internal/pong"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func newTestSurface(cols, rows int) (*core.Screen, *cellSurface) {
	screen := core.NewScreen(cols, rows+1)
	return screen, newCellSurface(screen, core.NewViewport(800, 600, cols, rows, 1))
}

func TestCellSurfaceFillRect(t *testing.T) {
	screen, s := newTestSurface(80, 20)

	// Left paddle at top 250, 10x100: column 0, rows 250/30=8 through 350/30=11.67
	s.FillRect(0, 250, 10, 100, white)

	for y := 1; y <= 21; y++ {
		cell := screen.GetCell(0, y)
		want := y >= 9 && y <= 12
		if (cell.Rune == PaddleChar) != want {
			t.Errorf("row %d: rune %q, expected paddle=%v", y, cell.Rune, want)
		}
	}
	if screen.GetCell(1, 10).Rune == PaddleChar {
		t.Error("paddle spilled into column 1")
	}
	if got := screen.GetCell(0, 10).Color; got != "#ffffff" {
		t.Errorf("paddle color = %q, expected #ffffff", got)
	}
}

func TestCellSurfaceFillCircleSmallBall(t *testing.T) {
	screen, s := newTestSurface(80, 20)
	s.FillCircle(405, 315, 8, white)

	count := 0
	for y := 0; y < screen.Height(); y++ {
		count += strings.Count(screen.Row(y), string(BallChar))
	}
	if count != 1 {
		t.Fatalf("ball drawn in %d cells, expected 1", count)
	}
	if screen.Get(40, 11) != BallChar {
		t.Errorf("ball not at (40, 11):\n%s", screen.String())
	}
}

func TestCellSurfaceFillCircleLargeBall(t *testing.T) {
	screen, s := newTestSurface(80, 60) // 10x10 units per cell
	s.FillCircle(400, 300, 30, white)

	if screen.Get(40, 31) != BallChar {
		t.Error("center cell not filled")
	}
	if screen.Get(45, 31) == BallChar {
		t.Error("cell outside radius filled")
	}
}

func TestCellSurfaceDashedNet(t *testing.T) {
	screen, s := newTestSurface(80, 60) // one cell per 10 units, dash 10/10
	s.StrokeDashedLine(400, 0, 400, 600, 4, []float64{10, 10}, white)

	drawn := 0
	for row := 1; row <= 60; row++ {
		on := screen.Get(40, row) == NetChar
		if on {
			drawn++
		}
		if want := (row-1)%2 == 0; on != want {
			t.Errorf("row %d: net=%v, expected %v", row, on, want)
		}
	}
	if drawn != 30 {
		t.Errorf("net drawn in %d rows, expected 30", drawn)
	}
}

func TestCellSurfaceCoarseNetAlternates(t *testing.T) {
	screen, s := newTestSurface(80, 20) // 30 units per row, finer than the dash
	s.StrokeDashedLine(400, 0, 400, 600, 4, []float64{10, 10}, white)

	for row := 1; row <= 20; row++ {
		on := screen.Get(40, row) == NetChar
		if want := (row-1)%2 == 0; on != want {
			t.Errorf("row %d: net=%v, expected %v", row, on, want)
		}
	}
}

func TestCellSurfaceNetStaysUnderBall(t *testing.T) {
	screen, s := newTestSurface(80, 60)
	s.FillCircle(400, 5, 2, white)
	s.StrokeDashedLine(400, 0, 400, 600, 4, []float64{10, 10}, white)
	if screen.Get(40, 1) != BallChar {
		t.Errorf("net overwrote the ball: %q", screen.Get(40, 1))
	}
}

func TestCellSurfaceRendersGame(t *testing.T) {
	screen, s := newTestSurface(80, 20)
	g, err := pong.New(defaultTestConfig(), pong.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	g.Render(s)

	out := screen.String()
	if strings.Count(out, string(BallChar)) != 1 {
		t.Errorf("expected one ball cell:\n%s", out)
	}
	if screen.Get(0, 10) != PaddleChar || screen.Get(79, 10) != PaddleChar {
		t.Errorf("paddles missing at both walls:\n%s", out)
	}
	if !strings.Contains(out, string(NetChar)) {
		t.Errorf("net missing:\n%s", out)
	}
	// Header row is not touched by the surface
	if strings.TrimSpace(screen.Row(0)) != "" {
		t.Errorf("header row drawn on: %q", screen.Row(0))
	}
}

func TestDashOn(t *testing.T) {
	dash := []float64{10, 5, 2, 3}
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, true},
		{9.9, true},
		{10, false},
		{14, false},
		{15, true},
		{16.5, true},
		{17, false},
		{19.9, false},
	}
	for _, tt := range tests {
		if got := dashOn(dash, tt.offset); got != tt.want {
			t.Errorf("dashOn(%v) = %v, expected %v", tt.offset, got, tt.want)
		}
	}
}
