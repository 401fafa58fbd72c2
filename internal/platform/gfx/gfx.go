// Package gfx runs the game in a desktop window using Ebitengine.
// The window is only compiled with the ebiten build tag; without it Run
// reports ErrNotBuilt so headless builds need no graphics toolchain.
package gfx

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-arcade/internal/audio"
)

// ErrNotBuilt is returned by Run in builds without the ebiten tag.
var ErrNotBuilt = errors.New("gfx: window support not built (rebuild with -tags ebiten)")

// Options configures the window.
type Options struct {
	Title  string
	Scale  float64 // Window size relative to the playfield
	Seed   int64   // Zero picks a random seed
	Cues   *audio.Cues
	Logger *log.Logger
}

// DefaultOptions returns a 1:1 window titled for the arcade.
func DefaultOptions() Options {
	return Options{
		Title: "Pong Arcade",
		Scale: 1,
	}
}

// DashSegments splits the line from (x0, y0) to (x1, y1) into the drawn parts
// of a dash pattern. Even entries of dash are drawn, odd entries are gaps. An
// empty or zero-length pattern yields the whole line.
func DashSegments(x0, y0, x1, y1 float64, dash []float64) [][4]float64 {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	period := 0.0
	for _, d := range dash {
		if d < 0 {
			return [][4]float64{{x0, y0, x1, y1}}
		}
		period += d
	}
	if period == 0 {
		return [][4]float64{{x0, y0, x1, y1}}
	}

	ux, uy := dx/length, dy/length
	var segs [][4]float64
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		end := min(pos+d, length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [4]float64{x0 + ux*pos, y0 + uy*pos, x0 + ux*end, y0 + uy*end})
		}
		pos = end
	}
	return segs
}
