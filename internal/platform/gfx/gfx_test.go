package gfx

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pong-arcade/internal/config"
)

func TestDashSegmentsVerticalNet(t *testing.T) {
	segs := DashSegments(400, 0, 400, 600, []float64{10, 10})
	if len(segs) != 30 {
		t.Fatalf("got %d segments, expected 30", len(segs))
	}
	first, last := segs[0], segs[len(segs)-1]
	if first != [4]float64{400, 0, 400, 10} {
		t.Errorf("first segment = %v, expected [400 0 400 10]", first)
	}
	if last != [4]float64{400, 580, 400, 590} {
		t.Errorf("last segment = %v, expected [400 580 400 590]", last)
	}
}

func TestDashSegmentsClipsFinalDash(t *testing.T) {
	segs := DashSegments(0, 0, 25, 0, []float64{10, 10})
	if len(segs) != 2 {
		t.Fatalf("got %d segments, expected 2", len(segs))
	}
	if segs[1] != [4]float64{20, 0, 25, 0} {
		t.Errorf("clipped segment = %v, expected [20 0 25 0]", segs[1])
	}
}

func TestDashSegmentsSolid(t *testing.T) {
	tests := []struct {
		name string
		dash []float64
	}{
		{"nil", nil},
		{"zeros", []float64{0, 0}},
		{"negative", []float64{-1, 5}},
	}
	for _, tt := range tests {
		segs := DashSegments(0, 0, 0, 50, tt.dash)
		if len(segs) != 1 || segs[0] != [4]float64{0, 0, 0, 50} {
			t.Errorf("%s: segments = %v, expected one solid line", tt.name, segs)
		}
	}
}

func TestDashSegmentsZeroLength(t *testing.T) {
	if segs := DashSegments(5, 5, 5, 5, []float64{1, 1}); segs != nil {
		t.Errorf("segments = %v, expected nil", segs)
	}
}

func TestRunValidatesConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Ball.Radius = 0
	if err := Run(cfg, DefaultOptions()); err == nil || errors.Is(err, ErrNotBuilt) {
		t.Errorf("Run(invalid) = %v, expected a config error", err)
	}
}
