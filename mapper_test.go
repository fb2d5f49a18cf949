package walktrace

import (
	"math"
	"testing"
)

func TestMapToLogical_Corners(t *testing.T) {
	// An 800x600 surface mapped into a 10x10 logical system.
	const (
		surfaceW = 800.0
		surfaceH = 600.0
		maxX     = 10.0
		maxY     = 10.0
	)
	scaleX := maxX / surfaceW
	scaleY := maxY / surfaceH

	tests := []struct {
		name   string
		raw    Point
		expect Point
	}{
		{"top-left", Pt(0, 0), Pt(0, maxY)},
		{"bottom-left", Pt(0, surfaceH), Pt(0, 0)},
		{"top-right", Pt(surfaceW, 0), Pt(maxX, maxY)},
		{"bottom-right", Pt(surfaceW, surfaceH), Pt(maxX, 0)},
		{"center", Pt(surfaceW/2, surfaceH/2), Pt(maxX/2, maxY/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToLogical(tt.raw, surfaceH, scaleX, scaleY)
			if !got.Approx(tt.expect, 1e-9) {
				t.Errorf("MapToLogical(%v) = %v, want %v", tt.raw, got, tt.expect)
			}
		})
	}
}

func TestMapToLogical_FlipsYAxis(t *testing.T) {
	// Moving down in pixel space must move down in logical space.
	high := MapToLogical(Pt(0, 10), 100, 1, 1)
	low := MapToLogical(Pt(0, 90), 100, 1, 1)
	if low.Y >= high.Y {
		t.Errorf("logical Y not flipped: y=10 -> %v, y=90 -> %v", high.Y, low.Y)
	}
}

func TestMapToLogical_DegenerateScales(t *testing.T) {
	tests := []struct {
		name           string
		scaleX, scaleY float64
		expect         Point
	}{
		{"zero scales", 0, 0, Pt(0, 0)},
		{"negative x scale", -1, 1, Pt(-50, 50)},
		{"negative y scale", 1, -1, Pt(50, -50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The mapper must stay total: degenerate output, no panic.
			got := MapToLogical(Pt(50, 50), 100, tt.scaleX, tt.scaleY)
			if !got.Approx(tt.expect, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		expect float64
	}{
		{"exact", 1.25, 1.25},
		{"round down", 1.2349, 1.23},
		{"round up", 1.239, 1.24},
		{"negative", -1.239, -1.24},
		{"zero", 0, 0},
		{"integral", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}
