package walktrace

import (
	"errors"
	"fmt"
	"math"
)

// Geometry errors.
var (
	// ErrInvalidBounds is returned when logical bounds are not finite
	// positive numbers.
	ErrInvalidBounds = errors.New("walktrace: invalid logical bounds")

	// ErrNoImage is returned when an operation requires a loaded floor
	// plan and none is installed.
	ErrNoImage = errors.New("walktrace: no image loaded")
)

// Fraction of the viewport the display surface may occupy.
const (
	viewportWidthFrac  = 0.9
	viewportHeightFrac = 0.6
)

// Geometry describes how the floor-plan image maps onto the display
// surface: the image's natural pixel dimensions and the uniform scale
// applied for display.
type Geometry struct {
	ImageW       int
	ImageH       int
	DisplayScale float64
}

// FitGeometry computes the display geometry for an image of the given
// natural size inside the given viewport. The scale is chosen so the
// surface occupies at most 90% of the viewport width and 60% of its
// height, preserving aspect ratio.
//
// FitGeometry is deterministic: identical inputs always produce an
// identical DisplayScale.
func FitGeometry(imageW, imageH, viewportW, viewportH int) Geometry {
	g := Geometry{ImageW: imageW, ImageH: imageH}
	if imageW <= 0 || imageH <= 0 || viewportW <= 0 || viewportH <= 0 {
		return g
	}
	sx := float64(viewportW) * viewportWidthFrac / float64(imageW)
	sy := float64(viewportH) * viewportHeightFrac / float64(imageH)
	g.DisplayScale = math.Min(sx, sy)
	return g
}

// SurfaceSize returns the display surface dimensions in whole pixels.
func (g Geometry) SurfaceSize() (w, h int) {
	return int(math.Round(float64(g.ImageW) * g.DisplayScale)),
		int(math.Round(float64(g.ImageH) * g.DisplayScale))
}

// Valid reports whether the geometry describes a drawable surface.
func (g Geometry) Valid() bool {
	w, h := g.SurfaceSize()
	return w > 0 && h > 0
}

// Bounds is the user-defined logical coordinate system: the floor plan
// spans [0, MaxX] horizontally and [0, MaxY] vertically (bottom-up).
type Bounds struct {
	MaxX float64
	MaxY float64
}

// Validate rejects bounds that would produce degenerate scale factors.
// NaN, infinities, and non-positive values are all invalid.
func (b Bounds) Validate() error {
	for _, v := range [...]struct {
		name string
		val  float64
	}{{"maxX", b.MaxX}, {"maxY", b.MaxY}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidBounds, v.name)
		}
		if v.val <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidBounds, v.name, v.val)
		}
	}
	return nil
}

// Scales returns the logical-units-per-pixel factors for a surface of
// the given pixel dimensions. Degenerate surface sizes yield zero
// scales rather than an error; callers guard surface validity.
func (b Bounds) Scales(surfaceW, surfaceH float64) (scaleX, scaleY float64) {
	if surfaceW > 0 {
		scaleX = b.MaxX / surfaceW
	}
	if surfaceH > 0 {
		scaleY = b.MaxY / surfaceH
	}
	return scaleX, scaleY
}
