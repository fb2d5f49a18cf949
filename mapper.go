package walktrace

import "math"

// MapToLogical transforms a raw pixel offset, relative to the surface's
// top-left corner, into logical coordinates. The Y axis is flipped so
// that logical (0, 0) is the bottom-left corner of the surface.
//
// The mapper is total: degenerate scale factors (zero or negative, as
// produced by unvalidated bounds) yield degenerate output rather than
// an error. Input validation is the caller's concern.
func MapToLogical(raw Point, surfaceH, scaleX, scaleY float64) Point {
	return Point{
		X: raw.X * scaleX,
		Y: (surfaceH - raw.Y) * scaleY,
	}
}

// Round2 rounds v to two decimal digits, the precision recorded samples
// and the CSV export carry.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
