package walktrace

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// TraceStyle controls how trajectory segments are stroked.
type TraceStyle struct {
	Width float64 // stroke width in pixels
	Color RGBA
}

// DefaultTraceStyle returns the standard trace appearance: a 2px red
// stroke.
func DefaultTraceStyle() TraceStyle {
	return TraceStyle{Width: 2, Color: RGB(1, 0, 0)}
}

// StrokeSegment draws a straight line segment from a to b onto the
// surface, in raw-offset (surface-local pixel) coordinates. Strokes
// accumulate; nothing else on the surface is touched.
//
// Coverage is computed from the signed distance to the segment capsule
// (the segment inflated by half the stroke width, with round caps) and
// smoothed through a Hermite smoothstep, so consecutive segments join
// without visible seams.
func (s *Surface) StrokeSegment(a, b Point, style TraceStyle) {
	if style.Width <= 0 || style.Color.A <= 0 {
		return
	}
	halfW := style.Width / 2
	pad := halfW + sdfAntialiasWidth

	x0 := int(math.Floor(math.Min(a.X, b.X) - pad))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + pad))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - pad))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + pad))

	w, h := s.Size()
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, w-1)
	y1 = min(y1, h-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Sample at the pixel center.
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			sdf := sdfSegment(p, a, b) - halfW
			cov := smoothstepCoverage(sdf)
			if cov <= 0 {
				continue
			}
			s.pix.BlendPixelAlpha(x, y, style.Color, uint8(cov*255))
		}
	}
}

// sdfSegment returns the distance from p to the segment ab.
func sdfSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return ap.Length()
	}
	t := ap.Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return ap.Sub(ab.Mul(t)).Length()
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
