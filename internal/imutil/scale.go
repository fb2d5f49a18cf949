package imutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resamples src to the given dimensions using Catmull-Rom
// interpolation, which keeps floor-plan line work crisp at display
// scales below 1. Degenerate target sizes yield an empty image.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 || src == nil {
		return dst
	}
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
