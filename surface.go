package walktrace

import (
	"fmt"
	"image"

	"github.com/kajiLabTeam/corrent-trajectory-creation-app/internal/imutil"
)

// Surface is the persistent display surface: the floor plan scaled to
// display size, plus whatever trace strokes have accumulated on top of
// it. Strokes are drawn directly into the pixmap and are never
// re-rendered from history; Reset discards them by restoring the base
// image.
type Surface struct {
	base *Pixmap // scaled floor plan, untouched by strokes
	pix  *Pixmap // what the host actually displays
	geom Geometry
}

// NewSurface scales the floor-plan image per the given geometry and
// returns a fresh surface showing it.
func NewSurface(img image.Image, geom Geometry) (*Surface, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if !geom.Valid() {
		return nil, fmt.Errorf("walktrace: degenerate surface geometry %+v", geom)
	}
	w, h := geom.SurfaceSize()
	base := FromImage(imutil.Scale(img, w, h))
	return &Surface{
		base: base,
		pix:  base.Clone(),
		geom: geom,
	}, nil
}

// Reset restores the base floor plan, erasing any accumulated trace.
// Called when a new recording begins.
func (s *Surface) Reset() {
	s.pix.CopyFrom(s.base)
}

// Pixmap returns the displayable pixel buffer. The trace renderer draws
// into it in place; hosts blit it each frame.
func (s *Surface) Pixmap() *Pixmap {
	return s.pix
}

// Geometry returns the geometry the surface was built with.
func (s *Surface) Geometry() Geometry {
	return s.geom
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	return s.pix.Width(), s.pix.Height()
}
