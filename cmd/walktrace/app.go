package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	walktrace "github.com/kajiLabTeam/corrent-trajectory-creation-app"
)

// headerH is the vertical space above the floor plan reserved for
// status text.
const headerH = 48

// snapshotName is the PNG written next to the CSV when -snapshot is set.
const snapshotName = "walk_trace.png"

// App is the ebiten front-end around the walktrace recorder. Ebiten
// calls Update at a fixed 60 ticks per second on a single goroutine,
// which is exactly the cooperative fixed-rate loop the recorder is
// built for: Update polls the cursor into the pointer cell, forwards
// the space bar as the toggle, and advances the recorder by one tick.
type App struct {
	rec      *walktrace.Recorder
	snapshot bool

	winW, winH int
	surfaceImg *ebiten.Image
	notice     string // validation / error line, cleared on next successful toggle
}

// NewApp wraps a recorder for ebiten.
func NewApp(rec *walktrace.Recorder, snapshot bool) *App {
	return &App{rec: rec, snapshot: snapshot}
}

// Layout reports the logical screen size and feeds window resizes to
// the recorder, which defers the geometry recompute while a session is
// active.
func (a *App) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != a.winW || outsideH != a.winH {
		a.winW, a.winH = outsideW, outsideH
		if err := a.rec.SetViewport(outsideW, outsideH); err != nil {
			a.notice = err.Error()
		}
	}
	return outsideW, outsideH
}

// Update runs once per tick.
func (a *App) Update() error {
	now := time.Now()

	mx, my := ebiten.CursorPosition()
	a.rec.Pointer().Set(walktrace.Pt(float64(mx), float64(my)))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		wasRecording := a.rec.State() == walktrace.Recording
		if err := a.rec.Toggle(now); err != nil {
			a.notice = err.Error()
		} else {
			a.notice = ""
			if wasRecording && a.snapshot {
				a.saveSnapshot()
			}
		}
	}

	a.rec.Tick(now)
	a.positionSurface()
	return nil
}

// positionSurface centers the floor plan horizontally below the header
// and tells the recorder where it sits, since pointer containment is
// tested in window coordinates.
func (a *App) positionSurface() {
	s := a.rec.Surface()
	if s == nil {
		return
	}
	w, _ := s.Size()
	a.rec.SetOrigin(walktrace.Pt(float64((a.winW-w)/2), headerH))
}

// saveSnapshot writes the traced surface as a PNG. Best effort; a
// failure only produces a notice.
func (a *App) saveSnapshot() {
	s := a.rec.Surface()
	if s == nil {
		return
	}
	if err := s.Pixmap().SavePNG(snapshotName); err != nil {
		a.notice = err.Error()
		return
	}
	walktrace.Logger().Info("surface snapshot saved", "path", snapshotName)
}

// Draw renders the current frame: the traced surface, the status
// header, and any notice line.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff})

	if s := a.rec.Surface(); s != nil {
		a.blitSurface(screen, s)
	}

	ebitenutil.DebugPrintAt(screen, a.statusLine(time.Now()), 8, 8)
	if a.notice != "" {
		ebitenutil.DebugPrintAt(screen, "! "+a.notice, 8, 24)
	}
}

// blitSurface copies the recorder's pixmap into an ebiten image and
// draws it at the surface origin. The ebiten image is rebuilt whenever
// the surface size changes (image load or applied resize).
func (a *App) blitSurface(screen *ebiten.Image, s *walktrace.Surface) {
	w, h := s.Size()
	if a.surfaceImg == nil || a.surfaceImg.Bounds().Dx() != w || a.surfaceImg.Bounds().Dy() != h {
		a.surfaceImg = ebiten.NewImage(w, h)
	}
	a.surfaceImg.WritePixels(s.Pixmap().Data())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((a.winW-w)/2), headerH)
	screen.DrawImage(a.surfaceImg, op)
}

// statusLine builds the header text for the current state.
func (a *App) statusLine(now time.Time) string {
	switch a.rec.State() {
	case walktrace.CountingDown:
		secs := math.Ceil(a.rec.CountdownRemaining(now).Seconds())
		return fmt.Sprintf("starting in %.0f...", secs)
	case walktrace.Recording:
		return fmt.Sprintf("REC %.2f s  (%d samples)  [space: stop]",
			a.rec.Elapsed().Seconds(), a.rec.SampleCount())
	default:
		if a.rec.Surface() == nil {
			return "no image loaded (start with -image <floorplan.png>)"
		}
		b := a.rec.Bounds()
		parts := []string{
			fmt.Sprintf("bounds: %.2f x %.2f", b.MaxX, b.MaxY),
			"[space: record]",
		}
		if a.rec.SampleCount() > 0 {
			parts = append(parts, fmt.Sprintf("last: %.2f s, %d samples",
				a.rec.Elapsed().Seconds(), a.rec.SampleCount()))
		}
		return strings.Join(parts, "  ")
	}
}
