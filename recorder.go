package walktrace

import (
	"image"
	"time"
)

// Recorder is the application core: it owns the recording state
// machine, the per-tick sampler, the display surface, and the session
// data, and hands finished sessions to the configured exporter.
//
// All methods except Pointer().Set must be called from a single
// cooperative host loop (see the package documentation). The host is
// expected to call Tick at a fixed rate; 60 Hz reproduces the intended
// sampling density.
type Recorder struct {
	state         State
	countdown     time.Duration
	countdownEnds time.Time

	img     image.Image
	surface *Surface
	bounds  Bounds
	origin  Point

	viewportW, viewportH int
	pendingViewport      bool

	pointer    PointerCell
	session    Session
	lastOffset Point
	hasLast    bool
	elapsed    time.Duration

	exporter Exporter
	style    TraceStyle
}

// NewRecorder creates a recorder in the Idle state with no floor plan
// installed. Load an image and set a viewport before toggling.
func NewRecorder(opts ...RecorderOption) *Recorder {
	o := defaultRecorderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		countdown: o.countdown,
		style:     o.style,
		exporter:  o.exporter,
	}
}

// SetImage installs the floor-plan image and resets the logical bounds
// to its natural pixel dimensions, the same default a fresh upload
// gets. The display surface is rebuilt if a viewport is already known.
func (r *Recorder) SetImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	b := img.Bounds()
	r.img = img
	r.bounds = Bounds{MaxX: float64(b.Dx()), MaxY: float64(b.Dy())}
	Logger().Info("floor plan installed", "width", b.Dx(), "height", b.Dy())
	return r.rebuild()
}

// SetViewport reports the host viewport size. While a countdown or
// recording is active the recompute is deferred: the sampler keeps
// using the geometry it started with, and the new size is applied on
// the next return to Idle. This keeps raw offsets consistent within a
// session.
func (r *Recorder) SetViewport(w, h int) error {
	r.viewportW, r.viewportH = w, h
	if r.state != Idle {
		r.pendingViewport = true
		return nil
	}
	return r.rebuild()
}

// rebuild recomputes geometry and the display surface from the current
// image and viewport. Missing inputs leave the surface absent; that is
// not an error, just the "nothing to show yet" state.
func (r *Recorder) rebuild() error {
	r.pendingViewport = false
	if r.img == nil || r.viewportW <= 0 || r.viewportH <= 0 {
		r.surface = nil
		return nil
	}
	ib := r.img.Bounds()
	geom := FitGeometry(ib.Dx(), ib.Dy(), r.viewportW, r.viewportH)
	surface, err := NewSurface(r.img, geom)
	if err != nil {
		r.surface = nil
		return err
	}
	r.surface = surface
	return nil
}

// SetBounds replaces the logical coordinate bounds. Invalid values
// (NaN, infinite, non-positive) are rejected with ErrInvalidBounds and
// leave the current bounds untouched, so degenerate scale factors can
// never reach the mapper.
func (r *Recorder) SetBounds(b Bounds) error {
	if err := b.Validate(); err != nil {
		Logger().Warn("rejected logical bounds", "maxX", b.MaxX, "maxY", b.MaxY)
		return err
	}
	r.bounds = b
	return nil
}

// Bounds returns the current logical coordinate bounds.
func (r *Recorder) Bounds() Bounds {
	return r.bounds
}

// SetOrigin reports where the surface's top-left corner sits in
// viewport coordinates. The host calls this whenever it repositions
// the surface, since pointer containment is tested in viewport space.
func (r *Recorder) SetOrigin(p Point) {
	r.origin = p
}

// Surface returns the display surface, or nil while no floor plan is
// installed or the viewport is unknown.
func (r *Recorder) Surface() *Surface {
	return r.surface
}

// Pointer returns the shared pointer-position cell. The host's pointer
// listener writes it unconditionally, independent of recording state.
func (r *Recorder) Pointer() *PointerCell {
	return &r.pointer
}

// State returns the current lifecycle state.
func (r *Recorder) State() State {
	return r.state
}

// Session returns a copy of the current session. After a recording
// stops the session remains available until the next one starts.
func (r *Recorder) Session() Session {
	return r.session.Clone()
}

// SampleCount returns the number of samples collected so far without
// copying the sequence. Handy for live status displays.
func (r *Recorder) SampleCount() int {
	return len(r.session.Samples)
}

// Elapsed returns the recording time shown to the user. It advances on
// every tick while recording, whether or not a sample was produced,
// and freezes at its final value when the recording stops.
func (r *Recorder) Elapsed() time.Duration {
	return r.elapsed
}

// CountdownRemaining returns how much of the start delay is left, or
// zero when no countdown is running.
func (r *Recorder) CountdownRemaining(now time.Time) time.Duration {
	if r.state != CountingDown {
		return 0
	}
	d := r.countdownEnds.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Toggle drives the state machine from the single trigger input.
//
//   - Idle: arms the countdown. Requires a loaded floor plan and valid
//     bounds; otherwise the toggle is rejected with an error.
//   - CountingDown: ignored. The debounce is deliberate so the key that
//     armed the countdown cannot abort it.
//   - Recording: stops sampling and synchronously exports the session.
func (r *Recorder) Toggle(now time.Time) error {
	switch r.state {
	case Idle:
		if r.surface == nil {
			return ErrNoImage
		}
		if err := r.bounds.Validate(); err != nil {
			return err
		}
		r.state = CountingDown
		r.countdownEnds = now.Add(r.countdown)
		Logger().Info("countdown armed", "duration", r.countdown)
		return nil

	case CountingDown:
		Logger().Debug("toggle ignored during countdown")
		return nil

	case Recording:
		return r.stop()

	default:
		return nil
	}
}

// Reset forces the recorder back to Idle without exporting, explicitly
// cancelling any pending countdown so it can never fire afterwards.
// Deferred viewport changes are applied. The retained session is left
// alone.
func (r *Recorder) Reset() error {
	if r.state != Idle {
		Logger().Info("recorder reset", "from", r.state)
	}
	r.state = Idle
	r.countdownEnds = time.Time{}
	if r.pendingViewport {
		return r.rebuild()
	}
	return nil
}

// Tick advances the recorder by one fixed-rate step. In CountingDown
// it checks the deadline; in Recording it runs the sampler; in Idle it
// does nothing, which is what makes stopping mid-tick safe.
func (r *Recorder) Tick(now time.Time) {
	switch r.state {
	case CountingDown:
		if !now.Before(r.countdownEnds) {
			r.beginRecording(now)
		}
	case Recording:
		r.sample(now)
	}
}

// beginRecording is the CountingDown → Recording transition: clear the
// sample sequence, reset the last-offset marker, capture the start
// instant, erase any prior trace, and start sampling.
func (r *Recorder) beginRecording(now time.Time) {
	r.session = newSession(now)
	r.hasLast = false
	r.elapsed = 0
	r.countdownEnds = time.Time{}
	r.surface.Reset()
	r.state = Recording
	Logger().Info("recording started", "session", r.session.ID)
}

// stop is the Recording → Idle transition: sampling ceases and the
// collected sequence is handed to the exporter. The sequence itself is
// retained until the next recording begins.
func (r *Recorder) stop() error {
	r.state = Idle
	Logger().Info("recording stopped",
		"session", r.session.ID, "samples", len(r.session.Samples))

	var exportErr error
	if r.exporter != nil {
		exportErr = r.exporter.Export(r.session.Clone())
	}
	if r.pendingViewport {
		if err := r.rebuild(); err != nil && exportErr == nil {
			exportErr = err
		}
	}
	return exportErr
}

// sample is one sampler tick while recording. The elapsed display
// updates unconditionally; a sample is produced only when a pointer
// position has been observed and lies inside the surface rectangle.
// Sampling is time-driven, not motion-driven: an unmoved pointer still
// yields one sample per tick, giving a uniform time series.
func (r *Recorder) sample(now time.Time) {
	r.elapsed = now.Sub(r.session.Start)

	p, ok := r.pointer.Get()
	if !ok {
		return
	}

	w, h := r.surface.Size()
	rect := RectFromSize(r.origin, float64(w), float64(h))
	if !rect.Contains(p) {
		Logger().Debug("pointer outside surface", "x", p.X, "y", p.Y)
		return
	}

	raw := p.Sub(rect.Min)
	scaleX, scaleY := r.bounds.Scales(float64(w), float64(h))
	logical := MapToLogical(raw, float64(h), scaleX, scaleY)

	ms := now.Sub(r.session.Start).Round(time.Millisecond).Milliseconds()
	r.session.Samples = append(r.session.Samples, Sample{
		Time: ms,
		X:    Round2(logical.X),
		Y:    Round2(logical.Y),
	})

	if r.hasLast {
		r.surface.StrokeSegment(r.lastOffset, raw, r.style)
	}
	r.lastOffset = raw
	r.hasLast = true
}
