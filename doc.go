// Package walktrace records walking trajectories over a floor-plan image.
//
// # Overview
//
// walktrace captures a timestamped sequence of pointer positions while a
// recording session is active, maps raw pixel offsets into a user-defined
// logical coordinate system, draws the trace onto a raster surface, and
// exports the result as CSV.
//
// # Quick Start
//
//	import walktrace "github.com/kajiLabTeam/corrent-trajectory-creation-app"
//
//	rec := walktrace.NewRecorder()
//	img, _ := imutil.Load("floorplan.png")
//	rec.SetImage(img)
//	rec.SetViewport(1280, 720)
//
//	// In the host loop, at a fixed 60 Hz:
//	rec.Pointer().Set(walktrace.Pt(mx, my))
//	rec.Tick(time.Now())
//
//	// Space bar (or any single trigger):
//	rec.Toggle(time.Now())
//
// # Lifecycle
//
// The recorder cycles through three states: Idle, CountingDown (a fixed
// delay so the operator can walk to the starting position), and Recording.
// A single toggle input drives the cycle; toggling during the countdown is
// ignored. Stopping a recording synchronously exports the collected samples.
//
// # Coordinate System
//
// Raw offsets use standard raster coordinates (origin top-left, Y down).
// Logical coordinates flip the Y axis so that (0, 0) is the bottom-left
// corner of the floor plan and (MaxX, MaxY) the top-right.
//
// # Concurrency
//
// The recorder is designed for a single cooperative host loop: pointer
// updates, toggles, and ticks must all come from the same goroutine. The
// one shared cell that an embedding might reasonably feed from elsewhere,
// the latest pointer position, is an atomic single-slot container so that
// multi-goroutine hosts stay safe.
package walktrace

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
