package walktrace

import "sync/atomic"

// PointerCell is a single-slot, last-write-wins container for the most
// recently observed pointer position in viewport coordinates.
//
// The pointer listener writes it unconditionally, whether or not a
// recording is active; the sampler reads it once per tick. There is no
// buffering: ticks that fall between two pointer movements reread the
// same value. Under a single cooperative host loop this is race-free by
// construction; the atomic pointer additionally keeps multi-goroutine
// hosts safe without changing the semantics.
type PointerCell struct {
	v atomic.Pointer[Point]
}

// Set records the latest pointer position, replacing any previous one.
func (c *PointerCell) Set(p Point) {
	c.v.Store(&p)
}

// Get returns the latest pointer position. The second return value is
// false until the first Set, the "pointer never observed" state.
func (c *PointerCell) Get() (Point, bool) {
	p := c.v.Load()
	if p == nil {
		return Point{}, false
	}
	return *p, true
}

// Reset clears the cell back to the never-observed state.
func (c *PointerCell) Reset() {
	c.v.Store(nil)
}
