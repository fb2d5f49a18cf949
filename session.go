package walktrace

import (
	"time"

	"github.com/google/uuid"
)

// Sample is one recorded trajectory point. Time is milliseconds since
// the session's start instant; X and Y are logical coordinates, already
// rounded to two decimals. Samples are immutable once created.
type Sample struct {
	Time int64
	X    float64
	Y    float64
}

// Session is one complete countdown+recording cycle: a start instant
// and the append-only sample sequence collected until the recording was
// stopped. The sequence survives the stop so it stays exportable and
// inspectable; it is replaced when the next recording begins.
type Session struct {
	ID      uuid.UUID
	Start   time.Time
	Samples []Sample
}

// newSession creates a fresh session starting at the given instant.
func newSession(start time.Time) Session {
	return Session{ID: uuid.New(), Start: start}
}

// Duration returns the time span covered by the recorded samples:
// zero for an empty session, otherwise the last sample's offset.
func (s Session) Duration() time.Duration {
	if len(s.Samples) == 0 {
		return 0
	}
	return time.Duration(s.Samples[len(s.Samples)-1].Time) * time.Millisecond
}

// Clone returns a copy of the session with its own sample slice, so
// the recorder's internal sequence cannot be mutated through it.
func (s Session) Clone() Session {
	c := s
	c.Samples = make([]Sample, len(s.Samples))
	copy(c.Samples, s.Samples)
	return c
}
