package walktrace

import (
	"testing"
	"time"
)

func TestSession_Duration(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
		expect  time.Duration
	}{
		{"empty", nil, 0},
		{"single", []Sample{{Time: 17}}, 17 * time.Millisecond},
		{"many", []Sample{{Time: 0}, {Time: 500}, {Time: 1000}}, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Samples: tt.samples}
			if got := s.Duration(); got != tt.expect {
				t.Errorf("Duration() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestSession_CloneIsIndependent(t *testing.T) {
	s := newSession(time.Now())
	s.Samples = append(s.Samples, Sample{Time: 1, X: 2, Y: 3})

	c := s.Clone()
	c.Samples[0].X = 99

	if s.Samples[0].X != 2 {
		t.Errorf("mutating clone changed original: %v", s.Samples[0])
	}
	if c.ID != s.ID || !c.Start.Equal(s.Start) {
		t.Errorf("clone metadata differs: %+v vs %+v", c, s)
	}
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a := newSession(time.Now())
	b := newSession(time.Now())
	if a.ID == b.ID {
		t.Error("consecutive sessions share an ID")
	}
}
