package walktrace

import "testing"

func TestPointerCell_NeverObserved(t *testing.T) {
	var c PointerCell
	if _, ok := c.Get(); ok {
		t.Error("Get() reported a position before any Set")
	}
}

func TestPointerCell_LastWriteWins(t *testing.T) {
	var c PointerCell

	c.Set(Pt(1, 2))
	c.Set(Pt(3, 4))
	c.Set(Pt(5, 6))

	p, ok := c.Get()
	if !ok {
		t.Fatal("Get() = no position after Set")
	}
	if p != Pt(5, 6) {
		t.Errorf("Get() = %v, want (5, 6)", p)
	}

	// No buffering: repeated reads between writes see the same value.
	q, _ := c.Get()
	if q != p {
		t.Errorf("reread differs: %v vs %v", q, p)
	}
}

func TestPointerCell_Reset(t *testing.T) {
	var c PointerCell
	c.Set(Pt(7, 8))
	c.Reset()
	if _, ok := c.Get(); ok {
		t.Error("Get() reported a position after Reset")
	}
}
