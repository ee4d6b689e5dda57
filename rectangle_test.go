package freerect

import "testing"

func TestRectFromSidesRoundTrip(t *testing.T) {
	r := NewRectFromSides(0, 1, 2, 0)
	if r.Left() != 0 || r.Right() != 1 || r.Top() != 2 || r.Bottom() != 0 {
		t.Errorf("round trip failed: got left=%d right=%d top=%d bottom=%d",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}
}

func TestRectCornerAndExtents(t *testing.T) {
	r := NewRect(3, 9, 4, 10)
	if r.Right() != 6 {
		t.Errorf("right = %d, want 6", r.Right())
	}
	if r.Bottom() != 0 {
		t.Errorf("bottom = %d, want 0", r.Bottom())
	}
	if r.Width() != 4 || r.Height() != 10 {
		t.Errorf("extents = %dx%d, want 4x10", r.Width(), r.Height())
	}
	if r.Area() != 40 {
		t.Errorf("area = %d, want 40", r.Area())
	}
}

func TestRectSinglePoint(t *testing.T) {
	r := NewRect(5, 5, 1, 1)
	if r.Left() != 5 || r.Right() != 5 || r.Top() != 5 || r.Bottom() != 5 {
		t.Errorf("1x1 rect should occupy exactly one point, got [%d,%d]x[%d,%d]",
			r.Left(), r.Right(), r.Bottom(), r.Top())
	}
}

func TestRectNarrowUnitTypes(t *testing.T) {
	// The coordinate type is caller-chosen; a narrow integer works as long
	// as edge arithmetic stays in range.
	r := NewRectFromSides[int16](-10, 10, 5, -5)
	if r.Width() != 21 || r.Height() != 11 {
		t.Errorf("extents = %dx%d, want 21x11", r.Width(), r.Height())
	}
}
