package collision

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 40, Y: 40, W: 20, H: 20}

	// Overlapping
	if !a.Overlaps(Rect{X: 45, Y: 45, W: 20, H: 20}) {
		t.Error("boxes should overlap")
	}

	// Contained
	if !a.Overlaps(Rect{X: 45, Y: 45, W: 5, H: 5}) {
		t.Error("contained box should overlap")
	}

	// Sharing an edge only
	if a.Overlaps(Rect{X: 60, Y: 40, W: 20, H: 20}) {
		t.Error("edge-adjacent boxes should not overlap")
	}
	if a.Overlaps(Rect{X: 40, Y: 60, W: 20, H: 20}) {
		t.Error("edge-adjacent boxes should not overlap")
	}

	// Apart
	if a.Overlaps(Rect{X: 200, Y: 200, W: 20, H: 20}) {
		t.Error("distant boxes should not overlap")
	}
}

func TestCirclesOverlap(t *testing.T) {
	// Overlapping
	if !CirclesOverlap(0, 0, 10, 15, 0, 10) {
		t.Error("circles should overlap")
	}

	// Touching circles do not collide
	if CirclesOverlap(0, 0, 10, 20, 0, 10) {
		t.Error("touching circles should not overlap")
	}

	// Apart
	if CirclesOverlap(0, 0, 10, 30, 0, 10) {
		t.Error("distant circles should not overlap")
	}

	// Same center
	if !CirclesOverlap(5, 5, 1, 5, 5, 1) {
		t.Error("same center should overlap")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("center = (%v,%v), want (25,40)", r.CenterX(), r.CenterY())
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("right/bottom = (%v,%v), want (40,60)", r.Right(), r.Bottom())
	}
}
