package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 10, H: 5}
	if r.Right() != 11 {
		t.Errorf("Right() = %d, want 11", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, want 7", r.Bottom())
	}
}
