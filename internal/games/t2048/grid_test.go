package t2048

import (
	"errors"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g, err := NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{2, 2, true},
		{2, 0, true},
		{3, 0, false},
		{0, 3, false},
		{-1, 1, false},
		{1, -1, false},
	}

	for _, tt := range tests {
		_, err := g.Get(tt.x, tt.y)
		if tt.ok && err != nil {
			t.Errorf("Get(%d, %d) failed: %v", tt.x, tt.y, err)
		}
		if !tt.ok && !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, want ErrOutOfBounds", tt.x, tt.y, err)
		}
		if err := g.Set(tt.x, tt.y, nil); (err == nil) != tt.ok {
			t.Errorf("Set(%d, %d) error = %v, want ok=%v", tt.x, tt.y, err, tt.ok)
		}
	}
}

func TestGridSetGetClear(t *testing.T) {
	g, _ := NewGrid(2)
	tile := &Tile{value: 8}

	if err := g.Set(1, 0, tile); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, _ := g.Get(1, 0)
	if got != tile {
		t.Errorf("Get(1, 0) = %v, want the tile that was set", got)
	}
	if other, _ := g.Get(0, 1); other != nil {
		t.Errorf("Get(0, 1) = %v, want empty", other)
	}

	g.Clear()
	if got, _ := g.Get(1, 0); got != nil {
		t.Errorf("Get(1, 0) after Clear = %v, want empty", got)
	}
}

func TestGridResetMerged(t *testing.T) {
	g, _ := NewGrid(2)
	a := &Tile{value: 4, merged: true}
	b := &Tile{value: 2}
	_ = g.Set(0, 0, a)
	_ = g.Set(1, 1, b)

	g.resetMerged()

	if a.merged || b.merged {
		t.Error("resetMerged left a merge flag set")
	}
}

func TestNewGridMinimum(t *testing.T) {
	if _, err := NewGrid(MinBoardSize - 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewGrid(%d) error = %v, want ErrInvalidSize", MinBoardSize-1, err)
	}
	g, err := NewGrid(MinBoardSize)
	if err != nil {
		t.Fatalf("NewGrid(%d) failed: %v", MinBoardSize, err)
	}
	if g.Size() != MinBoardSize {
		t.Errorf("Size() = %d, want %d", g.Size(), MinBoardSize)
	}
}
