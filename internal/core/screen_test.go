package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 4)

	if s.Width() != 10 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", s.Width(), s.Height())
	}
	for y := range 4 {
		for x := range 10 {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Get(%d, %d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(-1, 0, 'x')
	s.Set(3, 0, 'x')
	s.Set(0, 3, 'x')

	if got := s.String(); got != "   \n   \n   " {
		t.Errorf("out-of-bounds Set changed the screen:\n%q", got)
	}
	if got := s.Get(5, 5); got != ' ' {
		t.Errorf("Get off screen = %q, want space", got)
	}
}

func TestScreenColoredText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(1, 0, "2048", ColorYellow)

	if got := s.Row(0); got != " 2048   " {
		t.Errorf("Row(0) = %q, want %q", got, " 2048   ")
	}
	if c := s.GetCell(2, 0); c.Rune != '0' || c.Color != ColorYellow {
		t.Errorf("GetCell(2, 0) = %+v, want '0' yellow", c)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("GetCell(0, 0).Color = %d, want default", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(Rect{X: 0, Y: 0, W: 4, H: 3})

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant\n%s", got, want)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "   abc   " {
		t.Errorf("Row(0) = %q, want %q", got, "   abc   ")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'x')
	s.Resize(3, 1)

	if s.Width() != 3 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 3x1", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "   " {
		t.Errorf("Row(0) after resize = %q, want blank", got)
	}
}
