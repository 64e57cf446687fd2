package t2048

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func mustRows(t *testing.T, rows [][]int, score int) *State {
	t.Helper()
	s, err := NewStateFromRows(rows, score)
	if err != nil {
		t.Fatalf("NewStateFromRows() failed: %v", err)
	}
	return s
}

func TestTiltDirections(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected [][]int
		score    int
	}{
		{
			dir: DirLeft,
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirRight,
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirUp,
			expected: [][]int{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			// Column 1: 2,2 merge; column 2: 4,2 stay; column 3: 2,2 merge.
			score: 4 + 4,
		},
		{
			dir: DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := mustRows(t, board, 0)
			res := s.Tilt(tt.dir)

			if got := s.Rows(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tilt(%v):\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
			if res.Score != tt.score || s.Score() != tt.score {
				t.Errorf("Tilt(%v) score = %d (state %d), want %d", tt.dir, res.Score, s.Score(), tt.score)
			}
			if !res.Changed {
				t.Errorf("Tilt(%v) should report a change", tt.dir)
			}
		})
	}
}

func TestTiltThreeInARowTowardRightEdge(t *testing.T) {
	s := mustRows(t, [][]int{
		{2, 2, 2},
		{0, 0, 0},
		{0, 0, 0},
	}, 0)

	s.Tilt(DirRight)

	want := [][]int{
		{0, 2, 4},
		{0, 0, 0},
		{0, 0, 0},
	}
	if got := s.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if s.Score() != 4 {
		t.Errorf("score = %d, want 4", s.Score())
	}
}

func TestTiltMergedTileDoesNotMergeAgain(t *testing.T) {
	s := mustRows(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{2, 2, 4},
	}, 0)

	s.Tilt(DirRight)

	want := []int{0, 4, 4}
	if got := s.Rows()[2]; !reflect.DeepEqual(got, want) {
		t.Errorf("bottom row = %v, want %v", got, want)
	}
}

func TestTiltColumnTowardTop(t *testing.T) {
	// Column x=0 read bottom to top is 2,2,2; the top pair merges.
	s := mustRows(t, [][]int{
		{2, 0, 0},
		{2, 0, 0},
		{2, 0, 0},
	}, 0)

	s.Tilt(DirUp)

	if v := s.Value(0, 2); v != 4 {
		t.Errorf("top cell = %d, want 4", v)
	}
	if v := s.Value(0, 1); v != 2 {
		t.Errorf("middle cell = %d, want 2", v)
	}
	if v := s.Value(0, 0); v != 0 {
		t.Errorf("bottom cell = %d, want empty", v)
	}
}

func TestTiltNoOp(t *testing.T) {
	s := mustRows(t, [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 12)
	before := s.Rows()

	res := s.Tilt(DirLeft)

	if res.Changed {
		t.Error("Tilt of left-aligned tiles should not report a change")
	}
	if res.Score != 0 || s.Score() != 12 {
		t.Errorf("no-op tilt changed score: delta %d, total %d", res.Score, s.Score())
	}
	if !reflect.DeepEqual(s.Rows(), before) {
		t.Errorf("no-op tilt changed the board: %v", s.Rows())
	}
}

func TestTiltTwiceIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := range 200 {
		s := randomState(rng, 4)
		dir := Directions[i%len(Directions)]

		s.Tilt(dir)
		afterFirst := s.Rows()
		score := s.Score()

		res := s.Tilt(dir)
		// Merges in the second tilt are possible (e.g. 2,2,4 -> _,4,4 -> _,_,8);
		// when there are none the second tilt must change nothing.
		if res.Score == 0 {
			if res.Changed || !reflect.DeepEqual(s.Rows(), afterFirst) || s.Score() != score {
				t.Fatalf("second %v tilt without merges changed the board:\n%v\n->\n%v", dir, afterFirst, s.Rows())
			}
		}
	}
}

func TestTiltScoreMatchesMerges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 500 {
		size := 2 + rng.Intn(4)
		s := randomState(rng, size)
		dir := Directions[rng.Intn(len(Directions))]

		sumBefore := boardSum(s)
		scoreBefore := s.Score()

		res := s.Tilt(dir)

		merged := 0
		for _, m := range res.Moves {
			if m.Merged {
				merged += 2 * m.Value
			}
		}
		if res.Score != merged {
			t.Fatalf("score delta %d, merged values sum %d", res.Score, merged)
		}
		if s.Score() != scoreBefore+res.Score {
			t.Fatalf("score %d, want %d", s.Score(), scoreBefore+res.Score)
		}
		if s.Score() < scoreBefore {
			t.Fatalf("score decreased from %d to %d", scoreBefore, s.Score())
		}
		if boardSum(s) != sumBefore {
			t.Fatalf("tile sum changed from %d to %d", sumBefore, boardSum(s))
		}
	}
}

func TestTiltResetsMergeFlags(t *testing.T) {
	s := mustRows(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 2},
	}, 0)

	s.Tilt(DirRight)
	if tile, _ := s.Tile(3, 0); !tile.Merged() {
		t.Fatal("merged tile should carry the flag until the next tilt")
	}

	s.Tilt(DirUp)
	if tile, _ := s.Tile(3, 3); tile.Merged() || tile.Value() != 4 {
		t.Errorf("tile after next tilt = %+v, want unmerged 4", tile)
	}
}

func TestTiltMovesCoordinates(t *testing.T) {
	s := mustRows(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{2, 0, 2},
	}, 0)

	res := s.Tilt(DirLeft)

	want := []TileMove{
		{FromX: 0, FromY: 0, ToX: 0, ToY: 0, Value: 2},
		{FromX: 2, FromY: 0, ToX: 0, ToY: 0, Value: 2, Merged: true},
	}
	if !reflect.DeepEqual(res.Moves, want) {
		t.Errorf("moves = %+v, want %+v", res.Moves, want)
	}
}

func TestTiltInvalidDirection(t *testing.T) {
	s := mustRows(t, [][]int{{2, 2}, {0, 0}}, 0)

	res := s.Tilt(Direction(42))

	if res.Changed || res.Score != 0 {
		t.Errorf("invalid direction result = %+v, want zero", res)
	}
	if s.Value(0, 1) != 2 || s.Value(1, 1) != 2 {
		t.Error("invalid direction changed the board")
	}
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "full board without neighbours or target",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "horizontal pair in bottom right corner",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 4},
			},
			want: false,
		},
		{
			name: "vertical pair on left edge",
			rows: [][]int{
				{8, 4, 2, 4},
				{8, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "interior pair",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 16, 16, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "empty cell",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 0, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "target tile with moves left",
			rows: [][]int{
				{2048, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: true,
		},
		{
			name: "2x2 locked",
			rows: [][]int{
				{2, 4},
				{4, 2},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustRows(t, tt.rows, 0)
			if got := s.GameOver(); got != tt.want {
				t.Errorf("GameOver() = %v, want %v\n%s", got, tt.want, s)
			}
		})
	}
}

func TestMaxTileExists(t *testing.T) {
	s := mustRows(t, [][]int{
		{1024, 0},
		{0, 0},
	}, 0)

	if s.MaxTileExists() {
		t.Error("MaxTileExists() with 1024 and target 2048 should be false")
	}

	if err := s.SetTarget(1024); err != nil {
		t.Fatalf("SetTarget() failed: %v", err)
	}
	if !s.MaxTileExists() {
		t.Error("MaxTileExists() should be true once the target is 1024")
	}

	if err := s.SetTarget(0); err != nil {
		t.Fatalf("SetTarget(0) failed: %v", err)
	}
	if s.MaxTileExists() {
		t.Error("MaxTileExists() should be false without a target")
	}

	if err := s.SetTarget(1000); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetTarget(1000) error = %v, want ErrInvalidValue", err)
	}
}

func TestEmptySpaceExistsIgnoresScore(t *testing.T) {
	full := [][]int{
		{2, 4},
		{4, 2},
	}
	withGap := [][]int{
		{2, 0},
		{4, 2},
	}

	for _, score := range []int{0, 100} {
		if mustRows(t, full, score).EmptySpaceExists() {
			t.Errorf("full board with score %d reports empty space", score)
		}
		if !mustRows(t, withGap, score).EmptySpaceExists() {
			t.Errorf("board with a gap and score %d reports no empty space", score)
		}
	}
}

func TestAddTile(t *testing.T) {
	s, err := NewState(4)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	two, err := NewTile(2)
	if err != nil {
		t.Fatalf("NewTile(2) failed: %v", err)
	}
	if err := s.AddTile(two, 1, 2); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	if got, ok := s.Tile(1, 2); !ok || got.Value() != 2 {
		t.Errorf("Tile(1, 2) = %v, %v; want 2", got, ok)
	}

	four, _ := NewTile(4)
	before := s.String()
	if err := s.AddTile(four, 1, 2); !errors.Is(err, ErrOccupiedCell) {
		t.Errorf("AddTile() on occupied cell error = %v, want ErrOccupiedCell", err)
	}
	if s.String() != before {
		t.Error("rejected AddTile mutated the board")
	}

	if err := s.AddTile(four, 4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("AddTile() off board error = %v, want ErrOutOfBounds", err)
	}
	if err := s.AddTile(Tile{}, 0, 0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("AddTile() zero tile error = %v, want ErrInvalidValue", err)
	}
}

func TestNewTile(t *testing.T) {
	for _, v := range []int{2, 4, 1024, 131072} {
		if _, err := NewTile(v); err != nil {
			t.Errorf("NewTile(%d) failed: %v", v, err)
		}
	}
	for _, v := range []int{-2, 0, 1, 3, 6, 1000} {
		if _, err := NewTile(v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("NewTile(%d) error = %v, want ErrInvalidValue", v, err)
		}
	}
}

func TestNewStateErrors(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := NewState(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewState(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}

	if _, err := NewStateFromRows([][]int{{2, 2}, {2}}, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ragged rows error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewStateFromRows([][]int{{3, 0}, {0, 0}}, 0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("value 3 error = %v, want ErrInvalidValue", err)
	}
	if _, err := NewStateFromRows([][]int{{2, 0}, {0, 0}}, -1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative score error = %v, want ErrInvalidValue", err)
	}
	if _, err := NewStateFromLayout(2, Layout{{X: 2, Y: 0}: 2}, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("layout off board error = %v, want ErrOutOfBounds", err)
	}
}

func TestNewStateFromLayout(t *testing.T) {
	s, err := NewStateFromLayout(3, Layout{
		{X: 0, Y: 0}: 2,
		{X: 2, Y: 2}: 8,
	}, 36)
	if err != nil {
		t.Fatalf("NewStateFromLayout() failed: %v", err)
	}

	want := [][]int{
		{0, 0, 8},
		{0, 0, 0},
		{2, 0, 0},
	}
	if got := s.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
	if s.Score() != 36 || s.Size() != 3 {
		t.Errorf("score %d size %d, want 36 and 3", s.Score(), s.Size())
	}
}

func TestClear(t *testing.T) {
	s := mustRows(t, [][]int{{2, 4}, {8, 16}}, 50)
	s.Clear()

	if s.Score() != 0 {
		t.Errorf("Score() after Clear = %d", s.Score())
	}
	if len(s.EmptyCells()) != 4 {
		t.Errorf("EmptyCells() after Clear = %d, want 4", len(s.EmptyCells()))
	}
}

func TestQueries(t *testing.T) {
	s := mustRows(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 1024, 0},
		{0, 16, 0, 64},
	}, 0)

	if got := s.MaxTile(); got != 1024 {
		t.Errorf("MaxTile() = %d, want 1024", got)
	}
	if got := len(s.EmptyCells()); got != 8 {
		t.Errorf("EmptyCells count = %d, want 8", got)
	}
	if _, ok := s.Tile(-1, 0); ok {
		t.Error("Tile(-1, 0) should report no tile")
	}
	// Rows are listed top first, so 16 sits at x=1 on the bottom row.
	if v := s.Value(1, 0); v != 16 {
		t.Errorf("Value(1, 0) = %d, want 16", v)
	}
}

func TestStringDump(t *testing.T) {
	s := mustRows(t, [][]int{
		{2, 0},
		{0, 16},
	}, 4)

	want := "\n[\n|   2|    |\n|    |  16|\n] 4 (game is not over)\n"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	over := mustRows(t, [][]int{{2, 4}, {4, 2}}, 0)
	if !strings.Contains(over.String(), "(game is over)") {
		t.Errorf("String() of locked board = %q", over.String())
	}
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]int{{2, 0}, {0, 4}}, 8)
	b := mustRows(t, [][]int{{2, 0}, {0, 4}}, 8)
	c := mustRows(t, [][]int{{2, 0}, {0, 4}}, 12)

	if !a.Equal(b) {
		t.Error("identical states should be equal")
	}
	if a.Equal(c) {
		t.Error("states with different scores should differ")
	}
	if a.Equal(nil) {
		t.Error("state should not equal nil")
	}
}

// randomState builds a board with roughly half its cells filled by small
// powers of two, so merges are frequent.
func randomState(rng *rand.Rand, size int) *State {
	s, _ := NewState(size)
	for y := range size {
		for x := range size {
			if rng.Intn(2) == 0 {
				continue
			}
			_ = s.AddTile(Tile{value: 2 << rng.Intn(3)}, x, y)
		}
	}
	return s
}

func boardSum(s *State) int {
	sum := 0
	for _, row := range s.Rows() {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}
