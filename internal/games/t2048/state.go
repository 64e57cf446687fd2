package t2048

import (
	"fmt"
	"strings"
)

// DefaultTarget is the tile value that wins a standard game.
const DefaultTarget = 2048

// Coord is a board coordinate; (0, 0) is the lower-left corner.
type Coord struct {
	X, Y int
}

// Layout maps coordinates to tile values for building fixed boards.
type Layout map[Coord]int

// State is the board plus score of one game.
// It is not safe for concurrent use; hosts serialize calls.
type State struct {
	grid   *Grid
	score  int
	target int // 0 disables the target check (endless play)
}

// NewState creates an empty board of the given size with score 0.
func NewState(size int) (*State, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &State{grid: grid, target: DefaultTarget}, nil
}

// NewStateFromLayout creates a size x size board holding the tiles in layout.
func NewStateFromLayout(size int, layout Layout, score int) (*State, error) {
	if score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidValue, score)
	}
	s, err := NewState(size)
	if err != nil {
		return nil, err
	}
	for c, v := range layout {
		t, err := NewTile(v)
		if err != nil {
			return nil, fmt.Errorf("at (%d, %d): %w", c.X, c.Y, err)
		}
		if err := s.AddTile(t, c.X, c.Y); err != nil {
			return nil, err
		}
	}
	s.score = score
	return s, nil
}

// NewStateFromRows creates a board from rows listed top to bottom, the way
// the board reads on screen. Zero marks an empty cell.
func NewStateFromRows(rows [][]int, score int) (*State, error) {
	size := len(rows)
	layout := make(Layout)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, i, len(row), size)
		}
		y := size - 1 - i
		for x, v := range row {
			if v != 0 {
				layout[Coord{X: x, Y: y}] = v
			}
		}
	}
	return NewStateFromLayout(size, layout, score)
}

// Size returns the number of cells on one side of the board.
func (s *State) Size() int {
	return s.grid.Size()
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Target returns the winning tile value, or 0 when there is none.
func (s *State) Target() int {
	return s.target
}

// SetTarget changes the winning tile value. Zero removes the target.
func (s *State) SetTarget(target int) error {
	if target != 0 && !isPowerOfTwo(target) {
		return fmt.Errorf("%w: target %d", ErrInvalidValue, target)
	}
	s.target = target
	return nil
}

// Tile returns the tile at (x, y). ok is false for empty or off-board cells.
func (s *State) Tile(x, y int) (t Tile, ok bool) {
	p, err := s.grid.Get(x, y)
	if err != nil || p == nil {
		return Tile{}, false
	}
	return *p, true
}

// Value returns the tile value at (x, y), or 0 for empty or off-board cells.
func (s *State) Value(x, y int) int {
	t, _ := s.Tile(x, y)
	return t.value
}

// Clear empties the board and resets the score.
func (s *State) Clear() {
	s.grid.Clear()
	s.score = 0
}

// AddTile places t at (x, y). The cell must be empty.
func (s *State) AddTile(t Tile, x, y int) error {
	if !isPowerOfTwo(t.value) {
		return fmt.Errorf("%w: %d", ErrInvalidValue, t.value)
	}
	cur, err := s.grid.Get(x, y)
	if err != nil {
		return err
	}
	if cur != nil {
		return fmt.Errorf("%w: (%d, %d) holds %d", ErrOccupiedCell, x, y, cur.value)
	}
	return s.grid.Set(x, y, &Tile{value: t.value})
}

// Tilt slides every tile toward dir, merging equal neighbours, and adds the
// merged values to the score. A tilt that moves nothing is legal and leaves
// Changed false. Unknown directions are ignored.
func (s *State) Tilt(dir Direction) TiltResult {
	var res TiltResult
	if !dir.Valid() {
		return res
	}

	s.grid.resetMerged()

	size := s.grid.Size()
	line := make([]*Tile, size)
	for l := range size {
		for p := range size {
			x, y := lineCoord(dir, size, l, p)
			line[p] = s.grid.at(x, y)
		}

		out, score, moves := tiltLine(line)

		for p := range size {
			x, y := lineCoord(dir, size, l, p)
			s.grid.put(x, y, out[p])
		}

		for _, m := range moves {
			fx, fy := lineCoord(dir, size, l, m.from)
			tx, ty := lineCoord(dir, size, l, m.to)
			move := TileMove{FromX: fx, FromY: fy, ToX: tx, ToY: ty, Value: m.value, Merged: m.merged}
			if move.Moved() {
				res.Changed = true
			}
			res.Moves = append(res.Moves, move)
		}
		res.Score += score
	}

	s.score += res.Score
	return res
}

// EmptySpaceExists reports whether at least one cell is empty.
func (s *State) EmptySpaceExists() bool {
	for _, t := range s.grid.cells {
		if t == nil {
			return true
		}
	}
	return false
}

// MaxTileExists reports whether any tile has reached the target value.
func (s *State) MaxTileExists() bool {
	if s.target == 0 {
		return false
	}
	for _, t := range s.grid.cells {
		if t != nil && t.value == s.target {
			return true
		}
	}
	return false
}

// neighbours are the four orthogonal offsets checked for possible merges.
var neighbours = [4]Coord{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

// AtLeastOneMoveExists reports whether some tilt could change the board:
// there is an empty cell or two orthogonally adjacent tiles share a value.
func (s *State) AtLeastOneMoveExists() bool {
	if s.EmptySpaceExists() {
		return true
	}

	size := s.grid.Size()
	for y := range size {
		for x := range size {
			v := s.grid.at(x, y).value
			for _, d := range neighbours {
				nx, ny := x+d.X, y+d.Y
				if !s.grid.inBounds(nx, ny) {
					continue
				}
				if s.grid.at(nx, ny).value == v {
					return true
				}
			}
		}
	}
	return false
}

// GameOver reports whether the target tile exists or no move is possible.
func (s *State) GameOver() bool {
	return s.MaxTileExists() || !s.AtLeastOneMoveExists()
}

// MaxTile returns the highest tile value on the board, or 0 if it is empty.
func (s *State) MaxTile() int {
	maxVal := 0
	for _, t := range s.grid.cells {
		if t != nil && t.value > maxVal {
			maxVal = t.value
		}
	}
	return maxVal
}

// EmptyCells returns the coordinates of all empty cells, bottom row first.
func (s *State) EmptyCells() []Coord {
	var cells []Coord
	size := s.grid.Size()
	for y := range size {
		for x := range size {
			if s.grid.at(x, y) == nil {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// Rows returns tile values top row first, with 0 for empty cells.
// It is the inverse of NewStateFromRows.
func (s *State) Rows() [][]int {
	size := s.grid.Size()
	rows := make([][]int, size)
	for i := range size {
		y := size - 1 - i
		rows[i] = make([]int, size)
		for x := range size {
			if t := s.grid.at(x, y); t != nil {
				rows[i][x] = t.value
			}
		}
	}
	return rows
}

// Equal reports whether two states have the same board, score and target.
func (s *State) Equal(other *State) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	if s.score != other.score || s.target != other.target {
		return false
	}
	for i, t := range s.grid.cells {
		o := other.grid.cells[i]
		if (t == nil) != (o == nil) {
			return false
		}
		if t != nil && t.value != o.value {
			return false
		}
	}
	return true
}

// String dumps the board for debugging: rows top to bottom, then the score
// and whether the game is over.
func (s *State) String() string {
	var b strings.Builder
	b.WriteString("\n[\n")
	for _, row := range s.Rows() {
		for _, v := range row {
			if v == 0 {
				b.WriteString("|    ")
			} else {
				fmt.Fprintf(&b, "|%4d", v)
			}
		}
		b.WriteString("|\n")
	}
	over := "not over"
	if s.GameOver() {
		over = "over"
	}
	fmt.Fprintf(&b, "] %d (game is %s)\n", s.score, over)
	return b.String()
}
