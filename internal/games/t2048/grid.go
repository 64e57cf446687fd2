package t2048

import "fmt"

// MinBoardSize is the smallest supported board dimension.
const MinBoardSize = 2

// Grid is fixed-size square storage for tiles.
// Cell (0, 0) is the lower-left corner and y grows upward.
type Grid struct {
	size  int
	cells []*Tile // Row-major, index y*size + x
}

// NewGrid creates an empty grid of size x size cells.
func NewGrid(size int) (*Grid, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinBoardSize)
	}
	return &Grid{
		size:  size,
		cells: make([]*Tile, size*size),
	}, nil
}

// Size returns the number of cells on one side of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Get returns the tile at (x, y), or nil if the cell is empty.
func (g *Grid) Get(x, y int) (*Tile, error) {
	if !g.inBounds(x, y) {
		return nil, g.boundsError(x, y)
	}
	return g.cells[y*g.size+x], nil
}

// Set places t at (x, y). A nil tile empties the cell.
func (g *Grid) Set(x, y int, t *Tile) error {
	if !g.inBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.cells[y*g.size+x] = t
	return nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, x, y, g.size, g.size)
}

// at is the unchecked accessor used by the tilt loop, which only ever
// produces in-range coordinates.
func (g *Grid) at(x, y int) *Tile {
	return g.cells[y*g.size+x]
}

func (g *Grid) put(x, y int, t *Tile) {
	g.cells[y*g.size+x] = t
}

// resetMerged clears the per-move merge flag on every tile.
func (g *Grid) resetMerged() {
	for _, t := range g.cells {
		if t != nil {
			t.merged = false
		}
	}
}
