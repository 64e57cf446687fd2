package t2048

import "fmt"

// Tile is a single numbered piece on the board.
// The value never changes after creation; a merge produces a new Tile.
type Tile struct {
	value  int
	merged bool // Set when this tile was produced by a merge during the current tilt
}

// NewTile creates a tile with the given value.
// The value must be a power of two no smaller than 2.
func NewTile(value int) (Tile, error) {
	if !isPowerOfTwo(value) {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	return Tile{value: value}, nil
}

// Value returns the tile's number.
func (t Tile) Value() int {
	return t.value
}

// Merged reports whether the tile was produced by a merge during the current tilt.
func (t Tile) Merged() bool {
	return t.merged
}

// mergeWith returns the tile that results from combining t with its equal neighbour.
func (t *Tile) mergeWith(other *Tile) *Tile {
	return &Tile{value: t.value + other.value, merged: true}
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
