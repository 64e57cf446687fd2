package t2048

import "math/rand"

// Spawner places new tiles after each move: a random empty cell gets a 2,
// or a 4 with probability Four.
type Spawner struct {
	rng  *rand.Rand
	Four float64
}

// NewSpawner creates a spawner whose choices are fixed by seed.
func NewSpawner(seed int64, four float64) *Spawner {
	return &Spawner{
		rng:  rand.New(rand.NewSource(seed)),
		Four: four,
	}
}

// Spawn adds one tile to s. It returns false when the board is full.
func (sp *Spawner) Spawn(s *State) (Coord, int, bool) {
	empty := s.EmptyCells()
	if len(empty) == 0 {
		return Coord{}, 0, false
	}

	cell := empty[sp.rng.Intn(len(empty))]

	value := 2
	if sp.rng.Float64() < sp.Four {
		value = 4
	}

	// The cell came from EmptyCells and the value is a valid power of two.
	if err := s.AddTile(Tile{value: value}, cell.X, cell.Y); err != nil {
		return Coord{}, 0, false
	}
	return cell, value, true
}
