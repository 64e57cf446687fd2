package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction in declaration order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four board directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts a name ("up"), its initial ("U") or a compass side ("north").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north":
		return DirUp, nil
	case "down", "d", "south":
		return DirDown, nil
	case "left", "l", "west":
		return DirLeft, nil
	case "right", "r", "east":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("t2048: unknown direction %q", s)
}

// TileMove describes where one tile travelled during a tilt.
type TileMove struct {
	FromX  int
	FromY  int
	ToX    int
	ToY    int
	Value  int  // Value before any merge
	Merged bool // Tile was absorbed into a merge at (ToX, ToY)
}

// Moved reports whether the tile changed position or merged.
func (m TileMove) Moved() bool {
	return m.Merged || m.FromX != m.ToX || m.FromY != m.ToY
}

// TiltResult summarizes a single tilt.
type TiltResult struct {
	Score   int        // Sum of merged tile values produced by this tilt
	Changed bool       // Whether any tile moved or merged
	Moves   []TileMove // One entry per tile that was on the board
}

// lineMove is a TileMove expressed in line positions.
type lineMove struct {
	from   int
	to     int
	value  int
	merged bool
}

// tiltLine slides and merges one line toward its last index.
// Position 0 is the far edge and len(line)-1 the edge tiles move toward.
//
// The scan starts at the target edge and keeps a write cursor plus the last
// written tile. An incoming tile merges into the last written one only if
// that tile has not merged yet this tilt, so a run like 2,2,2 yields _,2,4
// and a freshly merged 4 never absorbs a trailing 4.
func tiltLine(line []*Tile) (out []*Tile, score int, moves []lineMove) {
	n := len(line)
	out = make([]*Tile, n)

	write := n - 1
	var last *Tile
	lastPos := -1

	for i := n - 1; i >= 0; i-- {
		t := line[i]
		if t == nil {
			continue
		}

		if last != nil && !last.merged && last.value == t.value {
			merged := last.mergeWith(t)
			out[lastPos] = merged
			last = merged
			score += merged.value
			moves = append(moves, lineMove{from: i, to: lastPos, value: t.value, merged: true})
			continue
		}

		out[write] = t
		moves = append(moves, lineMove{from: i, to: write, value: t.value})
		last = t
		lastPos = write
		write--
	}

	return out, score, moves
}

// lineCoord maps position pos of line number line to grid coordinates for a
// tilt toward dir. Position size-1 is always the edge the tilt moves toward.
func lineCoord(dir Direction, size, line, pos int) (x, y int) {
	switch dir {
	case DirUp:
		return line, pos
	case DirDown:
		return line, size - 1 - pos
	case DirRight:
		return pos, line
	case DirLeft:
		return size - 1 - pos, line
	default:
		panic(fmt.Sprintf("t2048: lineCoord called with %v", dir))
	}
}
