package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass steps, ordered counter-clockwise
// starting from East.
type Direction int

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// numDirections is the size of the direction table.
const numDirections = 8

// Delta is a direction step in half-lattice units: (+2, 0) is one whole
// column to the east, (+1, −1) is half a column east and half a row north.
type Delta struct {
	DCol, DRow int
}

// directionInfo is one row of the direction table.
type directionInfo struct {
	name     string
	short    string
	delta    Delta
	diagonal bool
}

// table is indexed by Direction and is the single source of truth for
// names, deltas and orthogonal/diagonal classification.
var table = [numDirections]directionInfo{
	East:      {"East", "E", Delta{+2, 0}, false},
	NorthEast: {"NorthEast", "NE", Delta{+1, -1}, true},
	North:     {"North", "N", Delta{0, -2}, false},
	NorthWest: {"NorthWest", "NW", Delta{-1, -1}, true},
	West:      {"West", "W", Delta{-2, 0}, false},
	SouthWest: {"SouthWest", "SW", Delta{-1, +1}, true},
	South:     {"South", "S", Delta{0, +2}, false},
	SouthEast: {"SouthEast", "SE", Delta{+1, +1}, true},
}

// Directions returns the eight directions in table order.
// The slice is freshly allocated on every call.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Valid reports whether d is one of the eight table entries.
func (d Direction) Valid() bool {
	return d >= 0 && d < numDirections
}

// Delta returns the half-lattice step of d. Invalid directions yield a zero delta.
func (d Direction) Delta() Delta {
	if !d.Valid() {
		return Delta{}
	}
	return table[d].delta
}

// Diagonal reports whether d moves along both axes (NE, NW, SW, SE).
func (d Direction) Diagonal() bool {
	return d.Valid() && table[d].diagonal
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

// Short returns the compass abbreviation, e.g. "NE".
func (d Direction) Short() string {
	if !d.Valid() {
		return "?"
	}
	return table[d].short
}

// String returns the full direction name, e.g. "NorthEast".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return table[d].name
}

// DiagonalFor returns the diagonal direction whose delta has the signs of
// (sx, sy). Both arguments must be non-zero; ok is false otherwise.
func DiagonalFor(sx, sy float64) (d Direction, ok bool) {
	switch {
	case sx > 0 && sy < 0:
		return NorthEast, true
	case sx < 0 && sy < 0:
		return NorthWest, true
	case sx < 0 && sy > 0:
		return SouthWest, true
	case sx > 0 && sy > 0:
		return SouthEast, true
	}
	return 0, false
}

// ParseDirection accepts a full name or a compass abbreviation,
// case-insensitively ("east", "NE", "southWest").
func ParseDirection(s string) (Direction, error) {
	key := strings.TrimSpace(s)
	for i, info := range table {
		if strings.EqualFold(key, info.name) || strings.EqualFold(key, info.short) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
