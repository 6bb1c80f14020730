// Package config loads octagon-square board descriptions from YAML.
//
// A board file names the lattice size, the topology and the holes:
//
//	name: ring
//	width: 5
//	height: 5
//	wrap: true
//	empty: [12]            # tile indices
//	holes:                 # or lattice positions, resolved via PositionToIndex
//	  - {row: 2, col: 2}
//	  - {row: 1.5, col: 2.5}
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/octagrid"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

var (
	// ErrInvalidBoard indicates a board description that cannot build a grid.
	ErrInvalidBoard = errors.New("config: invalid board")
	// ErrBadHole indicates a hole position that names no tile.
	ErrBadHole = errors.New("config: hole does not name a tile")
)

// Board is the YAML form of an octagon-square board.
type Board struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Wrap   bool   `yaml:"wrap"`
	Empty  []int  `yaml:"empty,omitempty"`
	Holes  []Hole `yaml:"holes,omitempty"`
}

// Hole addresses an empty cell by lattice position instead of index.
type Hole struct {
	Row float64 `yaml:"row"`
	Col float64 `yaml:"col"`
}

// DefaultBoard returns the embedded default board, a bounded 4×3 grid.
func DefaultBoard() Board {
	b, err := Parse(defaultBoardYAML)
	if err != nil {
		return Board{Name: "default", Width: 4, Height: 3}
	}
	return b
}

// Parse decodes and validates a board description.
func Parse(data []byte) (Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks dimensions and index ranges without building the grid.
func (b Board) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %d×%d must be positive", ErrInvalidBoard, b.Width, b.Height)
	}
	size := 2 * b.Width * b.Height
	for _, idx := range b.Empty {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%w: empty cell %d not in [0, %d)", ErrInvalidBoard, idx, size)
		}
	}
	return nil
}

// Build constructs the grid, resolving holes through PositionToIndex of
// the same topology, so wrapping boards accept out-of-lattice positions.
func (b Board) Build() (*octagrid.OctaGrid, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	bare, err := octagrid.New(b.Width, b.Height, b.Wrap)
	if err != nil {
		return nil, err
	}
	empty := append([]int(nil), b.Empty...)
	for _, h := range b.Holes {
		idx := bare.PositionToIndex(h.Row, h.Col)
		if idx == grid.NotFound {
			return nil, fmt.Errorf("%w: row %g col %g", ErrBadHole, h.Row, h.Col)
		}
		empty = append(empty, idx)
	}
	return bare.ReplaceEmptyCells(empty...)
}

// Marshal encodes the board back to YAML.
func (b Board) Marshal() ([]byte, error) {
	return yaml.Marshal(b)
}
