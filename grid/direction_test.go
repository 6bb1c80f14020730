package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
)

// TestDirections_Order pins the iteration order callers rely on.
func TestDirections_Order(t *testing.T) {
	want := []grid.Direction{
		grid.East, grid.NorthEast, grid.North, grid.NorthWest,
		grid.West, grid.SouthWest, grid.South, grid.SouthEast,
	}
	assert.Equal(t, want, grid.Directions())
}

// TestDirections_FreshCopy verifies the returned slice cannot corrupt the table.
func TestDirections_FreshCopy(t *testing.T) {
	first := grid.Directions()
	first[0] = grid.West
	assert.Equal(t, grid.East, grid.Directions()[0])
}

// TestDirection_Delta checks every delta against the compass layout.
func TestDirection_Delta(t *testing.T) {
	cases := []struct {
		d        grid.Direction
		want     grid.Delta
		diagonal bool
	}{
		{grid.East, grid.Delta{DCol: 2, DRow: 0}, false},
		{grid.NorthEast, grid.Delta{DCol: 1, DRow: -1}, true},
		{grid.North, grid.Delta{DCol: 0, DRow: -2}, false},
		{grid.NorthWest, grid.Delta{DCol: -1, DRow: -1}, true},
		{grid.West, grid.Delta{DCol: -2, DRow: 0}, false},
		{grid.SouthWest, grid.Delta{DCol: -1, DRow: 1}, true},
		{grid.South, grid.Delta{DCol: 0, DRow: 2}, false},
		{grid.SouthEast, grid.Delta{DCol: 1, DRow: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.Delta())
			assert.Equal(t, tc.diagonal, tc.d.Diagonal())
		})
	}
}

// TestDirection_Opposite verifies that opposite deltas cancel out.
func TestDirection_Opposite(t *testing.T) {
	for _, d := range grid.Directions() {
		o := d.Opposite()
		assert.Equal(t, d, o.Opposite(), "double opposite of %s", d)
		sum := grid.Delta{DCol: d.Delta().DCol + o.Delta().DCol, DRow: d.Delta().DRow + o.Delta().DRow}
		assert.Equal(t, grid.Delta{}, sum, "%s + %s", d, o)
	}
}

// TestDirection_Invalid checks the behaviour outside the table.
func TestDirection_Invalid(t *testing.T) {
	d := grid.Direction(42)
	assert.False(t, d.Valid())
	assert.False(t, d.Diagonal())
	assert.Equal(t, grid.Delta{}, d.Delta())
	assert.Equal(t, "Direction(42)", d.String())
	assert.Equal(t, "?", d.Short())
}

// TestDiagonalFor maps sign pairs to the four diagonal directions.
func TestDiagonalFor(t *testing.T) {
	cases := []struct {
		sx, sy float64
		want   grid.Direction
	}{
		{0.3, -0.2, grid.NorthEast},
		{-0.3, -0.2, grid.NorthWest},
		{-0.3, 0.2, grid.SouthWest},
		{0.3, 0.2, grid.SouthEast},
	}
	for _, tc := range cases {
		d, ok := grid.DiagonalFor(tc.sx, tc.sy)
		require.True(t, ok)
		assert.Equal(t, tc.want, d)
	}
	_, ok := grid.DiagonalFor(0, 0.4)
	assert.False(t, ok)
}

// TestParseDirection covers names, abbreviations and rejection.
func TestParseDirection(t *testing.T) {
	for _, d := range grid.Directions() {
		got, err := grid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = grid.ParseDirection(d.Short())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := grid.ParseDirection("  southwest ")
	require.NoError(t, err)
	assert.Equal(t, grid.SouthWest, got)

	_, err = grid.ParseDirection("up")
	assert.ErrorIs(t, err, grid.ErrUnknownDirection)
}

// TestKind_String covers the family names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "octagon", grid.Octagon.String())
	assert.Equal(t, "square", grid.Square.String())
	assert.Equal(t, "kind(7)", grid.Kind(7).String())
}
