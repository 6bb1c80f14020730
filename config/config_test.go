package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/config"
)

const ringYAML = `
name: ring
width: 4
height: 3
wrap: true
empty: [5]
holes:
  - {row: 0.5, col: 0.5}
  - {row: -1, col: 0}
`

// TestParse_Valid decodes every field.
func TestParse_Valid(t *testing.T) {
	b, err := config.Parse([]byte(ringYAML))
	require.NoError(t, err)
	assert.Equal(t, "ring", b.Name)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.True(t, b.Wrap)
	assert.Equal(t, []int{5}, b.Empty)
	assert.Equal(t, []config.Hole{{Row: 0.5, Col: 0.5}, {Row: -1, Col: 0}}, b.Holes)
}

// TestParse_Errors rejects malformed YAML and invalid boards.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"ZeroWidth", "width: 0\nheight: 3\n", config.ErrInvalidBoard},
		{"MissingHeight", "width: 4\n", config.ErrInvalidBoard},
		{"EmptyOutOfRange", "width: 1\nheight: 1\nempty: [2]\n", config.ErrInvalidBoard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Parse([]byte("width: [oops"))
	assert.Error(t, err)
}

// TestBuild resolves holes through the board's own topology.
func TestBuild(t *testing.T) {
	b, err := config.Parse([]byte(ringYAML))
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	assert.True(t, g.Wrap())
	// row -1 wraps to row 2: octagon 8
	assert.Equal(t, []int{5, 8, 12}, g.EmptyCells())
}

// TestBuild_BadHole rejects holes that name no tile.
func TestBuild_BadHole(t *testing.T) {
	b := config.Board{Width: 4, Height: 3, Holes: []config.Hole{{Row: 3, Col: 0}}}
	_, err := b.Build()
	assert.ErrorIs(t, err, config.ErrBadHole)

	b.Holes = []config.Hole{{Row: 0.5, Col: 1}}
	_, err = b.Build()
	assert.ErrorIs(t, err, config.ErrBadHole)
}

// TestDefaultBoard returns the embedded 4×3 bounded board.
func TestDefaultBoard(t *testing.T) {
	b := config.DefaultBoard()
	assert.Equal(t, "default", b.Name)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.False(t, b.Wrap)
}

// TestLoad_CustomPath reads an explicit file and reports read errors.
func TestLoad_CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ringYAML), 0o600))

	b, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ring", b.Name)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_UserBoard prefers ~/.octagrid/boards/default.yaml over the embedded board.
func TestLoad_UserBoard(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	b, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", b.Name)

	dir := filepath.Join(home, ".octagrid", "boards")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte(ringYAML), 0o600))

	b, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "ring", b.Name)
}

// TestMarshal writes YAML that parses back to the same board.
func TestMarshal(t *testing.T) {
	b, err := config.Parse([]byte(ringYAML))
	require.NoError(t, err)
	data, err := b.Marshal()
	require.NoError(t, err)
	again, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}
