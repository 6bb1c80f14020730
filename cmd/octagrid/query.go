package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/grid"
)

var locateCmd = &cobra.Command{
	Use:   "locate <index>",
	Short: "Show the lattice position of a tile",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocate,
}

var indexCmd = &cobra.Command{
	Use:   "index <row> <col>",
	Short: "Show the tile centred at a lattice position",
	Long: `Looks up the tile whose centre is (row, col). Octagons use whole
numbers, squares use .5 on both axes. Prints -1 when no tile is there.`,
	Args: cobra.ExactArgs(2),
	RunE: runIndex,
}

var hitCmd = &cobra.Command{
	Use:   "hit <x> <y>",
	Short: "Show the tile containing a point",
	Args:  cobra.ExactArgs(2),
	RunE:  runHit,
}

func runLocate(cmd *cobra.Command, args []string) error {
	idx, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	x, y := board.IndexToPosition(idx)
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s x=%g y=%g empty=%v\n", idx, board.Kind(idx), x, y, board.IsEmpty(idx))
	return nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	row, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid row %q: %w", args[0], err)
	}
	col, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid col %q: %w", args[1], err)
	}
	idx := board.PositionToIndex(row, col)
	logger.Debug("position lookup", "row", row, "col", col, "index", idx)
	fmt.Fprintln(cmd.OutOrStdout(), idx)
	return nil
}

func runHit(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[1], err)
	}
	idx := board.WhichTileAt(x, y)
	if idx == grid.NotFound {
		logger.Info("point outside every tile", "x", x, "y", y)
		fmt.Fprintln(cmd.OutOrStdout(), idx)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", idx, board.Kind(idx))
	return nil
}

// parseIndex parses a tile index and checks it against the current board.
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	if idx < 0 || idx >= board.Size() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", grid.ErrIndexOutOfRange, idx, board.Size())
	}
	return idx, nil
}
