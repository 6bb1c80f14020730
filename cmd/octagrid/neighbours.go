package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/grid"
)

var neighboursCmd = &cobra.Command{
	Use:     "neighbours <index>",
	Aliases: []string{"neighbors"},
	Short:   "List the eight neighbours of a tile",
	Args:    cobra.ExactArgs(1),
	RunE:    runNeighbours,
}

var flagDirection string

func init() {
	neighboursCmd.Flags().StringVarP(&flagDirection, "direction", "d", "", "Only this direction (e.g. NE, west)")
}

func runNeighbours(cmd *cobra.Command, args []string) error {
	idx, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagDirection != "" {
		d, err := grid.ParseDirection(flagDirection)
		if err != nil {
			return err
		}
		n, empty := board.FindNeighbour(idx, d)
		fmt.Fprintf(out, "%-9s %3d empty=%v\n", d, n, empty)
		return nil
	}
	for _, nb := range board.Neighbours(idx) {
		fmt.Fprintf(out, "%-9s %3d empty=%v\n", nb.Direction, nb.Index, nb.Empty)
	}
	return nil
}
