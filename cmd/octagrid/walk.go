package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/tilewalk"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List connected regions of non-empty tiles",
	Args:  cobra.NoArgs,
	RunE:  runRegions,
}

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Show the shortest tile path between two tiles",
	Args:  cobra.ExactArgs(2),
	RunE:  runPath,
}

var flagMaxSteps int

func init() {
	pathCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0, "Give up beyond this many steps (0 = unlimited)")
	rootCmd.AddCommand(pathCmd)
}

func runRegions(cmd *cobra.Command, _ []string) error {
	regions, err := tilewalk.Regions(board)
	if err != nil {
		return err
	}
	if len(regions) > 1 {
		logger.Warn("board is split", "regions", len(regions))
	}
	out := cmd.OutOrStdout()
	for i, r := range regions {
		fmt.Fprintf(out, "region %d (%d tiles): %v\n", i, len(r), r)
	}
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	from, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	path, err := tilewalk.ShortestPath(board, from, to,
		tilewalk.WithContext(cmd.Context()),
		tilewalk.WithMaxDepth(flagMaxSteps),
	)
	if err != nil {
		return err
	}
	logger.Debug("path found", "from", from, "to", to, "steps", len(path)-1)
	fmt.Fprintf(cmd.OutOrStdout(), "%d steps: %v\n", len(path)-1, path)
	return nil
}
