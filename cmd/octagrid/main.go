// octagrid inspects an octagon-square puzzle board from the terminal.
//
// Usage:
//
//	octagrid locate <index>          - Lattice position and kind of a tile
//	octagrid index <row> <col>       - Tile centred at a lattice position
//	octagrid hit <x> <y>             - Tile containing a point
//	octagrid neighbours <index>      - All eight neighbours of a tile
//	octagrid regions                 - Connected regions of non-empty tiles
//	octagrid board                   - Draw the board
//
// Global flags:
//
//	--board <path>     - Board YAML file (default: ~/.octagrid/boards/default.yaml, then embedded)
//	--width, --height  - Override the board size
//	--wrap             - Override the board topology
//	--empty <i,j,...>  - Add empty cells by index
//	--log-level <lvl>  - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/config"
	"github.com/katalvlaran/tilegrid/octagrid"
)

var (
	// Global flags
	flagBoard    string
	flagWidth    int
	flagHeight   int
	flagWrap     bool
	flagEmpty    []int
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "octagrid",
	})

	// board is built once per invocation by loadBoard.
	board *octagrid.OctaGrid
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "octagrid",
	Short: "Inspect octagon-square puzzle boards",
	Long: `octagrid answers geometric questions about an octagon-square (4.8.8)
board: where a tile sits, which tile covers a point and who its
neighbours are.

Examples:
  octagrid locate 6
  octagrid index 0.5 1.5
  octagrid hit 0.8 0.8 --wrap
  octagrid neighbours 0 --width 4 --height 3 --wrap
  octagrid board --board ./boards/ring.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadBoard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", "", "Path to board YAML file")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in octagon columns (overrides board file)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in octagon rows (overrides board file)")
	rootCmd.PersistentFlags().BoolVar(&flagWrap, "wrap", false, "Wrap board edges (overrides board file)")
	rootCmd.PersistentFlags().IntSliceVar(&flagEmpty, "empty", nil, "Additional empty cell indices")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(hitCmd)
	rootCmd.AddCommand(neighboursCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(boardCmd)
}

// loadBoard resolves the board file, applies flag overrides and builds the grid.
func loadBoard(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	b, err := config.Load(flagBoard)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		b.Width = flagWidth
	}
	if flags.Changed("height") {
		b.Height = flagHeight
	}
	if flags.Changed("wrap") {
		b.Wrap = flagWrap
	}
	b.Empty = append(b.Empty, flagEmpty...)

	g, err := b.Build()
	if err != nil {
		return err
	}
	logger.Debug("board ready", "name", b.Name, "grid", g.String(), "tiles", g.Size())
	board = g
	return nil
}
