package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/octagrid"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Draw the board",
	Long: `Draws octagon rows (O) interleaved with the square rows (◇) that sit
between them. Empty cells are drawn as a dot. With --indices every tile
shows its index instead.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

var flagIndices bool

func init() {
	boardCmd.Flags().BoolVar(&flagIndices, "indices", false, "Label tiles with their index")
}

var (
	octagonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	squareStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// cellWidth is the column pitch of the drawing; squares are offset by half.
const cellWidth = 4

func runBoard(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(cmd.OutOrStdout(), renderBoard(board, flagIndices))
	return nil
}

// renderBoard draws g one lattice row at a time: the octagon row, then the
// square row below it, shifted half a cell to the right.
func renderBoard(g *octagrid.OctaGrid, indices bool) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(g.String()))
	sb.WriteString("\n")

	w, h := g.Width(), g.Height()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			sb.WriteString(cell(g, r*w+c, "O", octagonStyle, indices))
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", cellWidth/2))
		for c := 0; c < w; c++ {
			sb.WriteString(cell(g, w*h+r*w+c, "◇", squareStyle, indices))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cell renders one tile padded to cellWidth.
func cell(g *octagrid.OctaGrid, idx int, glyph string, style lipgloss.Style, indices bool) string {
	label := glyph
	if indices {
		label = fmt.Sprintf("%d", idx)
	}
	if g.IsEmpty(idx) {
		label = "·"
		style = emptyStyle
	}
	pad := cellWidth - lipgloss.Width(label)
	if pad < 1 {
		pad = 1
	}
	return style.Render(label) + strings.Repeat(" ", pad)
}
