package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/terrain"
)

// Distance bands, near to far.
var bandColors = []lipgloss.Color{
	lipgloss.Color("35"),  // green
	lipgloss.Color("36"),  // teal
	lipgloss.Color("75"),  // light blue
	lipgloss.Color("220"), // amber
	lipgloss.Color("167"), // soft red
}

var (
	colorGoal = lipgloss.Color("255") // bright white
	colorDim  = lipgloss.Color("240") // unreached
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		mode    string
		noShade bool
	)

	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Print the map shaded by distance from the sources",
		Long: `Print the height map with every cell colored by its distance band from
the sources (S for --mode start, every lowest cell for --mode lowest).
Cells that cannot be reached are dimmed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.modeFlag(cmd, mode)
			if name == "" || name == "both" {
				name = "start"
			}
			m, err := climb.ParseMode(name)
			if err != nil {
				return err
			}
			path, err := c.inputPath(args)
			if err != nil {
				return err
			}
			g, err := c.loadGrid(path)
			if err != nil {
				return err
			}
			sources, err := m.Sources(g)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			d, err := bfs.Explore(g, sources)
			if err != nil {
				return err
			}
			p.done("Explored map", "reached", d.Len(), "farthest", d.Max())

			shade := c.Config.Render.Shade && !noShade
			return renderHeatmap(cmd.OutOrStdout(), g, d, shade)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "start", "sources to measure from: start or lowest")
	cmd.Flags().BoolVar(&noShade, "no-shade", false, "print plain letters without colors")
	return cmd
}

// renderHeatmap writes g one row per line, each cell styled by its distance
// band in d, followed by a one-line legend. The renderer is bound to w, so
// colors are dropped automatically when w is not a terminal.
func renderHeatmap(w io.Writer, g *terrain.Grid, d *bfs.Distances, shade bool) error {
	r := lipgloss.NewRenderer(w)
	bands := make([]lipgloss.Style, len(bandColors))
	for i, col := range bandColors {
		bands[i] = r.NewStyle().Foreground(col)
	}
	goalStyle := r.NewStyle().Foreground(colorGoal).Underline(true)
	dimStyle := r.NewStyle().Foreground(colorDim)

	text := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	var sb strings.Builder
	for y, row := range text {
		for x := 0; x < len(row); x++ {
			cell := row[x : x+1]
			if !shade {
				sb.WriteString(cell)
				continue
			}
			p := terrain.Position{X: x, Y: y}
			n, ok := d.Get(p)
			switch {
			case !ok:
				sb.WriteString(dimStyle.Render(cell))
			case p == g.Goal():
				sb.WriteString(goalStyle.Render(cell))
			default:
				sb.WriteString(bands[band(n, d.Max(), len(bands))].Render(cell))
			}
		}
		sb.WriteByte('\n')
	}
	unreached := g.Width()*g.Height() - d.Len()
	fmt.Fprintf(&sb, "reached %d cells, farthest %d steps, %d unreached\n", d.Len(), d.Max(), unreached)

	_, err := io.WriteString(w, sb.String())
	return err
}

// band maps distance n in [0, far] onto one of k bands.
func band(n, far, k int) int {
	if far == 0 {
		return 0
	}
	b := n * k / (far + 1)
	if b >= k {
		b = k - 1
	}
	return b
}
