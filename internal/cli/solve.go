package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/climb"
)

func (c *CLI) solveCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the fewest steps to the goal",
		Long: `Print the fewest steps to the goal E.

Part 1 starts from S. Part 2 starts from every cell at the lowest elevation
at once. An impossible climb prints "unreachable" instead of a number.`,
		Example: `  hillclimb solve input.txt
  hillclimb solve input.txt --mode lowest`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := climb.ParseMode(c.modeFlag(cmd, mode))
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

			rep, err := climb.Solve(cmd.Context(), g, m, c.Logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range rep.Parts {
				fmt.Fprintf(out, "Part %d: %s\n", p.Number, p.Result)
				c.Logger.Info(fmt.Sprintf("Part %d", p.Number), "mode", p.Mode, "explored", p.Result.Explored, "elapsed", p.Elapsed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "both", "which question to answer: start, lowest or both")
	return cmd
}
