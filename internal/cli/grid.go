package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/grid"
)

// newGridCmd creates the grid command, which prints the unit partition for a
// drawer footprint without touching any layout file.
func newGridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid <width> <depth>",
		Short: "Print the Gridfinity unit partition for a drawer footprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			depth, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid depth %q: %w", args[1], err)
			}

			units, err := grid.Partition(width, depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-10s %-10s %-10s %s\n", "X", "Y", "Width", "Depth", "Type")
			for _, u := range units {
				kind := "standard"
				if !u.IsStandard {
					kind = "remainder"
				}
				fmt.Fprintf(out, "%-10.1f %-10.1f %-10.1f %-10.1f %s\n",
					u.XOffset, u.YOffset, u.Width, u.Depth, kind)
			}

			standard, nonStandard := grid.CountStandard(units)
			fmt.Fprintf(out, "\n%d units (%d standard, %d remainder) for %.1f x %.1f mm\n",
				len(units), standard, nonStandard, width, depth)
			return nil
		},
	}
}
