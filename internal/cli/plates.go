package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/plate"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// newPlatesCmd creates the plates command, which splits a layout's baseplate
// into sections that fit the printer bed.
func newPlatesCmd() *cobra.Command {
	var printerName string

	cmd := &cobra.Command{
		Use:   "plates <file>",
		Short: "Plan baseplate print sections for a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := project.LoadLayout(args[0])
			if err != nil {
				return err
			}

			name := layout.Printer
			if printerName != "" {
				name = printerName
			}
			printer := model.GetPrinter(name)
			if printer.Name != name {
				loggerFromContext(cmd.Context()).Warn("unknown printer, using Generic",
					"requested", name,
					"available", strings.Join(model.GetPrinterNames(), ", "))
			}

			sections, err := plate.Sections(layout.Drawer.Width, layout.Drawer.Depth, printer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Printer: %s (%.0f x %.0f mm bed)\n",
				printer.Name, printer.BedWidth, printer.BedDepth)
			if layout.Drawer.Height > 0 {
				fmt.Fprintf(out, "Bin height: %.0f mm\n", plate.BinHeight(layout.Drawer.Height))
			}
			fmt.Fprintf(out, "\n%-9s %-12s %-12s %s\n", "Section", "Size", "Offset", "")
			for _, s := range sections {
				fmt.Fprintf(out, "%-9d %.0f x %.0f   at (%.0f, %.0f)\n",
					s.Index+1, s.Width, s.Depth, s.XOffset, s.YOffset)
			}
			fmt.Fprintf(out, "\n%d sections for %.0f x %.0f mm drawer\n",
				len(sections), layout.Drawer.Width, layout.Drawer.Depth)
			return nil
		},
	}

	cmd.Flags().StringVar(&printerName, "printer", "", "printer profile name (defaults to the layout's printer)")
	return cmd
}
