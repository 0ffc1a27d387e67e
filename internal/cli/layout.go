package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/engine"
	"github.com/rmaxseiner/drawerfinity/internal/grid"
	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// openSession loads a layout file and rebuilds its placement session from the
// drawer partition and the stored bins.
func openSession(path string) (model.Layout, *engine.Session, error) {
	layout, err := project.LoadLayout(path)
	if err != nil {
		return model.Layout{}, nil, err
	}

	units, err := grid.Partition(layout.Drawer.Width, layout.Drawer.Depth)
	if err != nil {
		return model.Layout{}, nil, err
	}

	sess, err := engine.NewSession(units, layout.Bins)
	if err != nil {
		return model.Layout{}, nil, err
	}
	return layout, sess, nil
}

// saveLayout persists a layout and records it in the recent-layouts list.
// Config recording is best effort: a broken config file never fails a save.
func saveLayout(ctx context.Context, path string, layout model.Layout) error {
	if err := project.SaveLayout(path, layout); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	cfgPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		logger.Debug("skipping recent-layouts update", "err", err)
		return nil
	}
	cfg.AddRecentLayout(path)
	if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
		logger.Debug("skipping recent-layouts update", "err", err)
	}
	return nil
}

// newNewCmd creates the new command, which writes a fresh layout file.
func newNewCmd() *cobra.Command {
	var (
		name       string
		drawerName string
		width      float64
		depth      float64
		height     float64
		printer    string
	)

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a new drawer layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}

			drawer := model.Drawer{Name: drawerName, Width: width, Depth: depth, Height: height}
			if problems := drawer.Validate(); len(problems) > 0 {
				return fmt.Errorf("invalid drawer: %s", strings.Join(problems, "; "))
			}

			layout := model.NewLayout(name, drawer)

			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err == nil {
				cfg.ApplyToLayout(&layout)
			}
			if printer != "" {
				layout.Printer = model.GetPrinter(printer).Name
			}

			units, err := grid.Partition(drawer.Width, drawer.Depth)
			if err != nil {
				return err
			}

			if err := saveLayout(cmd.Context(), path, layout); err != nil {
				return err
			}

			standard, nonStandard := grid.CountStandard(units)
			loggerFromContext(cmd.Context()).Info("created layout",
				"file", path,
				"units", len(units),
				"standard", standard,
				"remainder", nonStandard,
				"printer", layout.Printer)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "drawer layout", "layout name")
	cmd.Flags().StringVar(&drawerName, "drawer", "drawer", "drawer name")
	cmd.Flags().Float64Var(&width, "width", 0, "drawer interior width in mm (required)")
	cmd.Flags().Float64Var(&depth, "depth", 0, "drawer interior depth in mm (required)")
	cmd.Flags().Float64Var(&height, "height", 0, "drawer interior height in mm")
	cmd.Flags().StringVar(&printer, "printer", "", "printer profile name")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("depth")

	return cmd
}

// newAddCmd creates the add command, which places one bin through the engine.
// Rejected placements leave the layout file untouched.
func newAddCmd() *cobra.Command {
	var (
		label string
		x     float64
		y     float64
		width float64
		depth float64
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Place a bin in a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			layout, sess, err := openSession(path)
			if err != nil {
				return err
			}

			bin, err := sess.Place(engine.Request{
				Label: label,
				X:     x,
				Y:     y,
				Width: width,
				Depth: depth,
			})
			if err != nil {
				return err
			}

			layout.Bins = sess.Bins()
			if err := saveLayout(cmd.Context(), path, layout); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			if bin.Width != width || bin.Depth != depth {
				logger.Info("adjusted bin to grid",
					"requested", fmt.Sprintf("%.1fx%.1f", width, depth),
					"placed", fmt.Sprintf("%.1fx%.1f", bin.Width, bin.Depth))
			}
			logger.Info("placed bin",
				"id", bin.ID,
				"label", bin.Label,
				"at", fmt.Sprintf("(%.1f, %.1f)", bin.X, bin.Y),
				"cells", fmt.Sprintf("%dx%d", bin.UnitWidth, bin.UnitDepth))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "bin label")
	cmd.Flags().Float64Var(&x, "x", 0, "anchor unit X offset in mm, as printed by grid (required)")
	cmd.Flags().Float64Var(&y, "y", 0, "anchor unit Y offset in mm, as printed by grid (required)")
	cmd.Flags().Float64Var(&width, "width", 0, "requested bin width in mm (required)")
	cmd.Flags().Float64Var(&depth, "depth", 0, "requested bin depth in mm (required)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("depth")

	return cmd
}

// newRemoveCmd creates the remove command. Removing an unknown ID is a no-op.
func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <bin-id>",
		Short: "Remove a bin from a layout by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, id := args[0], args[1]
			layout, sess, err := openSession(path)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			bin := layout.FindBin(id)
			if bin == nil || !sess.Remove(id) {
				logger.Warn("no bin with that ID", "id", id)
				return nil
			}
			label := bin.Label

			layout.Bins = sess.Bins()
			if err := saveLayout(cmd.Context(), path, layout); err != nil {
				return err
			}
			logger.Info("removed bin", "id", id, "label", label, "remaining", len(layout.Bins))
			return nil
		},
	}
}

// newClearCmd creates the clear command, which removes all bins.
func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <file>",
		Short: "Remove all bins from a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			layout, sess, err := openSession(path)
			if err != nil {
				return err
			}

			removed := len(layout.Bins)
			sess.Clear()
			layout.Bins = sess.Bins()
			if err := saveLayout(cmd.Context(), path, layout); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("cleared layout", "removed", removed)
			return nil
		},
	}
}
