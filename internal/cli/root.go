package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the drawerfinity CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "drawerfinity",
		Short:        "Drawerfinity partitions drawers into Gridfinity grids and places bins",
		Long:         `Drawerfinity is a CLI tool for planning Gridfinity drawer systems: it partitions a drawer footprint into 42 mm grid units, validates bin placements, splits baseplates into printable sections, and exports reports and labels.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			// Custom printer profiles are optional; a broken file only
			// costs the profiles, never the command.
			printers, err := project.LoadCustomPrinters(project.DefaultPrintersPath())
			if err != nil {
				logger.Debug("skipping custom printers", "err", err)
				return
			}
			model.CustomPrinters = printers
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("drawerfinity %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGridCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newClearCmd())
	root.AddCommand(newPlatesCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newLabelsCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newTemplateCmd())
	root.AddCommand(newBackupCmd())

	return root.ExecuteContext(context.Background())
}
