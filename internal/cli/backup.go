package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// newBackupCmd creates the backup command group for exporting and restoring
// all application data (preferences, custom printers, templates) as one file.
func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all application data",
	}
	cmd.AddCommand(newBackupExportCmd())
	cmd.AddCommand(newBackupImportCmd())
	return cmd
}

func newBackupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export preferences, printers, and templates to one JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return err
			}
			templates, err := project.LoadTemplates(project.DefaultTemplatesPath())
			if err != nil {
				return err
			}

			if err := project.ExportAllData(args[0], cfg, model.CustomPrinters, templates); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("exported application data",
				"file", args[0],
				"printers", len(model.CustomPrinters),
				"templates", len(templates.Templates))
			return nil
		},
	}
}

func newBackupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore preferences, printers, and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return err
			}
			if err := project.SaveCustomPrinters(project.DefaultPrintersPath(), backup.Printers); err != nil {
				return err
			}
			if err := project.SaveTemplates(project.DefaultTemplatesPath(), backup.Templates); err != nil {
				return err
			}
			model.CustomPrinters = backup.Printers

			loggerFromContext(cmd.Context()).Info("restored application data",
				"version", backup.Version,
				"created", backup.CreatedAt,
				"printers", len(backup.Printers),
				"templates", len(backup.Templates.Templates))
			return nil
		},
	}
}
