package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/model"
	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// newTemplateCmd creates the template command group for reusable drawer
// configurations stored alongside the app config.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable drawer templates",
	}
	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateSaveCmd())
	cmd.AddCommand(newTemplateApplyCmd())
	cmd.AddCommand(newTemplateRemoveCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drawer templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(project.DefaultTemplatesPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(store.Templates) == 0 {
				fmt.Fprintln(out, "no templates saved")
				return nil
			}
			fmt.Fprintf(out, "%-10s %-24s %-16s %-6s %s\n", "ID", "Name", "Drawer", "Bins", "Description")
			for _, t := range store.Templates {
				size := fmt.Sprintf("%.0f x %.0f", t.Drawer.Width, t.Drawer.Depth)
				fmt.Fprintf(out, "%-10s %-24s %-16s %-6d %s\n", t.ID, t.Name, size, len(t.Bins), t.Description)
			}
			return nil
		},
	}
}

func newTemplateSaveCmd() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a layout as a reusable template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := project.LoadLayout(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = layout.Name
			}

			store, err := project.LoadTemplates(project.DefaultTemplatesPath())
			if err != nil {
				return err
			}
			tpl := model.NewDrawerTemplate(name, description, layout)
			store.Add(tpl)
			if err := project.SaveTemplates(project.DefaultTemplatesPath(), store); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("saved template",
				"id", tpl.ID, "name", tpl.Name, "bins", len(tpl.Bins))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "template name (defaults to the layout name)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func newTemplateApplyCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "apply <template-id> <file>",
		Short: "Create a new layout file from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, path := args[0], args[1]

			store, err := project.LoadTemplates(project.DefaultTemplatesPath())
			if err != nil {
				return err
			}
			tpl := store.FindByID(id)
			if tpl == nil {
				return fmt.Errorf("no template with ID %q", id)
			}
			if name == "" {
				name = tpl.Name
			}

			layout := tpl.ToLayout(name)
			if err := saveLayout(cmd.Context(), path, layout); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("created layout from template",
				"template", tpl.Name, "file", path, "bins", len(layout.Bins))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "layout name (defaults to the template name)")
	return cmd
}

func newTemplateRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <template-id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(project.DefaultTemplatesPath())
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("no template with ID %q", args[0])
			}
			if err := project.SaveTemplates(project.DefaultTemplatesPath(), store); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("removed template", "id", args[0])
			return nil
		},
	}
}
