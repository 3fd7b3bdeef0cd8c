package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task collection as YAML",
		Long: `Export the current user's tasks as a YAML document, in storage
order, to stdout or to a file.

Examples:
  taskdeck export > tasks.yaml
  taskdeck export -o tasks.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}

			if err := os.WriteFile(output, out.Data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", out.Count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML export",
		Long: `Import tasks from a YAML file produced by export. By default the
entries merge into the current collection, skipping duplicates. With
--replace the imported collection supersedes the current one wholesale.

Examples:
  taskdeck import tasks.yaml
  taskdeck import --replace tasks.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Data:    data,
				Replace: replace,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Imported %d task(s)\n", out.Imported)
			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(w, "Skipped %d duplicate(s)\n", out.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the collection instead of merging")

	return cmd
}
