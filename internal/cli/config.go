package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/infra/config"
)

// newConfigCommand creates the config command with its subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize configuration",
	}

	cmd.AddCommand(
		newConfigShowCommand(c),
		newConfigInitCommand(c),
	)

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configuration files and their contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			printConfigInfo(w, "Global", c.ConfigManager.GetGlobalConfigInfo())
			_, _ = fmt.Fprintln(w)
			printConfigInfo(w, "Local", c.ConfigManager.GetLocalConfigInfo())
			return nil
		},
	}
}

func printConfigInfo(w io.Writer, label string, info config.ConfigInfo) {
	if info.Path == "" {
		_, _ = fmt.Fprintf(w, "%s: (not available)\n", label)
		return
	}
	if !info.Exists {
		_, _ = fmt.Fprintf(w, "%s: %s (not found)\n", label, info.Path)
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", label, info.Path)
	_, _ = fmt.Fprint(w, info.Content)
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the global config file with a commented template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.ConfigManager.InitGlobalConfig()
			if err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("config file already exists: %s", path)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
