// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/identity"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupData  = "data"
	groupSetup = "setup"
)

// launchDashboardFunc launches the dashboard TUI; a variable so tests can
// stub it out.
var launchDashboardFunc = tui.Run

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Per-user task tracker",
		Long: `taskdeck is a per-user task tracker.

Each user identity owns its own task collection. The identity comes from
--user, the TASKDECK_USER environment variable, or the identity config
key, in that order. Running taskdeck without a subcommand opens the
dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			// config inspects or creates configuration and must work
			// before any identity exists.
			if isConfigCommand(cmd) || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			id, err := identity.Require(user, c.AppConfig)
			if err != nil {
				return err
			}
			c.Store.SetIdentity(id)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if c == nil {
				return
			}
			// Persistence problems are captured as notices rather than
			// failing the operation; surface them before exiting.
			if notice, ok := c.Notifier.Current(); ok {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", notice)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}

	root.PersistentFlags().StringVarP(&user, "user", "u", "", "User identity owning the task collection")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		newCmd,
		listCmd,
		showCmd,
		editCmd,
		statusCmd,
		rmCmd,
		exportCmd,
		importCmd,
		configCmd,
	)

	return root
}

// isConfigCommand reports whether cmd is the config command or one of
// its subcommands.
func isConfigCommand(cmd *cobra.Command) bool {
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if cur.Name() == "config" {
			return true
		}
	}
	return false
}
