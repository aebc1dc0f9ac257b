package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	commitProject string
	backupProject string
	backupRemote  string
)

var commitCmd = &cobra.Command{
	Use:   "commit [message]",
	Short: "Stage and commit everything in a project",
	Long: `Stage all changes in a project directory and commit them.

Examples:
  wrd commit "Add feature"          # Commit the current directory
  wrd commit "Fix bug" -P demo      # Commit a tracked project by name`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "wrd checkpoint"
		if len(args) > 0 {
			message = args[0]
		}

		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		dir, err := mgr.ResolveProjectDir(commitProject)
		if err != nil {
			return err
		}

		if err := mgr.Commit(dir, message); err != nil {
			return err
		}

		fmt.Printf("✅ Committed changes in %s\n", dir)
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup [message]",
	Short: "Commit pending changes and push to the backup remote",
	Long: `Commit any pending changes, then push the current branch to the
configured backup remote.

Examples:
  wrd backup                        # Back up the current directory
  wrd backup "Before refactor" -P demo
  wrd backup --remote upstream`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "wrd backup"
		if len(args) > 0 {
			message = args[0]
		}

		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		dir, err := mgr.ResolveProjectDir(backupProject)
		if err != nil {
			return err
		}

		if err := mgr.Backup(dir, backupRemote, message); err != nil {
			return err
		}

		fmt.Printf("✅ Backed up %s\n", dir)
		return nil
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitProject, "project", "P", "", "Tracked project name (default: current directory)")
	backupCmd.Flags().StringVarP(&backupProject, "project", "P", "", "Tracked project name (default: current directory)")
	backupCmd.Flags().StringVar(&backupRemote, "remote", "", "Remote to push to (default from config)")
}
