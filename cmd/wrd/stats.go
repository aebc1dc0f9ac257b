package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Example: `  wrd stats           # Last 7 days
  wrd stats --days 30  # Last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		stats, err := mgr.Stats(days)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("📈 Usage Statistics (Last %d Days)\n", days)
		fmt.Println("================================")
		fmt.Printf("Projects created: %d\n", stats.ProjectsCreated)
		fmt.Printf("Commits: %d\n", stats.Commits)
		fmt.Printf("Backups: %d\n", stats.Backups)
		fmt.Printf("Success rate: %.1f%%\n", stats.SuccessRate)

		if len(stats.TopTemplates) > 0 {
			fmt.Println("\nTop Templates:")
			for _, t := range stats.TopTemplates {
				fmt.Printf("  %s: %d\n", t.TemplateName, t.Count)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 7, "Number of days to include")
	rootCmd.AddCommand(statsCmd)
}
