package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"wrd/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		fmt.Printf("  templates_dir: %s\n", cfg.TemplatesDir)
		fmt.Printf("  projects_dir:  %s\n", cfg.ProjectsDir)
		fmt.Printf("  editor:        %s\n", cfg.Editor)
		fmt.Printf("  backup.remote: %s\n", cfg.Backup.Remote)
		fmt.Printf("  backup.branch: %s\n", cfg.Backup.Branch)

		if len(cfg.DefaultContext) > 0 {
			fmt.Println("  default_context:")
			keys := make([]string, 0, len(cfg.DefaultContext))
			for k := range cfg.DefaultContext {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("    %s: %s\n", k, cfg.DefaultContext[k])
			}
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and persist it.

Examples:
  wrd config set projects_dir ~/work
  wrd config set backup.remote origin
  wrd config set default_context.author "Ada Lovelace"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}

		if err := cfg.Save(configPath); err != nil {
			return err
		}

		fmt.Printf("✅ %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
