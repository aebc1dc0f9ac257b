package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"wrd/internal/scaffold"
	"wrd/pkg/config"
	"wrd/pkg/output"
)

var rootCmd = &cobra.Command{
	Use:   "wrd",
	Short: "WRD developer workflow tool",
	Long:  `Project scaffolding from templates, per-project metadata tracking, and commit/backup helpers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wrd configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefaultConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		templatesDir := config.DefaultTemplatesDir()
		if err := os.MkdirAll(templatesDir, 0755); err != nil {
			return fmt.Errorf("failed to create templates directory: %w", err)
		}

		fmt.Println("wrd initialized successfully!")
		fmt.Println("")
		fmt.Println("Next steps:")
		fmt.Printf("  Put templates under %s (one directory per template, with a project.yml)\n", templatesDir)
		fmt.Println("  wrd template list              - List available templates")
		fmt.Println("  wrd project create <name> -t <template> - Create a project")
		return nil
	},
}

var verbose bool

func getManager() (*scaffold.Manager, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return scaffold.NewManager(cfg)
}

var configPath string

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.wrd/config.yaml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
