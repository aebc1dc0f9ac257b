package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"wrd/internal/scaffold"
)

var (
	createTemplate  string
	createPath      string
	createVars      []string
	createOverwrite bool
	createGit       bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project from a template",
	Long: `Create a new project from a template.

Examples:
  wrd project create demo -t python-basic
  wrd project create demo -t python-basic --var author=Ada --var email=ada@example.com
  wrd project create demo -t python-basic --path /tmp/demo --overwrite
  wrd project create demo -t python-basic --git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if createTemplate == "" {
			return fmt.Errorf("a template is required (use --template)")
		}

		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		path, err := mgr.CreateProject(args[0], scaffold.CreateOptions{
			Template:  createTemplate,
			Path:      createPath,
			Vars:      parseVars(createVars),
			Overwrite: createOverwrite,
			InitGit:   createGit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Project '%s' created at %s\n", args[0], path)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		records, err := mgr.ListProjects()
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No projects tracked yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTEMPLATE\tPATH\tCREATED")
		fmt.Fprintln(w, "----\t--------\t----\t-------")
		for _, r := range records {
			tmpl := r.Template
			if tmpl == "" {
				tmpl = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.Name, tmpl, r.Path, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
		return nil
	},
}

func parseVars(pairs []string) map[string]string {
	vars := make(map[string]string)
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}
	return vars
}

func init() {
	projectCreateCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template to use")
	projectCreateCmd.Flags().StringVarP(&createPath, "path", "p", "", "Destination path (default <projects_dir>/<name>)")
	projectCreateCmd.Flags().StringSliceVar(&createVars, "var", []string{}, "Template variables (key=value)")
	projectCreateCmd.Flags().BoolVar(&createOverwrite, "overwrite", false, "Allow writing into an existing non-empty directory")
	projectCreateCmd.Flags().BoolVar(&createGit, "git", false, "Initialize a git repository and make the first commit")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
}
