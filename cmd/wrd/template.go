package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long: `List all templates discovered in the templates directory.

Examples:
  wrd template list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		names := mgr.Templates()
		if len(names) == 0 {
			fmt.Println("No templates found")
			return nil
		}

		fmt.Println("📦 Available Templates:")
		fmt.Println("────────────────────────────────────────────────")
		for _, name := range names {
			desc, _ := mgr.Template(name)
			fmt.Printf("  %-20s %s\n", name, desc.Description)
		}
		fmt.Println("────────────────────────────────────────────────")
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show template details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		desc, ok := mgr.Template(args[0])
		if !ok {
			return fmt.Errorf("template '%s' not found", args[0])
		}

		fmt.Printf("Name:        %s\n", desc.Name)
		fmt.Printf("Description: %s\n", desc.Description)
		if desc.Author != "" {
			fmt.Printf("Author:      %s\n", desc.Author)
		}
		if desc.Version != "" {
			fmt.Printf("Version:     %s\n", desc.Version)
		}

		if len(desc.Directories) > 0 {
			fmt.Println("\nDirectories:")
			for _, dir := range desc.Directories {
				fmt.Printf("  %s\n", dir)
			}
		}

		if len(desc.Files) > 0 {
			fmt.Println("\nFiles:")
			for _, f := range desc.Files {
				fmt.Printf("  %s\n", f.DestPath())
			}
		}

		if len(desc.PostCreateCommands) > 0 {
			fmt.Println("\nPost-create commands:")
			for _, c := range desc.PostCreateCommands {
				fmt.Printf("  %s\n", c)
			}
		}
		return nil
	},
}

var templateVarsCmd = &cobra.Command{
	Use:   "vars <name>",
	Short: "Show the variables a template references",
	Long: `Scan a template's file contents for placeholders and list the
variables a project creation should supply.

Examples:
  wrd template vars python-basic`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer mgr.Close()

		vars, err := mgr.TemplateVariables(args[0])
		if err != nil {
			return err
		}

		if len(vars) == 0 {
			fmt.Println("No variables referenced")
			return nil
		}

		desc, _ := mgr.Template(args[0])
		declared := make(map[string]string)
		for _, v := range desc.Variables {
			declared[v.Name] = v.Description
		}

		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VARIABLE\tDESCRIPTION")
		fmt.Fprintln(w, "--------\t-----------")
		for _, name := range names {
			description := declared[name]
			if description == "" {
				description = "-"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, description)
		}
		w.Flush()
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateVarsCmd)
}
