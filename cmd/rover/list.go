package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-rover/internal/config"
)

var flagDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios in a directory",
	Long:  `Shows every scenario file found under a directory, with its grid size and command count.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagDir, "dir", "configs", "Directory to scan for scenario YAML")
}

func runList(cmd *cobra.Command, args []string) error {
	scenarios, err := config.NewLoader(flagDir).LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(scenarios) == 0 {
		fmt.Fprintln(out, "No scenarios found.")
		return nil
	}

	fmt.Fprintln(out, "Available scenarios:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range scenarios {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Grid", "Commands")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "--------")

	// Print scenarios
	for _, s := range scenarios {
		size := fmt.Sprintf("%dx%d", s.Grid.Width, s.Grid.Height)
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, s.Name, size, s.Commands)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'rover run --scenario <file>' to run one.")
	return nil
}
