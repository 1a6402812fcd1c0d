package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-rover/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check scenario files",
	Long: `Load each scenario file and check that a rover can land on it: the
grid must have a positive size, the landing cell must be inside the grid
and must not be a rock.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		s, err := config.LoadFile(path)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "OK    %s (%s)\n", path, s.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios invalid", failed, len(args))
	}
	return nil
}
