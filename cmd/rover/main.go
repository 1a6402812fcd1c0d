// rover simulates a rover driving on a wrap-around planet strewn with rocks.
//
// Usage:
//
//	rover run                - Run a scenario and print the final map
//	rover replay             - Replay a run step by step in the terminal
//	rover validate <file>... - Check that scenario files can land a rover
//	rover list               - List scenarios in a directory
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--no-color           - Print the map without colours
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-rover/internal/platform/diag"
)

var (
	// Global flags
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rover",
	Short: "Rover - drive a rover across a wrap-around planet",
	Long: `Rover lands a rover on a rectangular planet whose edges wrap around,
feeds it a command string, and reports where it ends up. A command that
would drive the rover onto a rock stops the run; the rover keeps its last
safe position.

Command characters:
  f - move forward     b - move backward
  l - pivot left       r - pivot right
Any other character is ignored.

Examples:
  rover run
  rover run --commands ffrff --rocks "1,1 (3,4)"
  rover run --scenario configs/rock-garden.yaml
  rover replay --scenario configs/lap.yaml
  rover validate configs/*.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured map output")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the logger shared by all subcommands.
func newLogger() (*log.Logger, error) {
	logger, err := diag.NewLogger(os.Stderr, diag.LoggerOptions{Level: flagLogLevel})
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return logger, nil
}
