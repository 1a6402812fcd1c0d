package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mars-rover/internal/config"
	"github.com/vovakirdan/mars-rover/internal/platform/diag"
	"github.com/vovakirdan/mars-rover/internal/platform/tui"
	"github.com/vovakirdan/mars-rover/internal/rover"
)

// Scenario flags shared by run and replay.
var (
	flagScenario string
	flagCommands string
	flagX        int
	flagY        int
	flagFacing   string
	flagWidth    int
	flagHeight   int
	flagRocks    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario and print the final map",
	Long: `Load a scenario, land the rover, execute its commands and print the
planet map: 'R' is the rover, 'X' a rock, '.' free ground.

Without --scenario the scenario is looked up in this order:
  ~/.rover/scenarios/default.yaml
  ./configs/default.yaml
  built-in default (10x10, rock at (1,1), commands "frfffffff")

Flags override single fields of the loaded scenario.

Examples:
  rover run
  rover run --commands rffff
  rover run --width 5 --height 5 --rocks "2,2; 4,0" --facing east`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	addScenarioFlags(runCmd)
}

// addScenarioFlags registers the scenario selection and override flags.
func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagScenario, "scenario", "", "Path to scenario YAML")
	cmd.Flags().StringVar(&flagCommands, "commands", "", "Command string (f, b, l, r)")
	cmd.Flags().IntVar(&flagX, "x", 0, "Landing x coordinate")
	cmd.Flags().IntVar(&flagY, "y", 0, "Landing y coordinate")
	cmd.Flags().StringVar(&flagFacing, "facing", "", "Landing orientation: north, east, south, west")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Planet width")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Planet height")
	cmd.Flags().StringVar(&flagRocks, "rocks", "", `Rock list, e.g. "1,1 (3,4)"; replaces the scenario's rocks`)
}

// overridesFromFlags collects the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("commands") {
		o.Commands = &flagCommands
	}
	if flags.Changed("x") {
		o.X = &flagX
	}
	if flags.Changed("y") {
		o.Y = &flagY
	}
	if flags.Changed("facing") {
		o.Facing = &flagFacing
	}
	if flags.Changed("width") {
		o.Width = &flagWidth
	}
	if flags.Changed("height") {
		o.Height = &flagHeight
	}
	if flags.Changed("rocks") {
		o.Rocks = &flagRocks
	}
	return o
}

// loadAndExecute loads the selected scenario, applies overrides and runs it.
func loadAndExecute(cmd *cobra.Command, logger *log.Logger) (config.Scenario, rover.Result, error) {
	scenario, err := config.LoadScenario(flagScenario)
	if err != nil {
		return config.Scenario{}, rover.Result{}, err
	}
	if err := overridesFromFlags(cmd).Apply(&scenario); err != nil {
		return config.Scenario{}, rover.Result{}, err
	}

	v, err := scenario.Vehicle()
	if err != nil {
		return config.Scenario{}, rover.Result{}, err
	}
	logger.Debug("rover landed",
		"scenario", scenario.Name,
		"grid", fmt.Sprintf("%dx%d", v.Grid().Width(), v.Grid().Height()),
		"pose", v.Pose().String(),
		"rocks", len(v.Grid().Obstacles()),
	)

	res := rover.NewSequencer(diag.NewLogReporter(logger)).Execute(v, scenario.Commands)
	logger.Debug("run finished",
		"steps", len(res.Steps),
		"skipped", res.Skipped,
		"halted", res.Halted(),
	)
	return scenario, res, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	_, res, err := loadAndExecute(cmd, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Planet map:")
	if useColor() {
		fmt.Fprintln(out, tui.RenderMap(res.Vehicle.Grid(), res.Vehicle.Pose()))
	} else {
		fmt.Fprint(out, rover.RenderASCII(res.Vehicle))
	}
	fmt.Fprintf(out, "Final position: %s\n", res.Vehicle.Pose())
	return nil
}

// useColor returns true when the map goes to a terminal and colours are not disabled.
func useColor() bool {
	return !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
}
