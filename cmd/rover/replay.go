package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mars-rover/internal/platform/tui"
)

var flagFPS int

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a run step by step",
	Long: `Run a scenario, then play the recorded run back in the terminal one
command at a time. The replay is read-only: keys move through the
recording, they do not drive the rover.

Controls:
  Space/P   - Play/Pause
  Right/L   - Step forward
  Left/H    - Step back
  R         - Restart
  ?         - Toggle help
  Q/Esc     - Quit

Examples:
  rover replay
  rover replay --scenario configs/lap.yaml --fps 8`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	addScenarioFlags(replayCmd)
	replayCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Replay speed (frames per second)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	scenario, res, err := loadAndExecute(cmd, logger)
	if err != nil {
		return err
	}

	return tui.RunReplay(res, tui.ReplayConfig{
		Title: scenario.Name,
		FPS:   flagFPS,
	})
}
