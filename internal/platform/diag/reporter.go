// Package diag turns rover run diagnostics into structured log lines.
package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-rover/internal/rover"
)

// LoggerOptions configures NewLogger.
type LoggerOptions struct {
	Level      string // debug, info, warn, error
	Timestamps bool
}

// NewLogger creates the rover logger writing to w (stderr if nil).
func NewLogger(w io.Writer, opts LoggerOptions) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamps,
		Prefix:          "rover",
	})

	if opts.Level != "" {
		level, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}
	return logger, nil
}

// LogReporter implements rover.Reporter on top of a charmbracelet logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a reporter that logs to logger.
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// ReportCollision logs the collision that halted a run.
func (r *LogReporter) ReportCollision(err *rover.CollisionError, last rover.Vehicle) {
	r.logger.Warn(err.Error(),
		"command", string(err.Command.Rune()),
		"index", err.Index,
		"pose", last.Pose().String(),
	)
}

// ReportSkipped logs an ignored command character at debug level.
func (r *LogReporter) ReportSkipped(index int, ch rune) {
	r.logger.Debug("skipping unknown command", "char", string(ch), "index", index)
}

var _ rover.Reporter = (*LogReporter)(nil)
