package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cinematch/cinevis/pkg/buildinfo"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps
// (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logBuildInfo records which build is running, at debug level.
func logBuildInfo(l *log.Logger) {
	l.Debug("cinevis", "version", buildinfo.Version, "commit", buildinfo.Commit, "built", buildinfo.Date)
}

// stopwatch logs how long an operation took once it finishes.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
// Example output: "Generated visualizations (1.234s)"
func (s *stopwatch) done(msg string) {
	s.logger.Infof("%s (%s)", msg, time.Since(s.start).Round(time.Millisecond))
}
