// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New builds the logger that CLI runs report through. Events go to stdout by
// default, or to logFile when set. Verbose lowers the level to Debug. The
// returned closer releases the log file (a no-op for stdout).
func New(verbose bool, logFile string) (*slog.Logger, func() error, error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}
