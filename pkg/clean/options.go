// pkg/clean/options.go
package clean

import (
	"errors"
	"log/slog"
)

// ErrDirRequired is returned when no directory is specified
var ErrDirRequired = errors.New("an input directory is required")

// Options configures the cleanup behavior
type Options struct {
	// Dir is the directory tree to scan for decoder output files
	Dir string

	// Confirm is called with the number of files found before anything is
	// deleted. Returning false aborts the cleanup. A nil hook aborts too -
	// deletion never happens without an explicit yes.
	Confirm func(count int) bool

	// Logger receives progress and summary events
	// Default: slog.Default()
	Logger *slog.Logger
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.Dir == "" {
		return ErrDirRequired
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}

// Result contains statistics about the cleanup operation
type Result struct {
	// Found is the number of output files discovered
	Found int

	// Deleted is the number of files actually removed
	Deleted int

	// Aborted is true when the confirmation hook declined
	Aborted bool

	// List of delete errors encountered (non-fatal)
	Errors []error
}
