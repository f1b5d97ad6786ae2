// pkg/decode/options.go
package decode

import (
	"log/slog"
	"runtime"
)

// Options configures the decode behavior
type Options struct {
	// InputPath is a single framed log file to decode
	// Mutually exclusive with InputDir
	InputPath string

	// InputDir is a directory tree to scan for UUID-named .json log files
	// Mutually exclusive with InputPath
	InputDir string

	// Workers is the maximum number of concurrent decode workers
	// Default: runtime.NumCPU()
	Workers int

	// Exclude holds gitignore-style patterns applied while scanning InputDir
	Exclude []string

	// Verbose enables per-file INFO events on the logger
	Verbose bool

	// Quiet suppresses progress output (overrides Verbose)
	Quiet bool

	// Logger receives per-file and summary events
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Workers: runtime.NumCPU(),
		Verbose: false,
		Quiet:   false,
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.InputPath == "" && o.InputDir == "" {
		return ErrInputRequired
	}
	if o.InputPath != "" && o.InputDir != "" {
		return ErrInputConflict
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Quiet {
		o.Verbose = false
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}
