// pkg/clean/clean.go
package clean

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheScriptGuy/sls-s3-snappy/pkg/decode"
)

// outputPattern matches the files the decoder produces.
var outputPattern = decode.OutputSuffix + ".json"

// Clean removes previously produced decoder output files (*_uncompress.json)
// under opts.Dir. The confirmation hook runs once, after enumeration, with
// the number of files found; a false return aborts without deleting anything.
// Individual delete failures are logged and collected, never fatal.
func Clean(opts *Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input directory: %s is not a directory", opts.Dir)
	}

	toRemove, err := findOutputFiles(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan input directory: %w", err)
	}

	result := &Result{Found: len(toRemove)}

	if len(toRemove) == 0 {
		opts.Logger.Info("No files found for removal")
		return result, nil
	}

	opts.Logger.Info(fmt.Sprintf("Found %d files for removal", len(toRemove)))

	if opts.Confirm == nil || !opts.Confirm(len(toRemove)) {
		opts.Logger.Info("Deletion aborted by user")
		result.Aborted = true
		return result, nil
	}

	for _, path := range toRemove {
		if err := os.Remove(path); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			opts.Logger.Error("Failed to delete file",
				slog.String("file", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Deleted++
		opts.Logger.Debug("Deleted file", slog.String("file", path))
	}

	opts.Logger.Info(fmt.Sprintf("Deleted %d of %d files", result.Deleted, result.Found))
	return result, nil
}

// findOutputFiles walks dir collecting every *_uncompress.json file.
func findOutputFiles(dir string) ([]string, error) {
	var found []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip inaccessible paths
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(info.Name(), outputPattern) {
			found = append(found, path)
		}
		return nil
	})
	return found, err
}
