// pkg/decode/decode.go
package decode

import (
	"fmt"
	"os"
	"sync"

	"github.com/TheScriptGuy/sls-s3-snappy/internal/scan"
)

// ProgressCallback is called for various progress events
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type     EventType
	FilePath string
	Current  int64
	Total    int64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileComplete
	EventComplete
)

// Decode decodes a single file or a directory batch of framed log files,
// running up to opts.Workers file tasks concurrently. Per-file failures are
// recorded as warnings and never stop the batch; the only fatal errors are an
// invalid input path and invalid options, both raised before any task is
// dispatched. Decode blocks until every dispatched task has reported its
// Outcome and the summary event has been emitted.
func Decode(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	paths, err := collectFiles(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{FilesMatched: len(paths)}
	agg := newAggregator(result, opts.Logger, opts.Verbose)

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:  EventStart,
			Total: int64(len(paths)),
		})
	}

	taskCh := make(chan string, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for path := range taskCh {
				outcome := DecodeFile(path)
				agg.Record(workerID, outcome)

				if progressCb != nil {
					progressCb(ProgressEvent{
						Type:     EventFileComplete,
						FilePath: path,
					})
				}
			}
		}(i + 1)
	}

	for _, path := range paths {
		taskCh <- path
	}
	close(taskCh)

	wg.Wait()

	// Pool fully drained; the summary always comes last.
	agg.Summarize()

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: int64(result.FilesDecoded),
			Total:   int64(result.FilesMatched),
		})
	}

	return result, nil
}

// collectFiles resolves the candidate file paths for the batch. A bad root
// path is the one fatal, pre-dispatch error of a decode run.
func collectFiles(opts *Options) ([]string, error) {
	if opts.InputPath != "" {
		if _, err := os.Stat(opts.InputPath); err != nil {
			return nil, fmt.Errorf("input file: %w", err)
		}
		return []string{opts.InputPath}, nil
	}

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input directory: %s is not a directory", opts.InputDir)
	}

	paths, err := scan.LogFiles(opts.InputDir, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("scan input directory: %w", err)
	}

	opts.Logger.Info(fmt.Sprintf("Found %d matching files in %s", len(paths), opts.InputDir))
	return paths, nil
}
